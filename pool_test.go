// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_AllocBytes(t *testing.T) {
	buf := make([]byte, 16)
	p := newPool(buf)

	span, err := p.allocBytes(10)
	require.NoError(t, err)
	assert.Len(t, span, 10)
	assert.Equal(t, 10, p.used())
	assert.Equal(t, 6, p.remaining())

	_, err = p.allocBytes(7)
	assert.ErrorIs(t, err, ErrMemError)

	span2, err := p.allocBytes(6)
	require.NoError(t, err)
	assert.Len(t, span2, 6)
	assert.Equal(t, 0, p.remaining())
}

func TestPool_AllocBytesZero(t *testing.T) {
	p := newPool(make([]byte, 4))
	span, err := p.allocBytes(0)
	require.NoError(t, err)
	assert.Nil(t, span)
	assert.Equal(t, 0, p.used())
}

func TestPool_AllocBytesNegative(t *testing.T) {
	p := newPool(make([]byte, 4))
	_, err := p.allocBytes(-1)
	assert.ErrorIs(t, err, ErrMemError)
}

func TestPool_AllocBytesZeroesSpan(t *testing.T) {
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = 0xFF
	}
	p := newPool(buf)
	span, err := p.allocBytes(8)
	require.NoError(t, err)
	for i, b := range span {
		assert.Equalf(t, byte(0), b, "byte %d not zeroed", i)
	}
}

func TestPool_AllocItemsOverflow(t *testing.T) {
	p := newPool(make([]byte, 64))
	_, err := p.allocItems(1<<62, 1<<62)
	assert.ErrorIs(t, err, ErrMemError)
}

func TestPool_AllocItemsNegative(t *testing.T) {
	p := newPool(make([]byte, 64))
	_, err := p.allocItems(-1, 4)
	assert.ErrorIs(t, err, ErrMemError)
}

func TestPool_AllocTypedAliasesBuffer(t *testing.T) {
	buf := make([]byte, 32)
	p := newPool(buf)

	ints, err := allocTyped[int32](p, 4)
	require.NoError(t, err)
	require.Len(t, ints, 4)

	ints[0] = 0x01020304
	var sum byte
	for _, b := range buf[:4] {
		sum |= b
	}
	assert.NotZero(t, sum, "writing through the typed slice should be visible in the backing buffer")
}

func TestPool_AllocTypedZero(t *testing.T) {
	p := newPool(make([]byte, 8))
	s, err := allocTyped[int32](p, 0)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestPool_AllocTypedInsufficientSpace(t *testing.T) {
	p := newPool(make([]byte, 4))
	_, err := allocTyped[int64](p, 1)
	assert.ErrorIs(t, err, ErrMemError)
}
