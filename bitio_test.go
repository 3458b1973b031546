// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitRoundTrip(t *testing.T) {
	pending := make([]byte, 64)
	var w bitWriter
	w.init(pending)

	type item struct {
		value uint32
		bits  uint
	}
	items := []item{
		{0, 1}, {1, 1}, {5, 3}, {12345, 15}, {0xFFFF, 16}, {7, 4},
	}
	for _, it := range items {
		w.send(it.value, it.bits)
	}
	w.alignByte()

	var r bitReader
	r.initBits()
	r.setInput(pending[:w.pendingLen])

	for _, it := range items {
		v, ok := r.takeBits(it.bits)
		require.True(t, ok)
		assert.Equal(t, it.value, v)
	}
}

func TestBitReader_NeedFailsPastEnd(t *testing.T) {
	var w bitWriter
	w.init(make([]byte, 4))
	w.send(3, 2)
	w.alignByte()

	var r bitReader
	r.initBits()
	r.setInput(w.pending[:w.pendingLen])

	_, ok := r.takeBits(2)
	require.True(t, ok)
	_, ok = r.takeBits(7)
	assert.False(t, ok, "no bits remain past the single aligned byte")
}

func TestBitReader_RawBytesAfterAlign(t *testing.T) {
	pending := make([]byte, 16)
	var w bitWriter
	w.init(pending)
	w.send(0b101, 3)
	w.alignByte()
	w.writeBytes([]byte("hello"))

	var r bitReader
	r.initBits()
	r.setInput(pending[:w.pendingLen])

	v, ok := r.takeBits(3)
	require.True(t, ok)
	assert.Equal(t, uint32(0b101), v)

	r.alignByte()

	dst := make([]byte, 5)
	ok = r.takeRawBytes(dst)
	require.True(t, ok)
	assert.Equal(t, "hello", string(dst))
}

func TestBitReader_BufferedBytesAccounting(t *testing.T) {
	pending := make([]byte, 8)
	var w bitWriter
	w.init(pending)
	w.writeBytes([]byte{0x01, 0x02, 0x03})

	var r bitReader
	r.initBits()
	r.setInput(pending[:w.pendingLen])
	assert.Equal(t, 3, r.bufferedBytes())

	_, ok := r.takeBits(8)
	require.True(t, ok)
	assert.Equal(t, 2, r.bufferedBytes())
}

func TestBitWriter_FlushBitsKeepsPartialByte(t *testing.T) {
	var w bitWriter
	w.init(make([]byte, 4))
	w.send(0b101, 3)
	w.flushBits()
	assert.Equal(t, 0, w.pendingLen, "fewer than 8 bits should not flush")
	assert.Equal(t, uint(3), w.bitsUsed())

	w.send(0b1, 5)
	w.flushBits()
	assert.Equal(t, 1, w.pendingLen)
	assert.Equal(t, uint(0), w.bitsUsed())
}
