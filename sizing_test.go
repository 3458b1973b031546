// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, 0, ceilDiv(0, 8))
	assert.Equal(t, 1, ceilDiv(1, 8))
	assert.Equal(t, 1, ceilDiv(8, 8))
	assert.Equal(t, 2, ceilDiv(9, 8))
}

// TestCompressBound_NeverOverflows compresses incompressible (random-ish)
// data at every wrap mode into a destination sized exactly to
// CompressBound's result, the bound's whole reason for existing.
func TestCompressBound_NeverOverflows(t *testing.T) {
	src := make([]byte, 17000)
	state := uint32(0x2545F491)
	for i := range src {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		src[i] = byte(state)
	}

	for _, wb := range []int{MaxWindowBits, -MaxWindowBits, MaxWindowBits + 16} {
		params := DefaultParams()
		params.WindowBits = wb
		params.Strategy = StrategyHuffmanOnly // worst-case-for-bound strategy

		bound, err := CompressBound(params, len(src))
		require.NoError(t, err)

		wsize, err := CompressWorkSize(params)
		require.NoError(t, err)
		c, err := NewCompressor(make([]byte, wsize), params)
		require.NoError(t, err)

		dst := make([]byte, bound)
		nIn, nOut, streamEnd, err := c.Deflate(dst, src, FlushFinish)
		require.NoError(t, err)
		assert.True(t, streamEnd)
		assert.Equal(t, len(src), nIn)
		assert.LessOrEqualf(t, nOut, bound, "wrap=%d: CompressBound underestimated", wb)
	}
}

func TestDefaultCompressBound_TighterThanGeneralBound(t *testing.T) {
	params := DefaultParams()
	general, err := CompressBound(params, 1<<20)
	require.NoError(t, err)
	tight, err := DefaultCompressBound(params, 1<<20)
	require.NoError(t, err)
	assert.Less(t, tight, general)
}

func TestIndependentBound_AddsPerSegmentOverhead(t *testing.T) {
	params := DefaultParams()
	plain, err := CompressBound(params, 10000)
	require.NoError(t, err)
	independent, err := IndependentBound(params, 10000, 1000)
	require.NoError(t, err)
	assert.Equal(t, plain+4*10, independent)
}

func TestIndependentBound_EmptySourceStillCountsOneSegment(t *testing.T) {
	params := DefaultParams()
	plain, err := CompressBound(params, 0)
	require.NoError(t, err)
	independent, err := IndependentBound(params, 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, plain+4, independent)
}

func TestIndependentBound_RejectsNonPositiveMaxBlockLen(t *testing.T) {
	_, err := IndependentBound(DefaultParams(), 100, 0)
	assert.ErrorIs(t, err, ErrStreamError)
}

// TestGzipOverhead_MatchesHeaderSize confirms wrapOverhead's gzip branch
// tracks gzipHeaderSize exactly, since IndependentBound/CompressBound's
// safety depends on that invariant.
func TestGzipOverhead_MatchesHeaderSize(t *testing.T) {
	h := &GzipHeader{Name: "x", Comment: "y"}
	params := DefaultParams()
	params.WindowBits = MaxWindowBits + 16
	params.GzipHeader = h

	bound, err := CompressBound(params, 0)
	require.NoError(t, err)
	assert.Equal(t, 0+ceilDiv(0, 8)+ceilDiv(0, 64)+5+gzipHeaderSize(h)+8, bound)
}

func TestCompressBound_RejectsNegativeSourceLen(t *testing.T) {
	_, err := CompressBound(DefaultParams(), -1)
	assert.ErrorIs(t, err, ErrStreamError)
}

// sanity: ceilDiv never under-counts for powers of two, the shape
// wrapOverhead callers rely on for exact byte accounting.
func TestCeilDiv_PowersOfTwo(t *testing.T) {
	for shift := 0; shift < 20; shift++ {
		n := 1 << shift
		assert.Equal(t, 1, ceilDiv(n, n))
	}
}

func TestCompressBound_EmptySourceIsSmall(t *testing.T) {
	bound, err := CompressBound(DefaultParams(), 0)
	require.NoError(t, err)
	assert.Less(t, bound, 20)
}
