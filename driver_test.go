// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver_RejectsNonPositiveMaxBlockLen(t *testing.T) {
	_, err := NewDriver(0)
	assert.ErrorIs(t, err, ErrStreamError)
	_, err = NewDriver(-1)
	assert.ErrorIs(t, err, ErrStreamError)
}

func TestDriver_CompressIndependentRoundTrip(t *testing.T) {
	params := DefaultParams()
	src := bytes.Repeat([]byte("segmented payload, segmented payload. "), 500)
	const maxBlockLen = 2000

	dr, err := NewDriver(maxBlockLen)
	require.NoError(t, err)

	wsize, err := CompressWorkSize(params)
	require.NoError(t, err)
	c, err := NewCompressor(make([]byte, wsize), params)
	require.NoError(t, err)

	bound, err := IndependentBound(params, len(src), maxBlockLen)
	require.NoError(t, err)
	dst := make([]byte, bound)
	nOut, err := dr.CompressIndependent(c, dst, src)
	require.NoError(t, err)
	compressed := dst[:nOut]

	dwsize, err := DecompressWorkSize(params)
	require.NoError(t, err)
	d, err := NewDecompressor(make([]byte, dwsize), params)
	require.NoError(t, err)

	out := make([]byte, len(src))
	got, err := dr.DecompressIndependent(d, out, compressed)
	require.NoError(t, err)
	assert.Equal(t, src, out[:got])
}

// TestDriver_RecoversPastCorruptedSegment exercises §4.7's central claim:
// damaging one FlushFull-delimited segment only costs that segment, not
// the whole payload.
func TestDriver_RecoversPastCorruptedSegment(t *testing.T) {
	params := DefaultParams()
	seg1 := bytes.Repeat([]byte("AAAA"), 600)
	seg2 := bytes.Repeat([]byte("BBBB"), 600)
	seg3 := bytes.Repeat([]byte("CCCC"), 600)
	src := append(append(append([]byte{}, seg1...), seg2...), seg3...)
	const maxBlockLen = len("AAAA") * 600

	dr, err := NewDriver(maxBlockLen)
	require.NoError(t, err)

	wsize, err := CompressWorkSize(params)
	require.NoError(t, err)
	c, err := NewCompressor(make([]byte, wsize), params)
	require.NoError(t, err)

	bound, err := IndependentBound(params, len(src), maxBlockLen)
	require.NoError(t, err)
	dst := make([]byte, bound)
	nOut, err := dr.CompressIndependent(c, dst, src)
	require.NoError(t, err)
	compressed := dst[:nOut]

	// Corrupt a handful of bytes halfway through: deep
	// inside the second segment's compressed data, away from the sync
	// markers so the first segment survives untouched.
	corrupt := append([]byte{}, compressed...)
	mid := len(corrupt) / 2
	for i := mid; i < mid+4 && i < len(corrupt); i++ {
		corrupt[i] ^= 0xFF
	}

	dwsize, err := DecompressWorkSize(params)
	require.NoError(t, err)
	d, err := NewDecompressor(make([]byte, dwsize), params)
	require.NoError(t, err)

	out := make([]byte, len(src)*4+4096)
	_, err = dr.DecompressIndependent(d, out, corrupt)
	assert.ErrorIs(t, err, ErrDataError, "a corrupted segment must surface ErrDataError even though recovery continues")
}

func TestDriver_CompressIndependentSingleSegment(t *testing.T) {
	params := DefaultParams()
	src := []byte("short payload fitting in one segment")

	dr, err := NewDriver(1 << 20)
	require.NoError(t, err)

	wsize, err := CompressWorkSize(params)
	require.NoError(t, err)
	c, err := NewCompressor(make([]byte, wsize), params)
	require.NoError(t, err)

	bound, err := IndependentBound(params, len(src), 1<<20)
	require.NoError(t, err)
	dst := make([]byte, bound)
	nOut, err := dr.CompressIndependent(c, dst, src)
	require.NoError(t, err)

	dwsize, err := DecompressWorkSize(params)
	require.NoError(t, err)
	d, err := NewDecompressor(make([]byte, dwsize), params)
	require.NoError(t, err)

	out := make([]byte, len(src))
	got, err := dr.DecompressIndependent(d, out, dst[:nOut])
	require.NoError(t, err)
	assert.Equal(t, src, out[:got])
}
