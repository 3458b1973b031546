// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compressAll deflates src in a single Deflate(..., FlushFinish) call,
// sizing dst generously via CompressBound.
func compressAll(t *testing.T, params Params, src []byte) []byte {
	t.Helper()
	wsize, err := CompressWorkSize(params)
	require.NoError(t, err)
	work := make([]byte, wsize)
	c, err := NewCompressor(work, params)
	require.NoError(t, err)

	bound, err := CompressBound(params, len(src))
	require.NoError(t, err)
	dst := make([]byte, bound)
	nIn, nOut, streamEnd, err := c.Deflate(dst, src, FlushFinish)
	require.NoError(t, err)
	require.True(t, streamEnd)
	require.Equal(t, len(src), nIn)
	return dst[:nOut]
}

// decompressAll inflates compressed in a single Decompress(..., final=true)
// call, returning whatever ended up in dst (sized outCap) and any error.
func decompressAll(t *testing.T, params Params, compressed []byte, outCap int) ([]byte, error) {
	t.Helper()
	wsize, err := DecompressWorkSize(params)
	require.NoError(t, err)
	work := make([]byte, wsize)
	d, err := NewDecompressor(work, params)
	require.NoError(t, err)

	dst := make([]byte, outCap)
	_, nOut, _, err := d.Decompress(dst, compressed, true)
	return dst[:nOut], err
}

func TestRoundTrip_EmptyInput(t *testing.T) {
	params := DefaultParams()
	compressed := compressAll(t, params, nil)
	out, err := decompressAll(t, params, compressed, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRoundTrip_SmallRepeatedLiteral(t *testing.T) {
	params := DefaultParams()
	src := bytes.Repeat([]byte{'x'}, 13)
	compressed := compressAll(t, params, src)
	out, err := decompressAll(t, params, compressed, len(src))
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestRoundTrip_LargeZeros(t *testing.T) {
	params := DefaultParams()
	src := make([]byte, 40000)
	compressed := compressAll(t, params, src)
	out, err := decompressAll(t, params, compressed, len(src))
	require.NoError(t, err)
	assert.Equal(t, src, out)
	assert.Less(t, len(compressed), len(src)/10, "40000 zero bytes should compress to well under a tenth of that")
}

func TestRoundTrip_ByteCycle(t *testing.T) {
	params := DefaultParams()
	src := make([]byte, 4096)
	for i := range src {
		src[i] = byte(i)
	}
	compressed := compressAll(t, params, src)
	out, err := decompressAll(t, params, compressed, len(src))
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestRoundTrip_AcrossLevelsAndWrapModes(t *testing.T) {
	src := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 200)

	for _, level := range []int{-1, 0, 1, 6, 9} {
		for _, wb := range []int{MaxWindowBits, -MaxWindowBits, MaxWindowBits + 16} {
			params := DefaultParams()
			params.Level = level
			params.WindowBits = wb

			compressed := compressAll(t, params, src)
			out, err := decompressAll(t, params, compressed, len(src))
			require.NoError(t, err)
			assert.Equal(t, src, out)
		}
	}
}

func TestRoundTrip_PresetDictionary(t *testing.T) {
	params := DefaultParams() // zlib wrap
	dict := []byte("the quick brown fox jumps over the lazy dog")
	src := bytes.Repeat([]byte("the quick brown fox "), 50)

	cwsize, err := CompressWorkSize(params)
	require.NoError(t, err)
	c, err := NewCompressor(make([]byte, cwsize), params)
	require.NoError(t, err)
	require.NoError(t, c.SetDictionary(dict))

	bound, err := CompressBound(params, len(src))
	require.NoError(t, err)
	dst := make([]byte, bound)
	_, nOut, streamEnd, err := c.Deflate(dst, src, FlushFinish)
	require.NoError(t, err)
	require.True(t, streamEnd)
	compressed := dst[:nOut]

	dwsize, err := DecompressWorkSize(params)
	require.NoError(t, err)
	d, err := NewDecompressor(make([]byte, dwsize), params)
	require.NoError(t, err)

	out := make([]byte, len(src))
	nIn, nOut2, _, err := d.Decompress(out, compressed, true)
	require.ErrorIs(t, err, ErrNeedDict)
	assert.Equal(t, Adler32(dict), d.DictID())

	require.NoError(t, d.SetDictionary(dict))
	_, nOut3, streamEnd2, err := d.Decompress(out[nOut2:], compressed[nIn:], true)
	require.NoError(t, err)
	assert.True(t, streamEnd2)
	assert.Equal(t, src, out[:nOut2+nOut3])
}

func TestRoundTrip_SyncFlushMidStream(t *testing.T) {
	params := DefaultParams()
	part1 := bytes.Repeat([]byte("abcdefgh"), 100)
	part2 := bytes.Repeat([]byte("ijklmnop"), 100)

	wsize, err := CompressWorkSize(params)
	require.NoError(t, err)
	c, err := NewCompressor(make([]byte, wsize), params)
	require.NoError(t, err)

	dst := make([]byte, 1<<16)
	_, n1, _, err := c.Deflate(dst, part1, FlushSync)
	require.NoError(t, err)

	_, n2, streamEnd, err := c.Deflate(dst[n1:], part2, FlushFinish)
	require.NoError(t, err)
	require.True(t, streamEnd)
	compressed := dst[:n1+n2]

	out, err := decompressAll(t, params, compressed, len(part1)+len(part2))
	require.NoError(t, err)
	assert.Equal(t, append(append([]byte{}, part1...), part2...), out)
}

func TestRoundTrip_TruncatedStreamFails(t *testing.T) {
	params := DefaultParams()
	src := bytes.Repeat([]byte("truncate me please"), 50)
	compressed := compressAll(t, params, src)

	for _, cut := range []int{1, 2, 4, len(compressed) / 2} {
		truncated := compressed[:len(compressed)-cut]
		_, err := decompressAll(t, params, truncated, len(src))
		assert.Error(t, err, "truncating %d trailing bytes should fail to decompress cleanly", cut)
	}
}

func TestRoundTrip_GzipHeaderFields(t *testing.T) {
	params := DefaultParams()
	params.WindowBits = MaxWindowBits + 16
	hdr := &GzipHeader{Name: "payload.bin"}
	params.GzipHeader = hdr

	src := []byte("gzip framed payload")
	compressed := compressAll(t, params, src)

	wsize, err := DecompressWorkSize(params)
	require.NoError(t, err)
	d, err := NewDecompressor(make([]byte, wsize), params)
	require.NoError(t, err)

	dst := make([]byte, len(src))
	_, nOut, streamEnd, err := d.Decompress(dst, compressed, true)
	require.NoError(t, err)
	assert.True(t, streamEnd)
	assert.Equal(t, src, dst[:nOut])
	assert.Equal(t, "payload.bin", d.GzipHeader().Name)
}
