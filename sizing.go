// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// ceilDiv returns ceil(a/b) for non-negative a and positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// wrapOverhead returns the framing bytes CompressBound and
// DefaultCompressBound add on top of the raw DEFLATE bound: zlib's fixed
// 2-byte header + 4-byte Adler-32 trailer, gzip's variable-length header
// (§ gzipHeaderSize) + 8-byte CRC-32/ISIZE trailer, or none for raw (§6
// "Output-bound formulas").
func wrapOverhead(wrap WrapMode, h *GzipHeader) int {
	switch wrap {
	case WrapZlib:
		return 2 + 4
	case WrapGzip:
		return gzipHeaderSize(h) + 8
	default:
		return 0
	}
}

// CompressBound returns a destination size guaranteed to hold the
// compressed output of a source of sourceLen bytes under any level or
// strategy, including level 0 (stored blocks) and StrategyHuffmanOnly
// (§6 "conservative bound"):
//
//	source + ceil(source/8) + ceil(source/64) + 5 + wrap_overhead
//
// Use this for general-purpose destination sizing; prefer
// DefaultCompressBound only when params are known to match
// DefaultParams.
func CompressBound(params Params, sourceLen int) (int, error) {
	np, wrap, err := params.normalize()
	if err != nil {
		return 0, err
	}
	if sourceLen < 0 {
		return 0, wrapStream("CompressBound: negative sourceLen")
	}
	bound := sourceLen + ceilDiv(sourceLen, 8) + ceilDiv(sourceLen, 64) + 5
	bound += wrapOverhead(wrap, np.GzipHeader)
	return bound, nil
}

// DefaultCompressBound returns the tighter bound §6 gives for
// DefaultParams-style configurations (default strategy, non-zero level):
//
//	source + source/4096 + source/16384 + source/33554432 + 13 - 6 + wrap_overhead
//
// This bound is narrower than CompressBound and is not safe for level 0
// or StrategyHuffmanOnly/StrategyRLE; callers sizing a destination buffer
// for arbitrary parameters should use CompressBound instead.
func DefaultCompressBound(params Params, sourceLen int) (int, error) {
	np, wrap, err := params.normalize()
	if err != nil {
		return 0, err
	}
	if sourceLen < 0 {
		return 0, wrapStream("DefaultCompressBound: negative sourceLen")
	}
	bound := sourceLen + sourceLen/4096 + sourceLen/16384 + sourceLen/33554432 + 13 - 6
	bound += wrapOverhead(wrap, np.GzipHeader)
	return bound, nil
}

// IndependentBound returns a destination size guaranteed to hold
// Driver.CompressIndependent's output for a source of sourceLen bytes
// split into maxBlockLen-byte segments: CompressBound's general bound
// plus 4 bytes for each of the ceil(sourceLen/maxBlockLen) segments (at
// least one), covering the FlushFull sync marker each non-final segment
// emits (§6 "Independent-block bound").
func IndependentBound(params Params, sourceLen, maxBlockLen int) (int, error) {
	if maxBlockLen <= 0 {
		return 0, wrapStream("IndependentBound: maxBlockLen must be positive")
	}
	bound, err := CompressBound(params, sourceLen)
	if err != nil {
		return 0, err
	}
	numSegments := ceilDiv(sourceLen, maxBlockLen)
	if sourceLen == 0 {
		numSegments = 1
	}
	bound += 4 * numSegments
	return bound, nil
}
