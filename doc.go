// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

/*
Package zsc implements a safety-critical-oriented DEFLATE (RFC 1951)
compressor and decompressor, optionally wrapped in zlib (RFC 1950) or gzip
(RFC 1952) framing.

The engine is designed for environments where the caller supplies all
working memory up front: a [Compressor] or [Decompressor] sub-allocates
its sliding window, hash chains, Huffman tables, and pending buffers from
a single contiguous byte slice handed to [NewCompressor] or
[NewDecompressor], and never touches the runtime allocator again after
that one construction step. Every anomalous condition is either returned as a typed error (see
[ErrStreamError], [ErrDataError], [ErrMemError], [ErrBufError]) or
trapped by an internal assertion; corrupted compressed input causes
partial recovery (see [Decompressor.Sync]) rather than a panic.

# Direct use

	size, err := zsc.CompressWorkSize(zsc.DefaultParams())
	work := make([]byte, size)
	c, err := zsc.NewCompressor(work, zsc.DefaultParams())
	nIn, nOut, streamEnd, err := c.Deflate(dst, src, zsc.FlushFinish)

# Streaming

	w, err := zsc.NewWriter(&buf, zsc.DefaultParams())
	w.Write(data)
	w.Close()

	r, err := zsc.NewReader(bytes.NewReader(compressed), zsc.DefaultParams())
	io.Copy(dst, r)

# Independent blocks

[Driver] splits a large input into FULL_FLUSH-delimited segments so a
single corrupted segment does not prevent recovery of the rest of the
payload; see [Driver.CompressIndependent] and
[Driver.DecompressIndependent].
*/
package zsc
