// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

import "io"

// writerChunkSize is sized above the largest possible pending buffer
// (MaxMemLevel's litBufSize*4, 131072 bytes) so a single Deflate call
// inside Write or flush is never starved of dst room mid-block; the
// constant does not vary with MemLevel, since it already covers the
// pending buffer of every MemLevel, which is the one place a Compressor
// actually buffers compressed output.
const writerChunkSize = 1 << 18

// Writer adapts a Compressor to io.Writer/io.WriteCloser (§9 supplemented
// feature). It is the one place in this package that allocates after
// construction is underway: NewWriter makes exactly one work buffer for
// its Compressor (§3's allocation invariant governs everything
// downstream of that single call, not this convenience wrapper).
type Writer struct {
	w    io.Writer
	c    *Compressor
	work []byte
	buf  [writerChunkSize]byte
	err  error
}

// NewWriter returns a Writer that deflates everything written to it and
// writes the compressed bytes to w.
func NewWriter(w io.Writer, params Params) (*Writer, error) {
	size, err := CompressWorkSize(params)
	if err != nil {
		return nil, err
	}
	work := make([]byte, size)
	c, err := NewCompressor(work, params)
	if err != nil {
		return nil, err
	}
	return &Writer{w: w, c: c, work: work}, nil
}

// Write compresses p and forwards the compressed bytes to the wrapped
// io.Writer. It always consumes all of p (or returns an error).
func (cw *Writer) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	total := 0
	for len(p) > 0 {
		nIn, nOut, _, err := cw.c.Deflate(cw.buf[:], p, FlushNone)
		if err != nil {
			cw.err = err
			return total, err
		}
		if nOut > 0 {
			if _, werr := cw.w.Write(cw.buf[:nOut]); werr != nil {
				cw.err = werr
				return total, werr
			}
		}
		if nIn == 0 && nOut == 0 {
			cw.err = wrapBuf("Writer: Deflate made no progress")
			return total, cw.err
		}
		p = p[nIn:]
		total += nIn
	}
	return total, nil
}

// flush drives mode through Deflate once, then drains any remainder with
// FlushNone calls until PendingBytes is empty — calling the real flush
// action a second time would double-emit its marker/trailer bytes (§4.5,
// the same reasoning driver.go's CompressIndependent relies on).
func (cw *Writer) flush(mode Flush) error {
	if cw.err != nil {
		return cw.err
	}
	_, nOut, streamEnd, err := cw.c.Deflate(cw.buf[:], nil, mode)
	if err != nil {
		cw.err = err
		return err
	}
	if nOut > 0 {
		if _, werr := cw.w.Write(cw.buf[:nOut]); werr != nil {
			cw.err = werr
			return werr
		}
	}
	for !streamEnd && cw.c.PendingBytes() > 0 {
		_, n, se, derr := cw.c.Deflate(cw.buf[:], nil, FlushNone)
		if derr != nil {
			cw.err = derr
			return derr
		}
		if n > 0 {
			if _, werr := cw.w.Write(cw.buf[:n]); werr != nil {
				cw.err = werr
				return werr
			}
		}
		streamEnd = se
		if n == 0 {
			break
		}
	}
	return nil
}

// Flush emits a sync-flush point (FlushSync): all pending input is
// compressed and the wrapped writer can fully decompress up to here, but
// the stream stays open for more Write calls.
func (cw *Writer) Flush() error { return cw.flush(FlushSync) }

// Close emits the stream trailer (FlushFinish). It does not close the
// wrapped io.Writer.
func (cw *Writer) Close() error { return cw.flush(FlushFinish) }
