// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

import "errors"

// Driver implements the L7 independent-block protocol (§4.7): splitting a
// large payload into FlushFull-delimited segments on compression, and
// resynchronizing past a corrupted segment on decompression, so one
// damaged segment does not sacrifice the rest of the payload.
type Driver struct {
	maxBlockLen int
}

// NewDriver returns a Driver that compresses in maxBlockLen-byte segments.
// maxBlockLen must be positive.
func NewDriver(maxBlockLen int) (*Driver, error) {
	if maxBlockLen <= 0 {
		return nil, wrapStream("NewDriver: maxBlockLen must be positive")
	}
	return &Driver{maxBlockLen: maxBlockLen}, nil
}

// CompressIndependent compresses src in maxBlockLen-byte segments, calling
// c.Deflate once per segment with FlushFull (or FlushFinish for the last
// segment), so each segment's FlushFull marker is a later
// Decompressor.Sync recovery point (§4.7 "Compression driver").
//
// c must be freshly reset (no prior Deflate calls) and own a work buffer
// sized for whatever dst this call is given; use [IndependentBound] to
// size dst.
//
// The loop terminates in at most ceil(len(src)/maxBlockLen) outer
// iterations, one per segment, since a single Deflate call always fully
// consumes a src argument no larger than the window (deflate.go's "for
// len(src) > 0" loop keeps calling window.fill until src is exhausted,
// independent of dst's size); plus, across the whole call, at most
// len(dst) inner drain iterations, since each either advances nOut by at
// least one byte or returns an error. That bounds total iterations by
// roughly len(src)/maxBlockLen + len(dst), addressing §9 Open Question 2's
// request for a provable bound in place of the original's ad hoc formula.
func (dr *Driver) CompressIndependent(c *Compressor, dst, src []byte) (nOut int, err error) {
	pos := 0
	for pos < len(src) || (pos == 0 && len(src) == 0) {
		end := pos + dr.maxBlockLen
		if end > len(src) {
			end = len(src)
		}
		seg := src[pos:end]
		last := end == len(src)

		flush := FlushFull
		if last {
			flush = FlushFinish
		}

		n, segOut, streamEnd, derr := c.Deflate(dst[nOut:], seg, flush)
		if derr != nil {
			return nOut, derr
		}
		if n != len(seg) {
			return nOut, wrapStream("CompressIndependent: Deflate did not consume a full segment")
		}
		nOut += segOut
		pos = end

		for c.PendingBytes() > 0 {
			_, drainOut, _, derr := c.Deflate(dst[nOut:], nil, FlushNone)
			if derr != nil {
				return nOut, derr
			}
			if drainOut == 0 {
				return nOut, wrapBuf("CompressIndependent: dst too small to drain a flush")
			}
			nOut += drainOut
		}

		if last || streamEnd {
			break
		}
	}
	return nOut, nil
}

// DecompressIndependent decompresses src, recovering past a corrupted
// segment by scanning for the next sync marker instead of failing the
// whole payload (§4.7 "Decompression driver", §8 Testable Property seed
// 5). It loops calling d.Decompress with final=true (src is assumed to
// hold the entire remaining compressed payload, matching the "loop
// calling inflate with FINISH" contract), and on ErrDataError switches to
// d.Sync to find the next recoverable block.
//
// The returned error is ErrDataError if any segment was unrecoverable or
// any corruption was skipped over, even when later segments decoded
// cleanly; output already produced is never rolled back. A caller that
// gets a non-nil error back should still treat dst[:nOut] as the best
// recovered output.
func (dr *Driver) DecompressIndependent(d *Decompressor, dst, src []byte) (nOut int, err error) {
	pos := 0
	hadError := false

	maxIter := len(src) + len(dst) + 8
	for iter := 0; ; iter++ {
		if iter > maxIter {
			return nOut, wrapStream("DecompressIndependent: iteration bound exceeded")
		}
		if pos >= len(src) && nOut >= len(dst) {
			break
		}

		nIn, n, streamEnd, derr := d.Decompress(dst[nOut:], src[pos:], true)
		pos += nIn
		nOut += n

		if derr == nil {
			if streamEnd {
				break
			}
			if nIn == 0 && n == 0 {
				// Made no progress with no error and no stream end: both
				// buffers must be exhausted (checked above) or stuck.
				return nOut, wrapBuf("DecompressIndependent: no progress")
			}
			continue
		}

		if !errors.Is(derr, ErrDataError) {
			return nOut, derr
		}

		hadError = true
		consumed, found := d.Sync(src[pos:])
		pos += consumed
		if !found {
			break
		}
	}

	if hadError {
		return nOut, wrapData("DecompressIndependent: one or more segments were unrecoverable")
	}
	return nOut, nil
}
