// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// Deflate compresses as much of src as the configured strategy and flush
// mode allow, appending compressed output to dst and returning the
// number of input bytes consumed, the number of output bytes appended,
// and whether the stream has now ended (FlushFinish fully drained).
//
// Deflate never allocates (§3): dst must already have room, or the
// caller must call again after growing/draining it — PendingBytes
// reports how much compressed output is still buffered internally when
// dst ran out of room before a block boundary.
func (c *Compressor) Deflate(dst []byte, src []byte, flush Flush) (nIn int, nOut int, streamEnd bool, err error) {
	if c.status == compStatusDone {
		nOut = c.drain(dst)
		return 0, nOut, c.PendingBytes() == 0, nil
	}

	if c.status == compStatusHeader {
		c.writeHeader()
		c.status = compStatusBusy
	}

	nOut += c.drain(dst[nOut:])

	for len(src) > 0 {
		n := c.win.fill(src)
		if n == 0 {
			break
		}
		c.updateChecksum(src[:n])
		src = src[n:]
		nIn += n

		c.runStrategy(false)
		nOut += c.drain(dst[nOut:])
	}

	switch flush {
	case FlushNone:
		// nothing further: partial blocks stay buffered until more input
		// or an explicit flush arrives.
	case FlushBlock:
		c.runStrategy(true)
		c.flushBlock(false)
		nOut += c.drain(dst[nOut:])
	case FlushPartial, FlushSync:
		c.runStrategy(true)
		c.flushBlock(false)
		c.emitStoredBlock(nil, false)
		nOut += c.drain(dst[nOut:])
	case FlushFull:
		c.runStrategy(true)
		c.flushBlock(false)
		c.emitStoredBlock(nil, false)
		for i := range c.win.head {
			c.win.head[i] = -1
		}
		if c.win.lookahead == 0 {
			c.win.strStart = 0
			c.win.blockStart = 0
		}
		nOut += c.drain(dst[nOut:])
	case FlushFinish:
		c.runStrategy(true)
		c.flushBlock(true)
		c.writeTrailer()
		c.status = compStatusDone
		nOut += c.drain(dst[nOut:])
		streamEnd = c.PendingBytes() == 0
	}

	return nIn, nOut, streamEnd, nil
}

// runStrategy drives the configured block-assembly strategy over
// whatever lookahead the window currently holds. flushNow tells the
// strategy function to consume the tail of the input even though it is
// shorter than a full lookahead window (used at flush boundaries and at
// end of stream).
func (c *Compressor) runStrategy(flushNow bool) {
	switch c.params.Strategy {
	case StrategyHuffmanOnly:
		c.deflateLiteralsOnly(flushNow)
	case StrategyRLE:
		c.deflateRLE(flushNow)
	default:
		// Default/Filtered/Fixed all use the normal match finder; only
		// the tree selection in flushBlock distinguishes Fixed, and
		// Filtered's reduced lazy matching is approximated by level's
		// own maxLazy (§4.5 open question: exact Filtered tuning left
		// to the level table rather than a second code path).
		if c.params.Level <= 3 {
			c.deflateFast(flushNow)
		} else {
			c.deflateSlow(flushNow)
		}
	}
}

// writeHeader emits the wrap-specific header (§4.5 "Header emission")
// directly into the pending buffer.
func (c *Compressor) writeHeader() {
	switch c.wrap {
	case WrapZlib:
		emitZlibHeader(&c.bw, c.win.size2Bits(), c.params.Level, c.dictID)
	case WrapGzip:
		emitGzipHeader(&c.bw, c.gzipHeader, c.params.Level)
	case WrapRaw:
		// no framing
	}
	c.headerWritten = true
}

// writeTrailer emits the wrap-specific trailer (zlib: big-endian
// Adler-32; gzip: little-endian CRC-32 + little-endian ISIZE mod 2^32).
func (c *Compressor) writeTrailer() {
	switch c.wrap {
	case WrapZlib:
		c.bw.writeByte(byte(c.adler >> 24))
		c.bw.writeByte(byte(c.adler >> 16))
		c.bw.writeByte(byte(c.adler >> 8))
		c.bw.writeByte(byte(c.adler))
	case WrapGzip:
		c.bw.writeByte(byte(c.crc))
		c.bw.writeByte(byte(c.crc >> 8))
		c.bw.writeByte(byte(c.crc >> 16))
		c.bw.writeByte(byte(c.crc >> 24))
		isize := uint32(c.win.totalIn)
		c.bw.writeByte(byte(isize))
		c.bw.writeByte(byte(isize >> 8))
		c.bw.writeByte(byte(isize >> 16))
		c.bw.writeByte(byte(isize >> 24))
	case WrapRaw:
	}
}

func (c *Compressor) updateChecksum(span []byte) {
	switch c.wrap {
	case WrapZlib:
		c.adler = adler32Update(c.adler, span)
	case WrapGzip:
		c.crc = crc32Update(c.crc, span)
	}
}

// drain copies as much buffered compressed output into dst as fits,
// advancing pendingPos; once everything written so far has been drained
// it rewinds the pending buffer back to the start so bitWriter has room
// to keep writing (§3 "bounded, reusable" pending buffer).
func (c *Compressor) drain(dst []byte) int {
	avail := c.bw.pendingLen - c.pendingPos
	n := avail
	if n > len(dst) {
		n = len(dst)
	}
	if n > 0 {
		copy(dst, c.bw.pending[c.pendingPos:c.pendingPos+n])
		c.pendingPos += n
	}
	if c.pendingPos == c.bw.pendingLen {
		c.bw.pendingLen = 0
		c.pendingPos = 0
	} else if c.pendingPos > 0 {
		// Compact so the bit writer always has the full buffer ahead of
		// it, even when dst could not take everything this round.
		remaining := c.bw.pendingLen - c.pendingPos
		copy(c.bw.pending, c.bw.pending[c.pendingPos:c.bw.pendingLen])
		c.bw.pendingLen = remaining
		c.pendingPos = 0
	}
	return n
}

// size2Bits reports the windowBits value NewCompressor was constructed
// with, for zlib header emission.
func (w *window) size2Bits() int {
	bits := 0
	for sz := w.size; sz > 1; sz >>= 1 {
		bits++
	}
	return bits
}
