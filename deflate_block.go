// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// tallyLit records one literal byte into the current block's symbol
// buffer and frequency table (§4.5 "tally").
func (c *Compressor) tallyLit(b byte) {
	c.lBuf[c.symCount] = b
	c.dBuf[c.symCount] = 0
	c.symCount++
	c.litFreq[b]++
}

// tallyMatch records one (length, distance) match. Returns true if the
// symbol buffer is now full and the block should be flushed.
func (c *Compressor) tallyMatch(length, dist int) bool {
	c.lBuf[c.symCount] = byte(length - minMatch)
	c.dBuf[c.symCount] = uint16(dist)
	c.symCount++

	lSym, _, _ := lengthCodeFor(length)
	c.litFreq[lSym]++
	dSym, _, _ := distCodeFor(dist)
	c.distFreq[dSym]++

	return c.symCount == c.litBufSize-1
}

// blockInput returns the bytes covered by the pending block (from
// win.blockStart up to win.strStart), used for the STORED encoding. It
// returns nil once a window slide has moved blockStart below zero: the
// start of the block is gone, and flushBlock then emits a Huffman block.
func (c *Compressor) blockInput() []byte {
	if c.win.blockStart < 0 {
		return nil
	}
	return c.win.buf[c.win.blockStart:c.win.strStart]
}

// emitStoredBlock writes a STORED block (RFC 1951 §3.2.4) directly from
// the window, bypassing Huffman coding entirely. Used both for level 0
// and whenever a stored block is cheaper than any Huffman encoding.
func (c *Compressor) emitStoredBlock(data []byte, final bool) {
	// RFC 1951 §3.2.4 caps a single stored block at 65535 bytes; larger
	// spans are split into back-to-back stored blocks, each with its own
	// 1-bit BFINAL + 2-bit BTYPE header. Only the very last chunk of the
	// very last (final) block carries BFINAL=1.
	for {
		chunk := data
		more := false
		if len(chunk) > 0xFFFF {
			chunk = chunk[:0xFFFF]
			more = true
		}

		finalBit := uint32(0)
		if final && !more {
			finalBit = 1
		}
		c.bw.send(finalBit, 1)
		c.bw.send(0, 2) // BTYPE = 00
		c.bw.alignByte()

		n := len(chunk)
		c.bw.writeByte(byte(n))
		c.bw.writeByte(byte(n >> 8))
		c.bw.writeByte(byte(^n))
		c.bw.writeByte(byte(^n >> 8))
		c.bw.writeBytes(chunk)

		data = data[n:]
		if len(data) == 0 {
			return
		}
	}
}

// compressedBlockBits returns the bit cost of emitting the current
// symbol buffer with the given literal/distance code-length tables
// (static or dynamic), used to compare encodings (§4.3 "choose the
// cheapest").
func (c *Compressor) compressedBlockBits(litLens []uint, distLens []uint) uint {
	bits := uint(0)
	for i := 0; i < c.symCount; i++ {
		dist := c.dBuf[i]
		if dist == 0 {
			bits += litLens[c.lBuf[i]]
			continue
		}
		length := int(c.lBuf[i]) + minMatch
		lSym, _, lExtra := lengthCodeFor(length)
		bits += litLens[lSym] + lExtra
		dSym, _, dExtra := distCodeFor(int(dist))
		bits += distLens[dSym] + dExtra
	}
	bits += litLens[endBlock]
	return bits
}

// emitCompressedBlock writes BTYPE 01 (fixed) or 10 (dynamic) plus the
// symbol stream, using the supplied code tables.
func (c *Compressor) emitCompressedBlock(final bool, dynamic bool, litLens []uint, litCodes []uint16, distLens []uint, distCodes []uint16) {
	finalBit := uint32(0)
	if final {
		finalBit = 1
	}
	c.bw.send(finalBit, 1)
	if dynamic {
		c.bw.send(2, 2)
	} else {
		c.bw.send(1, 2)
	}
	if dynamic {
		litCount := len(litLens)
		if litCount < 257 {
			litCount = 257
		}
		distCount := len(distLens)
		if distCount < 1 {
			distCount = 1
		}
		c.trees.emitHeader(&c.bw, litCount, distCount)
	}

	for i := 0; i < c.symCount; i++ {
		dist := c.dBuf[i]
		if dist == 0 {
			sym := c.lBuf[i]
			c.bw.send(uint32(litCodes[sym]), litLens[sym])
			continue
		}
		length := int(c.lBuf[i]) + minMatch
		lSym, lExtra, lExtraBits := lengthCodeFor(length)
		c.bw.send(uint32(litCodes[lSym]), litLens[lSym])
		if lExtraBits > 0 {
			c.bw.send(lExtra, lExtraBits)
		}
		dSym, dExtra, dExtraBits := distCodeFor(int(dist))
		c.bw.send(uint32(distCodes[dSym]), distLens[dSym])
		if dExtraBits > 0 {
			c.bw.send(dExtra, dExtraBits)
		}
	}
	c.bw.send(uint32(litCodes[endBlock]), litLens[endBlock])
}

// flushBlock chooses the cheapest of stored/static/dynamic encodings for
// the bytes accumulated since win.blockStart and emits it, then resets
// the per-block symbol buffer and frequency tables (§4.3, §4.5).
func (c *Compressor) flushBlock(final bool) {
	data := c.blockInput()

	if c.params.Level == 0 && data != nil {
		c.emitStoredBlock(data, final)
		c.advanceBlockStart()
		return
	}

	storedBits := uint(3) + uint(len(data)+4)*8
	// §3.2.4's 65535-byte split means the true stored cost is a little
	// higher for large blocks; approximated here by rounding up, which
	// only ever makes the stored path look (correctly) less attractive.
	if len(data) > 0xFFFF {
		storedBits += uint(len(data)/0xFFFF) * 40
	}

	if c.symCount == 0 {
		c.emitStoredBlock(data, final)
		c.advanceBlockStart()
		return
	}

	staticBits := uint(3) + c.compressedBlockBits(staticLTreeLens[:], staticDTreeLens[:])

	litCount := maxLiteralSyms
	for litCount > 257 && c.litFreq[litCount-1] == 0 {
		litCount--
	}
	distCount := distTreeSize
	for distCount > 1 && c.distFreq[distCount-1] == 0 {
		distCount--
	}
	copy(c.trees.litLens[:litCount], c.scratch.buildLengths(c.litFreq[:litCount], maxBits))
	copy(c.trees.distLens[:distCount], c.scratch.buildLengths(c.distFreq[:distCount], maxBits))
	c.trees.build(litCount, distCount, c.scratch)
	dynamicBits := uint(3) + c.trees.dynamicHeaderBits() +
		c.compressedBlockBits(c.trees.litLens[:litCount], c.trees.distLens[:distCount])

	switch {
	case c.params.Strategy != StrategyFixed && storedBits <= staticBits && storedBits <= dynamicBits && len(data) > 0:
		c.emitStoredBlock(data, final)
	case c.params.Strategy == StrategyFixed || staticBits <= dynamicBits:
		c.emitCompressedBlock(final, false, staticLTreeLens[:], staticLTreeCodes[:], staticDTreeLens[:], staticDTreeCodes[:])
	default:
		c.emitCompressedBlock(final, true, c.trees.litLens[:litCount], c.trees.litCodes[:litCount], c.trees.distLens[:distCount], c.trees.distCodes[:distCount])
	}

	c.advanceBlockStart()
}

// advanceBlockStart moves win.blockStart up to win.strStart and resets
// the per-block symbol buffer and frequency tables for the next block.
func (c *Compressor) advanceBlockStart() {
	c.win.blockStart = c.win.strStart
	c.symCount = 0
	for i := range c.litFreq {
		c.litFreq[i] = 0
	}
	for i := range c.distFreq {
		c.distFreq[i] = 0
	}
	c.litFreq[endBlock] = 1
}
