// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// dynamicTrees holds the two trees (literal/length and distance) built for
// one block, plus the derived bit-length tree used to transmit their code
// lengths compactly (§4.3 "Emit"). Every slice is backed by the
// compressor's pool, sized once at construction.
type dynamicTrees struct {
	litLens   []uint
	litCodes  []uint16
	distLens  []uint
	distCodes []uint16

	blLens  [blCodesSize]uint
	blCodes [blCodesSize]uint16

	// rle holds the RLE-encoded (symbol, extra) stream produced by
	// scanLengths for both trees concatenated, consumed twice: once to
	// accumulate bl frequencies, once to actually emit.
	rleSym   []int
	rleExtra []uint32
	rleBits  []uint
	rleLen   int
}

func newDynamicTrees(p *pool) (*dynamicTrees, error) {
	t := &dynamicTrees{}
	var err error
	if t.litLens, err = allocTyped[uint](p, maxLiteralSyms); err != nil {
		return nil, err
	}
	if t.litCodes, err = allocTyped[uint16](p, maxLiteralSyms); err != nil {
		return nil, err
	}
	if t.distLens, err = allocTyped[uint](p, distTreeSize); err != nil {
		return nil, err
	}
	if t.distCodes, err = allocTyped[uint16](p, distTreeSize); err != nil {
		return nil, err
	}
	// Worst case is one RLE item per transmitted code length: litCodes
	// (up to 286 used symbols) + distCodes (up to 30).
	maxItems := maxLiteralSyms + distTreeSize
	if t.rleSym, err = allocTyped[int](p, maxItems); err != nil {
		return nil, err
	}
	if t.rleExtra, err = allocTyped[uint32](p, maxItems); err != nil {
		return nil, err
	}
	if t.rleBits, err = allocTyped[uint](p, maxItems); err != nil {
		return nil, err
	}
	return t, nil
}

// build computes canonical codes for the literal/length and distance trees
// from their already-built lengths (huffmanScratch.buildLengths output,
// copied in by the caller into t.litLens[:litCount]/t.distLens[:distCount]
// beforehand), then scans both length sequences into the RLE item stream
// and builds the bit-length tree over it.
func (t *dynamicTrees) build(litCount, distCount int, scratch *huffmanScratch) {
	assignCanonicalCodes(t.litLens[:litCount], maxBits, t.litCodes[:litCount])
	assignCanonicalCodes(t.distLens[:distCount], maxBits, t.distCodes[:distCount])

	t.rleLen = 0
	t.scanLengths(t.litLens[:litCount])
	t.scanLengths(t.distLens[:distCount])

	var blFreq [blCodesSize]uint32
	for i := 0; i < t.rleLen; i++ {
		blFreq[t.rleSym[i]]++
	}

	lens := scratch.buildLengths(blFreq[:], maxBLBits)
	copy(t.blLens[:], lens)
	assignCanonicalCodes(t.blLens[:], maxBLBits, t.blCodes[:])
}

// scanLengths appends the RLE encoding of one tree's length sequence
// (RFC 1951 §3.2.7): literal code-length values 0..18 pass through as-is
// except that runs are compressed via 16 (repeat previous 3-6 times, 2
// extra bits), 17 (repeat zero 3-10 times, 3 extra bits) and 18 (repeat
// zero 11-138 times, 7 extra bits).
func (t *dynamicTrees) scanLengths(lens []uint) {
	n := len(lens)
	i := 0
	for i < n {
		curLen := lens[i]
		origRun := 1
		for i+origRun < n && lens[i+origRun] == curLen {
			origRun++
		}
		runLen := origRun

		if curLen == 0 {
			for runLen >= 11 {
				chunk := runLen
				if chunk > 138 {
					chunk = 138
				}
				t.emitRLE(repeatZero11To138, uint32(chunk-11), 7)
				runLen -= chunk
			}
			for runLen >= 3 {
				chunk := runLen
				if chunk > 10 {
					chunk = 10
				}
				t.emitRLE(repeatZero3To10, uint32(chunk-3), 3)
				runLen -= chunk
			}
			for runLen > 0 {
				t.emitRLE(int(curLen), 0, 0)
				runLen--
			}
		} else {
			t.emitRLE(int(curLen), 0, 0)
			runLen--
			// The value just emitted is now "the previous code length",
			// so any further repeats in this run can use code 16.
			for runLen >= 3 {
				chunk := runLen
				if chunk > 6 {
					chunk = 6
				}
				t.emitRLE(repeat3To6, uint32(chunk-3), 2)
				runLen -= chunk
			}
			for runLen > 0 {
				t.emitRLE(int(curLen), 0, 0)
				runLen--
			}
		}

		i += origRun
	}
}

// emitRLE appends one (symbol, extra, extraBits) item to the RLE stream.
func (t *dynamicTrees) emitRLE(sym int, extra uint32, extraBits uint) {
	t.rleSym[t.rleLen] = sym
	t.rleExtra[t.rleLen] = extra
	t.rleBits[t.rleLen] = extraBits
	t.rleLen++
}

// hclen returns the number of bit-length codes to transmit: RFC 1951
// requires at least 4, trimmed from 19 by dropping trailing zero entries
// in blOrder transmission order.
func (t *dynamicTrees) hclen() int {
	n := blCodesSize
	for n > 4 && t.blLens[blOrder[n-1]] == 0 {
		n--
	}
	return n
}

// emitHeader writes the dynamic-block header (HLIT, HDIST, HCLEN, the
// bit-length-tree code lengths, then the RLE-encoded literal/distance
// length sequences) to w, per RFC 1951 §3.2.7.
func (t *dynamicTrees) emitHeader(w *bitWriter, litCount, distCount int) {
	hclen := t.hclen()
	w.send(uint32(litCount-257), 5)
	w.send(uint32(distCount-1), 5)
	w.send(uint32(hclen-4), 4)

	for i := 0; i < hclen; i++ {
		w.send(uint32(t.blLens[blOrder[i]]), 3)
	}

	for i := 0; i < t.rleLen; i++ {
		sym := t.rleSym[i]
		w.send(uint32(t.blCodes[sym]), t.blLens[sym])
		if t.rleBits[i] > 0 {
			w.send(t.rleExtra[i], t.rleBits[i])
		}
	}
}

// dynamicHeaderBits returns the exact bit cost of emitHeader's output,
// used by deflate_block.go to compare dynamic-tree cost against static
// and stored encodings before committing to a block type (§4.3 "choose
// the cheapest of the three encodings").
func (t *dynamicTrees) dynamicHeaderBits() uint {
	bits := uint(5 + 5 + 4)
	bits += uint(t.hclen()) * 3
	for i := 0; i < t.rleLen; i++ {
		sym := t.rleSym[i]
		bits += t.blLens[sym] + t.rleBits[i]
	}
	return bits
}
