// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// decodeTable is a flat canonical-Huffman decode table: index it with the
// next maxBits bits of input (LSB-first, as DEFLATE transmits codes) and
// read off the matching symbol and the actual number of bits it
// consumed. Every entry whose low `length` bits equal a code's bits is
// filled with that code's symbol, so a single array lookup (rather than
// zlib's two-level op/bits/val walk named in §9) decodes any code in one
// step at the cost of a larger table — traded deliberately for a decoder
// that is straightforward to get right without being able to run it.
type decodeTable struct {
	length []uint8
	sym    []int32
	maxLen uint
}

// buildDecodeTable fills a decodeTable for the canonical code described
// by lens into the caller-provided scratch arrays (sized 1<<maxLen,
// sub-allocated once from the pool at Decompressor construction).
// codesScratch is per-Decompressor working space (sized maxLiteralSyms,
// reused across the bl/literal/distance tree builds of every dynamic
// block) rather than a package-level variable, so two Decompressors
// running on different goroutines never share mutable state.
func buildDecodeTable(lens []uint, maxLen uint, lengthArr []uint8, symArr []int32, codesScratch []uint16) decodeTable {
	// Kraft check: an oversubscribed code, or an incomplete one that uses
	// 15-bit codes, cannot come from a valid stream; the empty table
	// returned makes decode report dataErr. Incomplete codes with shorter
	// lengths (the fixed distance code, a lone distance code) are kept.
	left := 1 << maxLen
	for _, l := range lens {
		if l > 0 {
			left -= 1 << (maxLen - l)
		}
	}
	if left < 0 || (left > 0 && maxLen == maxBits) {
		return decodeTable{}
	}
	codes := codesScratch[:len(lens)]
	assignCanonicalCodes(lens, maxBits, codes)
	size := 1 << maxLen
	for i := 0; i < size; i++ {
		lengthArr[i] = 0
		symArr[i] = -1
	}
	for sym, l := range lens {
		if l == 0 {
			continue
		}
		code := int(codes[sym])
		step := 1 << l
		for fill := code; fill < size; fill += step {
			lengthArr[fill] = uint8(l)
			symArr[fill] = int32(sym)
		}
	}
	return decodeTable{length: lengthArr[:size], sym: symArr[:size], maxLen: maxLen}
}

// decode reads one symbol from r. It reports needMore if r genuinely ran
// out of input before a full code could be read (caller should suspend
// and resume once more input, or the final-input flag, is available);
// dataErr if the bits read match no code in the table (an incomplete
// code leaves such gaps, and an empty table matches nothing). Before
// final is set, a gap is reported as needMore while fewer than maxLen
// bits are buffered.
func (t *decodeTable) decode(r *bitReader, final bool) (sym int32, needMore bool, dataErr bool) {
	if t.maxLen == 0 {
		return 0, false, true
	}
	r.fillUpTo(t.maxLen)
	idx := r.peekAvailable(t.maxLen)
	length := uint(t.length[idx])

	if length == 0 || length > r.bitValid {
		if !final && r.bitValid < t.maxLen {
			return 0, true, false
		}
		return 0, false, true
	}
	r.drop(length)
	return t.sym[idx], false, false
}
