// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// assignCanonicalCodes implements §4.3 "Assign canonical codes": given
// per-symbol code lengths, compute the first code at each length
// (first[len+1] = (first[len]+count[len])*2), assign codes in symbol
// order, and bit-reverse each to the LSB-first wire order DEFLATE uses.
// Codes are written into the caller-owned dst (len(dst) == len(lens))
// rather than returned, so callers on the hot compress/decompress path
// never trigger an allocation here.
func assignCanonicalCodes(lens []uint, maxLen uint, dst []uint16) {
	var blCount [maxBits + 2]uint
	for _, l := range lens {
		if l > 0 {
			blCount[l]++
		}
	}

	var nextCode [maxBits + 2]uint
	code := uint(0)
	for bits := uint(1); bits <= maxLen; bits++ {
		code = (code + blCount[bits-1]) << 1
		nextCode[bits] = code
	}

	if blCount[maxLen] > 0 {
		// Code-space-exhausted assertion from §4.3: first[MAX_BITS] +
		// count[MAX_BITS] - 1 == 2^MAX_BITS - 1.
		assertion(nextCode[maxLen]+blCount[maxLen]-1 == (uint(1)<<maxLen)-1,
			"assignCanonicalCodes: code space not fully consumed")
	}

	for sym, l := range lens {
		if l == 0 {
			continue
		}
		c := nextCode[l]
		nextCode[l]++
		dst[sym] = reverseBits(uint16(c), uint(l))
	}
}

// reverseBits reverses the low n bits of v (n <= 16), used to convert the
// MSB-first codes from assignCanonicalCodes into DEFLATE's LSB-first wire
// order.
func reverseBits(v uint16, n uint) uint16 {
	var r uint16
	for range n {
		r = (r << 1) | (v & 1)
		v >>= 1
	}
	return r
}
