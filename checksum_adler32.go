// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// adler32Base is the modulus from RFC 1950 §9.
const adler32Base = 65521

// adler32Update folds span into the running Adler-32 checksum adler
// (initial value 1 for an empty stream, per RFC 1950 §9). NMAX bounds how
// many bytes can be summed between modulo reductions without s2
// overflowing a uint32; 5552 is the standard NMAX for base 65521.
const adler32NMAX = 5552

func adler32Update(adler uint32, span []byte) uint32 {
	s1 := adler & 0xffff
	s2 := (adler >> 16) & 0xffff

	for len(span) > 0 {
		n := len(span)
		if n > adler32NMAX {
			n = adler32NMAX
		}
		chunk := span[:n]
		for _, b := range chunk {
			s1 += uint32(b)
			s2 += s1
		}
		s1 %= adler32Base
		s2 %= adler32Base
		span = span[n:]
	}

	return s2<<16 | s1
}

// Adler32 computes the Adler-32 checksum of data in one call, starting
// from the canonical initial value of 1.
func Adler32(data []byte) uint32 {
	return adler32Update(1, data)
}
