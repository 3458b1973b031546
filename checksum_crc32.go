// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// crc32Table is the standard CRC-32 table for polynomial 0xEDB88320
// (LSB-first), per RFC 1952 §8. Built once at package init via
// buildCRC32Table rather than shipped as a 1024-byte literal, mirroring
// the "compile-time constant tables" design note of §9 for the other
// static tables while keeping this one generated instead of transcribed
// by hand (less room for a transcription bug in a 256-entry table).
var crc32Table = buildCRC32Table()

const crc32Polynomial = 0xEDB88320

func buildCRC32Table() [256]uint32 {
	var table [256]uint32
	for i := range table {
		c := uint32(i)
		for range 8 {
			if c&1 != 0 {
				c = crc32Polynomial ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		table[i] = c
	}
	return table
}

// crc32Update folds span into the running CRC-32 value crc (use ^0 i.e.
// 0xFFFFFFFF complemented to 0 as the initial "no data" value, matching
// the RFC 1952 convention of keeping the running value pre-complemented
// between calls and complementing only at the boundaries).
func crc32Update(crc uint32, span []byte) uint32 {
	crc = ^crc
	for _, b := range span {
		crc = crc32Table[byte(crc)^b] ^ (crc >> 8)
	}
	return ^crc
}

// CRC32 computes the CRC-32 checksum of data in one call.
func CRC32(data []byte) uint32 {
	return crc32Update(0, data)
}
