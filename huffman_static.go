// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// RFC 1951 §3.2.5 length/distance base tables. These are the "global
// mutable tables" §9 calls out (static_ltree, static_dtree, distfix,
// lenfix, _dist_code, _length_code, bl_order, base_length, base_dist);
// per §9 they are read-only RFC-derived constants, shipped as compile-time
// tables, with no locking needed. The two bulky lookup tables that zlib
// historically hand-unrolls to 256/512-entry flat arrays (_length_code,
// _dist_code) are instead computed by a small search over these base
// tables (lengthCodeFor / distCodeFor below) — fewer places to transcribe
// a constant wrong, same result.

const (
	literalTreeSize  = 286 // 256 literals + EOB(256) + 29 length codes
	maxLiteralSyms   = 288 // literal/length alphabet size incl. 2 unused codes
	distTreeSize     = 30
	blCodesSize      = 19
	maxBits          = 15 // MAX_BITS for data trees
	maxBLBits        = 7  // max length for the bit-length tree
	endBlock         = 256
	lengthCodesStart = 257
	repeat3To6       = 16
	repeatZero3To10  = 17
	repeatZero11To138 = 18
)

// lengthBase/lengthExtra are indexed by (length-code - lengthCodesStart),
// 0..28; lengthBase[i] is the smallest match length that code encodes,
// lengthExtra[i] the number of extra bits that follow.
var lengthBase = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtra = [29]uint{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// distBase/distExtra are indexed by distance code 0..29.
var distBase = [30]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distExtra = [30]uint{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// blOrder is the permutation in which bit-length-tree code lengths are
// transmitted (§4.3 "Emit"), RFC 1951 §3.2.7.
var blOrder = [blCodesSize]int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

// lengthCodeFor returns the length-code symbol (257..285) and the extra
// bits value for a match length in [3,258].
func lengthCodeFor(length int) (sym int, extra uint32, extraBits uint) {
	assertion(length >= minMatch && length <= maxMatch, "lengthCodeFor: length out of range")
	// Linear scan is fine: 29 entries, called once per emitted match.
	idx := 0
	for i := 1; i < len(lengthBase); i++ {
		if lengthBase[i] > length {
			break
		}
		idx = i
	}
	sym = lengthCodesStart + idx
	extra = uint32(length - lengthBase[idx])
	extraBits = lengthExtra[idx]
	return
}

// distCodeFor returns the distance-code symbol (0..29) and extra bits
// value for a match distance in [1,32768].
func distCodeFor(dist int) (sym int, extra uint32, extraBits uint) {
	assertion(dist >= 1 && dist <= 1<<15, "distCodeFor: distance out of range")
	idx := 0
	for i := 1; i < len(distBase); i++ {
		if distBase[i] > dist {
			break
		}
		idx = i
	}
	sym = idx
	extra = uint32(dist - distBase[idx])
	extraBits = distExtra[idx]
	return
}

// staticLTreeCodes/staticLTreeLens and staticDTreeCodes/staticDTreeLens
// are the fixed Huffman tables of RFC 1951 §3.2.6, computed once at
// package init by the same canonical-code assignment routine used for
// dynamic trees (§4.3 "Static trees" — "compiled-in constants").
var (
	staticLTreeLens  [maxLiteralSyms]uint
	staticLTreeCodes [maxLiteralSyms]uint16
	staticDTreeLens  [distTreeSize]uint
	staticDTreeCodes [distTreeSize]uint16
)

// fixedLitTable/fixedDistTable are the flat decode-table counterparts of
// staticLTreeLens/staticDTreeLens, built once at init so BTYPE=01 (fixed
// Huffman) blocks never need per-Decompressor table storage. 9 and 5 bits
// are the true maximum code lengths of the fixed trees (not the general
// 15-bit worst case), keeping these tables small.
const (
	fixedLitTableBits  = 9
	fixedDistTableBits = 5
)

var (
	fixedLitTableLen  [1 << fixedLitTableBits]uint8
	fixedLitTableSym  [1 << fixedLitTableBits]int32
	fixedDistTableLen [1 << fixedDistTableBits]uint8
	fixedDistTableSym [1 << fixedDistTableBits]int32

	fixedLitTable  decodeTable
	fixedDistTable decodeTable
)

func init() {
	for i := 0; i < maxLiteralSyms; i++ {
		switch {
		case i < 144:
			staticLTreeLens[i] = 8
		case i < 256:
			staticLTreeLens[i] = 9
		case i < 280:
			staticLTreeLens[i] = 7
		default:
			staticLTreeLens[i] = 8
		}
	}
	for i := 0; i < distTreeSize; i++ {
		staticDTreeLens[i] = 5
	}

	assignCanonicalCodes(staticLTreeLens[:], maxBits, staticLTreeCodes[:])
	assignCanonicalCodes(staticDTreeLens[:], maxBits, staticDTreeCodes[:])

	var initCodesScratch [maxLiteralSyms]uint16
	fixedLitTable = buildDecodeTable(staticLTreeLens[:], fixedLitTableBits, fixedLitTableLen[:], fixedLitTableSym[:], initCodesScratch[:])
	fixedDistTable = buildDecodeTable(staticDTreeLens[:], fixedDistTableBits, fixedDistTableLen[:], fixedDistTableSym[:], initCodesScratch[:])
}
