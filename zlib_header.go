// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// zlib (RFC 1950) CMF/FLG header: a 2-byte value divisible by 31, with
// the compression method/info in CMF and a preset-dictionary flag plus
// compression-level hint in FLG.
const (
	zlibCMDeflate  = 8
	zlibMaxCInfo   = 7 // windowBits-8, capped per RFC 1950 note
	zlibFlagDict   = 1 << 5
	zlibFlagLevelShift = 6
)

// emitZlibHeader writes the 2-byte zlib header (and, if dictID != 0, the
// 4-byte big-endian dictionary id) directly to w (§4.5 "Header
// emission").
func emitZlibHeader(w *bitWriter, windowBits int, level int, dictID uint32) {
	cinfo := windowBits - 8
	if cinfo > zlibMaxCInfo {
		cinfo = zlibMaxCInfo
	}
	cmf := byte(cinfo<<4) | zlibCMDeflate

	var flevel byte
	switch {
	case level < 2:
		flevel = 0
	case level < 6:
		flevel = 1
	case level == 6:
		flevel = 2
	default:
		flevel = 3
	}
	flg := flevel << zlibFlagLevelShift
	if dictID != 0 {
		flg |= zlibFlagDict
	}

	check := uint16(cmf)<<8 | uint16(flg)
	if rem := check % 31; rem != 0 {
		flg += byte(31 - rem)
	}

	w.writeByte(cmf)
	w.writeByte(flg)
	if dictID != 0 {
		w.writeByte(byte(dictID >> 24))
		w.writeByte(byte(dictID >> 16))
		w.writeByte(byte(dictID >> 8))
		w.writeByte(byte(dictID))
	}
}

// zlibHeaderParser parses the 2-byte header (and optional 4-byte dictid)
// incrementally, mirroring gzipHeaderParser's resume-across-calls shape.
type zlibHeaderParser struct {
	stage  int
	cmf    byte
	flg    byte
	dictID uint32
	dictGot int
	needDict bool
}

const (
	zlStageCMF = iota
	zlStageFLG
	zlStageDictID
	zlStageDone
)

func (z *zlibHeaderParser) init() {
	z.stage = zlStageCMF
	z.dictID = 0
	z.dictGot = 0
	z.needDict = false
}

func (z *zlibHeaderParser) step(r *bitReader) (done bool, err error) {
	for z.stage != zlStageDone {
		switch z.stage {
		case zlStageCMF:
			b, ok := r.takeRawByte()
			if !ok {
				return false, nil
			}
			z.cmf = b
			if b&0x0F != zlibCMDeflate {
				return false, wrapData("zlib: unsupported compression method")
			}
			z.stage = zlStageFLG
		case zlStageFLG:
			b, ok := r.takeRawByte()
			if !ok {
				return false, nil
			}
			z.flg = b
			if (uint16(z.cmf)<<8|uint16(z.flg))%31 != 0 {
				return false, wrapData("zlib: header checksum mismatch")
			}
			z.needDict = z.flg&zlibFlagDict != 0
			if z.needDict {
				z.stage = zlStageDictID
			} else {
				z.stage = zlStageDone
			}
		case zlStageDictID:
			for z.dictGot < 4 {
				b, ok := r.takeRawByte()
				if !ok {
					return false, nil
				}
				z.dictID = z.dictID<<8 | uint32(b)
				z.dictGot++
			}
			z.stage = zlStageDone
		}
	}
	return true, nil
}
