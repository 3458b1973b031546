// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// inflateMode enumerates the decoder's state machine (§4.6 "~30-mode
// state machine"), collapsed here to the states this implementation
// actually needs to distinguish; each is a suspend point the decoder can
// pause at when input runs out and resume at on the next call — the
// "explicit resume-at field" §9 calls out, replacing the original's
// goto-based resumption.
type inflateMode int

const (
	modeHead inflateMode = iota
	modeNeedDict
	modeBlockHeader
	modeStoredLen
	modeStoredCopy
	modeTableSizes
	modeCodeLengths
	modeLengths
	modeBuildTables
	modeMatch
	modeLenExtra
	modeDist
	modeDistExtra
	modeCopyMatch
	modeCheck
	modeDone
	modeBad
	modeSync
)

// Decompressor is the L6 DEFLATE decoder. Like Compressor, every slice it
// touches is sub-allocated once from the work buffer handed to
// NewDecompressor (§3).
type Decompressor struct {
	params Params
	wrap   WrapMode

	mode inflateMode

	win  []byte // history window, size 1<<windowBits
	wpos int    // next write position (circular)
	wfull bool  // true once the window has wrapped at least once

	br bitReader

	gz gzipHeaderParser
	zl zlibHeaderParser

	gzNameBuf, gzCommBuf, gzExtraBuf []byte

	blFinal   bool
	blType    uint32
	storedLen int
	storedHdrBuf [4]byte
	storedHdrGot int

	hlit, hdist, hclen int
	blLens             [blCodesSize]uint
	blLenIdx           int
	blTable            decodeTable
	blTableLen         []uint8
	blTableSym         []int32

	litLens       []uint
	distLens      []uint
	lenIdx        int
	prevSym       uint
	pendingRepSym int32

	litTable     decodeTable
	distTable    decodeTable
	litTableLen  []uint8
	litTableSym  []int32
	distTableLen []uint8
	distTableSym []int32
	codesScratch []uint16

	curSym       int32 // pending decoded literal/length symbol, -1 if none
	curDistSym   int32 // pending decoded distance symbol, -1 if none
	curLen       int
	curDist      int
	curExtraBits uint

	trailerBuf [8]byte
	trailerGot int

	// syncMatched is how many bytes of the 4-byte sync marker Sync has
	// matched so far, carried across calls so a marker straddling two
	// Sync calls' input spans is still found (§4.6 "Resynchronization").
	syncMatched int

	adler    uint32
	crc      uint32
	totalOut int64

	dictID uint32

	gzipHeaderOut GzipHeader

	lastErr error
	sticky  error
}

// DecompressWorkSize returns the bytes NewDecompressor needs from its
// work buffer (§6 "work buffer sizing").
func DecompressWorkSize(p Params) (int, error) {
	np, _, err := p.normalize()
	if err != nil {
		return 0, err
	}
	windowSize := 1 << np.WindowBits

	total := 0
	total += windowSize // history window
	total += 256 + 256 + 65535 // gzip name/comment/extra scratch buffers
	total += (1 << maxBLBits) * 5       // bl table (len+sym)
	total += (1 << maxBits) * 5         // lit table
	total += (1 << maxBits) * 5         // dist table
	total += maxLiteralSyms * 8         // litLens scratch
	total += distTreeSize * 8           // distLens scratch
	total += maxLiteralSyms * 2         // codesScratch
	return total, nil
}

// NewDecompressor constructs a Decompressor sub-allocating all state from
// work (at least DecompressWorkSize(params) bytes).
func NewDecompressor(work []byte, params Params) (*Decompressor, error) {
	np, wrap, err := params.normalize()
	if err != nil {
		return nil, err
	}
	need, err := DecompressWorkSize(params)
	if err != nil {
		return nil, err
	}
	if len(work) < need {
		return nil, wrapMem("NewDecompressor: work buffer too small")
	}

	p := newPool(work)
	d := &Decompressor{params: np, wrap: wrap}

	windowSize := 1 << np.WindowBits
	if d.win, err = p.allocBytes(windowSize); err != nil {
		return nil, err
	}
	if d.gzNameBuf, err = p.allocBytes(256); err != nil {
		return nil, err
	}
	if d.gzCommBuf, err = p.allocBytes(256); err != nil {
		return nil, err
	}
	if d.gzExtraBuf, err = p.allocBytes(65535); err != nil {
		return nil, err
	}
	if d.blTableLen, err = allocTyped[uint8](p, 1<<maxBLBits); err != nil {
		return nil, err
	}
	if d.blTableSym, err = allocTyped[int32](p, 1<<maxBLBits); err != nil {
		return nil, err
	}
	if d.litTableLen, err = allocTyped[uint8](p, 1<<maxBits); err != nil {
		return nil, err
	}
	if d.litTableSym, err = allocTyped[int32](p, 1<<maxBits); err != nil {
		return nil, err
	}
	if d.distTableLen, err = allocTyped[uint8](p, 1<<maxBits); err != nil {
		return nil, err
	}
	if d.distTableSym, err = allocTyped[int32](p, 1<<maxBits); err != nil {
		return nil, err
	}
	if d.litLens, err = allocTyped[uint](p, maxLiteralSyms); err != nil {
		return nil, err
	}
	if d.distLens, err = allocTyped[uint](p, distTreeSize); err != nil {
		return nil, err
	}
	if d.codesScratch, err = allocTyped[uint16](p, maxLiteralSyms); err != nil {
		return nil, err
	}

	d.reset()
	return d, nil
}

func (d *Decompressor) reset() {
	d.mode = modeHead
	d.wpos = 0
	d.wfull = false
	d.br.initBits()
	d.gz.init(d.gzNameBuf, d.gzCommBuf, d.gzExtraBuf)
	d.zl.init()
	d.adler = Adler32(nil)
	d.crc = CRC32(nil)
	d.totalOut = 0
	d.storedHdrGot = 0
	d.blLenIdx = 0
	d.lenIdx = 0
	d.prevSym = 0
	d.pendingRepSym = -1
	d.curSym = -1
	d.curDistSym = -1
	d.trailerGot = 0
	d.lastErr = nil
	d.sticky = nil
	d.syncMatched = 0
}

// SetDictionary primes the history window with a preset dictionary,
// required before resuming from ErrNeedDict (RFC 1950 §2.2) or simply to
// match the compressor's own preset dictionary (§9 supplemented
// feature).
func (d *Decompressor) SetDictionary(dict []byte) error {
	if d.mode != modeNeedDict && d.mode != modeHead {
		return wrapStream("SetDictionary: not awaiting a dictionary")
	}
	if d.wrap == WrapZlib && d.mode == modeNeedDict && Adler32(dict) != d.dictID {
		return wrapData("SetDictionary: dictionary id mismatch")
	}
	tail := dict
	if len(tail) > len(d.win) {
		tail = tail[len(tail)-len(d.win):]
	}
	copy(d.win, tail)
	d.wpos = len(tail) % len(d.win)
	d.wfull = len(tail) >= len(d.win)
	if d.mode == modeNeedDict {
		d.mode = modeBlockHeader
	}
	return nil
}

// DictID returns the Adler-32 dictionary id the zlib header requested,
// valid once Decompress has returned ErrNeedDict.
func (d *Decompressor) DictID() uint32 { return d.dictID }

// GzipHeader returns the gzip member header parsed so far; fields read
// before the header is fully parsed may be zero.
func (d *Decompressor) GzipHeader() GzipHeader { return d.gzipHeaderOut }

// windowAppend writes one decoded byte into the circular history window.
func (d *Decompressor) windowAppend(b byte) {
	d.win[d.wpos] = b
	d.wpos++
	if d.wpos == len(d.win) {
		d.wpos = 0
		d.wfull = true
	}
}

// windowLookback returns the byte written `dist` positions back; dist 1
// is the most recently written byte (dist in [1, len(win)]).
func (d *Decompressor) windowLookback(dist int) byte {
	idx := d.wpos - dist
	if idx < 0 {
		idx += len(d.win)
	}
	return d.win[idx]
}
