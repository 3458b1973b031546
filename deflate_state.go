// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// Compressor status values (§3 "Compression state" — the init/busy/finish
// progression that replaces zlib's implicit status field with named
// constants).
type compStatus int

const (
	compStatusHeader compStatus = iota
	compStatusBusy
	compStatusFinish
	compStatusDone
)

// Compressor is the L5 DEFLATE encoder. One instance holds all state for
// one stream; every byte it ever touches comes from the work buffer
// handed to NewCompressor, per §3's "caller-supplied contiguous work
// buffer" invariant — construction is the only place that calls into the
// pool.
type Compressor struct {
	params Params
	wrap   WrapMode

	win     *window
	bw      bitWriter
	scratch *huffmanScratch
	trees   *dynamicTrees

	lBuf       []byte   // literal byte, or (length-minMatch) when dBuf != 0
	dBuf       []uint16 // 0 == literal; else match distance
	litBufSize int
	symCount   int

	litFreq  [maxLiteralSyms]uint32
	distFreq [distTreeSize]uint32

	pending    []byte
	pendingPos int // bytes [0,pendingPos) already drained by the caller

	status        compStatus
	headerWritten bool

	adler uint32
	crc   uint32

	gzipHeader  *GzipHeader
	dictID      uint32
	lastLit     int // literal count at the last flush, for BLOCK flush bookkeeping
	blockStart0 bool
}

// CompressWorkSize returns the number of bytes NewCompressor needs from
// its work buffer for the given parameters (§6 "work buffer sizing").
// The caller owns allocating (or stack-reserving) a buffer this size;
// NewCompressor performs no allocation of its own beyond sub-slicing it.
func CompressWorkSize(p Params) (int, error) {
	np, _, err := p.normalize()
	if err != nil {
		return 0, err
	}
	windowSize := 1 << np.WindowBits
	hashSize := 1 << minU(uint(np.MemLevel)+7, 15)
	litBufSize := 1 << (np.MemLevel + 6)

	total := 0
	total += 2 * windowSize                    // window.buf
	total += hashSize * 4                      // window.head ([]int32)
	total += windowSize * 4                    // window.prev ([]int32)
	total += litBufSize * 4                    // pending buffer
	total += litBufSize                        // lBuf
	total += litBufSize * 2                    // dBuf ([]uint16)
	total += huffmanMaxNodes * (8 + 4 + 4 + 4 + 4 + 4 + 4) // huffmanScratch arrays
	total += maxLiteralSyms * (8 + 4)          // scratch.lens + scratch.order (uint+int32)
	total += maxLiteralSyms*(8+2) + distTreeSize*(8+2) // dynamicTrees lens/codes
	total += (maxLiteralSyms + distTreeSize) * (8 + 4 + 8) // dynamicTrees rle arrays

	return total, nil
}

func minU(a, b uint) uint {
	if a < b {
		return a
	}
	return b
}

// NewCompressor constructs a Compressor sub-allocating all state from
// work (which must be at least CompressWorkSize(params) bytes, per §3).
func NewCompressor(work []byte, params Params) (*Compressor, error) {
	np, wrap, err := params.normalize()
	if err != nil {
		return nil, err
	}
	if np.Strategy == StrategyHuffmanOnly || np.Strategy == StrategyRLE {
		// both are handled without the match finder but still need the
		// window buffer for history.
	}

	need, err := CompressWorkSize(params)
	if err != nil {
		return nil, err
	}
	if len(work) < need {
		return nil, wrapMem("NewCompressor: work buffer too small")
	}

	p := newPool(work)
	c := &Compressor{params: np, wrap: wrap}

	cfg := levelTable[np.Level]
	if c.win, err = newWindow(p, np.WindowBits, np.MemLevel, cfg); err != nil {
		return nil, err
	}
	if c.scratch, err = newHuffmanScratch(p); err != nil {
		return nil, err
	}
	if c.trees, err = newDynamicTrees(p); err != nil {
		return nil, err
	}

	c.litBufSize = 1 << (np.MemLevel + 6)
	if c.pending, err = p.allocBytes(c.litBufSize * 4); err != nil {
		return nil, err
	}
	if c.lBuf, err = p.allocBytes(c.litBufSize); err != nil {
		return nil, err
	}
	if c.dBuf, err = allocTyped[uint16](p, c.litBufSize); err != nil {
		return nil, err
	}

	c.gzipHeader = np.GzipHeader
	c.reset()
	return c, nil
}

// reset returns the compressor to its just-constructed state, for stream
// reuse without reallocating (§3 "reentrant by instance, not by call").
func (c *Compressor) reset() {
	c.win.reset()
	c.symCount = 0
	for i := range c.litFreq {
		c.litFreq[i] = 0
	}
	for i := range c.distFreq {
		c.distFreq[i] = 0
	}
	c.litFreq[endBlock] = 1
	c.pendingPos = 0
	c.bw.init(c.pending)
	c.status = compStatusHeader
	c.headerWritten = false
	c.adler = Adler32(nil)
	c.crc = CRC32(nil)
	c.dictID = 0
}

// SetDictionary primes the window with a preset dictionary (§9
// supplemented feature, symmetric with Decompressor.SetDictionary).
// Must be called before the first call to Deflate.
func (c *Compressor) SetDictionary(dict []byte) error {
	if c.status != compStatusHeader || c.win.strStart != 0 {
		return wrapStream("SetDictionary: must be called before any input is compressed")
	}
	if len(dict) == 0 {
		return nil
	}
	c.dictID = Adler32(dict)

	tail := dict
	if len(tail) > c.win.size {
		tail = tail[len(tail)-c.win.size:]
	}
	copy(c.win.buf, tail)
	c.win.strStart = len(tail)
	c.win.blockStart = c.win.strStart
	c.win.lookahead = 0
	for i := minMatch; i <= len(tail); i++ {
		c.win.insertString(i - minMatch)
	}
	return nil
}

// PendingBytes reports how many compressed output bytes are buffered and
// not yet drained by the caller (useful when Deflate's dst ran out of
// room mid-call).
func (c *Compressor) PendingBytes() int { return c.bw.pendingLen - c.pendingPos }
