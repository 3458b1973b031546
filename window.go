// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// window is the L4 sliding-window state (§4.4): a buffer twice the
// configured window size so match distances up to w_size stay resolvable
// without copying on every slide, a hash table mapping 3-byte prefixes to
// the most recent position they occurred at, and a prev[] chain so every
// earlier occurrence of the same prefix can be walked in recency order.
// All three slices come from the compressor's pool at construction time
// (§3 "Compression state"); nothing here grows afterward.
type window struct {
	buf  []byte // len 2*size
	size int    // w_size = 1 << windowBits
	mask int    // size - 1

	head []int32 // len hashSize; -1 == empty
	prev []int32 // len size; chain link, in buf-index terms modulo size
	hashBits  uint
	hashShift uint
	hashMask  int32

	strStart       int
	blockStart     int
	lookahead      int
	insH           int32
	matchLength    int
	prevLength     int
	matchStart     int
	prevMatchStart int
	matchAvailable bool

	cfg levelConfig

	totalIn int64 // bytes ever fed to the window, for the gzip ISIZE trailer
}

const windowMinLookahead = minLookahead // 262: maxMatch + minMatch + 1

func newWindow(p *pool, windowBits, memLevel int, cfg levelConfig) (*window, error) {
	w := &window{}
	w.size = 1 << windowBits
	w.mask = w.size - 1
	w.cfg = cfg

	w.hashBits = uint(memLevel) + 7
	if w.hashBits > 15 {
		w.hashBits = 15
	}
	hashSize := 1 << w.hashBits
	w.hashShift = (w.hashBits + minMatch - 1) / minMatch
	w.hashMask = int32(hashSize - 1)

	var err error
	if w.buf, err = p.allocBytes(2 * w.size); err != nil {
		return nil, err
	}
	if w.head, err = allocTyped[int32](p, hashSize); err != nil {
		return nil, err
	}
	if w.prev, err = allocTyped[int32](p, w.size); err != nil {
		return nil, err
	}
	w.reset()
	return w, nil
}

func (w *window) reset() {
	for i := range w.head {
		w.head[i] = -1
	}
	w.strStart = 0
	w.blockStart = 0
	w.lookahead = 0
	w.insH = 0
	w.matchLength = minMatch - 1
	w.prevLength = minMatch - 1
	w.matchAvailable = false
	w.totalIn = 0
}

// updateHash folds one more byte into the rolling hash of the 3 bytes
// ending at it (§4.4 "insert_string").
func (w *window) updateHash(h int32, b byte) int32 {
	return ((h << w.hashShift) ^ int32(b)) & w.hashMask
}

// insertString hashes buf[pos:pos+3] and pushes pos onto that hash
// bucket's chain, returning the previous head of the chain (-1 if none).
func (w *window) insertString(pos int) int32 {
	w.insH = w.updateHash(w.insH, w.buf[pos+minMatch-1])
	head := w.head[w.insH]
	w.prev[pos&w.mask] = head
	w.head[w.insH] = int32(pos)
	return head
}

// fill copies as much of src into the tail of the window as fits,
// sliding the window first if there is no room (§4.4 "fill_window" /
// window-slide at strstart >= w_size+MAX_DIST). Returns the number of
// bytes consumed from src.
func (w *window) fill(src []byte) int {
	more := len(w.buf) - w.strStart - w.lookahead
	if w.strStart >= w.size+(w.size-windowMinLookahead) {
		w.slide()
		more = len(w.buf) - w.strStart - w.lookahead
	}
	if more > len(src) {
		more = len(src)
	}
	if more <= 0 {
		return 0
	}
	copy(w.buf[w.strStart+w.lookahead:], src[:more])
	w.lookahead += more
	w.totalIn += int64(more)
	return more
}

// slide halves the window contents back by size bytes, rewriting every
// head/prev chain entry that still falls within range and dropping
// entries that slide out of the distance horizon (§4.4).
func (w *window) slide() {
	copy(w.buf[0:w.size], w.buf[w.size:2*w.size])
	w.strStart -= w.size
	w.blockStart -= w.size

	for i := range w.head {
		m := w.head[i]
		if m >= int32(w.size) {
			w.head[i] = m - int32(w.size)
		} else {
			w.head[i] = -1
		}
	}
	for i := range w.prev {
		m := w.prev[i]
		if m >= int32(w.size) {
			w.prev[i] = m - int32(w.size)
		} else {
			w.prev[i] = -1
		}
	}
}

// availableBytes reports how many unread bytes of lookahead remain ahead
// of strStart.
func (w *window) availableBytes() int { return w.lookahead }
