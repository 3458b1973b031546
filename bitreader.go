// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// bitReader is the L2 decoder-side bit accumulator (§4.2). It holds a
// 32-bit accumulator and pulls bytes from the caller's input span on
// demand; when input is exhausted mid-decode it reports that via need's
// return value so the caller (inflate.go's state machine) can save state
// and return errSuspend rather than panicking mid-expression — the
// "explicit resume-at field" design note of §9, expressed here as a
// boolean return instead of a goto target.
type bitReader struct {
	in       []byte
	inPos    int
	bitBuf   uint32
	bitValid uint
}

func (r *bitReader) initBits() {
	r.bitBuf = 0
	r.bitValid = 0
}

func (r *bitReader) setInput(in []byte) {
	r.in = in
	r.inPos = 0
}

// inputConsumed reports how many bytes of the current input span have
// been pulled into the bit accumulator or copied directly (for stored
// blocks).
func (r *bitReader) inputConsumed() int { return r.inPos }

func (r *bitReader) inputRemaining() int { return len(r.in) - r.inPos }

// bufferedBytes is the number of whole bytes immediately available
// without crossing into unread input: any whole bytes already sitting in
// the bit accumulator plus whatever remains unread in the input span.
func (r *bitReader) bufferedBytes() int {
	return int(r.bitValid)/8 + r.inputRemaining()
}

// need attempts to ensure at least n valid bits are buffered, pulling
// bytes from the input span. It returns false (without consuming a
// partial byte) if the input runs out first.
func (r *bitReader) need(n uint) bool {
	for r.bitValid < n {
		if r.inPos >= len(r.in) {
			return false
		}
		r.bitBuf |= uint32(r.in[r.inPos]) << r.bitValid
		r.inPos++
		r.bitValid += 8
	}
	return true
}

// peek returns the low n bits of the accumulator without consuming them.
// Caller must have called need(n) successfully first.
func (r *bitReader) peek(n uint) uint32 {
	assertion(r.bitValid >= n, "peek: insufficient buffered bits")
	return r.bitBuf & ((uint32(1) << n) - 1)
}

// drop removes n bits from the accumulator (already consumed via peek).
func (r *bitReader) drop(n uint) {
	assertion(r.bitValid >= n, "drop: insufficient buffered bits")
	r.bitBuf >>= n
	r.bitValid -= n
}

// takeBits is the common need+peek+drop sequence, for callers that do not
// need to inspect the bits before dropping them.
func (r *bitReader) takeBits(n uint) (uint32, bool) {
	if !r.need(n) {
		return 0, false
	}
	v := r.peek(n)
	r.drop(n)
	return v, true
}

// fillUpTo pulls as many bytes as are available (up to n bits worth),
// without reporting failure — used at the true end of a stream where a
// Huffman code may be shorter than the decoder's worst-case peek width.
func (r *bitReader) fillUpTo(n uint) {
	for r.bitValid < n && r.inPos < len(r.in) {
		r.bitBuf |= uint32(r.in[r.inPos]) << r.bitValid
		r.inPos++
		r.bitValid += 8
	}
}

// peekAvailable returns the low n bits of the accumulator, zero-extended
// if fewer than n bits are actually buffered (safe because the
// unfilled high bits of bitBuf are always zero). Pair with
// r.bitValid to know how many of the returned bits are "real".
func (r *bitReader) peekAvailable(n uint) uint32 {
	return r.bitBuf & ((uint32(1) << n) - 1)
}

// alignByte discards the remaining bits of the current byte, returning to
// a byte boundary of the underlying input stream (used by STORED blocks).
func (r *bitReader) alignByte() {
	n := r.bitValid % 8
	r.bitBuf >>= n
	r.bitValid -= n
}

// takeRawByte reads one byte directly from the input span, bypassing the
// bit accumulator; only valid when alignByte has just been called (the
// accumulator holds only whole leftover bytes).
func (r *bitReader) takeRawByte() (byte, bool) {
	if r.bitValid >= 8 {
		b := byte(r.bitBuf)
		r.bitBuf >>= 8
		r.bitValid -= 8
		return b, true
	}
	if r.inPos >= len(r.in) {
		return 0, false
	}
	b := r.in[r.inPos]
	r.inPos++
	return b, true
}

// takeRawBytes copies n raw bytes (bypassing the accumulator) into dst,
// used by STORED block copies. Assumes alignByte was called first so the
// accumulator holds zero or more whole bytes, drained before falling
// through to the input span directly.
func (r *bitReader) takeRawBytes(dst []byte) bool {
	n := len(dst)
	i := 0
	for r.bitValid >= 8 && i < n {
		dst[i] = byte(r.bitBuf)
		r.bitBuf >>= 8
		r.bitValid -= 8
		i++
	}
	if n-i > r.inputRemaining() {
		return false
	}
	copy(dst[i:], r.in[r.inPos:r.inPos+(n-i)])
	r.inPos += n - i
	return true
}
