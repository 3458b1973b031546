// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// maxDist is the farthest a match distance may reach back, relative to
// the window size, leaving windowMinLookahead bytes of headroom so a
// match search never needs bytes beyond what fill() guarantees are
// present (§4.4 "MAX_DIST = w_size - MIN_LOOKAHEAD").
func (w *window) maxDist() int { return w.size - windowMinLookahead }

// longestMatch walks the hash chain starting at curMatch, looking for the
// longest run (up to maxMatch) matching buf[strStart:], bounded by
// maxChain probes and an early exit once niceLength is reached
// (§4.4 "longest_match"). It returns the best length found (0 if none
// beats prevLength) and the distance (strStart - matchPos) of that match.
func (w *window) longestMatch(curMatch int32) (length, matchPos int) {
	strStart := w.strStart
	best := w.prevLength
	bestPos := -1

	limit := 0
	if strStart > w.maxDist() {
		limit = strStart - w.maxDist()
	}

	chainLength := w.cfg.maxChain
	niceLength := w.cfg.niceLength
	if w.prevLength >= w.cfg.goodLength {
		chainLength >>= 2
	}

	available := w.lookahead
	maxLen := maxMatch
	if available < maxLen {
		maxLen = available
	}
	if niceLength > maxLen {
		niceLength = maxLen
	}

	scanEnd1 := byte(0)
	scanEnd := byte(0)
	if best >= 1 && strStart+best < len(w.buf) {
		scanEnd1 = w.buf[strStart+best-1]
		scanEnd = w.buf[strStart+best]
	}

	cur := int(curMatch)
	for chainLength > 0 {
		if cur < limit || cur >= strStart {
			break
		}
		// Cheap rejects before the full byte-by-byte compare: the
		// match-length-so-far byte and the one before it must already
		// agree, otherwise this candidate cannot beat best.
		reject := best > 0 && (cur+best >= len(w.buf) ||
			w.buf[cur+best] != scanEnd || w.buf[cur+best-1] != scanEnd1)

		if !reject {
			n := 0
			for n < maxLen && cur+n < len(w.buf) && strStart+n < len(w.buf) &&
				w.buf[cur+n] == w.buf[strStart+n] {
				n++
			}
			if n > best {
				best = n
				bestPos = cur
				if best >= 1 && strStart+best < len(w.buf) {
					scanEnd1 = w.buf[strStart+best-1]
					scanEnd = w.buf[strStart+best]
				}
				if n >= niceLength {
					break
				}
			}
		}

		chainLength--
		prevPos := w.prev[cur&w.mask]
		if prevPos < 0 {
			break
		}
		cur = int(prevPos)
	}

	if bestPos < 0 {
		return 0, 0
	}
	if best > available {
		best = available
	}
	return best, strStart - bestPos
}

// insertAndFindMatch advances insertion by one position and, if a hash
// chain existed there, looks for the longest match at strStart. It is the
// per-position step shared by the fast and lazy deflate strategies.
func (w *window) insertAndFindMatch() (length, dist int) {
	if w.lookahead < minMatch {
		return 0, 0
	}
	head := w.insertString(w.strStart)
	if head < 0 || w.strStart-int(head) > w.maxDist() {
		return 0, 0
	}
	return w.longestMatch(head)
}
