// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// deflateSlow implements lazy matching (§4.4 "slow"): before committing
// to a match at the current position, look one byte ahead — if the match
// starting at strStart+1 is longer, emit a literal here and take that
// match next time instead. Used at higher compression levels where the
// extra lookahead improves ratio enough to be worth the cost.
func (c *Compressor) deflateSlow(flushNow bool) {
	w := c.win
	for {
		if w.lookahead < windowMinLookahead && !flushNow {
			return
		}
		if w.lookahead == 0 {
			if w.matchAvailable {
				c.emitPendingLiteral()
			}
			return
		}

		curLength, curDist := 0, 0
		if w.lookahead >= minMatch {
			curLength, curDist = w.insertAndFindMatch()
		}
		w.prevLength, w.prevMatchStart = w.matchLength, w.matchStart
		w.matchLength, w.matchStart = curLength, curDist

		if w.prevLength >= minMatch && w.matchLength <= w.prevLength {
			// The previous position's match was at least as good as
			// anything starting here: commit to it now.
			maxInsert := w.strStart + w.lookahead - minMatch
			full := c.tallyMatch(w.prevLength, w.prevMatchStart)

			w.lookahead -= w.prevLength - 1
			w.prevLength -= 2
			for {
				w.strStart++
				if w.strStart <= maxInsert {
					w.insertString(w.strStart)
				}
				w.prevLength--
				if w.prevLength == 0 {
					break
				}
			}
			w.matchAvailable = false
			w.matchLength = minMatch - 1
			w.strStart++

			if full {
				c.flushBlock(false)
			}
		} else if w.matchAvailable {
			// No better match was found here either: the literal held
			// from the previous position must be emitted now, and this
			// position's literal becomes the one held. The block is ended
			// before that hold, so it covers exactly the tallied bytes.
			full := c.emitPendingLiteral()
			if full {
				c.flushBlock(false)
			}
			w.matchAvailable = true
			w.strStart++
			w.lookahead--
		} else {
			// Nothing to emit yet; hold this position's literal and
			// advance, deferring the decision by one more byte.
			w.matchAvailable = true
			w.strStart++
			w.lookahead--
		}
	}
}

// emitPendingLiteral tallies the literal byte held from one position
// back (matchAvailable's deferred decision) and clears the flag.
func (c *Compressor) emitPendingLiteral() bool {
	w := c.win
	b := w.buf[w.strStart-1]
	c.tallyLit(b)
	w.matchAvailable = false
	return c.symCount == c.litBufSize-1
}
