// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// deflateFast implements the greedy-matching strategy (§4.4 "fast"): take
// the first match found at each position without looking one byte ahead
// for a better one. Used at low compression levels where match-finding
// cost matters more than ratio. Consumes available lookahead, emitting
// full blocks as the symbol buffer fills, and returns once lookahead
// drops below windowMinLookahead, or, when flushNow is set, once it
// reaches zero.
func (c *Compressor) deflateFast(flushNow bool) {
	w := c.win
	for {
		if w.lookahead < windowMinLookahead && !flushNow {
			return
		}
		if w.lookahead == 0 {
			return
		}

		length, dist := 0, 0
		if w.lookahead >= minMatch {
			length, dist = w.insertAndFindMatch()
		}

		if length >= minMatch {
			full := c.tallyMatch(length, dist)
			w.lookahead -= length
			// Insert every position the match covers into the hash
			// chains, same as the first position: later matches may
			// start anywhere inside it.
			for i := 1; i < length; i++ {
				w.strStart++
				if w.strStart+minMatch-1 < len(w.buf) {
					w.insertString(w.strStart)
				}
			}
			w.strStart++
			if full {
				c.flushBlock(false)
			}
		} else {
			full := false
			c.tallyLit(w.buf[w.strStart])
			full = c.symCount == c.litBufSize-1
			w.lookahead--
			w.strStart++
			if full {
				c.flushBlock(false)
			}
		}
	}
}
