// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// deflateLiteralsOnly implements StrategyHuffmanOnly (§4.5): every input
// byte is tallied as a literal, with no match finding at all. Useful when
// the match finder's cost is not worth paying (e.g. already-compressed
// input) but a Huffman-coded stream is still wanted.
func (c *Compressor) deflateLiteralsOnly(_ bool) {
	w := c.win
	for w.lookahead > 0 {
		c.tallyLit(w.buf[w.strStart])
		w.strStart++
		w.lookahead--
		if c.symCount == c.litBufSize-1 {
			c.flushBlock(false)
		}
	}
}

// deflateRLE implements StrategyRLE (§4.5): the only match distance ever
// considered is 1 (a run of the same byte repeated), which is far cheaper
// to search for than a full hash-chain walk and still captures the
// common case of long runs.
func (c *Compressor) deflateRLE(flushNow bool) {
	w := c.win
	for {
		if w.lookahead < windowMinLookahead && !flushNow {
			return
		}
		if w.lookahead == 0 {
			return
		}

		length := 0
		if w.lookahead >= minMatch && w.strStart > 0 {
			prevByte := w.buf[w.strStart-1]
			if w.buf[w.strStart] == prevByte {
				maxLen := maxMatch
				if w.lookahead < maxLen {
					maxLen = w.lookahead
				}
				n := 1
				for n < maxLen && w.buf[w.strStart+n] == prevByte {
					n++
				}
				if n >= minMatch {
					length = n
				}
			}
		}

		if length >= minMatch {
			full := c.tallyMatch(length, 1)
			w.lookahead -= length
			w.strStart += length
			if full {
				c.flushBlock(false)
			}
		} else {
			full := false
			c.tallyLit(w.buf[w.strStart])
			full = c.symCount == c.litBufSize-1
			w.strStart++
			w.lookahead--
			if full {
				c.flushBlock(false)
			}
		}
	}
}
