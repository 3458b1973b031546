// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// fastMinOutput is the most bytes a single length/distance match can ever
// emit (maxMatch), the output headroom the fast path requires before
// entering (§4.6 "Fast path" — "≥258 bytes of output space").
const fastMinOutput = maxMatch

// fastMinInput bounds the worst-case bits a single literal/length symbol
// plus its extra bits plus a distance symbol plus its extra bits can
// consume: 15 (litlen code) + 5 (length extra) + 15 (dist code) + 13
// (dist extra) = 48 bits, rounded up to whole bytes — the same 6-byte
// input headroom §4.6's inflate_fast requires.
const fastMinInput = 6

// stepMatchFast is entered from modeMatch once bufferedBytes and dst room
// comfortably clear a worst-case symbol. It loops over the match/extra/
// distance/copy modes directly, re-checking the bound at the top of each
// mode instead of returning out to Decompress's dispatch between every
// sub-step; this is what actually saves work relative to the slow path,
// since the per-call dispatch and errSuspend comparison is the overhead
// being amortized, not the decode logic itself (which is identical to,
// and implemented by calling, stepMatch/stepLenExtra/stepDist/
// stepDistExtra/stepCopyMatch). Falling out of the loop at any point —
// bound no longer holding, end-of-block, or dst filling up — is always
// safe: those functions persist any partially resolved symbol in
// Decompressor fields (curSym, curDistSym, curLen, curDist), so
// Decompress's ordinary dispatch resumes exactly where this loop left
// off.
func (d *Decompressor) stepMatchFast(out *outSink, final bool) error {
	for {
		switch d.mode {
		case modeMatch:
			if !(d.curSym < 0 && out.room() >= fastMinOutput && d.br.bufferedBytes() >= fastMinInput) {
				return nil
			}
			if err := d.stepMatch(out, final); err != nil {
				return err
			}
		case modeLenExtra:
			if d.br.bufferedBytes() < fastMinInput {
				return nil
			}
			if err := d.stepLenExtra(final); err != nil {
				return err
			}
		case modeDist:
			if d.br.bufferedBytes() < fastMinInput {
				return nil
			}
			if err := d.stepDist(final); err != nil {
				return err
			}
		case modeDistExtra:
			if d.br.bufferedBytes() < fastMinInput {
				return nil
			}
			if err := d.stepDistExtra(final); err != nil {
				return err
			}
		case modeCopyMatch:
			if out.room() < fastMinOutput {
				return nil
			}
			if err := d.stepCopyMatch(out); err != nil {
				return err
			}
		default:
			// end-of-block or a transition out of the match group
			// (modeCheck, modeBlockHeader): hand back to the slow
			// dispatch, nothing left for the fast loop to do.
			return nil
		}
		if out.full {
			return nil
		}
	}
}
