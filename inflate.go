// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// Decompress expands as much of src as fits in dst, returning how many
// input bytes were consumed, how many output bytes were written, and
// whether the stream has now ended. final tells the decoder no more
// input will ever follow this call's src — needed to distinguish a
// genuinely truncated stream from one merely waiting on more data
// (§4.6's suspend/resume design, §9 "explicit resume-at field").
//
// Decompress never allocates; dst and src may be any size, including
// zero, and the call returns as soon as either is exhausted or the
// stream ends.
func (d *Decompressor) Decompress(dst []byte, src []byte, final bool) (nIn int, nOut int, streamEnd bool, err error) {
	if d.sticky != nil {
		return 0, 0, false, d.sticky
	}
	if d.mode == modeDone {
		return 0, 0, true, nil
	}

	d.br.setInput(src)
	out := &outSink{d: d, dst: dst}

	for {
		switch d.mode {
		case modeHead:
			err = d.stepHead(final)
		case modeNeedDict:
			return d.br.inputConsumed(), out.n, false, ErrNeedDict
		case modeBlockHeader:
			err = d.stepBlockHeader(final)
		case modeStoredLen:
			err = d.stepStoredLen(final)
		case modeStoredCopy:
			err = d.stepStoredCopy(out, final)
		case modeTableSizes:
			err = d.stepTableSizes(final)
		case modeCodeLengths:
			err = d.stepCodeLengths(final)
		case modeLengths:
			err = d.stepLengths(final)
		case modeBuildTables:
			err = d.stepBuildTables()
		case modeMatch:
			if d.curSym < 0 && out.room() >= fastMinOutput && d.br.bufferedBytes() >= fastMinInput {
				err = d.stepMatchFast(out, final)
			} else {
				err = d.stepMatch(out, final)
			}
		case modeLenExtra:
			err = d.stepLenExtra(final)
		case modeDist:
			err = d.stepDist(final)
		case modeDistExtra:
			err = d.stepDistExtra(final)
		case modeCopyMatch:
			err = d.stepCopyMatch(out)
		case modeCheck:
			err = d.stepCheck(final)
		case modeDone:
			return d.br.inputConsumed(), out.n, true, nil
		case modeBad:
			return d.br.inputConsumed(), out.n, false, d.sticky
		case modeSync:
			return d.br.inputConsumed(), out.n, false, wrapData("inflate: awaiting Sync to locate next recoverable block")
		default:
			err = wrapStream("inflate: unexpected state")
		}

		if err == errSuspend {
			return d.br.inputConsumed(), out.n, false, nil
		}
		if err != nil {
			d.lastErr = err
			d.sticky = err
			d.mode = modeBad
			return d.br.inputConsumed(), out.n, false, err
		}
		if out.full {
			return d.br.inputConsumed(), out.n, d.mode == modeDone, nil
		}
	}
}

// errSuspend is an internal sentinel meaning "input exhausted, resume
// later"; it never escapes Decompress.
var errSuspend = wrapBuf("suspend")

// outSink tracks the output cursor across step functions and records
// whether dst ran out mid-block. Every step that writes output checks
// room before consuming the input/state that produced the byte, so a
// suspend here never drops a decoded byte on the floor.
type outSink struct {
	d    *Decompressor
	dst  []byte
	n    int
	full bool
}

// room reports how many more bytes dst can hold.
func (o *outSink) room() int { return len(o.dst) - o.n }

// emit writes one decoded byte to dst and the history window and updates
// the running checksum. Callers must have already checked room() > 0.
func (o *outSink) emit(b byte) {
	o.dst[o.n] = b
	o.n++
	o.d.windowAppend(b)
	o.d.totalOut++
	switch o.d.wrap {
	case WrapZlib:
		o.d.adler = adler32Update(o.d.adler, o.dst[o.n-1:o.n])
	case WrapGzip:
		o.d.crc = crc32Update(o.d.crc, o.dst[o.n-1:o.n])
	}
}
