// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// syncMarker is the 4-byte sequence a FlushSync/FlushFull compressor call
// always emits: an empty stored block following a byte-align, RFC 1951
// §3.2.4's "00 00 FF FF" (len=0, nlen=0xffff). It never occurs elsewhere
// in a well-formed bitstream at a byte boundary, which is what makes it
// usable as a resynchronization point (§4.6 "Resynchronization").
var syncMarker = [4]byte{0x00, 0x00, 0xff, 0xff}

// syncSearch scans buf for syncMarker, resuming a partial match via got (a
// count 0..4 of the longest marker prefix matched so far). The slightly
// odd "else 4-got" branch on an unmatched zero byte mirrors the original
// inflate_sync search: a 0 that doesn't extend the current match might
// still begin the zero-byte prefix of a marker, so progress falls back
// to 2 after "00 00" (the last two zeros) and to 1 after "00 00 ff"
// rather than all the way to 0.
func syncSearch(got int, buf []byte) (consumed int, newGot int) {
	next := 0
	for next < len(buf) && got < 4 {
		want := byte(0)
		if got >= 2 {
			want = 0xff
		}
		switch {
		case buf[next] == want:
			got++
		case buf[next] != 0:
			got = 0
		default:
			got = 4 - got
		}
		next++
	}
	return next, got
}

// Sync scans src for the next sync marker left by a prior FlushSync or
// FlushFull compression call, recovering a decoder stuck in modeBad after
// ErrDataError (§7 "Recovery" — "Only DATA_ERROR is recoverable, via the
// sync-point scan", Testable Property seed 5). It returns how many bytes
// of src were consumed; callers feed any unconsumed remainder (src[n:])
// to the next Decompress call once found is true.
//
// The scan is resumable across calls: a marker split across two Sync
// calls' input spans is still found, since partial-match progress is
// kept in the Decompressor between calls.
//
// On success the decoder resumes at the next block header with its
// history window intact, but totalOut/Adler-32/CRC-32 are left exactly
// as they were — bytes skipped by the scan were never decoded, so the
// trailer checksum will legitimately fail to match if compared. Callers
// that recover via Sync should not trust the stream's trailer check.
func (d *Decompressor) Sync(src []byte) (nConsumed int, found bool) {
	d.mode = modeSync
	n, got := syncSearch(d.syncMatched, src)
	d.syncMatched = got
	if got < 4 {
		return n, false
	}
	d.resumeAfterSync()
	return n, true
}

// resumeAfterSync drops every piece of state that belongs to the block
// Sync just recovered past, without touching the window or running
// totals (see Sync's doc comment).
func (d *Decompressor) resumeAfterSync() {
	d.br.initBits()
	d.mode = modeBlockHeader
	d.lastErr = nil
	d.sticky = nil
	d.syncMatched = 0
	d.curSym = -1
	d.curDistSym = -1
	d.pendingRepSym = -1
	d.storedHdrGot = 0
	d.trailerGot = 0
	d.blLenIdx = 0
	d.lenIdx = 0
	d.prevSym = 0
}
