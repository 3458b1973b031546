// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncSearch_FindsMarkerInOneCall(t *testing.T) {
	buf := append([]byte("garbage before"), syncMarker[:]...)
	buf = append(buf, "trailing data"...)

	consumed, got := syncSearch(0, buf)
	assert.Equal(t, 4, got)
	assert.Equal(t, len("garbage before")+4, consumed)
}

func TestSyncSearch_NoMarkerConsumesEverything(t *testing.T) {
	buf := []byte("no marker anywhere in here")
	consumed, got := syncSearch(0, buf)
	assert.Equal(t, len(buf), consumed)
	assert.Less(t, got, 4)
}

func TestSyncSearch_ResumesAcrossCalls(t *testing.T) {
	// Split the marker across two separate calls.
	part1 := []byte{0x00, 0x00}
	part2 := []byte{0xff, 0xff}

	consumed1, got1 := syncSearch(0, part1)
	assert.Equal(t, len(part1), consumed1)
	assert.Equal(t, 2, got1)

	consumed2, got2 := syncSearch(got1, part2)
	assert.Equal(t, len(part2), consumed2)
	assert.Equal(t, 4, got2)
}

func TestSyncSearch_OverlappingZeroRun(t *testing.T) {
	// Four zero bytes followed by 0xff 0xff: the marker starts at the
	// third zero byte, not the first, and the classic zlib "else got =
	// 4-got" branch is what lets the scan recover that.
	buf := []byte{0x00, 0x00, 0x00, 0x00, 0xff, 0xff}
	consumed, got := syncSearch(0, buf)
	assert.Equal(t, len(buf), consumed)
	assert.Equal(t, 4, got)
}

func TestDecompressor_SyncRecoversBlockHeaderMode(t *testing.T) {
	params := DefaultParams()
	params.WindowBits = -MaxWindowBits // raw, no header to get in the way

	wsize, err := DecompressWorkSize(params)
	assert.NoError(t, err)
	d, err := NewDecompressor(make([]byte, wsize), params)
	assert.NoError(t, err)

	garbage := []byte{0xAB, 0xCD, 0xEF}
	marker := syncMarker[:]
	src := append(append([]byte{}, garbage...), marker...)

	n, found := d.Sync(src)
	assert.True(t, found)
	assert.Equal(t, len(src), n)
	assert.Equal(t, modeBlockHeader, d.mode)
}
