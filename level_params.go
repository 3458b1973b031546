// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// levelConfig names the four match-finder knobs RFC 1951 leaves as encoder
// choices (§4.4 "Match finder"): good_length switches to a cheaper search
// once a match of this length is already held, max_lazy bounds how long
// lazy (one-step lookahead) matching keeps trying to improve on the
// current match, nice_length is the length at which the search stops
// early because further searching is unlikely to help, and max_chain
// bounds the hash-chain walk.
type levelConfig struct {
	goodLength int
	maxLazy    int
	niceLength int
	maxChain   int
}

// levelTable mirrors zlib's configuration_table: one entry per compression
// level 0..9 (level 0 is STORED-only and never consults these fields).
var levelTable = [MaxLevel + 1]levelConfig{
	{0, 0, 0, 0},
	{4, 4, 8, 4},
	{4, 5, 16, 8},
	{4, 6, 32, 32},
	{4, 4, 16, 16},
	{8, 16, 32, 32},
	{8, 16, 128, 128},
	{8, 32, 128, 256},
	{32, 128, 258, 1024},
	{32, 258, 258, 4096},
}
