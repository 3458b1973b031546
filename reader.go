// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

import "io"

// readerChunkSize is how much the Reader asks the wrapped io.Reader for
// at a time when its staging buffer runs dry.
const readerChunkSize = 1 << 13

// Reader adapts a Decompressor to io.Reader (§9 supplemented feature).
// Like Writer, NewReader performs the one construction-time work-buffer
// allocation; in is a growable staging buffer the Decompressor's src is
// sliced from, compacted and doubled in place as needed, since an
// io.Reader's chunking has no relationship to a DEFLATE block boundary.
type Reader struct {
	r    io.Reader
	d    *Decompressor
	work []byte

	in    []byte
	inPos int
	eof   bool // wrapped reader has returned io.EOF

	err error
}

// NewReader returns a Reader that inflates compressed bytes read from r.
func NewReader(r io.Reader, params Params) (*Reader, error) {
	size, err := DecompressWorkSize(params)
	if err != nil {
		return nil, err
	}
	work := make([]byte, size)
	d, err := NewDecompressor(work, params)
	if err != nil {
		return nil, err
	}
	return &Reader{r: r, d: d, work: work}, nil
}

// Read decompresses into p, refilling its internal staging buffer from
// the wrapped io.Reader as needed.
func (cr *Reader) Read(p []byte) (int, error) {
	if cr.err != nil {
		return 0, cr.err
	}
	for {
		nIn, nOut, streamEnd, err := cr.d.Decompress(p, cr.in[cr.inPos:], cr.eof)
		cr.inPos += nIn
		if err != nil {
			cr.err = err
			return nOut, err
		}
		if nOut > 0 {
			if streamEnd {
				cr.err = io.EOF
			}
			return nOut, nil
		}
		if streamEnd {
			cr.err = io.EOF
			return 0, io.EOF
		}
		if cr.inPos < len(cr.in) {
			if len(p) == 0 {
				return 0, nil
			}
			continue
		}
		if cr.eof {
			cr.err = io.ErrUnexpectedEOF
			return 0, cr.err
		}
		if ferr := cr.fill(); ferr != nil {
			return 0, ferr
		}
	}
}

// fill compacts the staging buffer and reads one more chunk from the
// wrapped io.Reader, growing the buffer's capacity (doubling) if a
// pending DEFLATE field hasn't fit in it yet.
func (cr *Reader) fill() error {
	if cr.inPos > 0 {
		n := copy(cr.in, cr.in[cr.inPos:])
		cr.in = cr.in[:n]
		cr.inPos = 0
	}
	start := len(cr.in)
	if cap(cr.in)-start < readerChunkSize {
		newCap := (cap(cr.in) + readerChunkSize) * 2
		grown := make([]byte, start, newCap)
		copy(grown, cr.in)
		cr.in = grown
	}
	cr.in = cr.in[:start+readerChunkSize]
	n, err := cr.r.Read(cr.in[start : start+readerChunkSize])
	cr.in = cr.in[:start+n]
	switch {
	case err == io.EOF:
		cr.eof = true
		return nil
	case err != nil:
		cr.err = err
		return err
	default:
		return nil
	}
}
