// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

// GzipHeader carries the optional gzip (RFC 1952) member fields a caller
// may want to set on output, or that Decompressor.GzipHeader reports back after
// parsing a gzip-wrapped stream's header (§4.5, §6 glossary "gzip
// header").
type GzipHeader struct {
	// Text marks the compressed data as probably ASCII text (FTEXT).
	Text bool
	// ModTime is the Unix mtime field (MTIME), 0 if unknown.
	ModTime uint32
	// OS identifies the operating system the file was created on; 255
	// ("unknown") is the conventional default.
	OS byte
	// Extra, Name and Comment are the optional FEXTRA/FNAME/FCOMMENT
	// fields. Name and Comment are NUL-terminated Latin-1 text on the
	// wire; callers supply/receive them without the trailing NUL.
	Extra   []byte
	Name    string
	Comment string
	// HeaderCRC requests the FHCRC flag (a CRC-16 of the header bytes);
	// rarely used in practice but named in RFC 1952 §2.3.1.
	HeaderCRC bool
}

const (
	gzipMagic1 = 0x1F
	gzipMagic2 = 0x8B
	gzipCM     = 8 // deflate

	gzipFlagText    = 1 << 0
	gzipFlagHCRC    = 1 << 1
	gzipFlagExtra   = 1 << 2
	gzipFlagName    = 1 << 3
	gzipFlagComment = 1 << 4
)

// gzipHeaderSize returns the exact number of bytes emitGzipHeader writes,
// used by sizing.go's output-bound formula.
func gzipHeaderSize(h *GzipHeader) int {
	n := 10
	if h == nil {
		return n
	}
	if len(h.Extra) > 0 {
		n += 2 + len(h.Extra)
	}
	if h.Name != "" {
		n += len(h.Name) + 1
	}
	if h.Comment != "" {
		n += len(h.Comment) + 1
	}
	if h.HeaderCRC {
		n += 2
	}
	return n
}

// emitGzipHeader writes the 10-byte fixed gzip header plus any optional
// fields in h directly to w (RFC 1952 §2.3); it never builds an
// intermediate slice, keeping header emission inside the "no allocation
// after construction" invariant (§3).
func emitGzipHeader(w *bitWriter, h *GzipHeader, level int) {
	var flags byte
	if h != nil {
		if h.Text {
			flags |= gzipFlagText
		}
		if h.HeaderCRC {
			flags |= gzipFlagHCRC
		}
		if len(h.Extra) > 0 {
			flags |= gzipFlagExtra
		}
		if h.Name != "" {
			flags |= gzipFlagName
		}
		if h.Comment != "" {
			flags |= gzipFlagComment
		}
	}

	var xfl byte
	switch {
	case level >= 9:
		xfl = 2
	case level == 1:
		xfl = 4
	}

	var mtime uint32
	os := byte(255)
	if h != nil {
		mtime = h.ModTime
		os = h.OS
	}

	start := w.pendingLen
	w.writeByte(gzipMagic1)
	w.writeByte(gzipMagic2)
	w.writeByte(gzipCM)
	w.writeByte(flags)
	w.writeByte(byte(mtime))
	w.writeByte(byte(mtime >> 8))
	w.writeByte(byte(mtime >> 16))
	w.writeByte(byte(mtime >> 24))
	w.writeByte(xfl)
	w.writeByte(os)

	if h != nil && len(h.Extra) > 0 {
		w.writeByte(byte(len(h.Extra)))
		w.writeByte(byte(len(h.Extra) >> 8))
		w.writeBytes(h.Extra)
	}
	if h != nil && h.Name != "" {
		w.writeBytes([]byte(h.Name))
		w.writeByte(0)
	}
	if h != nil && h.Comment != "" {
		w.writeBytes([]byte(h.Comment))
		w.writeByte(0)
	}
	if h != nil && h.HeaderCRC {
		crc := CRC32(w.pending[start:w.pendingLen])
		w.writeByte(byte(crc))
		w.writeByte(byte(crc >> 8))
	}
}

// gzipHeaderParser incrementally parses an RFC 1952 header from whatever
// input bytes are available, resuming across calls the way inflate.go's
// state machine resumes every other multi-byte field (§9 "explicit
// resume-at field").
type gzipHeaderParser struct {
	stage    int
	flags    byte
	extraLen int
	extraGot int
	header   GzipHeader
	nameBuf  []byte
	commBuf  []byte
	extraBuf []byte
}

const (
	gzStageMagic1 = iota
	gzStageMagic2
	gzStageCM
	gzStageFlags
	gzStageMTime
	gzStageXFL
	gzStageOS
	gzStageExtraLen
	gzStageExtra
	gzStageName
	gzStageComment
	gzStageHCRC
	gzStageDone
)

func (g *gzipHeaderParser) init(nameBuf, commBuf, extraBuf []byte) {
	g.stage = gzStageMagic1
	g.flags = 0
	g.extraLen = 0
	g.extraGot = 0
	g.header = GzipHeader{}
	g.nameBuf = nameBuf[:0]
	g.commBuf = commBuf[:0]
	g.extraBuf = extraBuf[:0]
}

// step consumes from r until the header is fully parsed (returns true) or
// input runs out (returns false, to be retried once more data arrives).
// A malformed magic/CM returns an error immediately.
func (g *gzipHeaderParser) step(r *bitReader) (done bool, err error) {
	for g.stage != gzStageDone {
		switch g.stage {
		case gzStageMagic1:
			b, ok := r.takeRawByte()
			if !ok {
				return false, nil
			}
			if b != gzipMagic1 {
				return false, wrapData("gzip: bad magic byte 1")
			}
			g.stage = gzStageMagic2
		case gzStageMagic2:
			b, ok := r.takeRawByte()
			if !ok {
				return false, nil
			}
			if b != gzipMagic2 {
				return false, wrapData("gzip: bad magic byte 2")
			}
			g.stage = gzStageCM
		case gzStageCM:
			b, ok := r.takeRawByte()
			if !ok {
				return false, nil
			}
			if b != gzipCM {
				return false, wrapData("gzip: unsupported compression method")
			}
			g.stage = gzStageFlags
		case gzStageFlags:
			b, ok := r.takeRawByte()
			if !ok {
				return false, nil
			}
			g.flags = b
			g.header.Text = b&gzipFlagText != 0
			g.header.HeaderCRC = b&gzipFlagHCRC != 0
			g.stage = gzStageMTime
			g.extraGot = 0
		case gzStageMTime:
			for g.extraGot < 4 {
				b, ok := r.takeRawByte()
				if !ok {
					return false, nil
				}
				g.header.ModTime |= uint32(b) << (8 * g.extraGot)
				g.extraGot++
			}
			g.extraGot = 0
			g.stage = gzStageXFL
		case gzStageXFL:
			_, ok := r.takeRawByte()
			if !ok {
				return false, nil
			}
			g.stage = gzStageOS
		case gzStageOS:
			b, ok := r.takeRawByte()
			if !ok {
				return false, nil
			}
			g.header.OS = b
			g.stage = gzStageExtraLen
			g.extraGot = 0
		case gzStageExtraLen:
			if g.flags&gzipFlagExtra == 0 {
				g.stage = gzStageName
				continue
			}
			for g.extraGot < 2 {
				b, ok := r.takeRawByte()
				if !ok {
					return false, nil
				}
				g.extraLen |= int(b) << (8 * g.extraGot)
				g.extraGot++
			}
			g.extraGot = 0
			g.stage = gzStageExtra
		case gzStageExtra:
			for g.extraGot < g.extraLen {
				b, ok := r.takeRawByte()
				if !ok {
					return false, nil
				}
				if len(g.extraBuf) < cap(g.extraBuf) {
					g.extraBuf = append(g.extraBuf, b)
				}
				g.extraGot++
			}
			g.header.Extra = g.extraBuf
			g.extraGot = 0
			g.stage = gzStageName
		case gzStageName:
			if g.flags&gzipFlagName == 0 {
				g.stage = gzStageComment
				continue
			}
			for {
				b, ok := r.takeRawByte()
				if !ok {
					return false, nil
				}
				if b == 0 {
					break
				}
				if len(g.nameBuf) < cap(g.nameBuf) {
					g.nameBuf = append(g.nameBuf, b)
				}
			}
			g.header.Name = string(g.nameBuf)
			g.stage = gzStageComment
		case gzStageComment:
			if g.flags&gzipFlagComment == 0 {
				g.stage = gzStageHCRC
				continue
			}
			for {
				b, ok := r.takeRawByte()
				if !ok {
					return false, nil
				}
				if b == 0 {
					break
				}
				if len(g.commBuf) < cap(g.commBuf) {
					g.commBuf = append(g.commBuf, b)
				}
			}
			g.header.Comment = string(g.commBuf)
			g.stage = gzStageHCRC
		case gzStageHCRC:
			if g.flags&gzipFlagHCRC == 0 {
				g.stage = gzStageDone
				continue
			}
			for g.extraGot < 2 {
				_, ok := r.takeRawByte()
				if !ok {
					return false, nil
				}
				g.extraGot++
			}
			g.stage = gzStageDone
		}
	}
	return true, nil
}
