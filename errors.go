// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Code is the stream-level return code, mirroring the taxonomy of §7: a
// programmer error is trapped by assertion (defined below) and never
// reaches here as a Code.
type Code int

// Return codes, matching the numeric values named in the spec's external
// interface so a diagnostic dump of a Code is recognizable against the
// reference constants.
const (
	CodeOK           Code = 0
	CodeStreamEnd    Code = 1
	CodeNeedDict     Code = 2
	CodeStreamError  Code = -2
	CodeDataError    Code = -3
	CodeMemError     Code = -4
	CodeBufError     Code = -5
	CodeVersionError Code = -6
)

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeStreamEnd:
		return "stream-end"
	case CodeNeedDict:
		return "need-dict"
	case CodeStreamError:
		return "stream-error"
	case CodeDataError:
		return "data-error"
	case CodeMemError:
		return "mem-error"
	case CodeBufError:
		return "buf-error"
	case CodeVersionError:
		return "version-error"
	default:
		return "unknown-code"
	}
}

// Sentinel errors. Every non-assertion failure path returns one of these,
// wrapped (via errors.Is-compatible wrapping) with caller-facing context
// where the diagnostic adds value. Callers should compare with errors.Is,
// never by string.
var (
	// ErrStreamError is a parameter error: out-of-range level, window_bits,
	// mem_level, or strategy, returned at init or parameter change.
	ErrStreamError = errors.New("zsc: stream error: invalid parameters or state")

	// ErrDataError is a malformed-compressed-stream error (bad header,
	// invalid code, bad distance, bad checksum). Recoverable only via
	// Decompressor.Sync.
	ErrDataError = errors.New("zsc: data error: corrupt or invalid compressed stream")

	// ErrMemError is resource exhaustion: the caller-supplied work buffer
	// is too small for the requested parameters.
	ErrMemError = errors.New("zsc: memory error: work buffer too small")

	// ErrBufError indicates the engine made no progress because the
	// caller's input or output buffer was exhausted; not fatal, retry with
	// more buffer.
	ErrBufError = errors.New("zsc: buffer error: need more input or output space")

	// ErrVersionError signals a build/struct-size mismatch at init.
	ErrVersionError = errors.New("zsc: version error")

	// ErrNeedDict is returned by Decompressor.Decompress when the zlib header indicates a
	// preset dictionary that has not yet been supplied. The expected
	// Adler-32 is available via Decompressor.DictID.
	ErrNeedDict = errors.New("zsc: preset dictionary required")
)

// assertion traps a programmer/invariant error (§7 "Programmer error").
// It is never returned as a normal error value from a public entry point;
// it always panics, because by definition it signals state the caller
// cannot recover from within the documented contract.
func assertion(cond bool, msg string) {
	if !cond {
		panic("zsc: assertion failed: " + msg)
	}
}

// wrapData attaches diagnostic context to ErrDataError without losing the
// sentinel identity (errors.Is(result, ErrDataError) still holds).
func wrapData(msg string) error {
	return pkgerrors.WithMessage(ErrDataError, msg)
}

// wrapMem attaches diagnostic context to ErrMemError.
func wrapMem(msg string) error {
	return pkgerrors.WithMessage(ErrMemError, msg)
}

// wrapStream attaches diagnostic context to ErrStreamError.
func wrapStream(msg string) error {
	return pkgerrors.WithMessage(ErrStreamError, msg)
}

// wrapBuf attaches diagnostic context to ErrBufError.
func wrapBuf(msg string) error {
	return pkgerrors.WithMessage(ErrBufError, msg)
}

// codeForError maps a sentinel error to its §6 Code, for callers that want
// the numeric taxonomy instead of errors.Is chains.
func codeForError(err error) Code {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrNeedDict):
		return CodeNeedDict
	case errors.Is(err, ErrDataError):
		return CodeDataError
	case errors.Is(err, ErrMemError):
		return CodeMemError
	case errors.Is(err, ErrBufError):
		return CodeBufError
	case errors.Is(err, ErrVersionError):
		return CodeVersionError
	case errors.Is(err, ErrStreamError):
		return CodeStreamError
	default:
		return CodeStreamError
	}
}
