// Package errs defines the closed set of error kinds the NBT codec can
// produce. Every parse or access failure surfaced by cursor, mutf8, tape,
// borrow, owned, or frame wraps one of the sentinels below, so callers can
// classify failures with errors.Is regardless of which layer raised them.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors matching the wire-grammar failure kinds. Compare against
// these with errors.Is; the typed wrappers below carry extra data but still
// unwrap to one of these.
var (
	// ErrUnexpectedEof is returned when a read requests more bytes than remain.
	ErrUnexpectedEof = errors.New("nbt: unexpected end of buffer")
	// ErrUnknownTag is returned for a kind byte outside 0..=12, or a root
	// kind that is neither 0 nor 10.
	ErrUnknownTag = errors.New("nbt: unknown tag kind")
	// ErrNegativeLength is returned when a length prefix is negative.
	ErrNegativeLength = errors.New("nbt: negative length")
	// ErrMaxDepthExceeded is returned when nesting exceeds the configured limit.
	ErrMaxDepthExceeded = errors.New("nbt: max depth exceeded")
	// ErrInvalidString is returned only at MUTF-8 access time, never during parse.
	ErrInvalidString = errors.New("nbt: invalid mutf8 string")
	// ErrIo is returned when an underlying io.Reader or io.Writer fails
	// while streaming a document in or out. Compare with errors.Is(err,
	// ErrIo); IoError also unwraps to the concrete cause.
	ErrIo = errors.New("nbt: io error")
)

// UnknownTagError carries the offending kind byte alongside ErrUnknownTag.
type UnknownTagError struct {
	Kind byte
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("nbt: unknown tag kind %d", e.Kind)
}

func (e *UnknownTagError) Unwrap() error { return ErrUnknownTag }

// NegativeLengthError carries the offending length alongside ErrNegativeLength.
type NegativeLengthError struct {
	Length int64
}

func (e *NegativeLengthError) Error() string {
	return fmt.Sprintf("nbt: negative length %d", e.Length)
}

func (e *NegativeLengthError) Unwrap() error { return ErrNegativeLength }

// DepthError carries the limit that was exceeded alongside ErrMaxDepthExceeded.
type DepthError struct {
	Limit int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("nbt: nesting exceeds max depth %d", e.Limit)
}

func (e *DepthError) Unwrap() error { return ErrMaxDepthExceeded }

// IoError wraps an error from an underlying reader or writer when streaming.
type IoError struct {
	Err error
}

func (e *IoError) Error() string { return fmt.Sprintf("nbt: io error: %v", e.Err) }

// Unwrap exposes the concrete underlying error, so errors.Is/As still
// reaches causes like io.EOF or a *fs.PathError through an IoError.
func (e *IoError) Unwrap() error { return e.Err }

// Is reports a match against ErrIo directly, since Unwrap already routes
// to the concrete cause instead of this sentinel.
func (e *IoError) Is(target error) bool { return target == ErrIo }
