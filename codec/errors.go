package codec

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/danmuck/mcwire/version"
)

// Failure classes. Every error returned by this package is marked with
// exactly one of them; use errors.Is or the Is* predicates to classify.
var (
	ErrIO                 = errors.New("codec: i/o failure")
	ErrMalformed          = errors.New("codec: malformed data")
	ErrUnsupportedVersion = errors.New("codec: unsupported protocol version")
)

// Malformed-data failures.
var (
	ErrVarIntTooLong  = errors.Mark(errors.New("codec: varint too long"), ErrMalformed)
	ErrInvalidUTF8    = errors.Mark(errors.New("codec: invalid utf-8"), ErrMalformed)
	ErrInvalidVariant = errors.Mark(errors.New("codec: invalid variant index"), ErrMalformed)
	ErrNegativeLength = errors.Mark(errors.New("codec: negative length"), ErrMalformed)
	ErrLengthOverflow = errors.Mark(errors.New("codec: length exceeds varint range"), ErrMalformed)
	ErrTrailingBytes  = errors.Mark(errors.New("codec: trailing bytes after value"), ErrMalformed)
	ErrNilPointer     = errors.Mark(errors.New("codec: nil pointer"), ErrMalformed)
)

// IsIO reports whether err came from the underlying sink or source,
// including end of stream before a value was complete.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsMalformed reports whether err is a decoded-content violation.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}

// IsUnsupportedVersion reports whether err is a protocol version failure.
func IsUnsupportedVersion(err error) bool {
	return errors.Is(err, ErrUnsupportedVersion)
}

// ioFailure marks a sink/source error. The cause stays reachable, so
// errors.Is(err, io.ErrUnexpectedEOF) keeps working for callers.
func ioFailure(err error) error {
	if err == nil {
		return nil
	}
	return errors.Mark(err, ErrIO)
}

// truncated reports end of stream inside a value whose first byte was
// already consumed.
func truncated(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return ioFailure(err)
}

// UnsupportedVersion returns ErrUnsupportedVersion annotated with the
// offending type and version.
func UnsupportedVersion(typeName string, v version.Version) error {
	return errors.Wrapf(ErrUnsupportedVersion, "%s at %s", typeName, v)
}
