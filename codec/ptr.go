package codec

import (
	"io"

	"github.com/cockroachdb/errors"
)

// A pointer field is an ownership wrapper: it has no wire form of its own.
// Exclusive and shared ownership look the same in Go, so both use these
// functions. Decoding always allocates, so values that shared one pointer
// before encoding come back as distinct allocations.

// WritePtr encodes the pointee. A nil pointer has no encoding.
func WritePtr[T any](w io.Writer, p *T, enc EncodeFunc[T]) error {
	if p == nil {
		return errors.Wrapf(ErrNilPointer, "%T", p)
	}
	return enc(w, *p)
}

// ReadPtr decodes a T into fresh storage.
func ReadPtr[T any](r io.Reader, dec DecodeFunc[T]) (*T, error) {
	v, err := dec(r)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func PtrEncoder[T any](enc EncodeFunc[T]) EncodeFunc[*T] {
	return func(w io.Writer, p *T) error {
		return WritePtr(w, p, enc)
	}
}

func PtrDecoder[T any](dec DecodeFunc[T]) DecodeFunc[*T] {
	return func(r io.Reader) (*T, error) {
		return ReadPtr(r, dec)
	}
}
