package codec

import (
	"io"

	"github.com/cockroachdb/errors"
)

// WriteTag writes the zero-based declaration index of a union or enum
// variant. index must lie in [0, n).
func WriteTag(w io.Writer, index, n int) error {
	if index < 0 || index >= n {
		return errors.Wrapf(ErrInvalidVariant, "index %d of %d", index, n)
	}
	return WriteVarInt(w, int32(index))
}

// ReadTag reads a variant index and checks it against the n declared
// variants.
func ReadTag(r io.Reader, n int) (int, error) {
	index, err := ReadVarInt(r)
	if err != nil {
		return 0, err
	}
	if index < 0 || int(index) >= n {
		return 0, errors.Wrapf(ErrInvalidVariant, "index %d of %d", index, n)
	}
	return int(index), nil
}

// UnknownVariant reports a value that is not one of the declared variants
// of typeName, found while encoding.
func UnknownVariant(typeName string, v any) error {
	return errors.Wrapf(ErrInvalidVariant, "%s: undeclared variant %v", typeName, v)
}
