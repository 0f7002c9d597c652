package codec

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/danmuck/mcwire/version"
)

// Encoder writes a value whose layout never changes across versions.
type Encoder interface {
	Encode(w io.Writer) error
}

// Decoder reads a value whose layout never changes across versions.
// Implementations leave the receiver untouched when they return an error.
type Decoder interface {
	Decode(r io.Reader) error
}

// VersionedEncoder writes a value for the target protocol version.
type VersionedEncoder interface {
	EncodeVersioned(w io.Writer, v version.Version) error
}

// VersionedDecoder reads a value sent by a peer speaking the origin version.
// Implementations leave the receiver untouched when they return an error.
type VersionedDecoder interface {
	DecodeVersioned(r io.Reader, v version.Version) error
}

// Function forms of the capability pairs, used to compose container codecs.
type (
	EncodeFunc[T any]          func(w io.Writer, v T) error
	DecodeFunc[T any]          func(r io.Reader) (T, error)
	VersionedEncodeFunc[T any] func(w io.Writer, v T, ver version.Version) error
	VersionedDecodeFunc[T any] func(r io.Reader, ver version.Version) (T, error)
)

// Write encodes v through its Encoder implementation.
func Write[T Encoder](w io.Writer, v T) error {
	return v.Encode(w)
}

// Read decodes a T through the Decoder implemented by *T.
func Read[T any, PT interface {
	*T
	Decoder
}](r io.Reader) (T, error) {
	var v T
	if err := PT(&v).Decode(r); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// WriteVersioned encodes v through its VersionedEncoder implementation.
func WriteVersioned[T VersionedEncoder](w io.Writer, v T, ver version.Version) error {
	return v.EncodeVersioned(w, ver)
}

// ReadVersioned decodes a T through the VersionedDecoder implemented by *T.
func ReadVersioned[T any, PT interface {
	*T
	VersionedDecoder
}](r io.Reader, ver version.Version) (T, error) {
	var v T
	if err := PT(&v).DecodeVersioned(r, ver); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// BindEncode fixes the version of a versioned encoder so it can be used as
// the element codec of a container.
func BindEncode[T any](enc VersionedEncodeFunc[T], ver version.Version) EncodeFunc[T] {
	return func(w io.Writer, v T) error {
		return enc(w, v, ver)
	}
}

// BindDecode fixes the version of a versioned decoder.
func BindDecode[T any](dec VersionedDecodeFunc[T], ver version.Version) DecodeFunc[T] {
	return func(r io.Reader) (T, error) {
		return dec(r, ver)
	}
}

// ReadInto decodes with dec and stores the result in dst only on success.
func ReadInto[T any](dst *T, r io.Reader, dec DecodeFunc[T]) error {
	v, err := dec(r)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Marshal encodes v into a new byte slice.
func Marshal(v Encoder) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalVersioned encodes v for ver into a new byte slice.
func MarshalVersioned(v VersionedEncoder, ver version.Version) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.EncodeVersioned(&buf, ver); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes exactly one T from data. Leftover input is an error.
func Unmarshal[T any, PT interface {
	*T
	Decoder
}](data []byte) (T, error) {
	r := bytes.NewReader(data)
	v, err := Read[T, PT](r)
	if err == nil {
		err = trailing(r)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// UnmarshalVersioned decodes exactly one T sent at ver from data.
func UnmarshalVersioned[T any, PT interface {
	*T
	VersionedDecoder
}](data []byte, ver version.Version) (T, error) {
	r := bytes.NewReader(data)
	v, err := ReadVersioned[T, PT](r, ver)
	if err == nil {
		err = trailing(r)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func trailing(r *bytes.Reader) error {
	if n := r.Len(); n != 0 {
		return errors.Wrapf(ErrTrailingBytes, "%d bytes", n)
	}
	return nil
}
