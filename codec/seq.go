package codec

import (
	"bytes"
	"io"
	"math"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Decode-side allocation bounds. A declared length comes from the peer and
// is never used to size an allocation beyond these.
const (
	MaxReserve      = 4096
	MaxReserveBytes = 64 * 1024
)

func reserve[N constraints.Integer](n N, limit int) int {
	if n <= 0 {
		return 0
	}
	if uint64(n) > uint64(limit) {
		return limit
	}
	return int(n)
}

func writeLen(w io.Writer, n int) error {
	if n > math.MaxInt32 {
		return errors.Wrapf(ErrLengthOverflow, "length %d", n)
	}
	return WriteVarInt(w, int32(n))
}

func readLen(r io.Reader) (int, error) {
	n, err := ReadVarInt(r)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.Wrapf(ErrNegativeLength, "length %d", n)
	}
	return int(n), nil
}

// WriteSeq writes a VarInt element count followed by each element.
func WriteSeq[T any](w io.Writer, s []T, enc EncodeFunc[T]) error {
	if err := writeLen(w, len(s)); err != nil {
		return err
	}
	for _, v := range s {
		if err := enc(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadSeq reads a VarInt element count followed by that many elements.
// An empty sequence decodes as a non-nil empty slice.
func ReadSeq[T any](r io.Reader, dec DecodeFunc[T]) ([]T, error) {
	n, err := readLen(r)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, reserve(n, MaxReserve))
	for i := 0; i < n; i++ {
		v, err := dec(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// SeqEncoder lifts an element encoder to []T.
func SeqEncoder[T any](enc EncodeFunc[T]) EncodeFunc[[]T] {
	return func(w io.Writer, s []T) error {
		return WriteSeq(w, s, enc)
	}
}

// SeqDecoder lifts an element decoder to []T.
func SeqDecoder[T any](dec DecodeFunc[T]) DecodeFunc[[]T] {
	return func(r io.Reader) ([]T, error) {
		return ReadSeq(r, dec)
	}
}

// WriteBytes writes a VarInt byte count followed by the raw bytes.
func WriteBytes(w io.Writer, b []byte) error {
	if err := writeLen(w, len(b)); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	return writeFull(w, b)
}

// ReadBytes reads a VarInt byte count followed by that many raw bytes. The
// buffer grows as bytes arrive, so a forged count cannot force a large
// allocation before the data exists.
func ReadBytes(r io.Reader) ([]byte, error) {
	n, err := readLen(r)
	if err != nil {
		return nil, err
	}
	if n <= MaxReserveBytes {
		out := make([]byte, n)
		if _, err := io.ReadFull(r, out); err != nil {
			return nil, truncated(err)
		}
		return out, nil
	}
	var buf bytes.Buffer
	buf.Grow(MaxReserveBytes)
	if _, err := io.CopyN(&buf, r, int64(n)); err != nil {
		return nil, truncated(err)
	}
	return buf.Bytes(), nil
}

// WriteString writes s as a byte buffer. Only valid UTF-8 is encodable.
func WriteString(w io.Writer, s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}
	if err := writeLen(w, len(s)); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	return writeFull(w, []byte(s))
}

// ReadString reads a byte buffer and requires it to be valid UTF-8.
func ReadString(r io.Reader) (string, error) {
	b, err := ReadBytes(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}
