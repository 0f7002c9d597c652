package codec

import "io"

// Option is a value that may be absent. On the wire it is a presence
// flag followed by the value when present.
type Option[T any] struct {
	Value T
	Valid bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{Value: v, Valid: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.Value, o.Valid
}

func WriteOption[T any](w io.Writer, o Option[T], enc EncodeFunc[T]) error {
	if err := WriteBool(w, o.Valid); err != nil {
		return err
	}
	if !o.Valid {
		return nil
	}
	return enc(w, o.Value)
}

func ReadOption[T any](r io.Reader, dec DecodeFunc[T]) (Option[T], error) {
	present, err := ReadBool(r)
	if err != nil || !present {
		return Option[T]{}, err
	}
	v, err := dec(r)
	if err != nil {
		return Option[T]{}, err
	}
	return Some(v), nil
}

// OptionEncoder lifts an element encoder to Option[T].
func OptionEncoder[T any](enc EncodeFunc[T]) EncodeFunc[Option[T]] {
	return func(w io.Writer, o Option[T]) error {
		return WriteOption(w, o, enc)
	}
}

// OptionDecoder lifts an element decoder to Option[T].
func OptionDecoder[T any](dec DecodeFunc[T]) DecodeFunc[Option[T]] {
	return func(r io.Reader) (Option[T], error) {
		return ReadOption(r, dec)
	}
}
