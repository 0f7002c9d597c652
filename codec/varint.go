package codec

import (
	"io"

	"github.com/danmuck/mcwire/version"
)

// Maximum encoded chunk counts.
const (
	MaxVarIntLen  = 5
	MaxVarLongLen = 10
)

// VarInt is an int32 carried as a LEB128 sequence of its unsigned bit
// pattern. Negative values always take MaxVarIntLen bytes.
type VarInt int32

// VarLong is the int64 counterpart of VarInt.
type VarLong int64

// AppendVarInt appends the minimal encoding of v to buf.
func AppendVarInt(buf []byte, v int32) []byte {
	return appendUvarint(buf, uint64(uint32(v)))
}

// AppendVarLong appends the minimal encoding of v to buf.
func AppendVarLong(buf []byte, v int64) []byte {
	return appendUvarint(buf, uint64(v))
}

func appendUvarint(buf []byte, u uint64) []byte {
	for u&^0x7f != 0 {
		buf = append(buf, byte(u&0x7f)|0x80)
		u >>= 7
	}
	return append(buf, byte(u))
}

// VarIntSize returns the encoded length of v.
func VarIntSize(v int32) int {
	return uvarintSize(uint64(uint32(v)))
}

// VarLongSize returns the encoded length of v.
func VarLongSize(v int64) int {
	return uvarintSize(uint64(v))
}

func uvarintSize(u uint64) int {
	n := 1
	for u >= 0x80 {
		u >>= 7
		n++
	}
	return n
}

func WriteVarInt(w io.Writer, v int32) error {
	var b [MaxVarIntLen]byte
	return writeFull(w, AppendVarInt(b[:0], v))
}

func ReadVarInt(r io.Reader) (int32, error) {
	u, err := readUvarint(r, MaxVarIntLen)
	return int32(uint32(u)), err
}

func WriteVarLong(w io.Writer, v int64) error {
	var b [MaxVarLongLen]byte
	return writeFull(w, AppendVarLong(b[:0], v))
}

func ReadVarLong(r io.Reader) (int64, error) {
	u, err := readUvarint(r, MaxVarLongLen)
	return int64(u), err
}

// readUvarint reads chunks until one without the continuation bit. A
// sequence still continuing after maxLen chunks is corrupt.
func readUvarint(r io.Reader, maxLen int) (uint64, error) {
	var u uint64
	for i := 0; i < maxLen; i++ {
		b, err := rawByte(r)
		if err != nil {
			if i == 0 {
				return 0, ioFailure(err)
			}
			return 0, truncated(err)
		}
		u |= uint64(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			return u, nil
		}
	}
	return 0, ErrVarIntTooLong
}

func (v VarInt) Encode(w io.Writer) error {
	return WriteVarInt(w, int32(v))
}

func (v *VarInt) Decode(r io.Reader) error {
	n, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	*v = VarInt(n)
	return nil
}

func (v VarInt) EncodeVersioned(w io.Writer, _ version.Version) error {
	return v.Encode(w)
}

func (v *VarInt) DecodeVersioned(r io.Reader, _ version.Version) error {
	return v.Decode(r)
}

func (v VarLong) Encode(w io.Writer) error {
	return WriteVarLong(w, int64(v))
}

func (v *VarLong) Decode(r io.Reader) error {
	n, err := ReadVarLong(r)
	if err != nil {
		return err
	}
	*v = VarLong(n)
	return nil
}

func (v VarLong) EncodeVersioned(w io.Writer, _ version.Version) error {
	return v.Encode(w)
}

func (v *VarLong) DecodeVersioned(r io.Reader, _ version.Version) error {
	return v.Decode(r)
}
