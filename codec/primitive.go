package codec

import (
	"encoding/binary"
	"io"
	"math"
)

func writeFull(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return ioFailure(err)
}

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	return ioFailure(err)
}

func readByte(r io.Reader) (byte, error) {
	b, err := rawByte(r)
	return b, ioFailure(err)
}

// rawByte reads one byte, preferring io.ByteReader when r offers it.
func rawByte(r io.Reader) (byte, error) {
	if br, ok := r.(io.ByteReader); ok {
		return br.ReadByte()
	}
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// WriteBool writes 0x01 for true and 0x00 for false.
func WriteBool(w io.Writer, v bool) error {
	b := [1]byte{0}
	if v {
		b[0] = 1
	}
	return writeFull(w, b[:])
}

// ReadBool reads one byte; any nonzero value is true.
func ReadBool(r io.Reader) (bool, error) {
	b, err := readByte(r)
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func WriteUint8(w io.Writer, v uint8) error {
	return writeFull(w, []byte{v})
}

func ReadUint8(r io.Reader) (uint8, error) {
	return readByte(r)
}

func WriteInt8(w io.Writer, v int8) error {
	return WriteUint8(w, uint8(v))
}

func ReadInt8(r io.Reader) (int8, error) {
	v, err := readByte(r)
	return int8(v), err
}

func WriteUint16(w io.Writer, v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return writeFull(w, b[:])
}

func ReadUint16(r io.Reader) (uint16, error) {
	var b [2]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

func WriteInt16(w io.Writer, v int16) error {
	return WriteUint16(w, uint16(v))
}

func ReadInt16(r io.Reader) (int16, error) {
	v, err := ReadUint16(r)
	return int16(v), err
}

func WriteUint32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return writeFull(w, b[:])
}

func ReadUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func WriteInt32(w io.Writer, v int32) error {
	return WriteUint32(w, uint32(v))
}

func ReadInt32(r io.Reader) (int32, error) {
	v, err := ReadUint32(r)
	return int32(v), err
}

func WriteUint64(w io.Writer, v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return writeFull(w, b[:])
}

func ReadUint64(r io.Reader) (uint64, error) {
	var b [8]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

func WriteInt64(w io.Writer, v int64) error {
	return WriteUint64(w, uint64(v))
}

func ReadInt64(r io.Reader) (int64, error) {
	v, err := ReadUint64(r)
	return int64(v), err
}

// WriteFloat32 writes the IEEE 754 bit pattern big-endian.
func WriteFloat32(w io.Writer, v float32) error {
	return WriteUint32(w, math.Float32bits(v))
}

func ReadFloat32(r io.Reader) (float32, error) {
	v, err := ReadUint32(r)
	return math.Float32frombits(v), err
}

// WriteFloat64 writes the IEEE 754 bit pattern big-endian.
func WriteFloat64(w io.Writer, v float64) error {
	return WriteUint64(w, math.Float64bits(v))
}

func ReadFloat64(r io.Reader) (float64, error) {
	v, err := ReadUint64(r)
	return math.Float64frombits(v), err
}
