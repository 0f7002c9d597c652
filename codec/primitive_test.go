package codec

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixedWidthBigEndianLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteInt16(&buf, 0x0102))
	require.NoError(t, WriteUint32(&buf, 0x03040506))
	require.NoError(t, WriteInt64(&buf, -2))
	require.Equal(t, []byte{
		0x01, 0x02,
		0x03, 0x04, 0x05, 0x06,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
	}, buf.Bytes())
}

func TestPrimitiveRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBool(&buf, true))
	require.NoError(t, WriteBool(&buf, false))
	require.NoError(t, WriteInt8(&buf, -5))
	require.NoError(t, WriteUint8(&buf, 250))
	require.NoError(t, WriteInt16(&buf, math.MinInt16))
	require.NoError(t, WriteUint16(&buf, math.MaxUint16))
	require.NoError(t, WriteInt32(&buf, math.MinInt32))
	require.NoError(t, WriteUint32(&buf, math.MaxUint32))
	require.NoError(t, WriteInt64(&buf, math.MinInt64))
	require.NoError(t, WriteUint64(&buf, math.MaxUint64))
	require.NoError(t, WriteFloat32(&buf, 3.5))
	require.NoError(t, WriteFloat64(&buf, -0.125))
	require.Equal(t, 2+1+1+2+2+4+4+8+8+4+8, buf.Len())

	r := bytes.NewReader(buf.Bytes())
	b1, _ := ReadBool(r)
	b2, _ := ReadBool(r)
	i8, _ := ReadInt8(r)
	u8, _ := ReadUint8(r)
	i16, _ := ReadInt16(r)
	u16, _ := ReadUint16(r)
	i32, _ := ReadInt32(r)
	u32, _ := ReadUint32(r)
	i64, _ := ReadInt64(r)
	u64, _ := ReadUint64(r)
	f32, _ := ReadFloat32(r)
	f64, err := ReadFloat64(r)
	require.NoError(t, err)

	require.True(t, b1)
	require.False(t, b2)
	require.Equal(t, int8(-5), i8)
	require.Equal(t, uint8(250), u8)
	require.Equal(t, int16(math.MinInt16), i16)
	require.Equal(t, uint16(math.MaxUint16), u16)
	require.Equal(t, int32(math.MinInt32), i32)
	require.Equal(t, uint32(math.MaxUint32), u32)
	require.Equal(t, int64(math.MinInt64), i64)
	require.Equal(t, uint64(math.MaxUint64), u64)
	require.Equal(t, float32(3.5), f32)
	require.Equal(t, -0.125, f64)
	require.Zero(t, r.Len())
}

func TestBoolDecodesNonzeroAsTrue(t *testing.T) {
	v, err := ReadBool(bytes.NewReader([]byte{0x7f}))
	require.NoError(t, err)
	require.True(t, v)

	var buf bytes.Buffer
	require.NoError(t, WriteBool(&buf, v))
	require.Equal(t, []byte{0x01}, buf.Bytes())
}

func TestInt32FromTwoByteSourceIsIO(t *testing.T) {
	_, err := ReadInt32(bytes.NewReader([]byte{0x00, 0x01}))
	if !IsIO(err) {
		t.Fatalf("expected i/o failure, got %v", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
	}
	if IsMalformed(err) {
		t.Fatalf("truncation must not be malformed: %v", err)
	}
}

func TestWriteFailureIsIO(t *testing.T) {
	err := WriteUint64(failWriter{}, 1)
	require.True(t, IsIO(err))
	require.ErrorIs(t, err, errSinkClosed)
}

var errSinkClosed = errors.New("sink closed")

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errSinkClosed
}
