package codec

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarIntEncodedLengths(t *testing.T) {
	cases := []struct {
		name string
		v    int32
		want []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one chunk max", 127, []byte{0x7f}},
		{"two chunks min", 128, []byte{0x80, 0x01}},
		{"300", 300, []byte{0xac, 0x02}},
		{"max int32", math.MaxInt32, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
		{"minus one", -1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
		{"min int32", math.MinInt32, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteVarInt(&buf, tc.v))
			require.Equal(t, tc.want, buf.Bytes())
			require.Equal(t, len(tc.want), VarIntSize(tc.v))

			got, err := ReadVarInt(&buf)
			require.NoError(t, err)
			require.Equal(t, tc.v, got)
			require.Zero(t, buf.Len())
		})
	}
}

func TestVarLongEncodedLengths(t *testing.T) {
	cases := []struct {
		v    int64
		size int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{math.MaxInt32, 5},
		{math.MaxInt64, 9},
		{-1, 10},
		{math.MinInt64, 10},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		require.NoError(t, WriteVarLong(&buf, tc.v))
		require.Equal(t, tc.size, buf.Len(), "value %d", tc.v)
		require.Equal(t, tc.size, VarLongSize(tc.v))

		got, err := ReadVarLong(&buf)
		require.NoError(t, err)
		require.Equal(t, tc.v, got)
	}
}

func TestVarIntTooManyChunksIsMalformed(t *testing.T) {
	wire := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	_, err := ReadVarInt(bytes.NewReader(wire))
	require.ErrorIs(t, err, ErrVarIntTooLong)
	require.True(t, IsMalformed(err))
	require.False(t, IsIO(err))
}

func TestVarLongTooManyChunksIsMalformed(t *testing.T) {
	wire := bytes.Repeat([]byte{0xff}, 11)
	_, err := ReadVarLong(bytes.NewReader(wire))
	require.ErrorIs(t, err, ErrVarIntTooLong)
}

func TestVarIntTruncatedIsIO(t *testing.T) {
	_, err := ReadVarInt(bytes.NewReader([]byte{0x80, 0x80}))
	require.True(t, IsIO(err))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.False(t, IsMalformed(err))
}

func TestVarIntEmptySourceIsCleanEOF(t *testing.T) {
	_, err := ReadVarInt(bytes.NewReader(nil))
	require.True(t, IsIO(err))
	require.ErrorIs(t, err, io.EOF)
}

func TestVarIntWithoutByteReader(t *testing.T) {
	// onlyReader hides bytes.Reader's ReadByte.
	r := onlyReader{bytes.NewReader([]byte{0xac, 0x02, 0x01})}
	var v VarInt
	require.NoError(t, v.Decode(r))
	require.Equal(t, VarInt(300), v)

	var next VarInt
	require.NoError(t, next.Decode(r))
	require.Equal(t, VarInt(1), next)
}

func TestVarIntDecodeFailureLeavesReceiver(t *testing.T) {
	v := VarInt(42)
	err := v.Decode(bytes.NewReader([]byte{0xff}))
	require.Error(t, err)
	require.Equal(t, VarInt(42), v)
}

func TestAppendVarInt(t *testing.T) {
	buf := AppendVarInt([]byte{0xaa}, 128)
	require.Equal(t, []byte{0xaa, 0x80, 0x01}, buf)
	buf = AppendVarLong(buf[:0], 1)
	require.Equal(t, []byte{0x01}, buf)
}

type onlyReader struct {
	r io.Reader
}

func (o onlyReader) Read(p []byte) (int, error) {
	return o.r.Read(p)
}
