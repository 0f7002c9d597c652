package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEmptySeqIsOneByte(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSeq(&buf, []int32{}, WriteInt32))
	require.Equal(t, []byte{0x00}, buf.Bytes())

	out, err := ReadSeq(&buf, ReadInt32)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Empty(t, out)
}

func TestSeqOfThreeInt32(t *testing.T) {
	in := []int32{1, -2, 1 << 20}
	var buf bytes.Buffer
	require.NoError(t, WriteSeq(&buf, in, WriteInt32))
	require.Equal(t, 13, buf.Len())
	require.Equal(t, byte(0x03), buf.Bytes()[0])

	out, err := ReadSeq(&buf, ReadInt32)
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNestedSeqRoundTrip(t *testing.T) {
	in := [][]string{{"a", "bc"}, {}, {"déjà vu"}}
	enc := SeqEncoder(EncodeFunc[string](WriteString))
	dec := SeqDecoder(DecodeFunc[string](ReadString))

	var buf bytes.Buffer
	require.NoError(t, WriteSeq(&buf, in, enc))
	out, err := ReadSeq(&buf, dec)
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSeqForgedLengthDoesNotTrustCount(t *testing.T) {
	// count = MaxInt32, followed by a single element.
	wire := AppendVarInt(nil, 1<<31-1)
	wire = append(wire, 0x00, 0x00, 0x00, 0x01)
	_, err := ReadSeq(bytes.NewReader(wire), ReadInt32)
	require.True(t, IsIO(err))
	require.ErrorIs(t, err, io.EOF)
}

func TestSeqNegativeLengthIsMalformed(t *testing.T) {
	wire := AppendVarInt(nil, -1)
	_, err := ReadSeq(bytes.NewReader(wire), ReadInt32)
	require.ErrorIs(t, err, ErrNegativeLength)
	require.True(t, IsMalformed(err))
}

func TestSeqElementFailurePropagates(t *testing.T) {
	wire := []byte{0x02, 0x01, 0x41}
	_, err := ReadSeq(bytes.NewReader(wire), ReadString)
	require.True(t, IsIO(err))
}

func TestBytesRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 300, MaxReserveBytes, MaxReserveBytes + 1, 3*MaxReserveBytes + 7} {
		in := bytes.Repeat([]byte{0x5a}, n)
		var buf bytes.Buffer
		require.NoError(t, WriteBytes(&buf, in))
		require.Equal(t, VarIntSize(int32(n))+n, buf.Len())

		out, err := ReadBytes(&buf)
		require.NoError(t, err)
		require.Equal(t, in, out)
	}
}

func TestBytesShortOfDeclaredLength(t *testing.T) {
	for _, n := range []int{10, 2 * MaxReserveBytes} {
		wire := AppendVarInt(nil, int32(n))
		wire = append(wire, make([]byte, n/2)...)
		_, err := ReadBytes(bytes.NewReader(wire))
		require.True(t, IsIO(err), "n=%d", n)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	}
}

func TestEmptyStringIsOneByte(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteString(&buf, ""))
	require.Equal(t, []byte{0x00}, buf.Bytes())

	s, err := ReadString(&buf)
	require.NoError(t, err)
	require.Equal(t, "", s)
}

func TestStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteString(&buf, "héllo"))
	require.Equal(t, append([]byte{0x06}, "héllo"...), buf.Bytes())

	s, err := ReadString(&buf)
	require.NoError(t, err)
	require.Equal(t, "héllo", s)
}

func TestStringInvalidUTF8OnWireIsMalformed(t *testing.T) {
	wire := []byte{0x02, 0xc3, 0x28}
	_, err := ReadString(bytes.NewReader(wire))
	require.ErrorIs(t, err, ErrInvalidUTF8)
	require.True(t, IsMalformed(err))
	require.False(t, IsIO(err))
}

func TestStringInvalidUTF8IsNotEncodable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteString(&buf, string([]byte{0xff}))
	require.ErrorIs(t, err, ErrInvalidUTF8)
	require.Zero(t, buf.Len())
}
