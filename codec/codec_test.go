package codec

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/danmuck/mcwire/version"
)

type point struct {
	X, Y int32
}

func (p point) Encode(w io.Writer) error {
	if err := WriteInt32(w, p.X); err != nil {
		return err
	}
	return WriteInt32(w, p.Y)
}

func (p *point) Decode(r io.Reader) error {
	var out point
	var err error
	if out.X, err = ReadInt32(r); err != nil {
		return err
	}
	if out.Y, err = ReadInt32(r); err != nil {
		return err
	}
	*p = out
	return nil
}

// stamp carries Z only from 1.14 on.
type stamp struct {
	point
	Z int32
}

func (s stamp) EncodeVersioned(w io.Writer, ver version.Version) error {
	if !ver.Valid() {
		return UnsupportedVersion("stamp", ver)
	}
	if err := s.point.Encode(w); err != nil {
		return err
	}
	if ver.AtLeast(version.V1_14) {
		return WriteInt32(w, s.Z)
	}
	return nil
}

func (s *stamp) DecodeVersioned(r io.Reader, ver version.Version) error {
	if !ver.Valid() {
		return UnsupportedVersion("stamp", ver)
	}
	var out stamp
	if err := out.point.Decode(r); err != nil {
		return err
	}
	if ver.AtLeast(version.V1_14) {
		if err := ReadInto(&out.Z, r, ReadInt32); err != nil {
			return err
		}
	}
	*s = out
	return nil
}

func TestMarshalUnmarshal(t *testing.T) {
	data, err := Marshal(point{X: 1, Y: -1})
	require.NoError(t, err)
	require.Len(t, data, 8)

	p, err := Unmarshal[point](data)
	require.NoError(t, err)
	require.Equal(t, point{X: 1, Y: -1}, p)
}

func TestUnmarshalTrailingBytesIsMalformed(t *testing.T) {
	data, err := Marshal(point{X: 1, Y: 2})
	require.NoError(t, err)

	p, err := Unmarshal[point](append(data, 0x00))
	require.ErrorIs(t, err, ErrTrailingBytes)
	require.True(t, IsMalformed(err))
	require.Zero(t, p)
}

func TestDecodeFailureLeavesReceiverUntouched(t *testing.T) {
	p := point{X: 7, Y: 7}
	err := p.Decode(bytes.NewReader([]byte{0, 0, 0, 1, 0}))
	require.True(t, IsIO(err))
	require.Equal(t, point{X: 7, Y: 7}, p)
}

func TestVersionedFieldPresence(t *testing.T) {
	in := stamp{point: point{X: 3, Y: 4}, Z: 5}

	old, err := MarshalVersioned(in, version.V1_12_2)
	require.NoError(t, err)
	require.Len(t, old, 8)

	cur, err := MarshalVersioned(in, version.V1_21_1)
	require.NoError(t, err)
	require.Len(t, cur, 12)

	got, err := UnmarshalVersioned[stamp](old, version.V1_12_2)
	require.NoError(t, err)
	require.Equal(t, stamp{point: in.point}, got)

	got, err = UnmarshalVersioned[stamp](cur, version.V1_21_1)
	require.NoError(t, err)
	require.Equal(t, in, got)
}

func TestVersionedUnknownVersionFails(t *testing.T) {
	_, err := MarshalVersioned(stamp{}, version.Unknown)
	require.ErrorIs(t, err, ErrUnsupportedVersion)
	require.True(t, IsUnsupportedVersion(err))
	require.False(t, IsMalformed(err))
}

func TestBoundVersionedElements(t *testing.T) {
	in := []stamp{{Z: 1}, {point: point{X: 9}, Z: 2}}
	ver := version.V1_16_5

	var buf bytes.Buffer
	require.NoError(t, WriteSeq(&buf, in, BindEncode(WriteVersioned[stamp], ver)))
	require.Equal(t, 1+2*12, buf.Len())

	out, err := ReadSeq(&buf, BindDecode(ReadVersioned[stamp], ver))
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestGenericAdapters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSeq(&buf, []point{{1, 2}}, Write[point]))
	out, err := ReadSeq(&buf, Read[point])
	require.NoError(t, err)
	require.Equal(t, []point{{1, 2}}, out)
}

func TestOneWriterOneReaderPreservesOrder(t *testing.T) {
	pr, pw := io.Pipe()
	const n = 200

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		defer pw.Close()
		for i := 0; i < n; i++ {
			if err := WriteVarInt(pw, int32(i*1000)); err != nil {
				return err
			}
			if err := WriteString(pw, "tick"); err != nil {
				return err
			}
		}
		return nil
	})

	got := make([]int32, 0, n)
	g.Go(func() error {
		defer pr.Close()
		for i := 0; i < n; i++ {
			v, err := ReadVarInt(pr)
			if err != nil {
				return err
			}
			if _, err := ReadString(pr); err != nil {
				return err
			}
			got = append(got, v)
		}
		_, err := ReadVarInt(pr)
		if !IsIO(err) {
			return err
		}
		return nil
	})

	require.NoError(t, g.Wait())
	require.Len(t, got, n)
	for i, v := range got {
		require.Equal(t, int32(i*1000), v)
	}
}
