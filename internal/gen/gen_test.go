package gen

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danmuck/mcwire/internal/testutil/testlog"
)

const prelude = `package demo

import (
	"github.com/danmuck/mcwire/codec"
	"github.com/google/uuid"
)

var _ codec.VarInt
var _ uuid.UUID
`

// render generates a single source file and returns the formatted output.
func render(t *testing.T, src string) string {
	t.Helper()
	pkg, err := ParseSource(map[string]string{"demo.go": prelude + src})
	require.NoError(t, err)
	files, err := pkg.Render(DefaultSuffix)
	require.NoError(t, err)
	out, ok := files["demo"+DefaultSuffix]
	require.True(t, ok, "no output for demo.go: %v", files)
	_, err = parser.ParseFile(token.NewFileSet(), "out.go", out, 0)
	require.NoError(t, err, "generated source does not parse:\n%s", out)
	return string(out)
}

func renderErr(t *testing.T, src string) error {
	t.Helper()
	pkg, err := ParseSource(map[string]string{"demo.go": prelude + src})
	if err != nil {
		return err
	}
	_, err = pkg.Render(DefaultSuffix)
	return err
}

func requireContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		require.Contains(t, out, w, "generated:\n%s", out)
	}
}

func TestPlainStruct(t *testing.T) {
	testlog.Start(t)
	out := render(t, `
//mcgen:struct
type Point struct {
	X, Y int32
	Name string
	Tag  codec.VarInt
}
`)
	require.True(t, strings.HasPrefix(out, Header))
	requireContains(t, out,
		"func (p Point) Encode(w io.Writer) error",
		"codec.WriteInt32(w, p.X)",
		"codec.WriteInt32(w, p.Y)",
		"codec.WriteString(w, p.Name)",
		"p.Tag.Encode(w)",
		"func (p *Point) Decode(r io.Reader) error",
		"codec.ReadInto(&out.Y, r, codec.ReadInt32)",
		"out.Tag.Decode(r)",
		"*p = out",
		"func (p Point) EncodeVersioned(w io.Writer, ver version.Version) error",
		`codec.UnsupportedVersion("Point", ver)`,
	)
	require.NotContains(t, out, "github.com/google/uuid")
	// Field order is declaration order.
	require.Less(t, strings.Index(out, "p.X)"), strings.Index(out, "p.Y)"))
	require.Less(t, strings.Index(out, "p.Y)"), strings.Index(out, "p.Name)"))
}

func TestPacketDirective(t *testing.T) {
	testlog.Start(t)
	out := render(t, `
//mcgen:packet id=0x1a
type KeepAlive struct {
	ID int64
}

//mcgen:packet id=0
type Empty struct{}
`)
	requireContains(t, out,
		"const KeepAliveID int32 = 0x1A",
		"func (KeepAlive) PacketID() int32 { return KeepAliveID }",
		"const EmptyID int32 = 0x00",
		"func (x Empty) Encode(w io.Writer) error",
	)
}

func TestReceiverAvoidsParameterNames(t *testing.T) {
	testlog.Start(t)
	out := render(t, `
//mcgen:struct
type Request struct {
	A int8
}

//mcgen:struct
type Window struct {
	B int8
}
`)
	requireContains(t, out,
		"func (x Request) Encode(w io.Writer) error",
		"func (x *Window) Decode(r io.Reader) error",
	)
}

func TestVersionGatedFields(t *testing.T) {
	testlog.Start(t)
	out := render(t, `
//mcgen:packet id=0x00
type Login struct {
	Name  string
	Key   []byte    `+"`mc:\"since=1.19,until=1.19.2\"`"+`
	ID    uuid.UUID `+"`mc:\"since=1.20\"`"+`
	Old   bool      `+"`mc:\"until=1.12.2\"`"+`
}
`)
	requireContains(t, out,
		"func (l Login) EncodeVersioned(w io.Writer, ver version.Version) error",
		"if !ver.Valid() {",
		"if ver.Between(version.V1_19, version.V1_19_2) {",
		// 1.20 shares a wire number with 1.20.1.
		"if ver.AtLeast(version.V1_20_1) {",
		"if ver.AtMost(version.V1_12_2) {",
		"codec.ReadInto(&out.ID, r, codec.ReadUUID)",
	)
	require.NotContains(t, out, "func (l Login) Encode(w io.Writer)")
	require.NotContains(t, out, "func (l *Login) Decode(r io.Reader)")
}

func TestTypeLevelRange(t *testing.T) {
	testlog.Start(t)
	out := render(t, `
//mcgen:packet id=0x03 since=1.19.3 until=1.20.4
type Chat struct {
	Message string
}
`)
	requireContains(t, out, "if !ver.Valid() || !ver.Between(version.V1_19_3, version.V1_20_4) {")
}

func TestVersionedPropagates(t *testing.T) {
	testlog.Start(t)
	out := render(t, `
//mcgen:struct
type Inner struct {
	A int32 `+"`mc:\"since=1.16\"`"+`
}

//mcgen:struct
type Middle struct {
	In Inner
}

//mcgen:struct
type Outer struct {
	Items []Middle
	Plain int8
}
`)
	requireContains(t, out,
		"out.In.DecodeVersioned(r, ver)",
		"codec.WriteSeq(w, x.Items, codec.BindEncode(codec.WriteVersioned[Middle], ver))",
		"codec.ReadInto(&out.Items, r, codec.SeqDecoder(codec.BindDecode(codec.ReadVersioned[Middle], ver)))",
		"codec.WriteInt8(w, x.Plain)",
	)
	require.NotContains(t, out, "func (x Outer) Encode(w io.Writer)")
	require.NotContains(t, out, "func (m Middle) Encode(w io.Writer)")
}

func TestContainers(t *testing.T) {
	testlog.Start(t)
	out := render(t, `
//mcgen:struct
type Point struct {
	X int32
}

//mcgen:struct
type Bag struct {
	Points  []Point
	Grid    [][]int32
	Maybe   codec.Option[uuid.UUID]
	Nested  codec.Option[[]string]
	Boxed   *Point
	Shared  []*Point
	Payload []byte
}
`)
	requireContains(t, out,
		"codec.WriteSeq(w, b.Points, codec.Write[Point])",
		"codec.ReadInto(&out.Points, r, codec.SeqDecoder(codec.Read[Point]))",
		"codec.WriteSeq(w, b.Grid, codec.SeqEncoder(codec.WriteInt32))",
		"codec.WriteOption(w, b.Maybe, codec.WriteUUID)",
		"codec.ReadInto(&out.Maybe, r, codec.OptionDecoder(codec.ReadUUID))",
		"codec.WriteOption(w, b.Nested, codec.SeqEncoder(codec.WriteString))",
		"codec.WritePtr(w, b.Boxed, codec.Write[Point])",
		"codec.ReadInto(&out.Boxed, r, codec.PtrDecoder(codec.Read[Point]))",
		"codec.WriteSeq(w, b.Shared, codec.PtrEncoder(codec.Write[Point]))",
		"codec.WriteBytes(w, b.Payload)",
	)
}

func TestEnum(t *testing.T) {
	testlog.Start(t)
	out := render(t, `
//mcgen:enum
type Hand int32

const (
	HandLeft Hand = iota
	HandRight
)

const unrelated = 4
`)
	requireContains(t, out,
		"func (h Hand) Encode(w io.Writer) error",
		"case HandLeft:",
		"return codec.WriteTag(w, 0, 2)",
		"return codec.WriteTag(w, 1, 2)",
		`return codec.UnknownVariant("Hand", h)`,
		"index, err := codec.ReadTag(r, 2)",
		"*h = [...]Hand{HandLeft, HandRight}[index]",
	)
}

func TestEnumTypedConversionConstants(t *testing.T) {
	testlog.Start(t)
	out := render(t, `
//mcgen:enum
type Mode uint8

const (
	ModeA = Mode(3)
	ModeB = Mode(7)
)
`)
	requireContains(t, out, "*m = [...]Mode{ModeA, ModeB}[index]")
}

func TestUnion(t *testing.T) {
	testlog.Start(t)
	out := render(t, `
//mcgen:union Start Move Stop
type Action interface {
	isAction()
}

type Start struct{}

type Move struct {
	DX, DY float32
}

//mcgen:struct
type Stop struct {
	Reason string
}

//mcgen:struct
type Step struct {
	Do Action
}
`)
	requireContains(t, out,
		"func (Start) isAction() {}",
		"func (Move) isAction() {}",
		"func (Stop) isAction() {}",
		"func WriteAction(w io.Writer, v Action) error",
		"if err := codec.WriteTag(w, 1, 3); err != nil {",
		"func ReadAction(r io.Reader) (Action, error)",
		"var v Move",
		"func WriteActionVersioned(w io.Writer, v Action, ver version.Version) error",
		"func ReadActionVersioned(r io.Reader, ver version.Version) (Action, error)",
		"WriteAction(w, s.Do)",
		"codec.ReadInto(&out.Do, r, ReadAction)",
	)
}

func TestVersionedUnionOmitsPlainPair(t *testing.T) {
	testlog.Start(t)
	out := render(t, `
//mcgen:union A B
type Msg interface {
	isMsg()
}

type A struct {
	N int32 `+"`mc:\"since=1.18\"`"+`
}

type B struct{}

//mcgen:struct
type Envelope struct {
	Body Msg
	More []Msg
}
`)
	require.NotContains(t, out, "func WriteMsg(")
	require.NotContains(t, out, "func (a A) Encode(w io.Writer)")
	requireContains(t, out,
		"func (b B) Encode(w io.Writer) error",
		"func WriteMsgVersioned(",
		"WriteMsgVersioned(w, x.Body, ver)",
		"codec.BindEncode(WriteMsgVersioned, ver)",
		"codec.BindDecode(ReadMsgVersioned, ver)",
	)
}

func TestHandWrittenFieldType(t *testing.T) {
	testlog.Start(t)
	out := render(t, `
type Angle uint8

func (a Angle) Encode(w io.Writer) error { return nil }
func (a *Angle) Decode(r io.Reader) error { return nil }

type Chunk struct{}

func (c Chunk) EncodeVersioned(w io.Writer, v version.Version) error { return nil }
func (c *Chunk) DecodeVersioned(r io.Reader, v version.Version) error { return nil }

//mcgen:struct
type Look struct {
	Yaw   Angle
	Data  Chunk
}
`)
	requireContains(t, out,
		"l.Yaw.Encode(w)",
		"l.Data.EncodeVersioned(w, ver)",
		"out.Data.DecodeVersioned(r, ver)",
	)
	require.NotContains(t, out, "func (l Look) Encode(w io.Writer)")
}

func TestGenerationErrors(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"map field", "//mcgen:struct\ntype A struct{ M map[string]int32 }", "unsupported type map[string]int32"},
		{"platform int", "//mcgen:struct\ntype A struct{ N int }", "type int has no codec"},
		{"fixed array", "//mcgen:struct\ntype A struct{ B [4]byte }", "fixed-size arrays"},
		{"embedded", "type B struct{}\n//mcgen:struct\ntype A struct{ B }", "embedded field"},
		{"blank", "//mcgen:struct\ntype A struct{ _ int32 }", "blank fields"},
		{"unknown release", "//mcgen:struct\ntype A struct{ N int32 `mc:\"since=9.9\"` }", `unknown release "9.9"`},
		{"empty range", "//mcgen:struct until=1.12 since=1.20\ntype A struct{}", "empty range"},
		{"bad tag option", "//mcgen:struct\ntype A struct{ N int32 `mc:\"name=x\"` }", `unknown option "name"`},
		{"packet without id", "//mcgen:packet\ntype A struct{}", "requires id="},
		{"bad packet id", "//mcgen:packet id=zz\ntype A struct{}", "bad packet id"},
		{"unknown directive", "//mcgen:record\ntype A struct{}", "unknown directive mcgen:record"},
		{"two directives", "//mcgen:struct\n//mcgen:struct\ntype A struct{}", "multiple mcgen directives"},
		{"struct on non-struct", "//mcgen:struct\ntype A int32", "requires a struct type"},
		{"enum on string", "//mcgen:enum\ntype A string", "requires an integer type"},
		{"enum without constants", "//mcgen:enum\ntype A int32", "declares no constants"},
		{"enum blank constant", "//mcgen:enum\ntype A int32\n\nconst (\n\tA0 A = iota\n\t_\n\tA2\n)", "blank constant shifts wire indices"},
		{"union missing variant", "//mcgen:union X\ntype U interface{ isU() }", "variant X is not a struct type"},
		{"union exported marker", "type X struct{}\n//mcgen:union X\ntype U interface{ IsU() }", "marker method must be unexported"},
		{"union no variants", "//mcgen:union\ntype U interface{ isU() }", "lists no variants"},
		{"union duplicate variant", "type X struct{}\n//mcgen:union X X\ntype U interface{ isU() }", "listed twice"},
		{"generic", "//mcgen:struct\ntype A[T any] struct{ V T }", "generic types"},
		{"unknown named", "//mcgen:struct\ntype A struct{ B Missing }", "type Missing has no codec"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := renderErr(t, tc.src)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestGenerateWritesAndCleansUp(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	write := func(name, src string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	write("a.go", "package demo\n\n//mcgen:struct\ntype A struct{ N int32 }\n")
	write("b.go", "package demo\n\n//mcgen:struct\ntype B struct{ S string }\n")
	write("c.go", "package demo\n\ntype C struct{}\n")
	write("handwritten"+DefaultSuffix, "package demo\n")

	paths, err := Generate(context.Background(), dir, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a"+DefaultSuffix),
		filepath.Join(dir, "b"+DefaultSuffix),
	}, paths)

	first, err := os.ReadFile(paths[0])
	require.NoError(t, err)

	// Rerunning skips the outputs as inputs and produces identical bytes.
	_, err = Generate(context.Background(), dir, Options{})
	require.NoError(t, err)
	second, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))

	// Dropping the directive removes the stale output but never a file
	// without the generated header.
	write("b.go", "package demo\n\ntype B struct{ S string }\n")
	paths, err = Generate(context.Background(), dir, Options{})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	_, err = os.Stat(filepath.Join(dir, "b"+DefaultSuffix))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "handwritten"+DefaultSuffix))
	require.NoError(t, err)
}

func TestGenerateDryRunAndSuffix(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"),
		[]byte("package demo\n\n//mcgen:enum\ntype E uint8\n\nconst EOne E = 1\n"), 0o644))

	paths, err := Generate(context.Background(), dir, Options{Suffix: "_wire.go", DryRun: true})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "a_wire.go")}, paths)
	_, err = os.Stat(paths[0])
	require.True(t, os.IsNotExist(err))

	_, err = Generate(context.Background(), dir, Options{Suffix: "_wire.txt"})
	require.Error(t, err)
}

func TestGenerateStopsWhenCancelled(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"),
		[]byte("package demo\n\n//mcgen:struct\ntype A struct{ N int32 }\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Generate(ctx, dir, Options{})
	require.ErrorIs(t, err, context.Canceled)
	_, err = os.Stat(filepath.Join(dir, "a"+DefaultSuffix))
	require.True(t, os.IsNotExist(err))
}

// declNames lists the top-level declarations of src as "Recv.Name" or
// "Name".
func declNames(t *testing.T, src []byte) []string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "", src, 0)
	require.NoError(t, err)
	var names []string
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil {
				recv := d.Recv.List[0].Type
				if star, ok := recv.(*ast.StarExpr); ok {
					recv = star.X
				}
				name = exprString(recv) + "." + name
			}
			names = append(names, name)
		case *ast.GenDecl:
			for _, s := range d.Specs {
				if vs, ok := s.(*ast.ValueSpec); ok {
					for _, n := range vs.Names {
						names = append(names, n.Name)
					}
				}
			}
		}
	}
	return names
}

func TestCheckedInOutputIsCurrent(t *testing.T) {
	testlog.Start(t)
	for _, dir := range []string{filepath.Join("..", "..", "packet"), "fixture"} {
		t.Run(filepath.Base(dir), func(t *testing.T) {
			pkg, err := Load(dir, DefaultSuffix)
			require.NoError(t, err)
			files, err := pkg.Render(DefaultSuffix)
			require.NoError(t, err)

			names := pkg.OutputNames(DefaultSuffix)
			require.Len(t, files, len(names))
			for _, name := range names {
				have, err := os.ReadFile(filepath.Join(dir, name))
				require.NoError(t, err, "run go generate in %s", dir)
				require.Equal(t, declNames(t, files[name]), declNames(t, have), name)
			}
		})
	}
}
