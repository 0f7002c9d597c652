package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/danmuck/mcwire/version"
)

// Header marks generated files.
const Header = "// Code generated by mcgen. DO NOT EDIT."

var fileTmpl = template.Must(template.New("file").Parse(`{{.Header}}

package {{.Package}}

import (
	"io"

	"github.com/danmuck/mcwire/codec"
	"github.com/danmuck/mcwire/version"
)
{{range .Blocks}}
{{.}}
{{end}}`))

var structTmpl = template.Must(template.New("struct").Parse(`
{{- if .Packet}}
// {{.Name}}ID is the packet identifier of {{.Name}}.
const {{.Name}}ID int32 = {{.ID}}

// PacketID returns {{.Name}}ID.
func ({{.Name}}) PacketID() int32 { return {{.Name}}ID }

{{end}}
{{- range .Markers}}
func ({{$.Name}}) {{.}}() {}

{{end}}
{{- if not .Versioned}}
// Encode writes the fields of {{.Name}} in declaration order.
func ({{.Recv}} {{.Name}}) Encode(w io.Writer) error {
{{- range .EncodePlain}}
	{{.}}
{{- end}}
	return nil
}

// Decode reads {{.Name}} in declaration order. The receiver is assigned
// only after every field decoded.
func ({{.Recv}} *{{.Name}}) Decode(r io.Reader) error {
	var out {{.Name}}
{{- range .DecodePlain}}
	{{.}}
{{- end}}
	*{{.Recv}} = out
	return nil
}

// EncodeVersioned rejects unknown versions and otherwise encodes as Encode.
func ({{.Recv}} {{.Name}}) EncodeVersioned(w io.Writer, ver version.Version) error {
	if !ver.Valid() {
		return codec.UnsupportedVersion("{{.Name}}", ver)
	}
	return {{.Recv}}.Encode(w)
}

// DecodeVersioned rejects unknown versions and otherwise decodes as Decode.
func ({{.Recv}} *{{.Name}}) DecodeVersioned(r io.Reader, ver version.Version) error {
	if !ver.Valid() {
		return codec.UnsupportedVersion("{{.Name}}", ver)
	}
	return {{.Recv}}.Decode(r)
}
{{- else}}
// EncodeVersioned writes the fields of {{.Name}} present at ver.
func ({{.Recv}} {{.Name}}) EncodeVersioned(w io.Writer, ver version.Version) error {
	if {{.Gate}} {
		return codec.UnsupportedVersion("{{.Name}}", ver)
	}
{{- range .EncodeVer}}
	{{.}}
{{- end}}
	return nil
}

// DecodeVersioned reads the fields of {{.Name}} present at ver. Absent
// fields keep their zero value.
func ({{.Recv}} *{{.Name}}) DecodeVersioned(r io.Reader, ver version.Version) error {
	if {{.Gate}} {
		return codec.UnsupportedVersion("{{.Name}}", ver)
	}
	var out {{.Name}}
{{- range .DecodeVer}}
	{{.}}
{{- end}}
	*{{.Recv}} = out
	return nil
}
{{- end}}
`))

var enumTmpl = template.Must(template.New("enum").Parse(`
// Encode writes the declaration index of {{.Recv}} as a VarInt.
func ({{.Recv}} {{.Name}}) Encode(w io.Writer) error {
	switch {{.Recv}} {
{{- range $i, $c := .Variants}}
	case {{$c}}:
		return codec.WriteTag(w, {{$i}}, {{$.Count}})
{{- end}}
	}
	return codec.UnknownVariant("{{.Name}}", {{.Recv}})
}

// Decode reads a declaration index and maps it to its constant.
func ({{.Recv}} *{{.Name}}) Decode(r io.Reader) error {
	index, err := codec.ReadTag(r, {{.Count}})
	if err != nil {
		return err
	}
	*{{.Recv}} = [...]{{.Name}}{ {{- range $i, $c := .Variants}}{{if $i}}, {{end}}{{$c}}{{end -}} }[index]
	return nil
}

// EncodeVersioned rejects unknown versions and otherwise encodes as Encode.
func ({{.Recv}} {{.Name}}) EncodeVersioned(w io.Writer, ver version.Version) error {
	if !ver.Valid() {
		return codec.UnsupportedVersion("{{.Name}}", ver)
	}
	return {{.Recv}}.Encode(w)
}

// DecodeVersioned rejects unknown versions and otherwise decodes as Decode.
func ({{.Recv}} *{{.Name}}) DecodeVersioned(r io.Reader, ver version.Version) error {
	if !ver.Valid() {
		return codec.UnsupportedVersion("{{.Name}}", ver)
	}
	return {{.Recv}}.Decode(r)
}
`))

var unionTmpl = template.Must(template.New("union").Parse(`
{{- if not .Versioned}}
// Write{{.Name}} writes the variant index of v followed by its fields.
func Write{{.Name}}(w io.Writer, v {{.Name}}) error {
	switch v := v.(type) {
{{- range $i, $c := .Variants}}
	case {{$c}}:
		if err := codec.WriteTag(w, {{$i}}, {{$.Count}}); err != nil {
			return err
		}
		return v.Encode(w)
{{- end}}
	}
	return codec.UnknownVariant("{{.Name}}", v)
}

// Read{{.Name}} reads a variant index and the fields of that variant.
func Read{{.Name}}(r io.Reader) ({{.Name}}, error) {
	index, err := codec.ReadTag(r, {{.Count}})
	if err != nil {
		return nil, err
	}
	switch index {
{{- range $i, $c := .Variants}}
	case {{$i}}:
		var v {{$c}}
		if err := v.Decode(r); err != nil {
			return nil, err
		}
		return v, nil
{{- end}}
	}
	return nil, codec.UnknownVariant("{{.Name}}", index)
}
{{end}}
// Write{{.Name}}Versioned writes the variant index of v followed by its
// fields present at ver.
func Write{{.Name}}Versioned(w io.Writer, v {{.Name}}, ver version.Version) error {
	if !ver.Valid() {
		return codec.UnsupportedVersion("{{.Name}}", ver)
	}
	switch v := v.(type) {
{{- range $i, $c := .Variants}}
	case {{$c}}:
		if err := codec.WriteTag(w, {{$i}}, {{$.Count}}); err != nil {
			return err
		}
		return v.EncodeVersioned(w, ver)
{{- end}}
	}
	return codec.UnknownVariant("{{.Name}}", v)
}

// Read{{.Name}}Versioned reads a variant index and the fields of that
// variant present at ver.
func Read{{.Name}}Versioned(r io.Reader, ver version.Version) ({{.Name}}, error) {
	if !ver.Valid() {
		return nil, codec.UnsupportedVersion("{{.Name}}", ver)
	}
	index, err := codec.ReadTag(r, {{.Count}})
	if err != nil {
		return nil, err
	}
	switch index {
{{- range $i, $c := .Variants}}
	case {{$i}}:
		var v {{$c}}
		if err := v.DecodeVersioned(r, ver); err != nil {
			return nil, err
		}
		return v, nil
{{- end}}
	}
	return nil, codec.UnknownVariant("{{.Name}}", index)
}
`))

type structView struct {
	Name, Recv, ID string
	Packet         bool
	Markers        []string
	Versioned      bool
	Gate           string
	EncodePlain    []string
	DecodePlain    []string
	EncodeVer      []string
	DecodeVer      []string
}

type enumView struct {
	Name, Recv string
	Variants   []string
	Count      int
}

type unionView struct {
	Name      string
	Variants  []string
	Count     int
	Versioned bool
}

// Render produces generated source per input file, keyed by the output
// base name (input stem plus suffix). Files without directives produce
// nothing.
func (p *Package) Render(suffix string) (map[string][]byte, error) {
	markers := map[string][]string{}
	for _, d := range p.Decls {
		if d.Kind == KindUnion {
			for _, v := range d.Variants {
				markers[v] = append(markers[v], d.Marker)
			}
		}
	}
	// Marker methods render with the variant struct.
	blocks := map[string][]string{}
	var order []string
	for _, d := range p.Decls {
		var buf bytes.Buffer
		var err error
		switch d.Kind {
		case KindStruct:
			err = structTmpl.Execute(&buf, p.structView(d, markers[d.Name]))
		case KindEnum:
			err = enumTmpl.Execute(&buf, enumView{
				Name:     d.Name,
				Recv:     receiver(d.Name),
				Variants: d.Variants,
				Count:    len(d.Variants),
			})
		case KindUnion:
			err = unionTmpl.Execute(&buf, unionView{
				Name:      d.Name,
				Variants:  d.Variants,
				Count:     len(d.Variants),
				Versioned: d.Versioned,
			})
		}
		if err != nil {
			return nil, errors.Wrapf(err, "gen: render %s", d.Name)
		}
		if _, ok := blocks[d.File]; !ok {
			order = append(order, d.File)
		}
		blocks[d.File] = append(blocks[d.File], strings.TrimSpace(buf.String()))
	}

	out := make(map[string][]byte, len(order))
	for _, file := range order {
		var buf bytes.Buffer
		err := fileTmpl.Execute(&buf, map[string]any{
			"Header":  Header,
			"Package": p.Name,
			"Blocks":  blocks[file],
		})
		if err != nil {
			return nil, errors.Wrapf(err, "gen: render %s", file)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return nil, errors.Wrapf(err, "gen: format %s", file)
		}
		out[strings.TrimSuffix(file, ".go")+suffix] = src
	}
	return out, nil
}

// OutputNames lists the files Render would produce, sorted.
func (p *Package) OutputNames(suffix string) []string {
	seen := map[string]bool{}
	for _, d := range p.Decls {
		seen[strings.TrimSuffix(d.File, ".go")+suffix] = true
	}
	names := maps.Keys(seen)
	slices.Sort(names)
	return names
}

func (p *Package) structView(d *Decl, markers []string) structView {
	v := structView{
		Name:      d.Name,
		Recv:      receiver(d.Name),
		Packet:    d.Packet,
		ID:        fmt.Sprintf("0x%02X", d.PacketID),
		Markers:   markers,
		Versioned: d.Versioned,
		Gate:      typeGate(d),
	}
	for _, f := range d.Fields {
		if d.Versioned {
			v.EncodeVer = append(v.EncodeVer, p.gated(f, p.encodeStmt(v.Recv, f, true)))
			v.DecodeVer = append(v.DecodeVer, p.gated(f, p.decodeStmt(f, true)))
		} else {
			v.EncodePlain = append(v.EncodePlain, p.encodeStmt(v.Recv, f, false))
			v.DecodePlain = append(v.DecodePlain, p.decodeStmt(f, false))
		}
	}
	return v
}

func (p *Package) gated(f *Field, stmt string) string {
	if !f.Gated() {
		return stmt
	}
	return "if " + rangeCond(f.Since, f.Until) + " {\n" + stmt + "\n}"
}

func (p *Package) encodeStmt(recv string, f *Field, ver bool) string {
	return "if err := " + p.encodeCall(recv+"."+f.Name, f.Shape, ver) + "; err != nil {\nreturn err\n}"
}

func (p *Package) decodeStmt(f *Field, ver bool) string {
	target := "out." + f.Name
	var call string
	if f.Shape.Kind == ShapeNamed {
		if ver && p.shapeVersioned(f.Shape) {
			call = target + ".DecodeVersioned(r, ver)"
		} else {
			call = target + ".Decode(r)"
		}
	} else {
		call = "codec.ReadInto(&" + target + ", r, " + p.decodeFunc(f.Shape, ver) + ")"
	}
	return "if err := " + call + "; err != nil {\nreturn err\n}"
}

func (p *Package) encodeCall(value string, s *Shape, ver bool) string {
	switch s.Kind {
	case ShapeNamed:
		if ver && p.shapeVersioned(s) {
			return value + ".EncodeVersioned(w, ver)"
		}
		return value + ".Encode(w)"
	case ShapeUnion:
		if ver && p.shapeVersioned(s) {
			return "Write" + s.Name + "Versioned(w, " + value + ", ver)"
		}
		return "Write" + s.Name + "(w, " + value + ")"
	case ShapeOption:
		return "codec.WriteOption(w, " + value + ", " + p.encodeFunc(s.Elem, ver) + ")"
	case ShapeSeq:
		return "codec.WriteSeq(w, " + value + ", " + p.encodeFunc(s.Elem, ver) + ")"
	case ShapePtr:
		return "codec.WritePtr(w, " + value + ", " + p.encodeFunc(s.Elem, ver) + ")"
	default:
		return p.encodeFunc(s, ver) + "(w, " + value + ")"
	}
}

// encodeFunc spells an EncodeFunc for s.
func (p *Package) encodeFunc(s *Shape, ver bool) string {
	switch s.Kind {
	case ShapeBasic:
		return "codec.Write" + basic[s.Name]
	case ShapeBytes:
		return "codec.WriteBytes"
	case ShapeUUID:
		return "codec.WriteUUID"
	case ShapeNamed:
		if ver && p.shapeVersioned(s) {
			return "codec.BindEncode(codec.WriteVersioned[" + s.Name + "], ver)"
		}
		return "codec.Write[" + s.Name + "]"
	case ShapeUnion:
		if ver && p.shapeVersioned(s) {
			return "codec.BindEncode(Write" + s.Name + "Versioned, ver)"
		}
		return "Write" + s.Name
	case ShapeOption:
		return "codec.OptionEncoder(" + p.encodeFunc(s.Elem, ver) + ")"
	case ShapeSeq:
		return "codec.SeqEncoder(" + p.encodeFunc(s.Elem, ver) + ")"
	case ShapePtr:
		return "codec.PtrEncoder(" + p.encodeFunc(s.Elem, ver) + ")"
	}
	panic(fmt.Sprintf("gen: unhandled shape %d", s.Kind))
}

// decodeFunc spells a DecodeFunc for s.
func (p *Package) decodeFunc(s *Shape, ver bool) string {
	switch s.Kind {
	case ShapeBasic:
		return "codec.Read" + basic[s.Name]
	case ShapeBytes:
		return "codec.ReadBytes"
	case ShapeUUID:
		return "codec.ReadUUID"
	case ShapeNamed:
		if ver && p.shapeVersioned(s) {
			return "codec.BindDecode(codec.ReadVersioned[" + s.Name + "], ver)"
		}
		return "codec.Read[" + s.Name + "]"
	case ShapeUnion:
		if ver && p.shapeVersioned(s) {
			return "codec.BindDecode(Read" + s.Name + "Versioned, ver)"
		}
		return "Read" + s.Name
	case ShapeOption:
		return "codec.OptionDecoder(" + p.decodeFunc(s.Elem, ver) + ")"
	case ShapeSeq:
		return "codec.SeqDecoder(" + p.decodeFunc(s.Elem, ver) + ")"
	case ShapePtr:
		return "codec.PtrDecoder(" + p.decodeFunc(s.Elem, ver) + ")"
	}
	panic(fmt.Sprintf("gen: unhandled shape %d", s.Kind))
}

// typeGate is the rejection condition at the top of versioned methods.
func typeGate(d *Decl) string {
	if !d.Gated() {
		return "!ver.Valid()"
	}
	return "!ver.Valid() || !" + rangeCond(d.Since, d.Until)
}

func rangeCond(since, until version.Version) string {
	switch {
	case since != version.Unknown && until != version.Unknown:
		return "ver.Between(version." + since.ConstName() + ", version." + until.ConstName() + ")"
	case since != version.Unknown:
		return "ver.AtLeast(version." + since.ConstName() + ")"
	default:
		return "ver.AtMost(version." + until.ConstName() + ")"
	}
}

// receiver picks a method receiver name that cannot shadow w, r or the
// locals the templates declare.
func receiver(typeName string) string {
	for _, c := range typeName {
		l := string(unicode.ToLower(c))
		switch l {
		case "w", "r", "v", "i", "e", "o":
			return "x"
		}
		return l
	}
	return "x"
}
