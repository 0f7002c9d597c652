package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
)

// typeSpec is one type declaration seen while scanning.
type typeSpec struct {
	spec    *ast.TypeSpec
	file    string
	imports fileImports
	dir     *directive
}

// Load parses the non-test Go files in dir and builds the manifest.
// Files ending in suffix are previous output and are skipped.
func Load(dir, suffix string) (*Package, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "gen: read %s", dir)
	}
	fset := token.NewFileSet()
	var files []*ast.File
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") ||
			strings.HasSuffix(name, "_test.go") || strings.HasSuffix(name, suffix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			return nil, errors.Wrapf(err, "gen: parse %s", name)
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return nil, errors.Newf("gen: no Go files in %s", dir)
	}
	return build(fset, dir, files)
}

// ParseSource builds a manifest from in-memory files keyed by base name.
func ParseSource(sources map[string]string) (*Package, error) {
	fset := token.NewFileSet()
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	files := make([]*ast.File, 0, len(names))
	for _, name := range names {
		f, err := parser.ParseFile(fset, name, sources[name], parser.ParseComments)
		if err != nil {
			return nil, errors.Wrapf(err, "gen: parse %s", name)
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return nil, errors.New("gen: no sources")
	}
	return build(fset, "", files)
}

func build(fset *token.FileSet, dir string, files []*ast.File) (*Package, error) {
	p := &Package{
		Name:    files[0].Name.Name,
		Dir:     dir,
		byName:  map[string]*Decl{},
		methods: map[string]methodSet{},
	}
	var specs []*typeSpec
	structs := map[string]*typeSpec{}
	var consts []*ast.GenDecl
	for _, f := range files {
		if f.Name.Name != p.Name {
			return nil, errors.Newf("gen: mixed packages %s and %s", p.Name, f.Name.Name)
		}
		file := filepath.Base(fset.Position(f.Package).Filename)
		imports := importsOf(f)
		for _, d := range f.Decls {
			switch d := d.(type) {
			case *ast.FuncDecl:
				recordMethod(p.methods, d)
			case *ast.GenDecl:
				switch d.Tok {
				case token.CONST:
					consts = append(consts, d)
				case token.TYPE:
					for _, s := range d.Specs {
						ts := s.(*ast.TypeSpec)
						groups := []*ast.CommentGroup{ts.Doc}
						if !d.Lparen.IsValid() {
							groups = append(groups, d.Doc)
						}
						ds := directivesOf(groups...)
						if len(ds) > 1 {
							return nil, posErr(fset, ts.Pos(), "multiple mcgen directives on %s", ts.Name.Name)
						}
						spec := &typeSpec{spec: ts, file: file, imports: imports}
						if len(ds) == 1 {
							spec.dir = &ds[0]
						}
						specs = append(specs, spec)
						if _, ok := ts.Type.(*ast.StructType); ok {
							structs[ts.Name.Name] = spec
						}
					}
				}
			}
		}
	}

	// Union variants without their own directive become implicit structs.
	for _, s := range specs {
		if s.dir == nil || s.dir.kind != "union" {
			continue
		}
		for _, name := range s.dir.args {
			v, ok := structs[name]
			if !ok {
				return nil, posErr(fset, s.spec.Pos(), "union %s: variant %s is not a struct type in this package", s.spec.Name.Name, name)
			}
			if v.dir == nil {
				v.dir = &directive{kind: "struct", opts: map[string]string{}}
			}
		}
	}

	for _, s := range specs {
		if s.dir == nil {
			continue
		}
		d, err := declare(fset, s)
		if err != nil {
			return nil, err
		}
		p.Decls = append(p.Decls, d)
		p.byName[d.Name] = d
	}

	if err := p.collectEnums(fset, consts); err != nil {
		return nil, err
	}
	for _, s := range specs {
		d, ok := p.byName[s.spec.Name.Name]
		if !ok || d.Kind != KindStruct {
			continue
		}
		if err := p.collectFields(fset, d, s); err != nil {
			return nil, err
		}
	}
	p.propagateVersions()
	log.Debug().Str("package", p.Name).Int("types", len(p.Decls)).Msg("gen: manifest built")
	return p, nil
}

func declare(fset *token.FileSet, s *typeSpec) (*Decl, error) {
	name := s.spec.Name.Name
	d := &Decl{Name: name, File: s.file, Pos: fset.Position(s.spec.Pos())}
	if s.spec.TypeParams != nil {
		return nil, posErr(fset, s.spec.Pos(), "%s: generic types are not supported", name)
	}
	opts := s.dir.opts
	switch s.dir.kind {
	case "struct", "packet":
		if _, ok := s.spec.Type.(*ast.StructType); !ok {
			return nil, posErr(fset, s.spec.Pos(), "%s: mcgen:%s requires a struct type", name, s.dir.kind)
		}
		d.Kind = KindStruct
		if s.dir.kind == "packet" {
			raw, ok := opts["id"]
			if !ok {
				return nil, posErr(fset, s.spec.Pos(), "%s: mcgen:packet requires id=", name)
			}
			id, err := strconv.ParseInt(raw, 0, 32)
			if err != nil || id < 0 {
				return nil, posErr(fset, s.spec.Pos(), "%s: bad packet id %q", name, raw)
			}
			d.Packet, d.PacketID = true, id
			opts = without(opts, "id")
		}
		since, until, err := releaseRange(opts)
		if err != nil {
			return nil, posErr(fset, s.spec.Pos(), "%s: %v", name, err)
		}
		d.Since, d.Until = since, until
	case "enum":
		id, ok := s.spec.Type.(*ast.Ident)
		if !ok || !isInteger(id.Name) {
			return nil, posErr(fset, s.spec.Pos(), "%s: mcgen:enum requires an integer type", name)
		}
		if len(opts) > 0 || len(s.dir.args) > 0 {
			return nil, posErr(fset, s.spec.Pos(), "%s: mcgen:enum takes no options", name)
		}
		d.Kind = KindEnum
	case "union":
		marker, err := markerOf(s.spec)
		if err != nil {
			return nil, posErr(fset, s.spec.Pos(), "%s: %v", name, err)
		}
		if len(s.dir.args) == 0 {
			return nil, posErr(fset, s.spec.Pos(), "%s: mcgen:union lists no variants", name)
		}
		if len(opts) > 0 {
			return nil, posErr(fset, s.spec.Pos(), "%s: mcgen:union takes no options", name)
		}
		seen := map[string]bool{}
		for _, v := range s.dir.args {
			if seen[v] {
				return nil, posErr(fset, s.spec.Pos(), "%s: variant %s listed twice", name, v)
			}
			seen[v] = true
		}
		d.Kind = KindUnion
		d.Marker = marker
		d.Variants = append([]string(nil), s.dir.args...)
	default:
		return nil, posErr(fset, s.spec.Pos(), "%s: unknown directive mcgen:%s", name, s.dir.kind)
	}
	return d, nil
}

// markerOf returns the single unexported, argument-free method of a union
// interface.
func markerOf(ts *ast.TypeSpec) (string, error) {
	it, ok := ts.Type.(*ast.InterfaceType)
	if !ok {
		return "", fmt.Errorf("mcgen:union requires an interface type")
	}
	if it.Methods == nil || len(it.Methods.List) != 1 || len(it.Methods.List[0].Names) != 1 {
		return "", fmt.Errorf("union interface must declare exactly one marker method")
	}
	m := it.Methods.List[0]
	fn, ok := m.Type.(*ast.FuncType)
	name := m.Names[0].Name
	if !ok || ast.IsExported(name) || fn.Params.NumFields() != 0 || fn.Results.NumFields() != 0 {
		return "", fmt.Errorf("marker method must be unexported with no parameters or results")
	}
	return name, nil
}

func (p *Package) collectFields(fset *token.FileSet, d *Decl, s *typeSpec) error {
	st := s.spec.Type.(*ast.StructType)
	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			return posErr(fset, f.Pos(), "%s: embedded field %s is not supported", d.Name, exprString(f.Type))
		}
		shape, err := p.shapeOf(f.Type, s.imports)
		if err != nil {
			return posErr(fset, f.Pos(), "%s.%s: %v", d.Name, f.Names[0].Name, err)
		}
		since, until, err := fieldRange(f.Tag)
		if err != nil {
			return posErr(fset, f.Pos(), "%s.%s: %v", d.Name, f.Names[0].Name, err)
		}
		for _, n := range f.Names {
			if n.Name == "_" {
				return posErr(fset, n.Pos(), "%s: blank fields are not supported", d.Name)
			}
			d.Fields = append(d.Fields, &Field{
				Name:  n.Name,
				Shape: shape,
				Since: since,
				Until: until,
				Pos:   fset.Position(n.Pos()),
			})
		}
	}
	return nil
}

// collectEnums assigns constants to enum types in declaration order.
func (p *Package) collectEnums(fset *token.FileSet, consts []*ast.GenDecl) error {
	for _, gd := range consts {
		var typ string
		for _, s := range gd.Specs {
			vs := s.(*ast.ValueSpec)
			switch {
			case vs.Type != nil:
				typ = identName(vs.Type)
			case len(vs.Values) > 0:
				typ = ""
				if call, ok := vs.Values[0].(*ast.CallExpr); ok {
					typ = identName(call.Fun)
				}
			}
			d, ok := p.byName[typ]
			if !ok || d.Kind != KindEnum {
				continue
			}
			for _, n := range vs.Names {
				// The wire index is the position among named constants, so a
				// blank would shift every later constant.
				if n.Name == "_" {
					return posErr(fset, n.Pos(), "enum %s: blank constant shifts wire indices", d.Name)
				}
				d.Variants = append(d.Variants, n.Name)
			}
		}
	}
	for _, d := range p.Decls {
		if d.Kind == KindEnum && len(d.Variants) == 0 {
			return errors.Newf("gen: %s: enum %s declares no constants", d.Pos, d.Name)
		}
	}
	return nil
}

// propagateVersions marks every type that is gated or reaches a gated type.
func (p *Package) propagateVersions() {
	for _, d := range p.Decls {
		if d.Gated() {
			d.Versioned = true
		}
		for _, f := range d.Fields {
			if f.Gated() {
				d.Versioned = true
			}
		}
	}
	for changed := true; changed; {
		changed = false
		for _, d := range p.Decls {
			if d.Versioned {
				continue
			}
			if p.reachesVersioned(d) {
				d.Versioned = true
				changed = true
			}
		}
	}
}

func (p *Package) reachesVersioned(d *Decl) bool {
	switch d.Kind {
	case KindStruct:
		for _, f := range d.Fields {
			if p.shapeVersioned(f.Shape) {
				return true
			}
		}
	case KindUnion:
		for _, v := range d.Variants {
			if p.byName[v].Versioned {
				return true
			}
		}
	}
	return false
}

func (p *Package) shapeVersioned(s *Shape) bool {
	switch s.Kind {
	case ShapeNamed, ShapeUnion:
		if d, ok := p.byName[s.Local]; ok {
			return d.Versioned
		}
		return !s.Methods.plain()
	case ShapeOption, ShapeSeq, ShapePtr:
		return p.shapeVersioned(s.Elem)
	default:
		return false
	}
}

func recordMethod(methods map[string]methodSet, fn *ast.FuncDecl) {
	if fn.Recv == nil || len(fn.Recv.List) != 1 {
		return
	}
	recv := fn.Recv.List[0].Type
	if star, ok := recv.(*ast.StarExpr); ok {
		recv = star.X
	}
	name := identName(recv)
	if name == "" {
		return
	}
	ms := methods[name]
	switch fn.Name.Name {
	case "Encode":
		ms.Encode = true
	case "Decode":
		ms.Decode = true
	case "EncodeVersioned":
		ms.EncodeVersioned = true
	case "DecodeVersioned":
		ms.DecodeVersioned = true
	default:
		return
	}
	methods[name] = ms
}

func identName(expr ast.Expr) string {
	if id, ok := expr.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

func isInteger(name string) bool {
	switch name {
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "byte":
		return true
	}
	return false
}

func without(opts map[string]string, key string) map[string]string {
	out := make(map[string]string, len(opts))
	for k, v := range opts {
		if k != key {
			out[k] = v
		}
	}
	return out
}

func posErr(fset *token.FileSet, pos token.Pos, format string, args ...any) error {
	return errors.Newf("gen: %s: %s", fset.Position(pos), fmt.Sprintf(format, args...))
}
