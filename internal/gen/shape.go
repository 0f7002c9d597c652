package gen

import (
	"fmt"
	"go/ast"
	"strconv"
)

const (
	codecPath = "github.com/danmuck/mcwire/codec"
	uuidPath  = "github.com/google/uuid"
)

// ShapeKind classifies a field type by how it reaches the wire.
type ShapeKind int

const (
	ShapeBasic ShapeKind = iota
	ShapeBytes
	ShapeUUID
	ShapeNamed
	ShapeUnion
	ShapeOption
	ShapeSeq
	ShapePtr
)

// Shape is the wire-relevant view of a Go type expression.
type Shape struct {
	Kind ShapeKind
	// Name is the Go type as spelled in generated code for basic, named
	// and union shapes.
	Name string
	Elem *Shape
	// Local is the package-local type name behind named and union shapes.
	Local string
	// Methods of a named shape.
	Methods methodSet
}

// basic maps builtin identifiers to the codec function suffix.
var basic = map[string]string{
	"bool":    "Bool",
	"int8":    "Int8",
	"uint8":   "Uint8",
	"byte":    "Uint8",
	"int16":   "Int16",
	"uint16":  "Uint16",
	"int32":   "Int32",
	"uint32":  "Uint32",
	"int64":   "Int64",
	"uint64":  "Uint64",
	"float32": "Float32",
	"float64": "Float64",
	"string":  "String",
}

var codecNamed = map[string]bool{
	"VarInt":  true,
	"VarLong": true,
}

// fileImports maps local import names to paths for one source file.
type fileImports map[string]string

func importsOf(f *ast.File) fileImports {
	out := make(fileImports, len(f.Imports))
	for _, spec := range f.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		name := path
		for i := len(path) - 1; i >= 0; i-- {
			if path[i] == '/' {
				name = path[i+1:]
				break
			}
		}
		if spec.Name != nil {
			name = spec.Name.Name
		}
		if name == "_" || name == "." {
			continue
		}
		out[name] = path
	}
	return out
}

// shapeOf classifies expr. Types defined in the package are looked up in
// p, which must already know every declared type and method.
func (p *Package) shapeOf(expr ast.Expr, imports fileImports) (*Shape, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		if _, ok := basic[t.Name]; ok {
			return &Shape{Kind: ShapeBasic, Name: t.Name}, nil
		}
		return p.localShape(t.Name)
	case *ast.ArrayType:
		if t.Len != nil {
			return nil, fmt.Errorf("fixed-size arrays are not supported")
		}
		if id, ok := t.Elt.(*ast.Ident); ok && (id.Name == "byte" || id.Name == "uint8") {
			return &Shape{Kind: ShapeBytes}, nil
		}
		elem, err := p.shapeOf(t.Elt, imports)
		if err != nil {
			return nil, err
		}
		return &Shape{Kind: ShapeSeq, Elem: elem}, nil
	case *ast.StarExpr:
		elem, err := p.shapeOf(t.X, imports)
		if err != nil {
			return nil, err
		}
		return &Shape{Kind: ShapePtr, Elem: elem}, nil
	case *ast.SelectorExpr:
		pkg, ok := t.X.(*ast.Ident)
		if !ok {
			break
		}
		switch imports[pkg.Name] {
		case codecPath:
			if codecNamed[t.Sel.Name] {
				return &Shape{
					Kind:    ShapeNamed,
					Name:    "codec." + t.Sel.Name,
					Methods: methodSet{true, true, true, true},
				}, nil
			}
		case uuidPath:
			if t.Sel.Name == "UUID" {
				return &Shape{Kind: ShapeUUID}, nil
			}
		}
	case *ast.IndexExpr:
		sel, ok := t.X.(*ast.SelectorExpr)
		if !ok {
			break
		}
		pkg, ok := sel.X.(*ast.Ident)
		if !ok || imports[pkg.Name] != codecPath || sel.Sel.Name != "Option" {
			break
		}
		elem, err := p.shapeOf(t.Index, imports)
		if err != nil {
			return nil, err
		}
		return &Shape{Kind: ShapeOption, Elem: elem}, nil
	}
	return nil, fmt.Errorf("unsupported type %s", exprString(expr))
}

func (p *Package) localShape(name string) (*Shape, error) {
	if d, ok := p.byName[name]; ok {
		if d.Kind == KindUnion {
			return &Shape{Kind: ShapeUnion, Name: name, Local: name}, nil
		}
		return &Shape{
			Kind:    ShapeNamed,
			Name:    name,
			Local:   name,
			Methods: methodSet{true, true, true, true},
		}, nil
	}
	ms := p.methods[name]
	if !ms.plain() && !ms.versioned() {
		return nil, fmt.Errorf("type %s has no codec (missing directive or Encode/Decode methods)", name)
	}
	return &Shape{Kind: ShapeNamed, Name: name, Local: name, Methods: ms}, nil
}

func exprString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return exprString(t.X) + "." + t.Sel.Name
	case *ast.StarExpr:
		return "*" + exprString(t.X)
	case *ast.ArrayType:
		if t.Len != nil {
			return "[" + exprString(t.Len) + "]" + exprString(t.Elt)
		}
		return "[]" + exprString(t.Elt)
	case *ast.IndexExpr:
		return exprString(t.X) + "[" + exprString(t.Index) + "]"
	case *ast.MapType:
		return "map[" + exprString(t.Key) + "]" + exprString(t.Value)
	case *ast.BasicLit:
		return t.Value
	case *ast.InterfaceType:
		return "interface{...}"
	case *ast.ChanType:
		return "chan " + exprString(t.Value)
	case *ast.FuncType:
		return "func(...)"
	case *ast.StructType:
		return "struct{...}"
	default:
		return fmt.Sprintf("%T", expr)
	}
}
