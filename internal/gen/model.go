package gen

import (
	"go/token"

	"github.com/danmuck/mcwire/version"
)

// Kind is the aggregate shape a directive declares.
type Kind int

const (
	KindStruct Kind = iota
	KindEnum
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindUnion:
		return "union"
	default:
		return "unknown"
	}
}

// Package is the manifest of one directory.
type Package struct {
	Name  string
	Dir   string
	Decls []*Decl

	byName  map[string]*Decl
	methods map[string]methodSet
}

// Decl is one generated type.
type Decl struct {
	Name string
	Kind Kind
	File string // base name of the declaring source file
	Pos  token.Position

	Fields   []*Field // KindStruct
	Variants []string // KindEnum constants or KindUnion variant types
	Marker   string   // KindUnion sealing method

	Packet   bool
	PacketID int64
	Since    version.Version
	Until    version.Version

	// Versioned is set when the type or anything it references is gated.
	Versioned bool
}

// Gated reports whether the type itself carries a version range.
func (d *Decl) Gated() bool {
	return d.Since != version.Unknown || d.Until != version.Unknown
}

// Field is one struct field in declaration order.
type Field struct {
	Name  string
	Shape *Shape
	Since version.Version
	Until version.Version
	Pos   token.Position
}

// Gated reports whether the field carries a version range.
func (f *Field) Gated() bool {
	return f.Since != version.Unknown || f.Until != version.Unknown
}

type methodSet struct {
	Encode, Decode                   bool
	EncodeVersioned, DecodeVersioned bool
}

func (m methodSet) plain() bool     { return m.Encode && m.Decode }
func (m methodSet) versioned() bool { return m.EncodeVersioned && m.DecodeVersioned }
