// Package fixture holds generated codecs over every field shape mcgen
// supports. Its tests compile the generated code and round-trip it, and
// the gen tests keep it in step with the generator.
package fixture

//go:generate go run github.com/danmuck/mcwire/cmd/mcgen
