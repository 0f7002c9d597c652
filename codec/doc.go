// Package codec owns the binary wire contract shared by every packet.
//
// Ownership boundary:
// - plain and version-aware encode/decode capability interfaces
// - primitive and container codecs (integers, varints, strings, options, sequences)
// - error taxonomy (i/o, malformed data, unsupported version)
//
// Aggregate types get their codecs from cmd/mcgen; the generated code only
// composes the functions exported here.
//
// Wire rules:
// - fixed-width numerics are big-endian
// - containers carry a VarInt length prefix
// - a decode either returns a complete value or an error, never a partial value
package codec
