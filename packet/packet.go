// Package packet owns packet identity and the exemplar packets.
//
// Ownership boundary:
// - Packet and VersionedPacket contracts
// - handshake, status, login, configuration and play packet shapes
//
// Codecs live in the *_mcgen.go files. Regenerate them after changing a
// directive or a field.
package packet

import "github.com/danmuck/mcwire/codec"

//go:generate go run github.com/danmuck/mcwire/cmd/mcgen

// Packet is a value with a fixed identifier and a plain codec pair.
// PacketID ignores receiver state.
type Packet interface {
	PacketID() int32
	codec.Encoder
	codec.Decoder
}

// VersionedPacket is a value with a fixed identifier whose layout depends
// on the negotiated protocol version.
type VersionedPacket interface {
	PacketID() int32
	codec.VersionedEncoder
	codec.VersionedDecoder
}
