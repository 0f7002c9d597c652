package packet

import "github.com/danmuck/mcwire/codec"

// Intention is the state a client asks for at the end of a handshake.
// The wire value is the declaration index, so IntentionNone holds slot 0.
//
//mcgen:enum
type Intention int32

const (
	IntentionNone Intention = iota
	IntentionStatus
	IntentionLogin
	IntentionTransfer
)

// Handshake is the first packet of every connection.
//
//mcgen:packet id=0x00
type Handshake struct {
	ProtocolVersion codec.VarInt
	ServerAddress   string
	ServerPort      uint16
	Intent          Intention
}
