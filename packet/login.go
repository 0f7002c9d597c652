package packet

import (
	"github.com/google/uuid"

	"github.com/danmuck/mcwire/codec"
)

// SignatureData is the chat signing key a 1.19 client presents at login.
//
//mcgen:struct
type SignatureData struct {
	Timestamp int64
	PublicKey []byte
	Signature []byte
}

// Property is one signed profile property, such as "textures".
//
//mcgen:struct
type Property struct {
	Name      string
	Value     string
	Signature codec.Option[string]
}

// LoginStart opens the login sequence.
//
//mcgen:packet id=0x00
type LoginStart struct {
	Name       string
	Signature  codec.Option[SignatureData] `mc:"since=1.19,until=1.19.2"`
	PlayerUUID codec.Option[uuid.UUID]     `mc:"since=1.19.1,until=1.20.1"`
	PlayerID   uuid.UUID                   `mc:"since=1.20.2"`
}

// LoginSuccess ends the login sequence.
//
//mcgen:packet id=0x02 since=1.19
type LoginSuccess struct {
	PlayerID   uuid.UUID
	Username   string
	Properties []Property
}
