package fixture

import "github.com/danmuck/mcwire/codec"

//mcgen:enum
type Hand int32

const (
	HandLeft Hand = iota
	HandRight
)

//mcgen:struct
type Point struct {
	X, Y int32
}

// Step is one move in a path.
//
//mcgen:union Walk Jump Turn
type Step interface{ isStep() }

//mcgen:struct
type Walk struct {
	DX, DZ int32
}

//mcgen:struct
type Jump struct{}

//mcgen:struct
type Turn struct {
	Hand Hand
}

// Bag carries one field of each composite shape.
//
//mcgen:struct
type Bag struct {
	Boxed     *Point
	Shared    []*Point
	MaybePtr  codec.Option[*Point]
	Grid      [][]int32
	Steps     []Step
	Next      Step
	Hands     []Hand
	MaybeHand codec.Option[Hand]
	Nested    codec.Option[[]string]
	Blob      []byte
	Tag       codec.VarLong
}
