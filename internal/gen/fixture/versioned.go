package fixture

import "github.com/danmuck/mcwire/codec"

//mcgen:struct
type Stat struct {
	Base  int32
	Bonus int32 `mc:"since=1.16"`
}

// Outcome is versioned through Hit, which holds gated Stats.
//
//mcgen:union Hit Miss
type Outcome interface{ isOutcome() }

//mcgen:struct
type Hit struct {
	Stats []Stat
}

//mcgen:struct
type Miss struct{}

//mcgen:packet id=0x21 until=1.20.4
type Round struct {
	Outcomes []Outcome
	Best     codec.Option[*Stat]
	Legacy   string `mc:"until=1.12.2"`
}
