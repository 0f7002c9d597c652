package packet

import "github.com/google/uuid"

// BossEvent adds, changes or removes one boss bar.
//
//mcgen:packet id=0x0A
type BossEvent struct {
	ID     uuid.UUID
	Action BossAction
}

// BossAction is the operation a BossEvent applies.
//
//mcgen:union BossAdd BossRemove BossUpdateHealth BossUpdateTitle BossUpdateStyle BossUpdateFlags
type BossAction interface {
	isBossAction()
}

// BossAdd creates a bar. Title is a JSON text component.
type BossAdd struct {
	Title    string
	Health   float32
	Color    BossColor
	Division BossDivision
	Flags    uint8
}

type BossRemove struct{}

type BossUpdateHealth struct {
	Health float32
}

type BossUpdateTitle struct {
	Title string
}

type BossUpdateStyle struct {
	Color    BossColor
	Division BossDivision
}

type BossUpdateFlags struct {
	Flags uint8
}

//mcgen:enum
type BossColor int32

const (
	BossPink BossColor = iota
	BossBlue
	BossRed
	BossGreen
	BossYellow
	BossPurple
	BossWhite
)

//mcgen:enum
type BossDivision int32

const (
	BossNoDivision BossDivision = iota
	BossNotches6
	BossNotches10
	BossNotches12
	BossNotches20
)

// Boss bar flag bits.
const (
	BossDarkenSky uint8 = 0x01
	BossPlayMusic uint8 = 0x02
	BossCreateFog uint8 = 0x04
)
