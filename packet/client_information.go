package packet

//mcgen:enum
type ChatMode int32

const (
	ChatEnabled ChatMode = iota
	ChatCommandsOnly
	ChatHidden
)

//mcgen:enum
type MainHand int32

const (
	MainHandLeft MainHand = iota
	MainHandRight
)

//mcgen:enum
type ParticleStatus int32

const (
	ParticlesAll ParticleStatus = iota
	ParticlesDecreased
	ParticlesMinimal
)

// Skin part bits of ClientInformation.DisplayedSkinParts.
const (
	SkinCape        uint8 = 0x01
	SkinJacket      uint8 = 0x02
	SkinLeftSleeve  uint8 = 0x04
	SkinRightSleeve uint8 = 0x08
	SkinLeftPants   uint8 = 0x10
	SkinRightPants  uint8 = 0x20
	SkinHat         uint8 = 0x40
)

// ClientInformation is sent during configuration.
//
//mcgen:packet id=0x00 since=1.20.2
type ClientInformation struct {
	Locale              string
	ViewDistance        int8
	ChatMode            ChatMode
	ChatColors          bool
	DisplayedSkinParts  uint8
	MainHand            MainHand
	EnableTextFiltering bool
	AllowServerListings bool
	ParticleStatus      ParticleStatus `mc:"since=1.21.2"`
}
