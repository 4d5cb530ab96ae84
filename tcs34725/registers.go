package tcs34725

// DefaultAddress is the fixed 7-bit I2C address of the TCS34725.
const DefaultAddress = 0x29

// ChipID is the value the ID register reports for this chip family.
const ChipID = 0x44

// Command register framing. Every register access is prefixed with the
// register address OR'd with the command bit; the special-function type bits
// select commands that carry no data phase at all (interrupt clear).
const (
	commandBit      = 0x80
	cmdTypeSpecial  = 0x60 // TYPE bits 6:5 = 11 (special function)
	cmdClearIntAddr = 0x06 // SF field 00110: clear channel interrupt clear
)

// Register map (datasheet §Register Set). Fixed protocol surface for the
// chip family, never written to as a whole.
const (
	regEnable  = 0x00
	regATime   = 0x01
	regWTime   = 0x03
	regAILTL   = 0x04
	regAILTH   = 0x05
	regAIHTL   = 0x06
	regAIHTH   = 0x07
	regPers    = 0x0C
	regConfig  = 0x0D
	regControl = 0x0F
	regID      = 0x12
	regStatus  = 0x13
	regCDataL  = 0x14
	regCDataH  = 0x15
	regRDataL  = 0x16
	regRDataH  = 0x17
	regGDataL  = 0x18
	regGDataH  = 0x19
	regBDataL  = 0x1A
	regBDataH  = 0x1B
)

// ENABLE register bits.
const (
	enablePON  = 0x01 // power on
	enableAEN  = 0x02 // RGBC ADC enable
	enableWEN  = 0x08 // wait timer enable
	enableAIEN = 0x10 // RGBC interrupt enable
)

// Gain selects the analog amplification of the photodiode current.
type Gain byte

const (
	Gain1x  Gain = 0x00
	Gain4x  Gain = 0x01
	Gain16x Gain = 0x02
	Gain60x Gain = 0x03
)

func (g Gain) String() string {
	switch g {
	case Gain1x:
		return "1x"
	case Gain4x:
		return "4x"
	case Gain16x:
		return "16x"
	case Gain60x:
		return "60x"
	}
	return "invalid"
}

// IntegrationTime is the raw ATIME register encoding. The named presets are
// the datasheet values; any other byte is interpreted by the acquisition
// path as a direct millisecond count (user-defined integration time).
type IntegrationTime byte

const (
	IntegrationTime2_4ms IntegrationTime = 0xFF
	IntegrationTime24ms  IntegrationTime = 0xF6
	IntegrationTime50ms  IntegrationTime = 0xEB
	IntegrationTime101ms IntegrationTime = 0xD5
	IntegrationTime154ms IntegrationTime = 0xC0
	IntegrationTime700ms IntegrationTime = 0x00
)

// Largest addressable register block: the four 16-bit channel data registers.
const maxBlockLen = 8
