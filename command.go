package ist7920

import "fmt"

// Instruction opcodes of the IST7920.
const (
	opAYAddress      = 0x01
	opBias           = 0x30
	opVoltageClock   = 0x31
	opPowerControl   = 0x33
	opDisplayOn      = 0x3C
	opStartLine      = 0x40
	opDisplayControl = 0x60
	opAYWindow       = 0x74
	opAXWindow       = 0x75
	opSWReset        = 0x76
	opDuty           = 0x90
	opContrast       = 0xB1
	opAXAddress      = 0xC0
	opBooster        = 0xFC
)

// Parameter masks, the widths the controller accepts.
const (
	maskAY      = 0x1F
	maskAX      = 0x7F
	maskBias    = 0x3F
	maskClock   = 0x3F
	maskBooster = 0x03
)

// Command is a single IST7920 instruction.
//
// The set of commands is closed: only the types declared in this package
// implement it.
type Command interface {
	fmt.Stringer
	// encode returns the opcode, up to two parameter bytes and the number
	// of bytes that must be sent. Trailing bytes beyond n are zero.
	encode() (b [3]byte, n int)
}

// Encode returns the exact byte sequence for c.
//
// Parameters are masked to the width the controller accepts, so Encode
// never fails.
func Encode(c Command) []byte {
	b, n := c.encode()
	return b[:n:n]
}

// Send encodes c and writes it to the command channel of t.
//
// A transport error is returned as is.
func Send(t Transport, c Command) error {
	b, n := c.encode()
	return t.SendCommands(b[:n])
}

// AYAddress sets the row (8 pixel band) address of the write cursor.
type AYAddress byte

func (c AYAddress) encode() ([3]byte, int) {
	return [3]byte{opAYAddress, byte(c) & maskAY}, 2
}

func (c AYAddress) String() string { return fmt.Sprintf("AYAddress(%d)", byte(c)) }

// Bias selects the LCD bias ratio.
type Bias byte

func (c Bias) encode() ([3]byte, int) {
	return [3]byte{opBias, byte(c) & maskBias}, 2
}

func (c Bias) String() string { return fmt.Sprintf("Bias(%d)", byte(c)) }

// VoltageClock selects the voltage generator clock frequency.
type VoltageClock byte

func (c VoltageClock) encode() ([3]byte, int) {
	return [3]byte{opVoltageClock, byte(c) & maskClock}, 2
}

func (c VoltageClock) String() string { return fmt.Sprintf("VoltageClock(0x%02X)", byte(c)) }

// PowerControl enables the internal power circuits. The bit fields are
// passed through unchanged.
type PowerControl byte

func (c PowerControl) encode() ([3]byte, int) {
	return [3]byte{opPowerControl, byte(c)}, 2
}

func (c PowerControl) String() string { return fmt.Sprintf("PowerControl(0x%02X)", byte(c)) }

// DisplayOn turns the display on or off. RAM content is retained while off.
type DisplayOn bool

func (c DisplayOn) encode() ([3]byte, int) {
	op := byte(opDisplayOn)
	if c {
		op |= 1
	}
	return [3]byte{op}, 1
}

func (c DisplayOn) String() string { return fmt.Sprintf("DisplayOn(%t)", bool(c)) }

// StartLine sets the RAM line shown on the first COM output.
type StartLine byte

func (c StartLine) encode() ([3]byte, int) {
	return [3]byte{opStartLine, byte(c)}, 2
}

func (c StartLine) String() string { return fmt.Sprintf("StartLine(%d)", byte(c)) }

// DisplayControl sets the scan direction and display mode flags.
type DisplayControl struct {
	// SHL reverses the common output scan: COM(N-1) -> COM0.
	SHL bool
	// ADC reverses the segment mapping: SEG127 -> SEG0.
	ADC bool
	// EON forces every dot on regardless of RAM content.
	EON bool
	// REV shows the inverse of the RAM data.
	REV bool
}

func (c DisplayControl) encode() ([3]byte, int) {
	op := byte(opDisplayControl)
	if c.SHL {
		op |= 1 << 3
	}
	if c.ADC {
		op |= 1 << 2
	}
	if c.EON {
		op |= 1 << 1
	}
	if c.REV {
		op |= 1
	}
	return [3]byte{op}, 1
}

func (c DisplayControl) String() string {
	return fmt.Sprintf("DisplayControl(%t,%t,%t,%t)", c.SHL, c.ADC, c.EON, c.REV)
}

// AYWindow limits data writes to the rows (8 pixel bands) Start..End.
type AYWindow struct {
	Start, End byte
}

func (c AYWindow) encode() ([3]byte, int) {
	return [3]byte{opAYWindow, c.Start & maskAY, c.End & maskAY}, 3
}

func (c AYWindow) String() string { return fmt.Sprintf("AYWindow(%d,%d)", c.Start, c.End) }

// AXWindow limits data writes to the columns Start..End.
type AXWindow struct {
	Start, End byte
}

func (c AXWindow) encode() ([3]byte, int) {
	return [3]byte{opAXWindow, c.Start & maskAX, c.End & maskAX}, 3
}

func (c AXWindow) String() string { return fmt.Sprintf("AXWindow(%d,%d)", c.Start, c.End) }

// SWReset resets the controller registers to their defaults.
type SWReset struct{}

func (SWReset) encode() ([3]byte, int) {
	return [3]byte{opSWReset}, 1
}

func (SWReset) String() string { return "SWReset" }

// Duty sets the display multiplexing ratio.
type Duty byte

func (c Duty) encode() ([3]byte, int) {
	return [3]byte{opDuty, byte(c)}, 2
}

func (c Duty) String() string { return fmt.Sprintf("Duty(%d)", byte(c)) }

// Contrast selects the reference voltage.
type Contrast byte

func (c Contrast) encode() ([3]byte, int) {
	return [3]byte{opContrast, byte(c)}, 2
}

func (c Contrast) String() string { return fmt.Sprintf("Contrast(%d)", byte(c)) }

// AXAddress sets the column address of the write cursor.
type AXAddress byte

func (c AXAddress) encode() ([3]byte, int) {
	return [3]byte{opAXAddress, byte(c) & maskAX}, 2
}

func (c AXAddress) String() string { return fmt.Sprintf("AXAddress(%d)", byte(c)) }

// Booster selects the voltage multiplier supplying the LCD bias.
type Booster byte

const (
	VddX2 Booster = 0b00 // 2*VDD2-0.3
	VddX3 Booster = 0b01 // 3*VDD2-0.3
	VddX4 Booster = 0b10 // 4*VDD2-0.3
	VddX5 Booster = 0b11 // 5*VDD2-0.3
)

func (c Booster) encode() ([3]byte, int) {
	return [3]byte{opBooster | byte(c)&maskBooster}, 1
}

func (c Booster) String() string {
	switch c & maskBooster {
	case VddX2:
		return "Booster(VddX2)"
	case VddX3:
		return "Booster(VddX3)"
	case VddX4:
		return "Booster(VddX4)"
	default:
		return "Booster(VddX5)"
	}
}
