package domain

// Opcode is the closed set of plotter commands the state machine handles.
type Opcode int

const (
	OpUnknown      Opcode = iota // Anything outside the handled set
	OpPenUp                      // PU
	OpPenDown                    // PD
	OpPlotAbsolute               // PA
	OpPlotRelative               // PR
)

var opcodeNames = [...]string{
	OpUnknown:      "??",
	OpPenUp:        "PU",
	OpPenDown:      "PD",
	OpPlotAbsolute: "PA",
	OpPlotRelative: "PR",
}

func (o Opcode) String() string {
	if o < 0 || int(o) >= len(opcodeNames) {
		return opcodeNames[OpUnknown]
	}
	return opcodeNames[o]
}

// IsMotion reports whether the opcode moves the pen (PA or PR).
func (o Opcode) IsMotion() bool {
	return o == OpPlotAbsolute || o == OpPlotRelative
}

// OpcodeFromSuffix decodes an opcode from the second character of a mnemonic.
// Case is ignored here; the uppercase-only rule belongs to the command filter.
func OpcodeFromSuffix(c byte) Opcode {
	switch c {
	case 'U', 'u':
		return OpPenUp
	case 'D', 'd':
		return OpPenDown
	case 'A', 'a':
		return OpPlotAbsolute
	case 'R', 'r':
		return OpPlotRelative
	default:
		return OpUnknown
	}
}
