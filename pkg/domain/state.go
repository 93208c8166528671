package domain

// PenStatus defines whether motion commands draw.
type PenStatus int

const (
	PenUp   PenStatus = iota // Motion moves the pen without drawing
	PenDown                  // Motion draws a line
)

func (s PenStatus) String() string {
	if s == PenDown {
		return "down"
	}
	return "up"
}

// MarshalText renders the status as "up" or "down" for JSON/YAML reports.
func (s PenStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PenState is the snapshot of the plotter pen.
// It is a plain value: each step receives the current state and returns the next one.
type PenState struct {
	// Position reflects every motion command applied so far, drawn or not.
	Position Point `json:"position" yaml:"position"`

	// Status is Up or Down. Only PU and PD change it.
	Status PenStatus `json:"status" yaml:"status"`
}

// NewPenState returns the initial state of a conversion run: origin, pen up.
func NewPenState() PenState {
	return PenState{
		Position: Point{},
		Status:   PenUp,
	}
}

// IsDown reports whether motion would currently draw.
func (s PenState) IsDown() bool {
	return s.Status == PenDown
}
