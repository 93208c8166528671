package domain

// LineSegment is the only entity ever emitted by the pen state machine.
type LineSegment struct {
	Start Point `json:"start" yaml:"start"`
	End   Point `json:"end" yaml:"end"`
}

func (l LineSegment) String() string {
	return l.Start.String() + "->" + l.End.String()
}
