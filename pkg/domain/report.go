package domain

// Report summarizes one conversion run.
type Report struct {
	Tokens   int `json:"tokens" yaml:"tokens"`     // Non-empty tokens seen
	Commands int `json:"commands" yaml:"commands"` // Tokens that passed the command filter
	Ignored  int `json:"ignored" yaml:"ignored"`   // Tokens dropped by the command filter
	Segments int `json:"segments" yaml:"segments"` // Lines emitted

	// Errors holds the non-fatal *CommandError values, in input order.
	Errors []error `json:"-" yaml:"-"`

	// Final is the pen state after the last token.
	Final PenState `json:"final" yaml:"final"`
}

// ErrorMessages renders Errors as strings for serialization.
func (r *Report) ErrorMessages() []string {
	msgs := make([]string, 0, len(r.Errors))
	for _, err := range r.Errors {
		msgs = append(msgs, err.Error())
	}
	return msgs
}
