package domain

// Command is an immutable view over a single token.
type Command struct {
	// Op is the decoded opcode.
	Op Opcode

	// Token is the full token text as it appeared in the input (e.g. "PA10,20").
	Token string

	// Operand is everything after the two-character mnemonic.
	Operand string
}

func (c Command) String() string {
	return c.Token
}
