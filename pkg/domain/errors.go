package domain

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedOpcode is returned when a command reaches the state machine with an
// opcode outside the handled set.
var ErrUnrecognizedOpcode = errors.New("don't know how to handle command")

// ErrMissingCoordinates is returned when a motion command has no digit or minus sign.
var ErrMissingCoordinates = errors.New("cannot find coordinates")

// ErrMissingSeparator is returned when a motion command has no comma between X and Y.
var ErrMissingSeparator = errors.New("cannot find coordinate separator")

// CommandError ties a non-fatal processing failure to the token that caused it.
// The command is skipped and the pen state is left unchanged.
type CommandError struct {
	Index int    // Position of the token in the stream (0-based, counting every token)
	Token string // The offending token
	Err   error  // One of the sentinel errors above
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s in '%s'", e.Err, e.Token)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Reason returns a short machine-friendly label for the underlying failure.
func (e *CommandError) Reason() string {
	return ErrorReason(e.Err)
}

// ErrorReason maps the sentinel errors to stable labels (used by metrics and reports).
func ErrorReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingCoordinates):
		return "missing_coordinates"
	case errors.Is(err, ErrMissingSeparator):
		return "missing_separator"
	case errors.Is(err, ErrUnrecognizedOpcode):
		return "unrecognized_opcode"
	default:
		return "unknown"
	}
}

// ErrCacheMiss is returned by conversion caches when a key is absent.
var ErrCacheMiss = errors.New("cache miss")
