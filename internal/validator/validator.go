package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/hpgl2dxf/internal/hpgl"
)

// Severity ranks an Issue.
type Severity string

const (
	// SeverityError marks a command the converter will skip.
	SeverityError Severity = "error"
	// SeverityWarning marks input that converts, but probably not as intended.
	SeverityWarning Severity = "warning"
)

// Issue is one finding about a token.
type Issue struct {
	Index    int      `json:"index" yaml:"index"`
	Token    string   `json:"token" yaml:"token"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("#%d %s: %s in '%s'", i.Index, i.Severity, i.Message, i.Token)
}

// ValidateProgram checks every token of an HPGL program without converting it.
//
// Errors are the commands the converter would skip. Warnings flag tokens that look
// like motion commands but are dropped by the command filter (lowercase or
// indented mnemonics) and PA/PR commands chaining several coordinate pairs, of
// which only the first is drawn.
func ValidateProgram(text string) []Issue {
	var issues []Issue

	index := 0
	for token := range hpgl.Tokens(text) {
		i := index
		index++

		cmd, ok := hpgl.Classify(token)
		if !ok {
			if near, ok := hpgl.Classify(strings.ToUpper(strings.TrimSpace(token))); ok {
				issues = append(issues, Issue{
					Index:    i,
					Token:    token,
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("looks like %s but is ignored (mnemonics must be uppercase and unindented)", near.Op),
				})
			}
			continue
		}

		if !cmd.Op.IsMotion() {
			continue
		}

		if _, err := hpgl.ParseCoordinate(cmd.Operand); err != nil {
			issues = append(issues, Issue{Index: i, Token: token, Severity: SeverityError, Message: err.Error()})
			continue
		}

		if strings.Count(cmd.Operand, ",") > 1 {
			issues = append(issues, Issue{
				Index:    i,
				Token:    token,
				Severity: SeverityWarning,
				Message:  "only the first coordinate pair is used",
			})
		}
	}

	return issues
}

// Validate returns an error listing every SeverityError issue, or nil.
func Validate(text string) error {
	var errs []string
	for _, issue := range ValidateProgram(text) {
		if issue.Severity == SeverityError {
			errs = append(errs, issue.String())
		}
	}

	if len(errs) > 0 {
		return errors.New("validation failed:\n" + strings.Join(errs, "\n"))
	}
	return nil
}

// Count returns the number of errors and warnings in issues.
func Count(issues []Issue) (errs, warnings int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errs++
		case SeverityWarning:
			warnings++
		}
	}
	return errs, warnings
}
