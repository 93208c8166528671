package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/hpgl2dxf/internal/validator"
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	Input string
	// Strict also fails on warnings.
	Strict bool
}

// RunValidate checks Input and prints one line per issue to w.
// It fails with ExitInvalid when an error (or, in strict mode, a warning) is found.
func RunValidate(opts ValidateOptions, w io.Writer) error {
	if opts.Input == "" {
		return exitf(ExitUsage, "input filename is empty")
	}

	data, err := ReadInput(opts.Input)
	if err != nil {
		return err
	}

	issues := validator.ValidateProgram(string(data))
	for _, issue := range issues {
		fmt.Fprintln(w, issue)
	}

	errs, warnings := validator.Count(issues)
	if errs > 0 || (opts.Strict && warnings > 0) {
		return exitf(ExitInvalid, "%s: %d errors, %d warnings", opts.Input, errs, warnings)
	}

	fmt.Fprintf(w, "%s is valid (%d warnings)\n", opts.Input, warnings)
	return nil
}
