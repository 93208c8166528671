package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aretw0/hpgl2dxf"
	"github.com/aretw0/hpgl2dxf/internal/presentation/tui"
	"github.com/aretw0/hpgl2dxf/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Inspection formats.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// InspectOptions configures the inspect command.
type InspectOptions struct {
	Input      string
	Format     string
	ConfigPath string
	Debug      bool
	// Styled renders markdown through glamour; set it when writing to a terminal.
	Styled bool
	Width  int
}

// Inspection is the machine-readable form of an inspection report.
type Inspection struct {
	Source   string               `json:"source" yaml:"source"`
	Tokens   int                  `json:"tokens" yaml:"tokens"`
	Commands int                  `json:"commands" yaml:"commands"`
	Ignored  int                  `json:"ignored" yaml:"ignored"`
	Segments []domain.LineSegment `json:"segments" yaml:"segments"`
	Errors   []string             `json:"errors" yaml:"errors"`
	Final    domain.PenState      `json:"final" yaml:"final"`
}

// NewInspection builds an Inspection from a conversion result.
func NewInspection(source string, segs []domain.LineSegment, report *hpgl2dxf.Report) Inspection {
	if segs == nil {
		segs = []domain.LineSegment{}
	}
	return Inspection{
		Source:   source,
		Tokens:   report.Tokens,
		Commands: report.Commands,
		Ignored:  report.Ignored,
		Segments: segs,
		Errors:   report.ErrorMessages(),
		Final:    report.Final,
	}
}

// RunInspect runs the pen state machine over Input without writing DXF and
// prints a summary to w.
func RunInspect(ctx context.Context, opts InspectOptions, w io.Writer) error {
	if opts.Input == "" {
		return exitf(ExitUsage, "input filename is empty")
	}

	cfg, err := loadConfig(opts.ConfigPath, opts.Debug)
	if err != nil {
		return err
	}
	logger := createLogger(cfg.Debug, "error")

	data, err := ReadInput(opts.Input)
	if err != nil {
		return err
	}

	conv := hpgl2dxf.New(hpgl2dxf.WithLogger(logger), hpgl2dxf.WithDocument(cfg.Document()))
	segs, report, err := conv.Segments(ctx, data)
	if err != nil {
		return err
	}

	source := filepath.Base(opts.Input)
	switch opts.Format {
	case "", FormatMarkdown:
		md := tui.ReportMarkdown(source, segs, report)
		if !opts.Styled {
			_, err = io.WriteString(w, md)
			return err
		}
		render, err := tui.NewRenderer(opts.Width)
		if err != nil {
			return err
		}
		out, err := render(md)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewInspection(source, segs, report))

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewInspection(source, segs, report)); err != nil {
			return err
		}
		return enc.Close()

	default:
		return exitf(ExitUsage, "unknown format %q (want markdown, json or yaml)", opts.Format)
	}
}

// FormatReport is the one-line summary printed after a conversion.
func FormatReport(report *hpgl2dxf.Report) string {
	return fmt.Sprintf("%d lines, %d skipped, %d ignored", report.Segments, len(report.Errors), report.Ignored)
}
