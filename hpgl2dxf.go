package hpgl2dxf

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/hpgl2dxf/internal/runtime"
	"github.com/aretw0/hpgl2dxf/pkg/adapters/memory"
	"github.com/aretw0/hpgl2dxf/pkg/domain"
	"github.com/aretw0/hpgl2dxf/pkg/dxf"
)

// Report summarizes one conversion run.
type Report = domain.Report

// Converter is the high-level entry point for the library.
// It wraps the pen state machine runtime and the DXF emitter.
// A Converter holds no per-run state and is safe for concurrent use.
type Converter struct {
	runtime *runtime.Engine
	doc     dxf.Document
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Converter.
type Option func(*Converter)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Converter) {
		c.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the converter.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithDocument replaces the DXF framing written around the entities.
func WithDocument(doc dxf.Document) Option {
	return func(c *Converter) {
		c.doc = doc
	}
}

// WithHeader overrides only the document preamble.
func WithHeader(header string) Option {
	return func(c *Converter) {
		c.doc.Header = header
	}
}

// WithFooter overrides only the document postamble.
func WithFooter(footer string) Option {
	return func(c *Converter) {
		c.doc.Footer = footer
	}
}

// New initializes a Converter. By default it writes the single-layer
// SECTION/ENTITIES framing and logs nowhere.
func New(opts ...Option) *Converter {
	c := &Converter{doc: dxf.DefaultDocument()}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c.runtime = runtime.NewEngine(
		runtime.WithLogger(c.logger),
		runtime.WithLifecycleHooks(c.hooks),
	)
	return c
}

// Convert writes a complete DXF document for input to w: header, one LINE per
// pen-down motion, footer. Malformed commands are reported in Report.Errors.
// The returned error is only set for write failures or cancellation.
func (c *Converter) Convert(ctx context.Context, input []byte, w io.Writer) (*Report, error) {
	if err := c.doc.WriteHeader(w); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	out := dxf.NewWriter(w)
	report, err := c.runtime.Run(ctx, string(input), out)
	if err != nil {
		return report, err
	}
	if err := out.Flush(); err != nil {
		return report, fmt.Errorf("failed to write entities: %w", err)
	}

	if err := c.doc.WriteFooter(w); err != nil {
		return report, fmt.Errorf("failed to write footer: %w", err)
	}

	c.logger.Debug("conversion finished",
		"tokens", report.Tokens,
		"segments", report.Segments,
		"skipped", len(report.Errors),
	)
	return report, nil
}

// Segments runs the pen state machine and returns the emitted lines without
// formatting them.
func (c *Converter) Segments(ctx context.Context, input []byte) ([]domain.LineSegment, *Report, error) {
	sink := memory.NewCollector()
	report, err := c.runtime.Run(ctx, string(input), sink)
	return sink.Segments(), report, err
}

// Document returns the framing written around the entities.
func (c *Converter) Document() dxf.Document {
	return c.doc
}

// Fingerprint identifies the converter's output framing. Identical input converted
// by converters with the same fingerprint yields byte-identical documents.
func (c *Converter) Fingerprint() string {
	return c.doc.Fingerprint()
}
