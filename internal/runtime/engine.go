package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/hpgl2dxf/internal/hpgl"
	"github.com/aretw0/hpgl2dxf/pkg/domain"
	"github.com/aretw0/hpgl2dxf/pkg/ports"
)

// Engine is the pen state machine runner.
type Engine struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	now    func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger used for token tracing.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates a new engine. Without options it logs nowhere and has no hooks.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Step applies one command to the pen state.
// It returns the emitted line (nil unless the pen was down before a PA/PR) and the
// next state. On error the returned state is the input state, untouched.
func (e *Engine) Step(state domain.PenState, cmd domain.Command) (*domain.LineSegment, domain.PenState, error) {
	switch cmd.Op {
	case domain.OpPenUp:
		state.Status = domain.PenUp
		return nil, state, nil

	case domain.OpPenDown:
		state.Status = domain.PenDown
		return nil, state, nil

	case domain.OpPlotAbsolute, domain.OpPlotRelative:
		offset, err := hpgl.ParseCoordinate(cmd.Operand)
		if err != nil {
			return nil, state, err
		}
		e.logger.Debug("converted", "command", cmd.Token, "x", offset.X, "y", offset.Y)

		target := offset
		if cmd.Op == domain.OpPlotRelative {
			target = state.Position.Add(offset)
		}

		var seg *domain.LineSegment
		if state.IsDown() {
			seg = &domain.LineSegment{Start: state.Position, End: target}
		}
		state.Position = target
		return seg, state, nil

	default:
		return nil, state, domain.ErrUnrecognizedOpcode
	}
}

// Run drives the whole input through the tokenizer, the command filter and Step,
// forwarding every emitted line to sink. It starts from a fresh PenState.
//
// Malformed commands never abort the run: they are skipped and collected in
// Report.Errors. Only a sink failure or a cancelled context stops it early; the
// partial report is returned alongside the error.
func (e *Engine) Run(ctx context.Context, text string, sink ports.SegmentSink) (*domain.Report, error) {
	report := &domain.Report{}
	state := domain.NewPenState()

	index := 0
	for token := range hpgl.Tokens(text) {
		if err := ctx.Err(); err != nil {
			report.Final = state
			return report, err
		}

		i := index
		index++
		report.Tokens++
		e.logger.Debug("in", "index", i, "token", token)

		cmd, ok := hpgl.Classify(token)
		if !ok {
			report.Ignored++
			e.logger.Debug("ignored", "index", i, "token", token)
			e.emitIgnored(ctx, i, token)
			continue
		}
		report.Commands++

		seg, next, err := e.Step(state, cmd)
		if err != nil {
			cmdErr := &domain.CommandError{Index: i, Token: token, Err: err}
			report.Errors = append(report.Errors, cmdErr)
			e.logger.Warn("skipped command", "index", i, "token", token, "error", err)
			e.emitSkipped(ctx, i, cmd, cmdErr)
			continue
		}

		e.emitCommand(ctx, i, cmd, state, next)
		state = next

		if seg == nil {
			continue
		}
		if err := sink.Emit(ctx, *seg); err != nil {
			report.Final = state
			return report, fmt.Errorf("failed to emit segment for '%s': %w", token, err)
		}
		report.Segments++
		e.emitSegment(ctx, i, *seg)
	}

	report.Final = state
	return report, nil
}
