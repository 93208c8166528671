package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/hpgl2dxf/internal/config"
	"github.com/aretw0/hpgl2dxf/internal/logging"
	"github.com/aretw0/hpgl2dxf/pkg/domain"
)

// Process exit codes. 1, 3, 4 and 5 match the historical hpgl-dxf tool.
const (
	ExitUsage   = 1 // missing flags, stat failure
	ExitInvalid = 2 // validate found commands that would be skipped
	ExitInput   = 3 // input cannot be opened or read
	ExitOutput  = 4 // output cannot be opened
	ExitShort   = 5 // fewer bytes read than stat reported
)

// ExitError carries the process exit code for a failure.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitf(code int, format string, args ...any) error {
	return &ExitError{Code: code, Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by this package to a process exit code.
// Errors without an explicit code exit with ExitUsage.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}

// NewSignalContext returns a context cancelled on SIGINT or SIGTERM.
func NewSignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// createLogger configures the application logger.
// Skipped commands are logged at warn level, so unlike debug tracing they show
// up on stderr by default.
func createLogger(debug bool, level string) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(logging.ParseLevel(level))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommand: func(ctx context.Context, e *domain.CommandEvent) {
			if e.Before.Status != e.After.Status {
				logger.Debug("pen", "index", e.Index, "from", e.Before.Status, "to", e.After.Status)
			}
		},
		OnSegment: func(ctx context.Context, e *domain.SegmentEvent) {
			logger.Debug("line", "index", e.Index, "segment", e.Segment.String())
		},
	}
}

// loadConfig reads the config file and folds the --debug flag into it.
func loadConfig(path string, debug bool) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, &ExitError{Code: ExitUsage, Err: err}
	}
	if debug {
		cfg.Debug = true
	}
	return cfg, nil
}
