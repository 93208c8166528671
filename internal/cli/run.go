package cli

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/aretw0/hpgl2dxf"
	"github.com/aretw0/hpgl2dxf/pkg/domain"
	"github.com/aretw0/hpgl2dxf/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// ConvertOptions contains all the configuration for a file conversion.
type ConvertOptions struct {
	Input       string
	Output      string
	Debug       bool
	ConfigPath  string
	MetricsFile string // optional node_exporter textfile
}

// RunConvert converts Input to Output, overwriting Output.
// Failures are returned as *ExitError; see ExitCode.
func RunConvert(ctx context.Context, opts ConvertOptions) (*hpgl2dxf.Report, error) {
	if opts.Input == "" {
		return nil, exitf(ExitUsage, "input filename is empty")
	}
	if opts.Output == "" {
		return nil, exitf(ExitUsage, "output filename is empty")
	}

	cfg, err := loadConfig(opts.ConfigPath, opts.Debug)
	if err != nil {
		return nil, err
	}
	logger := createLogger(cfg.Debug, cfg.LogLevel)

	var metrics *observability.Metrics
	var registry *prometheus.Registry
	hooks := domain.LifecycleHooks{}
	if cfg.Debug {
		hooks = createDebugHooks(logger)
	}
	if opts.MetricsFile != "" {
		registry = prometheus.NewRegistry()
		metrics = observability.NewMetrics(registry)
		hooks = domain.ComposeHooks(hooks, metrics.Hooks())
	}

	data, err := ReadInput(opts.Input)
	if err != nil {
		return nil, err
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		return nil, exitf(ExitOutput, "cannot open output file '%s' for writing: %w", opts.Output, err)
	}

	conv := hpgl2dxf.New(
		hpgl2dxf.WithLogger(logger),
		hpgl2dxf.WithLifecycleHooks(hooks),
		hpgl2dxf.WithDocument(cfg.Document()),
	)

	start := time.Now()
	report, err := conv.Convert(ctx, data, out)
	err = errors.Join(err, out.Close())
	if metrics != nil {
		metrics.ObserveConversion(time.Since(start), err)
		if werr := observability.WriteTextfile(opts.MetricsFile, registry); werr != nil {
			logger.Warn("failed to write metrics file", "path", opts.MetricsFile, "error", werr)
		}
	}
	if err != nil {
		return report, exitf(ExitOutput, "failed to write '%s': %w", opts.Output, err)
	}

	logger.Debug("wrote output", "path", opts.Output, "segments", report.Segments, "skipped", len(report.Errors))
	return report, nil
}
