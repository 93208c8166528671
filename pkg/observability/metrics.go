package observability

import (
	"context"
	"time"

	"github.com/aretw0/hpgl2dxf/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hpgl2dxf"

// Metrics groups the converter counters.
type Metrics struct {
	Commands    *prometheus.CounterVec
	Segments    prometheus.Counter
	Skipped     *prometheus.CounterVec
	Ignored     prometheus.Counter
	Conversions *prometheus.CounterVec
	Duration    prometheus.Histogram
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Commands: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Commands applied to the pen, by opcode.",
		}, []string{"opcode"}),
		Segments: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "segments_total",
			Help:      "LINE entities emitted.",
		}),
		Skipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_total",
			Help:      "Commands skipped because they could not be processed, by reason.",
		}, []string{"reason"}),
		Ignored: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ignored_tokens_total",
			Help:      "Tokens dropped by the command filter.",
		}),
		Conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Completed conversion runs, by outcome.",
		}, []string{"outcome"}),
		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_duration_seconds",
			Help:      "Wall time of a conversion run.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnIgnored: func(ctx context.Context, e *domain.TokenEvent) {
			m.Ignored.Inc()
		},
		OnCommand: func(ctx context.Context, e *domain.CommandEvent) {
			m.Commands.WithLabelValues(e.Command.Op.String()).Inc()
		},
		OnSegment: func(ctx context.Context, e *domain.SegmentEvent) {
			m.Segments.Inc()
		},
		OnSkipped: func(ctx context.Context, e *domain.SkipEvent) {
			m.Skipped.WithLabelValues(domain.ErrorReason(e.Err)).Inc()
		},
	}
}

// ObserveConversion records the outcome and duration of one run.
func (m *Metrics) ObserveConversion(elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Conversions.WithLabelValues(outcome).Inc()
	m.Duration.Observe(elapsed.Seconds())
}

// WriteTextfile dumps everything gathered by g in the text exposition format,
// atomically, for the node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
