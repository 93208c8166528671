package observability_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/hpgl2dxf"
	"github.com/aretw0/hpgl2dxf/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	conv := hpgl2dxf.New(hpgl2dxf.WithLifecycleHooks(m.Hooks()))
	_, _, err := conv.Segments(context.Background(), []byte("IN;SP1;PD;PA1,1;PR1,1;PA5;PR;PU"))
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Ignored))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Segments))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commands.WithLabelValues("PD")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commands.WithLabelValues("PA")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commands.WithLabelValues("PR")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commands.WithLabelValues("PU")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Skipped.WithLabelValues("missing_separator")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Skipped.WithLabelValues("missing_coordinates")))
}

func TestMetrics_ObserveConversion(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	m.ObserveConversion(2*time.Millisecond, nil)
	m.ObserveConversion(time.Millisecond, errors.New("write failed"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues("error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Duration))
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	m.Segments.Add(3)

	path := filepath.Join(t.TempDir(), "hpgl2dxf.prom")
	require.NoError(t, observability.WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hpgl2dxf_segments_total 3")
}
