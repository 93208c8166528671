package hpgl2dxf_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/aretw0/hpgl2dxf"
	"github.com/aretw0/hpgl2dxf/pkg/domain"
	"github.com/aretw0/hpgl2dxf/pkg/dxf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_Convert(t *testing.T) {
	var buf bytes.Buffer
	report, err := hpgl2dxf.New().Convert(context.Background(), []byte("IN;SP1;PU;PA10,10;PD;PA20,20;PU;"), &buf)
	require.NoError(t, err)

	want := "0\nSECTION\n0\nENTITIES\n0\n" +
		"LINE\n10\n10.000\n20\n10.000\n11\n20.000\n21\n20.000\n0\n" +
		"ENDSEC\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 1, report.Segments)
	assert.Equal(t, 2, report.Ignored)
	assert.Equal(t, domain.PenUp, report.Final.Status)
}

func TestFacade_Convert_NoLines(t *testing.T) {
	var buf bytes.Buffer
	report, err := hpgl2dxf.New().Convert(context.Background(), []byte("PU;PA1,1;PR2,2"), &buf)
	require.NoError(t, err)

	assert.Equal(t, dxf.DefaultHeader+dxf.DefaultFooter, buf.String())
	assert.Equal(t, domain.Point{X: 3, Y: 3}, report.Final.Position)
}

func TestFacade_Convert_Idempotent(t *testing.T) {
	input := []byte("PD;PA5,5;PA15,5;PA15,15;PAxx,1;PR-15,-15")
	conv := hpgl2dxf.New()

	var a, b bytes.Buffer
	_, err := conv.Convert(context.Background(), input, &a)
	require.NoError(t, err)
	_, err = conv.Convert(context.Background(), input, &b)
	require.NoError(t, err)

	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestFacade_Convert_MalformedIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	report, err := hpgl2dxf.New().Convert(context.Background(), []byte("PD;PA10;PA1,1"), &buf)
	require.NoError(t, err)

	require.Len(t, report.Errors, 1)
	assert.ErrorIs(t, report.Errors[0], domain.ErrMissingSeparator)
	assert.Equal(t, []string{"cannot find coordinate separator in 'PA10'"}, report.ErrorMessages())

	lines, err := dxf.ReadLines(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []domain.LineSegment{{End: domain.Point{X: 1, Y: 1}}}, lines)
}

func TestFacade_CustomDocument(t *testing.T) {
	conv := hpgl2dxf.New(
		hpgl2dxf.WithHeader("999\nhpgl2dxf\n0\nSECTION\n0\nENTITIES\n0\n"),
		hpgl2dxf.WithFooter("ENDSEC\n0\nEOF\n"),
	)

	var buf bytes.Buffer
	_, err := conv.Convert(context.Background(), []byte("PD;PR1,0"), &buf)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("999\nhpgl2dxf\n")))
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("ENDSEC\n0\nEOF\n")))
	assert.NotEqual(t, hpgl2dxf.New().Fingerprint(), conv.Fingerprint())
}

func TestFacade_Segments(t *testing.T) {
	segs, report, err := hpgl2dxf.New().Segments(context.Background(), []byte("PD;PR10,0;PR0,10;"))
	require.NoError(t, err)

	assert.Equal(t, []domain.LineSegment{
		{Start: domain.Point{X: 0, Y: 0}, End: domain.Point{X: 10, Y: 0}},
		{Start: domain.Point{X: 10, Y: 0}, End: domain.Point{X: 10, Y: 10}},
	}, segs)
	assert.Equal(t, 2, report.Segments)
}

func TestFacade_Hooks(t *testing.T) {
	var lines int
	conv := hpgl2dxf.New(hpgl2dxf.WithLifecycleHooks(domain.LifecycleHooks{
		OnSegment: func(ctx context.Context, e *domain.SegmentEvent) { lines++ },
	}))

	_, _, err := conv.Segments(context.Background(), []byte("PD;PA1,1;PA2,2;PU;PA3,3"))
	require.NoError(t, err)
	assert.Equal(t, 2, lines)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("read-only") }

func TestFacade_Convert_WriteFailure(t *testing.T) {
	_, err := hpgl2dxf.New().Convert(context.Background(), []byte("PD;PA1,1"), failingWriter{})
	assert.ErrorContains(t, err, "failed to write header")
}
