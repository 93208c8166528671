package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/hpgl2dxf/pkg/domain"
	"github.com/aretw0/hpgl2dxf/pkg/ports"
)

// SegmentSinkContractTest is a reusable test suite that verifies if an adapter complies
// with ports.SegmentSink. The read callback must return what the sink has recorded so far,
// decoded back into segments.
func SegmentSinkContractTest(t *testing.T, sink ports.SegmentSink, read func() ([]domain.LineSegment, error)) {
	t.Helper()

	input := []domain.LineSegment{
		{Start: domain.Point{X: 0, Y: 0}, End: domain.Point{X: 10, Y: 0}},
		{Start: domain.Point{X: 10, Y: 0}, End: domain.Point{X: 10, Y: 10}},
		{Start: domain.Point{X: 10, Y: 10}, End: domain.Point{X: -2.5, Y: 0.125}},
	}

	// 1. Emit preserves arrival order
	t.Run("Emit_Order", func(t *testing.T) {
		for i, seg := range input {
			if err := sink.Emit(context.Background(), seg); err != nil {
				t.Fatalf("unexpected error emitting segment %d: %v", i, err)
			}
		}

		got, err := read()
		if err != nil {
			t.Fatalf("unexpected error reading sink: %v", err)
		}
		if len(got) != len(input) {
			t.Fatalf("expected %d segments, got %d", len(input), len(got))
		}
		for i := range input {
			if got[i] != input[i] {
				t.Errorf("segment %d mismatch. got %v, want %v", i, got[i], input[i])
			}
		}
	})

	// 2. Cancelled context is respected
	t.Run("Emit_Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := sink.Emit(ctx, input[0])
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}
