package ports

import (
	"context"

	"github.com/aretw0/hpgl2dxf/pkg/domain"
)

// SegmentSink receives the line segments produced by the pen state machine.
// Segments arrive strictly in input order. An error aborts the run.
type SegmentSink interface {
	Emit(ctx context.Context, seg domain.LineSegment) error
}

// SegmentSinkFunc adapts a plain function to SegmentSink.
type SegmentSinkFunc func(ctx context.Context, seg domain.LineSegment) error

// Emit calls f.
func (f SegmentSinkFunc) Emit(ctx context.Context, seg domain.LineSegment) error {
	return f(ctx, seg)
}
