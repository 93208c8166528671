package memory

import (
	"context"
	"sync"

	"github.com/aretw0/hpgl2dxf/pkg/domain"
)

// Collector implements ports.SegmentSink by keeping every segment in memory.
type Collector struct {
	mu       sync.Mutex
	segments []domain.LineSegment
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Emit appends seg.
func (c *Collector) Emit(ctx context.Context, seg domain.LineSegment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.segments = append(c.segments, seg)
	return nil
}

// Segments returns a copy of the collected segments in arrival order.
func (c *Collector) Segments() []domain.LineSegment {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.LineSegment, len(c.segments))
	copy(out, c.segments)
	return out
}

// Reset drops every collected segment.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.segments = nil
}
