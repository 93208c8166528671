package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/hpgl2dxf/pkg/adapters/memory"
	"github.com/aretw0/hpgl2dxf/pkg/domain"
	"github.com/aretw0/hpgl2dxf/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
)

func TestCollector_Contract(t *testing.T) {
	c := memory.NewCollector()
	tests.SegmentSinkContractTest(t, c, func() ([]domain.LineSegment, error) {
		return c.Segments(), nil
	})
}

func TestCollector_Reset(t *testing.T) {
	c := memory.NewCollector()
	_ = c.Emit(context.Background(), domain.LineSegment{End: domain.Point{X: 1}})
	assert.Len(t, c.Segments(), 1)

	c.Reset()
	assert.Empty(t, c.Segments())
}
