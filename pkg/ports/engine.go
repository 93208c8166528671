package ports

import (
	"context"
	"io"

	"github.com/aretw0/hpgl2dxf/pkg/domain"
)

// Converter is the conversion facade consumed by the server adapters.
type Converter interface {
	// Convert writes a complete DXF document (header, entities, footer) for input.
	Convert(ctx context.Context, input []byte, w io.Writer) (*domain.Report, error)

	// Segments runs the pen state machine and returns the emitted lines.
	Segments(ctx context.Context, input []byte) ([]domain.LineSegment, *domain.Report, error)

	// Fingerprint identifies the document framing, so caches can key on it.
	Fingerprint() string
}
