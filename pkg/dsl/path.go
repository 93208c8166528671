package dsl

import "github.com/aretw0/hpgl2dxf/pkg/domain"

// PathBuilder provides a fluent API for a single pen-down stroke sequence.
type PathBuilder struct {
	builder *Builder
	start   domain.Point
}

// LineTo draws to the absolute point (x, y).
func (p *PathBuilder) LineTo(x, y float64) *PathBuilder {
	p.builder.PlotAbsolute(x, y)
	return p
}

// Line draws by the relative offset (dx, dy).
func (p *PathBuilder) Line(dx, dy float64) *PathBuilder {
	p.builder.PlotRelative(dx, dy)
	return p
}

// Close draws back to the starting point and lifts the pen.
func (p *PathBuilder) Close() *Builder {
	return p.LineTo(p.start.X, p.start.Y).End()
}

// End lifts the pen and returns to the program builder.
func (p *PathBuilder) End() *Builder {
	return p.builder.PenUp()
}
