package dsl

import (
	"strconv"
	"strings"

	"github.com/aretw0/hpgl2dxf/pkg/domain"
)

// Builder accumulates HPGL commands in order.
type Builder struct {
	tokens    []string
	separator string
}

// New creates an empty program. Commands are terminated by ';'.
func New() *Builder {
	return &Builder{separator: ";"}
}

// WithSeparator changes the command terminator (e.g. "\n").
func (b *Builder) WithSeparator(sep string) *Builder {
	b.separator = sep
	return b
}

// Raw appends a token verbatim. Use it for instructions the converter ignores.
func (b *Builder) Raw(token string) *Builder {
	b.tokens = append(b.tokens, token)
	return b
}

// Init appends IN (initialize plotter).
func (b *Builder) Init() *Builder {
	return b.Raw("IN")
}

// SelectPen appends SPn.
func (b *Builder) SelectPen(n int) *Builder {
	return b.Raw("SP" + strconv.Itoa(n))
}

// PenUp appends PU.
func (b *Builder) PenUp() *Builder {
	return b.Raw(domain.OpPenUp.String())
}

// PenDown appends PD.
func (b *Builder) PenDown() *Builder {
	return b.Raw(domain.OpPenDown.String())
}

// PlotAbsolute appends PAx,y.
func (b *Builder) PlotAbsolute(x, y float64) *Builder {
	return b.Raw(domain.OpPlotAbsolute.String() + pair(x, y))
}

// PlotRelative appends PRdx,dy.
func (b *Builder) PlotRelative(dx, dy float64) *Builder {
	return b.Raw(domain.OpPlotRelative.String() + pair(dx, dy))
}

// Path lifts the pen, moves to (x, y) and lowers it, returning a builder for
// the strokes that follow.
func (b *Builder) Path(x, y float64) *PathBuilder {
	b.PenUp().PlotAbsolute(x, y).PenDown()
	return &PathBuilder{builder: b, start: domain.Point{X: x, Y: y}}
}

// Rect draws an axis-aligned rectangle with relative moves.
func (b *Builder) Rect(x, y, w, h float64) *Builder {
	return b.Path(x, y).
		Line(w, 0).
		Line(0, h).
		Line(-w, 0).
		Line(0, -h).
		End()
}

// Len returns the number of tokens so far.
func (b *Builder) Len() int {
	return len(b.tokens)
}

// String renders the program, each token followed by the separator.
func (b *Builder) String() string {
	var sb strings.Builder
	for _, t := range b.tokens {
		sb.WriteString(t)
		sb.WriteString(b.separator)
	}
	return sb.String()
}

// Build renders the program as converter input.
func (b *Builder) Build() []byte {
	return []byte(b.String())
}

func pair(x, y float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64) + "," + strconv.FormatFloat(y, 'f', -1, 64)
}
