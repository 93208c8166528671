package domain

import "fmt"

// Point is a location in plotter space. Values are passed through as parsed,
// with no unit conversion.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%0.3f, %0.3f)", p.X, p.Y)
}
