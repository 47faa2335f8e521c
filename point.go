package paint

import (
	"fmt"
	"image"
	"math"
)

// Point is an integer surface coordinate. Points are values and are never
// modified once recorded.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Image converts p to an image.Point.
func (p Point) Image() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Radius returns the Euclidean distance between center and p, truncated
// toward zero.
func Radius(center, p Point) int {
	d := p.Sub(center)
	return int(math.Hypot(float64(d.X), float64(d.Y)))
}

// Radii returns the absolute horizontal and vertical distances between
// center and p: the half-extents of the bounding box centered on center
// that has p as a corner.
func Radii(center, p Point) (rx, ry int) {
	d := p.Sub(center)
	return absInt(d.X), absInt(d.Y)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
