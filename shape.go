package paint

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/cases"
)

// ShapeKind identifies the primitive a Shape is rendered as.
type ShapeKind uint8

const (
	Line ShapeKind = iota
	Circle
	Ellipse
	Rectangle
	Polygon
	Polyline
)

// kindNames maps ShapeKind values to their display names.
var kindNames = [...]string{
	Line:      "Line",
	Circle:    "Circle",
	Ellipse:   "Ellipse",
	Rectangle: "Rectangle",
	Polygon:   "Polygon",
	Polyline:  "Polyline",
}

// kindAliases are extra accepted spellings for ParseShapeKind.
var kindAliases = map[string]ShapeKind{
	"polylines": Polyline,
	"rect":      Rectangle,
}

// ErrUnknownKind is returned by ParseShapeKind for names that match no kind.
var ErrUnknownKind = errors.New("paint: unknown shape kind")

// ShapeKinds lists every ShapeKind in declaration order.
func ShapeKinds() []ShapeKind {
	return []ShapeKind{Line, Circle, Ellipse, Rectangle, Polygon, Polyline}
}

// String returns the display name of k.
func (k ShapeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ShapeKind(%d)", uint8(k))
}

// Valid reports whether k is one of the declared kinds.
func (k ShapeKind) Valid() bool {
	return int(k) < len(kindNames)
}

// MultiVertex reports whether shapes of this kind take an open-ended
// vertex list. All other kinds are defined by an anchor and a terminal point.
func (k ShapeKind) MultiVertex() bool {
	return k == Polygon || k == Polyline
}

// ParseShapeKind returns the ShapeKind whose name matches s, ignoring case.
func ParseShapeKind(s string) (ShapeKind, error) {
	folded := cases.Fold().String(s)
	for _, k := range ShapeKinds() {
		if cases.Fold().String(k.String()) == folded {
			return k, nil
		}
	}
	if k, ok := kindAliases[folded]; ok {
		return k, nil
	}
	return Line, fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k ShapeKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ShapeKind) UnmarshalText(text []byte) error {
	v, err := ParseShapeKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Shape is a committed or in-progress primitive.
//
// Line, Circle, Ellipse and Rectangle use the first two points (anchor and
// terminal). Polygon and Polyline use every point in order; a Polygon is a
// Polyline whose last point connects back to the first.
type Shape struct {
	Kind   ShapeKind `json:"kind"`
	Color  Color     `json:"color"`
	Points []Point   `json:"points"`
}

// Clone returns a deep copy of s.
func (s Shape) Clone() Shape {
	s.Points = slices.Clone(s.Points)
	return s
}

// With returns a copy of s with p appended to its points.
// The receiver's point slice is never shared with the result.
func (s Shape) With(p Point) Shape {
	pts := make([]Point, len(s.Points), len(s.Points)+1)
	copy(pts, s.Points)
	s.Points = append(pts, p)
	return s
}

// Equal reports whether two shapes have the same kind, color and points.
func (s Shape) Equal(o Shape) bool {
	return s.Kind == o.Kind && s.Color == o.Color && slices.Equal(s.Points, o.Points)
}

// String returns a short description such as "Circle[Red](10,10)-(20,10)".
func (s Shape) String() string {
	b := make([]byte, 0, 16+len(s.Points)*10)
	b = fmt.Appendf(b, "%s[%s]", s.Kind, s.Color)
	for i, p := range s.Points {
		if i > 0 {
			b = append(b, '-')
		}
		b = append(b, p.String()...)
	}
	return string(b)
}
