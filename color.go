package paint

import (
	"errors"
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Color is one of the drawing colors a shape can be committed with.
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Blue
)

// colorNames maps Color values to their display names.
var colorNames = [...]string{
	Black: "Black",
	Red:   "Red",
	Green: "Green",
	Blue:  "Blue",
}

// colorValues maps Color values to surface colors.
// Green is the pure #00FF00 primary, which the CSS palette calls "lime".
var colorValues = [...]color.RGBA{
	Black: colornames.Black,
	Red:   colornames.Red,
	Green: colornames.Lime,
	Blue:  colornames.Blue,
}

// Colors lists every Color in declaration order.
func Colors() []Color {
	return []Color{Black, Red, Green, Blue}
}

// ErrUnknownColor is returned by ParseColor for names that match no Color.
var ErrUnknownColor = errors.New("paint: unknown color")

// String returns the display name of c.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Valid reports whether c is one of the declared colors.
func (c Color) Valid() bool {
	return int(c) < len(colorNames)
}

// NRGBA returns the opaque surface color for c.
// Invalid colors map to black.
func (c Color) NRGBA() color.NRGBA {
	v := colornames.Black
	if c.Valid() {
		v = colorValues[c]
	}
	return color.NRGBA{R: v.R, G: v.G, B: v.B, A: v.A}
}

// ParseColor returns the Color whose name matches s, ignoring case.
func ParseColor(s string) (Color, error) {
	folded := cases.Fold().String(s)
	for _, c := range Colors() {
		if cases.Fold().String(c.String()) == folded {
			return c, nil
		}
	}
	return Black, fmt.Errorf("%w %q", ErrUnknownColor, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
