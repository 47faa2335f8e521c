package paint

import (
	"image"
	"image/color"
)

// Pixmap is an in-memory rectangular pixel buffer implementing PixelSink.
// Pixels are stored as non-premultiplied RGBA, 4 bytes per pixel, rows top
// to bottom.
//
// Plot silently ignores coordinates outside the buffer, so shapes that
// extend past the edge are clipped rather than wrapped.
type Pixmap struct {
	width  int
	height int
	data   []uint8

	fg color.NRGBA
	bg color.NRGBA
}

// Ensure Pixmap implements PixelSink and image.Image.
var (
	_ PixelSink   = (*Pixmap)(nil)
	_ image.Image = (*Pixmap)(nil)
)

// NewPixmap creates a pixmap with the given dimensions, cleared to an
// opaque white background. The drawing color starts as Black.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	p := &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
		fg:     Black.NRGBA(),
		bg:     color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
	p.Clear(p.bg)
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (non-premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Background returns the color ClearSurface fills with.
func (p *Pixmap) Background() color.NRGBA {
	return p.bg
}

// SetBackground changes the color ClearSurface fills with.
// It does not repaint the current contents.
func (p *Pixmap) SetBackground(c color.Color) {
	p.bg = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// SetColor implements PixelSink.
func (p *Pixmap) SetColor(c Color) {
	p.fg = c.NRGBA()
}

// Plot implements PixelSink.
func (p *Pixmap) Plot(x, y int) {
	p.SetPixel(x, y, p.fg)
}

// ClearSurface implements PixelSink.
func (p *Pixmap) ClearSurface() {
	p.Clear(p.bg)
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds coordinates return the transparent color.
func (p *Pixmap) GetPixel(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.NRGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// Count returns the number of pixels equal to c.
func (p *Pixmap) Count(c color.NRGBA) int {
	n := 0
	for i := 0; i < len(p.data); i += 4 {
		if p.data[i] == c.R && p.data[i+1] == c.G && p.data[i+2] == c.B && p.data[i+3] == c.A {
			n++
		}
	}
	return n
}

// ToImage copies the pixmap into a new image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
