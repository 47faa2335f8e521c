// Package raster provides the pixel image backend for the recording system.
// It replays recordings onto a paint.Pixmap and encodes the result as PNG,
// BMP or TIFF.
//
// The output can be upscaled by an integer factor with nearest-neighbor
// sampling, so single-pixel primitives stay crisp, and can carry a status
// label in the bottom-left corner.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/paint/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("raster")
//
//	// Or create directly with options
//	backend := raster.NewBackend(raster.WithFormat(raster.BMP), raster.WithScale(4))
//
//	rec.FinishRecording().Playback(backend)
//	backend.SaveToFile("scene.bmp")
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/tiff"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/recording"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to a pixel image.
type Backend struct {
	pm  *paint.Pixmap
	out *image.NRGBA

	format     Format
	scale      int
	label      string
	background color.Color
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.PixmapBackend = (*Backend)(nil)
)

// NewBackend creates a new raster backend. Without options it writes
// unscaled PNG on a white background.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		format:     PNG,
		scale:      1,
		background: color.White,
	}
	b.Apply(opts...)
	return b
}

// Apply changes the output settings. Settings take effect on the next End.
func (b *Backend) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(b)
	}
}

// Begin implements recording.Backend.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid surface size %dx%d", width, height)
	}
	b.pm = paint.NewPixmap(width, height)
	b.pm.SetBackground(b.background)
	b.pm.ClearSurface()
	b.out = nil
	return nil
}

// SetColor implements paint.PixelSink.
func (b *Backend) SetColor(c paint.Color) {
	b.pm.SetColor(c)
}

// Plot implements paint.PixelSink.
func (b *Backend) Plot(x, y int) {
	b.pm.Plot(x, y)
}

// ClearSurface implements paint.PixelSink.
func (b *Backend) ClearSurface() {
	b.pm.ClearSurface()
}

// End implements recording.Backend. It builds the output image from the
// pixmap, applying scale and label.
func (b *Backend) End() error {
	if b.pm == nil {
		return fmt.Errorf("raster: End called before Begin")
	}

	src := b.pm.ToImage()
	out := src
	if b.scale > 1 {
		r := image.Rect(0, 0, src.Bounds().Dx()*b.scale, src.Bounds().Dy()*b.scale)
		out = image.NewNRGBA(r)
		draw.NearestNeighbor.Scale(out, r, src, src.Bounds(), draw.Src, nil)
	}
	if b.label != "" {
		drawLabel(out, b.label)
	}
	b.out = out

	paint.Logger().Debug("raster: frame encoded",
		"format", b.format, "scale", b.scale, "size", out.Bounds().Size())
	return nil
}

// drawLabel writes s in black along the bottom-left edge of img.
// Images shorter than one text line are left untouched.
func drawLabel(img draw.Image, s string) {
	face := basicfont.Face7x13
	m := face.Metrics()
	h := img.Bounds().Dy()
	if h < (m.Ascent + m.Descent).Ceil() {
		return
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(2, h-m.Descent.Ceil()),
	}
	d.DrawString(s)
}

// Image returns the image produced by the last End, or nil.
func (b *Backend) Image() image.Image {
	if b.out == nil {
		return nil
	}
	return b.out
}

// Pixmap implements recording.PixmapBackend. It returns the unscaled
// surface without the label.
func (b *Backend) Pixmap() *paint.Pixmap {
	return b.pm
}

// ContentType implements recording.WriterBackend.
func (b *Backend) ContentType() string {
	return b.format.ContentType()
}

// Format returns the configured output format.
func (b *Backend) Format() Format {
	return b.format
}

// WriteTo implements recording.WriterBackend.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.out == nil {
		return 0, fmt.Errorf("raster: WriteTo called before End")
	}
	cw := &countingWriter{w: w}
	var err error
	switch b.format {
	case BMP:
		err = bmp.Encode(cw, b.out)
	case TIFF:
		err = tiff.Encode(cw, b.out, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(cw, b.out)
	}
	return cw.n, err
}

// SaveToFile implements recording.FileBackend.
func (b *Backend) SaveToFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = b.WriteTo(f)
	return err
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
