// Package pdf provides a PDF backend for the recording system.
//
// Each plotted pixel becomes a filled 1×1 point square on a single page
// the size of the surface, so a 640×480 surface produces a 640×480 pt page.
// The page origin is the top-left corner with y growing downwards, matching
// surface coordinates.
//
// # Example
//
//	import _ "github.com/gogpu/paint/recording/backends/pdf"
//
//	backend, _ := recording.NewBackend("pdf")
//	rec.FinishRecording().Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("scene.pdf")
package pdf

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/recording"
)

func init() {
	recording.Register("pdf", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings into a one-page PDF document.
type Backend struct {
	doc    *gofpdf.Fpdf
	width  int
	height int
	color  paint.Color
	plots  int
	ended  bool

	title string
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithTitle sets the document title metadata.
func WithTitle(s string) Option {
	return func(b *Backend) {
		b.title = s
	}
}

// NewBackend creates a new PDF backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin implements recording.Backend.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("pdf: invalid surface size %dx%d", width, height)
	}
	b.width, b.height = width, height
	b.ended = false
	b.newDocument()
	return b.doc.Error()
}

// newDocument starts a blank page, dropping anything drawn so far.
func (b *Backend) newDocument() {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(b.width), Ht: float64(b.height)},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreator("paint", true)
	if b.title != "" {
		doc.SetTitle(b.title, true)
	}
	doc.AddPage()

	b.doc = doc
	b.plots = 0
	b.color = paint.Black
	b.applyColor()
}

func (b *Backend) applyColor() {
	c := b.color.NRGBA()
	b.doc.SetFillColor(int(c.R), int(c.G), int(c.B))
}

// SetColor implements paint.PixelSink.
func (b *Backend) SetColor(c paint.Color) {
	b.color = c
	b.applyColor()
}

// Plot implements paint.PixelSink. Pixels outside the page are dropped.
func (b *Backend) Plot(x, y int) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.doc.Rect(float64(x), float64(y), 1, 1, "F")
	b.plots++
}

// ClearSurface implements paint.PixelSink. A PDF page cannot be erased, so
// the document is restarted with the current color.
func (b *Backend) ClearSurface() {
	c := b.color
	b.newDocument()
	b.SetColor(c)
}

// End implements recording.Backend.
func (b *Backend) End() error {
	if b.doc == nil {
		return fmt.Errorf("pdf: End called before Begin")
	}
	b.ended = true
	paint.Logger().Debug("pdf: page finished", "plots", b.plots,
		"width", b.width, "height", b.height)
	return b.doc.Error()
}

// Plots returns the number of pixels drawn on the current page.
func (b *Backend) Plots() int {
	return b.plots
}

// ContentType implements recording.WriterBackend.
func (b *Backend) ContentType() string {
	return "application/pdf"
}

// WriteTo implements recording.WriterBackend. The document can be
// written once.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, fmt.Errorf("pdf: WriteTo called before End")
	}
	cw := &countingWriter{w: w}
	err := b.doc.Output(cw)
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

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
