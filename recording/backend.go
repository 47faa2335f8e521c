package recording

import (
	"io"

	"github.com/gogpu/paint"
)

// Backend is the interface all output backends implement. It is a
// paint.PixelSink with a lifecycle: Playback calls Begin, replays the
// recorded commands through the PixelSink methods, then calls End.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Start with the surface cleared to its background after Begin
//  3. Start with the drawing color set to paint.Black after Begin
//  4. Silently clip Plot calls outside the surface
type Backend interface {
	paint.PixelSink

	// Begin prepares an empty surface of the given size.
	Begin(width, height int) error

	// End finalizes the output. Output methods are valid after End.
	End() error
}

// WriterBackend is a Backend that can stream its encoded output.
type WriterBackend interface {
	Backend

	// WriteTo writes the encoded output to w. Call it after End.
	WriteTo(w io.Writer) (int64, error)

	// ContentType returns the MIME type of the bytes WriteTo produces.
	ContentType() string
}

// FileBackend is a Backend that can save its output to a file.
type FileBackend interface {
	Backend

	// SaveToFile writes the encoded output to path. Call it after End.
	SaveToFile(path string) error
}

// PixmapBackend is a Backend that exposes its rendered pixels.
type PixmapBackend interface {
	Backend

	// Pixmap returns the rendered surface, or nil before Begin.
	Pixmap() *paint.Pixmap
}
