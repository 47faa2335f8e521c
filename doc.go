// Package paint provides the core of an interactive raster drawing surface.
//
// # Overview
//
// A user places anchor points with a pointing device; paint turns them into
// lines, circles, ellipses, rectangles, polygons and polylines, rasterized
// pixel by pixel with the midpoint algorithms in the [raster] sub-package.
// Committed shapes are kept in order and the whole history is replayed on
// every change, which is what makes rubber-band previews possible.
//
// # Quick Start
//
//	pm := paint.NewPixmap(640, 480)
//	s := paint.NewScene(pm)
//
//	s.SetMode(paint.Circle)
//	s.SetColor(paint.Red)
//	s.BeginShape(paint.Pt(320, 240))
//	s.PreviewShape(paint.Pt(360, 240)) // rubber band
//	s.ExtendShape(paint.Pt(380, 240))
//	s.CommitShape()
//
//	s.Undo() // back to an empty surface
//
// # Architecture
//
// The package is organized into:
//   - Data model: Point, Color, ShapeKind, Shape
//   - Rendering: RenderShape dispatches a Shape to the rasterizers
//   - Scene: committed history, in-progress shape, undo, clear, redraw
//   - Surfaces: the PixelSink interface and the Pixmap implementation
//
// Other surfaces live in sub-packages: [recording] captures plotted pixels
// and replays them to registered backends (raster images, PDF), and
// [session] feeds a Scene from pointer events or JSON wire events.
//
// # Coordinate System
//
// Integer surface coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Redraw Model
//
// Every mutation clears the surface and replays the committed shapes in
// commit order. Surfaces have no notion of layers, so overlapping shapes are
// only correct after a full replay. [WithPixelCache] avoids re-running the
// rasterizers for committed shapes but still replays every pixel.
//
// [raster]: https://pkg.go.dev/github.com/gogpu/paint/raster
// [recording]: https://pkg.go.dev/github.com/gogpu/paint/recording
// [session]: https://pkg.go.dev/github.com/gogpu/paint/session
package paint

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
