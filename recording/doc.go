// Package recording captures the pixel commands a paint.Scene sends to its
// surface and replays them to interchangeable output backends.
//
// # Architecture
//
// The package follows a command pattern with three parts:
//
//   - Recorder: a paint.PixelSink that stores SetColor, Plot and Clear
//     calls as typed commands
//   - Recording: an immutable snapshot of one frame of commands
//   - Backend: a PixelSink with a Begin/End lifecycle that turns the
//     replayed commands into an output format
//
// A Scene redraws from scratch on every change, so each ClearSurface on the
// Recorder starts a new frame and discards the previous one. A Recording
// therefore always describes exactly what is on screen.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(640, 480)
//	scene := paint.NewScene(rec)
//
//	scene.SetMode(paint.Circle)
//	scene.BeginShape(paint.Pt(320, 240))
//	scene.ExtendShape(paint.Pt(400, 240))
//	scene.CommitShape()
//
//	r := rec.FinishRecording()
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/paint/recording/backends/raster"
//	import _ "github.com/gogpu/paint/recording/backends/pdf"
//
//	png, _ := recording.NewBackend("raster")
//	r.Playback(png)
//	png.(recording.WriterBackend).WriteTo(w)
//
//	doc, _ := recording.NewBackend("pdf")
//	r.Playback(doc)
//	doc.(recording.FileBackend).SaveToFile("scene.pdf")
//
// # Backend Registration
//
// Backends register themselves in init, following the database/sql driver
// pattern. Import a backend package for its side effect to make it
// available by name:
//
//	func init() {
//	    recording.Register("raster", func() recording.Backend {
//	        return NewBackend()
//	    })
//	}
//
// # Thread Safety
//
// The registry is safe for concurrent use. Recorder is not; confine it to
// the goroutine that owns its Scene. A Recording is immutable and may be
// played back from several goroutines at once, each with its own backend.
package recording
