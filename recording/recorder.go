package recording

import (
	"slices"

	"github.com/gogpu/paint"
)

// Recorder is a paint.PixelSink that captures the commands of the current
// frame. Every ClearSurface begins a new frame and drops the commands of
// the previous one, so the recorder holds exactly what a surface would
// show after the same calls.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	scene := paint.NewScene(rec)
//	// ... drive the scene ...
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	color         paint.Color
	frames        int
}

// Ensure Recorder implements paint.PixelSink.
var _ paint.PixelSink = (*Recorder)(nil)

// NewRecorder creates a recorder for a surface of the given size.
// The drawing color starts as paint.Black, matching a fresh backend.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    max(width, 0),
		height:   max(height, 0),
		commands: make([]Command, 0, 256),
		color:    paint.Black,
	}
}

// Width returns the width of the recording surface.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording surface.
func (r *Recorder) Height() int {
	return r.height
}

// Len returns the number of commands in the current frame.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Frames returns the number of ClearSurface calls seen so far.
func (r *Recorder) Frames() int {
	return r.frames
}

// SetColor implements paint.PixelSink.
func (r *Recorder) SetColor(c paint.Color) {
	r.color = c
	r.commands = append(r.commands, SetColorCommand{Color: c})
}

// Plot implements paint.PixelSink. Coordinates outside the surface are
// dropped, as every backend would clip them.
func (r *Recorder) Plot(x, y int) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.commands = append(r.commands, PlotCommand{X: x, Y: y})
}

// ClearSurface implements paint.PixelSink. It discards the current frame
// and starts a new one with the color still in effect.
func (r *Recorder) ClearSurface() {
	clear(r.commands)
	r.commands = append(r.commands[:0], ClearCommand{}, SetColorCommand{Color: r.color})
	r.frames++
}

// FinishRecording returns an immutable Recording of the current frame.
// The Recorder stays usable; later calls do not affect the result.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		frame:    r.frames,
		commands: slices.Clone(r.commands),
	}
}

// Recording is an immutable frame of recorded pixel commands.
// It can be replayed to any Backend.
type Recording struct {
	width, height int
	frame         int
	commands      []Command
}

// Width returns the width of the recording surface.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording surface.
func (r *Recording) Height() int {
	return r.height
}

// Frame returns the number of ClearSurface calls the Recorder had seen.
// Together with Len it identifies the frame contents for a given Recorder.
func (r *Recording) Frame() int {
	return r.frame
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Commands returns a copy of the recorded commands.
func (r *Recording) Commands() []Command {
	return slices.Clone(r.commands)
}

// Pixels returns every plotted coordinate in plot order, including
// repeats. All coordinates lie on the surface.
func (r *Recording) Pixels() []paint.Point {
	var pts []paint.Point
	for _, cmd := range r.commands {
		if p, ok := cmd.(PlotCommand); ok {
			pts = append(pts, paint.Pt(p.X, p.Y))
		}
	}
	return pts
}

// Playback replays the recording to backend: Begin, every command in
// order, then End.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			backend.ClearSurface()
		case SetColorCommand:
			backend.SetColor(c.Color)
		case PlotCommand:
			backend.Plot(c.X, c.Y)
		}
	}

	paint.Logger().Debug("recording: playback",
		"commands", len(r.commands), "width", r.width, "height", r.height)
	return backend.End()
}
