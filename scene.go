package paint

// Scene owns the ordered history of committed shapes, the shape currently
// being drawn, and the active drawing mode and color. It drives a PixelSink
// by replaying the whole history on every change.
//
// A Scene is either idle or active. BeginShape starts a shape from the
// active mode and color; ExtendShape adds vertices; PreviewShape shows the
// shape as it would look with one more vertex without recording it;
// CommitShape appends the shape to the history and returns to idle.
//
// Operations that make no sense in the current state (committing while
// idle, undoing an empty history) are silently ignored.
//
// Scene is not safe for concurrent use. Confine it to one goroutine.
type Scene struct {
	sink PixelSink

	committed  []Shape
	inProgress *Shape

	// candidate is the preview vertex shown after the in-progress points.
	candidate    Point
	hasCandidate bool

	// pointer is the last position reported through any point operation.
	pointer    Point
	hasPointer bool

	mode  ShapeKind
	color Color

	cache *pixelCache
}

// NewScene creates an empty idle scene that draws into sink.
func NewScene(sink PixelSink, opts ...SceneOption) *Scene {
	o := defaultSceneOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Scene{
		sink:  sink,
		mode:  o.mode,
		color: o.color,
	}
	if o.pixelCache {
		s.cache = &pixelCache{}
	}
	return s
}

// Sink returns the surface the scene draws into.
func (s *Scene) Sink() PixelSink {
	return s.sink
}

// Mode returns the active drawing mode.
func (s *Scene) Mode() ShapeKind {
	return s.mode
}

// Color returns the active drawing color.
func (s *Scene) Color() Color {
	return s.color
}

// SetMode changes the kind used by the next BeginShape.
// The in-progress shape keeps the kind it was begun with.
func (s *Scene) SetMode(k ShapeKind) {
	s.mode = k
}

// SetColor changes the color used by the next BeginShape.
// The in-progress shape keeps the color it was begun with.
func (s *Scene) SetColor(c Color) {
	s.color = c
}

// Active reports whether a shape is in progress.
func (s *Scene) Active() bool {
	return s.inProgress != nil
}

// Len returns the number of committed shapes.
func (s *Scene) Len() int {
	return len(s.committed)
}

// Shapes returns a deep copy of the committed shapes in draw order.
func (s *Scene) Shapes() []Shape {
	out := make([]Shape, len(s.committed))
	for i, sh := range s.committed {
		out[i] = sh.Clone()
	}
	return out
}

// InProgress returns a copy of the in-progress shape, if any.
func (s *Scene) InProgress() (Shape, bool) {
	if s.inProgress == nil {
		return Shape{}, false
	}
	return s.inProgress.Clone(), true
}

// Cursor returns the last pointer position passed to BeginShape,
// ExtendShape or PreviewShape.
func (s *Scene) Cursor() (Point, bool) {
	return s.pointer, s.hasPointer
}

func (s *Scene) track(p Point) {
	s.pointer, s.hasPointer = p, true
}

// BeginShape starts a new shape at p using the active mode and color.
// It is ignored while a shape is already in progress.
func (s *Scene) BeginShape(p Point) {
	s.track(p)
	if s.inProgress != nil {
		return
	}
	s.inProgress = &Shape{
		Kind:   s.mode,
		Color:  s.color,
		Points: []Point{p},
	}
	s.hasCandidate = false
	Logger().Debug("paint: begin shape", "kind", s.mode, "color", s.color, "at", p)
}

// ExtendShape appends p to the in-progress shape. For two-point kinds this
// records the terminal point; for Polygon and Polyline it adds a vertex.
// It is ignored while idle.
func (s *Scene) ExtendShape(p Point) {
	s.track(p)
	if s.inProgress == nil {
		return
	}
	s.inProgress.Points = append(s.inProgress.Points, p)
	s.hasCandidate = false
}

// PreviewShape redraws the scene with the in-progress shape extended by p,
// without recording p. While idle it only tracks the pointer.
func (s *Scene) PreviewShape(p Point) {
	s.track(p)
	if s.inProgress == nil {
		return
	}
	s.candidate, s.hasCandidate = p, true
	s.Redraw()
}

// CommitShape appends the in-progress shape to the history, returns the
// scene to idle and redraws. It is ignored while idle.
func (s *Scene) CommitShape() {
	if s.inProgress == nil {
		return
	}
	sh := *s.inProgress
	s.inProgress = nil
	s.hasCandidate = false

	s.committed = append(s.committed, sh)
	if s.cache != nil {
		s.cache.push(sh)
	}
	Logger().Debug("paint: commit shape", "shape", sh, "shapes", len(s.committed))
	s.Redraw()
}

// Undo removes the most recently committed shape and redraws.
// With an empty history nothing is removed.
func (s *Scene) Undo() {
	if n := len(s.committed); n > 0 {
		s.committed[n-1] = Shape{}
		s.committed = s.committed[:n-1]
		if s.cache != nil {
			s.cache.pop()
		}
		Logger().Debug("paint: undo", "shapes", len(s.committed))
	}
	s.Redraw()
}

// Clear removes every committed shape and redraws.
func (s *Scene) Clear() {
	if len(s.committed) > 0 {
		Logger().Debug("paint: clear", "removed", len(s.committed))
	}
	clear(s.committed)
	s.committed = s.committed[:0]
	if s.cache != nil {
		s.cache.reset()
	}
	s.Redraw()
}

// Redraw clears the surface and replays every committed shape in commit
// order, each in its own color, followed by the in-progress shape and its
// preview vertex. The sink is left set to the active color.
func (s *Scene) Redraw() {
	s.sink.ClearSurface()

	for i, sh := range s.committed {
		s.sink.SetColor(sh.Color)
		if s.cache != nil {
			s.cache.replay(i, s.sink)
			continue
		}
		RenderShape(s.sink, sh)
	}

	if s.inProgress != nil {
		s.sink.SetColor(s.inProgress.Color)
		RenderShape(s.sink, s.preview())
	}

	s.sink.SetColor(s.color)
}

// preview returns the in-progress shape as it should be displayed.
func (s *Scene) preview() Shape {
	if !s.hasCandidate {
		return *s.inProgress
	}
	return s.inProgress.With(s.candidate)
}

// CachedPixels returns the number of pixels held by the pixel cache, or 0
// when the scene was created without WithPixelCache.
func (s *Scene) CachedPixels() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.pixels()
}
