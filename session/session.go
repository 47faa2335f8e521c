// Package session runs a paint.Scene behind a single goroutine and feeds it
// input events, so that HTTP handlers and websocket connections can share
// one drawing without locking.
//
// A Session draws into a recording.Recorder; Snapshot returns the current
// frame, which can be played back to any registered output backend.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/recording"
)

var (
	// ErrClosed is returned for requests made after Run has returned.
	ErrClosed = errors.New("session: closed")

	// ErrRunning is returned by a second call to Run.
	ErrRunning = errors.New("session: already running")

	// ErrOutOfRange is returned for point events too far from the surface.
	ErrOutOfRange = errors.New("session: point out of range")
)

// Option configures a Session.
type Option func(*options)

type options struct {
	queueSize int
	scene     []paint.SceneOption
}

// WithQueueSize sets how many requests may wait for the session goroutine.
func WithQueueSize(n int) Option {
	return func(o *options) {
		o.queueSize = max(n, 0)
	}
}

// WithSceneOptions passes options to the underlying paint.Scene.
func WithSceneOptions(opts ...paint.SceneOption) Option {
	return func(o *options) {
		o.scene = append(o.scene, opts...)
	}
}

// Session owns a Scene, its Recorder and a Pointer. All access goes through
// the goroutine started by Run.
type Session struct {
	width, height int

	scene   *paint.Scene
	rec     *recording.Recorder
	pointer *Pointer

	reqs    chan func()
	stopped chan struct{}
	running atomic.Bool
}

// New creates a session with a blank width×height surface. Call Run to
// start serving requests.
func New(width, height int, opts ...Option) *Session {
	o := options{queueSize: 64}
	for _, opt := range opts {
		opt(&o)
	}

	rec := recording.NewRecorder(width, height)
	scene := paint.NewScene(rec, o.scene...)
	scene.Redraw()

	return &Session{
		width:   rec.Width(),
		height:  rec.Height(),
		scene:   scene,
		rec:     rec,
		pointer: NewPointer(scene),
		reqs:    make(chan func(), o.queueSize),
		stopped: make(chan struct{}),
	}
}

// Run serves requests until ctx is done and returns ctx.Err().
// Requests still queued when Run returns fail with ErrClosed.
func (s *Session) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer close(s.stopped)

	paint.Logger().Info("session: running", "width", s.width, "height", s.height)
	for {
		select {
		case fn := <-s.reqs:
			fn()
		case <-ctx.Done():
			paint.Logger().Info("session: stopped", "shapes", s.scene.Len())
			return ctx.Err()
		}
	}
}

// call runs fn on the session goroutine and returns its result.
func call[T any](ctx context.Context, s *Session, fn func() T) (T, error) {
	var zero T
	res := make(chan T, 1)

	select {
	case s.reqs <- func() { res <- fn() }:
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-s.stopped:
		return zero, ErrClosed
	}

	select {
	case v := <-res:
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-s.stopped:
		select {
		case v := <-res:
			return v, nil
		default:
			return zero, ErrClosed
		}
	}
}

type submitResult struct {
	status Status
	err    error
}

// Submit applies events in order and returns the resulting status.
// Processing stops at the first invalid event; the events before it stay
// applied and the returned error identifies the failing index.
func (s *Session) Submit(ctx context.Context, events ...Event) (Status, error) {
	r, err := call(ctx, s, func() submitResult {
		for i, e := range events {
			if err := s.apply(e); err != nil {
				paint.Logger().Warn("session: event rejected", "index", i, "type", e.Type, "error", err)
				return submitResult{status: s.status(), err: fmt.Errorf("event %d: %w", i, err)}
			}
		}
		return submitResult{status: s.status()}
	})
	if err != nil {
		return Status{}, err
	}
	return r.status, r.err
}

// Status returns a summary of the scene.
func (s *Session) Status(ctx context.Context) (Status, error) {
	return call(ctx, s, s.status)
}

// Shapes returns the committed shapes in draw order.
func (s *Session) Shapes(ctx context.Context) ([]paint.Shape, error) {
	return call(ctx, s, s.scene.Shapes)
}

// Snapshot returns the frame currently on the surface.
func (s *Session) Snapshot(ctx context.Context) (*recording.Recording, error) {
	return call(ctx, s, s.rec.FinishRecording)
}

type framed struct {
	rec    *recording.Recording
	status Status
}

// SnapshotStatus returns the current frame together with the status it was
// drawn in. Both are taken in one step, so no event falls between them.
func (s *Session) SnapshotStatus(ctx context.Context) (*recording.Recording, Status, error) {
	f, err := call(ctx, s, func() framed {
		return framed{rec: s.rec.FinishRecording(), status: s.status()}
	})
	return f.rec, f.status, err
}

// apply runs on the session goroutine.
func (s *Session) apply(e Event) error {
	t, err := ParseEventType(string(e.Type))
	if err != nil {
		return err
	}

	switch t {
	case TypeBegin, TypeExtend, TypePreview, TypePointerDown, TypePointerUp, TypePointerMove:
		if !s.inRange(e.Point()) {
			return fmt.Errorf("%w %v", ErrOutOfRange, e.Point())
		}
	}

	switch t {
	case TypeBegin:
		s.scene.BeginShape(e.Point())
	case TypeExtend:
		s.scene.ExtendShape(e.Point())
	case TypePreview:
		s.scene.PreviewShape(e.Point())
	case TypeCommit:
		s.scene.CommitShape()
	case TypeUndo:
		s.scene.Undo()
	case TypeClear:
		s.scene.Clear()
	case TypeRedraw:
		s.scene.Redraw()
	case TypeMode:
		k, err := paint.ParseShapeKind(e.Mode)
		if err != nil {
			return err
		}
		s.scene.SetMode(k)
	case TypeColor:
		c, err := paint.ParseColor(e.Color)
		if err != nil {
			return err
		}
		s.scene.SetColor(c)
	case TypePointerDown:
		s.pointer.Down(e.Point())
	case TypePointerUp:
		s.pointer.Up(e.Point())
	case TypePointerMove:
		s.pointer.Move(e.Point())
	case TypePointerDoubleClick:
		s.pointer.DoubleClick()
	}
	return nil
}

// inRange reports whether p lies on the surface grown by its larger
// dimension on every side. Shapes reaching past the edge still render
// clipped, but the work per event stays proportional to the surface size.
func (s *Session) inRange(p paint.Point) bool {
	m := max(s.width, s.height)
	return p.X >= -m && p.X < s.width+m && p.Y >= -m && p.Y < s.height+m
}

func (s *Session) status() Status {
	st := Status{
		Width:  s.width,
		Height: s.height,
		Mode:   s.scene.Mode(),
		Color:  s.scene.Color(),
		Active: s.scene.Active(),
		Shapes: s.scene.Len(),
	}
	if p, ok := s.scene.Cursor(); ok {
		st.Cursor = &p
	}
	if sh, ok := s.scene.InProgress(); ok {
		st.InProgress = &sh
	}
	return st
}
