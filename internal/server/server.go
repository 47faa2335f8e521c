// Package server exposes a session.Session over HTTP and websockets.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/cache"
	"github.com/gogpu/paint/recording"
	_ "github.com/gogpu/paint/recording/backends/pdf" // register "pdf"
	rasterbackend "github.com/gogpu/paint/recording/backends/raster"
	"github.com/gogpu/paint/session"
)

const (
	maxEventsBody = 1 << 20
	maxScale      = 16
)

// Server routes HTTP and websocket requests to one session.Session.
type Server struct {
	sess      *session.Session
	router    *mux.Router
	origins   []string
	backend   string
	snapshots *cache.Cache[snapshotKey, encoded]
}

// Option configures a Server.
type Option func(*Server)

// WithOrigins sets the websocket origin patterns accepted besides the
// request's own host.
func WithOrigins(patterns []string) Option {
	return func(s *Server) {
		s.origins = patterns
	}
}

// WithDefaultBackend sets the backend /snapshot uses when the request
// names none.
func WithDefaultBackend(name string) Option {
	return func(s *Server) {
		s.backend = name
	}
}

// WithSnapshotCache keeps up to n encoded snapshots per cache shard, so
// repeated requests for an unchanged frame skip rendering. n <= 0 disables
// the cache.
func WithSnapshotCache(n int) Option {
	return func(s *Server) {
		if n <= 0 {
			s.snapshots = nil
			return
		}
		s.snapshots = cache.New[snapshotKey, encoded](n)
	}
}

// New creates a Server for sess. Without options it renders snapshots with
// the "raster" backend, keeps no snapshot cache and accepts websocket
// connections from the request's own host only.
func New(sess *session.Session, opts ...Option) *Server {
	s := &Server{
		sess:    sess,
		router:  mux.NewRouter(),
		backend: "raster",
	}
	for _, opt := range opts {
		opt(s)
	}

	r := s.router
	r.Use(logRequests)
	r.HandleFunc("/health", s.health).Methods("GET")
	r.HandleFunc("/status", s.status).Methods("GET")
	r.HandleFunc("/shapes", s.shapes).Methods("GET")
	r.HandleFunc("/backends", s.backends).Methods("GET")
	r.HandleFunc("/events", s.events).Methods("POST")
	r.HandleFunc("/snapshot", s.snapshot).Methods("GET")
	r.HandleFunc("/ws", s.serveWS)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SnapshotStats returns the snapshot cache counters. It is zero when the
// cache is disabled.
func (s *Server) SnapshotStats() cache.Stats {
	if s.snapshots == nil {
		return cache.Stats{}
	}
	return s.snapshots.Stats()
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		paint.Logger().Debug("server: request",
			"method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

type errorResponse struct {
	Error  string          `json:"error"`
	Status *session.Status `json:"status,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sessionUnavailable reports a request the session could not serve.
func sessionUnavailable(w http.ResponseWriter, err error) {
	paint.Logger().Warn("server: session unavailable", "error", err)
	writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
}

// unavailable reports whether err means the session did not process the
// request at all.
func unavailable(err error) bool {
	return errors.Is(err, session.ErrClosed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	st, err := s.sess.Status(r.Context())
	if err != nil {
		sessionUnavailable(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) shapes(w http.ResponseWriter, r *http.Request) {
	shapes, err := s.sess.Shapes(r.Context())
	if err != nil {
		sessionUnavailable(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shapes)
}

func (s *Server) backends(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, recording.Backends())
}

func (s *Server) events(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxEventsBody)

	var events []session.Event
	if err := json.NewDecoder(r.Body).Decode(&events); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	st, err := s.sess.Submit(r.Context(), events...)
	switch {
	case unavailable(err):
		sessionUnavailable(w, err)
	case err != nil:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Status: &st})
	default:
		writeJSON(w, http.StatusOK, st)
	}
}

// snapshotParams selects how a frame is rendered.
type snapshotParams struct {
	backend string
	format  rasterbackend.Format
	scale   int
	label   string
}

// snapshotKey identifies an encoded frame.
type snapshotKey struct {
	frame    int
	commands int
	params   snapshotParams
}

type encoded struct {
	contentType string
	body        []byte
}

// snapshot renders the current frame with the requested backend.
//
//	GET /snapshot?backend=raster&format=bmp&scale=4&status=true
//
// format, scale and status apply to the raster backend only.
func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) {
	p, withStatus, err := s.snapshotParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	rec, st, err := s.sess.SnapshotStatus(r.Context())
	if err != nil {
		sessionUnavailable(w, err)
		return
	}
	if withStatus {
		p.label = st.Label()
	}

	out, err := s.render(rec, p)
	if err != nil {
		paint.Logger().Error("server: render failed", "backend", p.backend, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "render failed"})
		return
	}

	w.Header().Set("Content-Type", out.contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(out.body)))
	if _, err := w.Write(out.body); err != nil {
		paint.Logger().Debug("server: write snapshot", "error", err)
	}
}

// snapshotParams parses the query. withStatus reports whether the caller
// should label the output with the status of the rendered frame.
func (s *Server) snapshotParams(r *http.Request) (p snapshotParams, withStatus bool, err error) {
	q := r.URL.Query()
	p.backend = q.Get("backend")
	if p.backend == "" {
		p.backend = s.backend
	}

	b, err := recording.NewBackend(p.backend)
	if err != nil {
		return p, false, err
	}
	if _, ok := b.(recording.WriterBackend); !ok {
		return p, false, errors.New("backend " + p.backend + " cannot stream output")
	}
	if _, ok := b.(*rasterbackend.Backend); !ok {
		return p, false, nil
	}

	p.format, p.scale = rasterbackend.PNG, 1
	if v := q.Get("format"); v != "" {
		if p.format, err = rasterbackend.ParseFormat(v); err != nil {
			return p, false, err
		}
	}
	if v := q.Get("scale"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxScale {
			return p, false, errors.New("scale must be an integer between 1 and " + strconv.Itoa(maxScale))
		}
		p.scale = n
	}
	if v := q.Get("status"); v != "" {
		if withStatus, err = strconv.ParseBool(v); err != nil {
			return p, false, errors.New("status must be a boolean")
		}
	}
	return p, withStatus, nil
}

// render encodes rec, reusing a cached encoding of the same frame.
func (s *Server) render(rec *recording.Recording, p snapshotParams) (encoded, error) {
	if s.snapshots == nil {
		return encode(rec, p)
	}
	key := snapshotKey{frame: rec.Frame(), commands: rec.Len(), params: p}
	return s.snapshots.GetOrCreate(key, func() (encoded, error) {
		return encode(rec, p)
	})
}

func encode(rec *recording.Recording, p snapshotParams) (encoded, error) {
	b, err := recording.NewBackend(p.backend)
	if err != nil {
		return encoded{}, err
	}
	if rb, ok := b.(*rasterbackend.Backend); ok {
		rb.Apply(
			rasterbackend.WithFormat(p.format),
			rasterbackend.WithScale(p.scale),
			rasterbackend.WithLabel(p.label),
		)
	}
	wb := b.(recording.WriterBackend)

	if err := rec.Playback(b); err != nil {
		return encoded{}, err
	}
	var buf bytes.Buffer
	if _, err := wb.WriteTo(&buf); err != nil {
		return encoded{}, err
	}
	return encoded{contentType: wb.ContentType(), body: buf.Bytes()}, nil
}
