// Command paintdemo replays a script of input events and writes the
// resulting frame with any registered output backend.
//
// Without -script it draws a built-in sample that uses every shape kind.
//
//	paintdemo -output demo.png
//	paintdemo -backend pdf -output demo.pdf
//	paintdemo -script events.json -format bmp -scale 2 -output out.bmp
//
// A script is a JSON array of events, e.g.
//
//	[{"type":"mode","mode":"circle"},
//	 {"type":"pointer.down","x":100,"y":100},
//	 {"type":"pointer.up","x":150,"y":100}]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/recording"
	_ "github.com/gogpu/paint/recording/backends/pdf"
	rasterbackend "github.com/gogpu/paint/recording/backends/raster"
	"github.com/gogpu/paint/session"
)

func main() {
	var (
		width   = flag.Int("width", 800, "surface width")
		height  = flag.Int("height", 600, "surface height")
		output  = flag.String("output", "demo.png", "output file")
		backend = flag.String("backend", "raster", "output backend: "+strings.Join(recording.Backends(), ", "))
		format  = flag.String("format", "png", "raster output format: png, bmp or tiff")
		scale   = flag.Int("scale", 1, "raster upscale factor")
		status  = flag.Bool("status", false, "draw the pointer readout on raster output")
		script  = flag.String("script", "", "JSON file of events to replay instead of the built-in sample")
	)
	flag.Parse()

	events := sample(*width, *height)
	if *script != "" {
		var err error
		if events, err = loadScript(*script); err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
	}

	sess := session.New(*width, *height, session.WithSceneOptions(paint.WithPixelCache()))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sess.Run(ctx)

	st, err := sess.Submit(ctx, events...)
	if err != nil {
		log.Fatalf("Failed to replay: %v", err)
	}
	rec, err := sess.Snapshot(ctx)
	if err != nil {
		log.Fatalf("Failed to snapshot: %v", err)
	}

	b, err := recording.NewBackend(*backend)
	if err != nil {
		log.Fatal(err)
	}
	if rb, ok := b.(*rasterbackend.Backend); ok {
		f, err := rasterbackend.ParseFormat(*format)
		if err != nil {
			log.Fatal(err)
		}
		rb.Apply(rasterbackend.WithFormat(f), rasterbackend.WithScale(*scale))
		if *status {
			rb.Apply(rasterbackend.WithLabel(st.Label()))
		}
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		log.Fatalf("Backend %q cannot write files", *backend)
	}

	if err := rec.Playback(b); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := fb.SaveToFile(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, %d shapes)\n", *output, *width, *height, st.Shapes)
}

func loadScript(path string) ([]session.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var events []session.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// sample draws one shape of each kind, scaled to the surface.
func sample(w, h int) []session.Event {
	at := func(fx, fy float64) paint.Point {
		return paint.Pt(int(fx*float64(w)), int(fy*float64(h)))
	}
	var ev []session.Event
	mode := func(k paint.ShapeKind, c paint.Color) {
		ev = append(ev,
			session.Event{Type: session.TypeMode, Mode: k.String()},
			session.Event{Type: session.TypeColor, Color: c.String()},
		)
	}
	drag := func(from, to paint.Point) {
		ev = append(ev,
			session.At(session.TypePointerDown, from),
			session.At(session.TypePointerMove, to),
			session.At(session.TypePointerUp, to),
		)
	}
	clicks := func(pts ...paint.Point) {
		for _, p := range pts {
			ev = append(ev,
				session.At(session.TypePointerMove, p),
				session.At(session.TypePointerDown, p),
				session.At(session.TypePointerUp, p),
			)
		}
		ev = append(ev, session.Event{Type: session.TypePointerDoubleClick})
	}

	mode(paint.Line, paint.Black)
	drag(at(0.05, 0.05), at(0.95, 0.95))

	mode(paint.Circle, paint.Red)
	drag(at(0.25, 0.3), at(0.4, 0.3))

	mode(paint.Ellipse, paint.Green)
	drag(at(0.7, 0.3), at(0.9, 0.4))

	mode(paint.Rectangle, paint.Blue)
	drag(at(0.1, 0.6), at(0.4, 0.9))

	mode(paint.Polygon, paint.Red)
	clicks(at(0.55, 0.6), at(0.85, 0.65), at(0.7, 0.9))

	mode(paint.Polyline, paint.Green)
	clicks(at(0.1, 0.1), at(0.3, 0.05), at(0.5, 0.15), at(0.7, 0.05))

	// Undo a stray line to show history editing.
	mode(paint.Line, paint.Black)
	drag(at(0.5, 0.0), at(0.5, 1.0))
	ev = append(ev, session.Event{Type: session.TypeUndo})

	return ev
}
