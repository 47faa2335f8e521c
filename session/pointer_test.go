package session

import (
	"slices"
	"testing"

	"github.com/gogpu/paint"
)

func TestPointerTwoPointShape(t *testing.T) {
	scene := paint.NewScene(paint.NewPixmap(32, 32), paint.WithMode(paint.Circle))
	ptr := NewPointer(scene)

	ptr.Down(paint.Pt(10, 10))
	ptr.Move(paint.Pt(12, 10))
	ptr.Move(paint.Pt(14, 10))
	if sh, _ := scene.InProgress(); len(sh.Points) != 1 {
		t.Fatalf("moves recorded vertices: %v", sh.Points)
	}

	ptr.Up(paint.Pt(15, 10))
	if scene.Active() {
		t.Fatal("release should commit a two-point shape")
	}
	shapes := scene.Shapes()
	want := paint.Shape{Kind: paint.Circle, Color: paint.Black, Points: []paint.Point{{X: 10, Y: 10}, {X: 15, Y: 10}}}
	if len(shapes) != 1 || !shapes[0].Equal(want) {
		t.Errorf("Shapes() = %v, want [%v]", shapes, want)
	}
}

func TestPointerClickWithoutDragDrawsPixel(t *testing.T) {
	pm := paint.NewPixmap(8, 8)
	scene := paint.NewScene(pm)
	ptr := NewPointer(scene)

	ptr.Down(paint.Pt(3, 4))
	ptr.Up(paint.Pt(3, 4))

	if scene.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", scene.Len())
	}
	if n := pm.Count(paint.Black.NRGBA()); n != 1 {
		t.Errorf("black pixels = %d, want 1", n)
	}
}

// TestPointerPolygonGesture replays what a browser reports for: click A,
// click B, move, double click C.
func TestPointerPolygonGesture(t *testing.T) {
	scene := paint.NewScene(paint.NewPixmap(64, 64), paint.WithMode(paint.Polygon))
	ptr := NewPointer(scene)
	a, b, c := paint.Pt(10, 10), paint.Pt(20, 10), paint.Pt(20, 20)

	ptr.Down(a)
	ptr.Up(a)
	ptr.Move(b)
	ptr.Down(b)
	ptr.Up(b)
	ptr.Move(c)
	ptr.Down(c)
	ptr.Up(c)
	ptr.Down(c)
	ptr.Up(c)
	ptr.DoubleClick()

	shapes := scene.Shapes()
	if len(shapes) != 1 {
		t.Fatalf("Len() = %d, want 1", len(shapes))
	}
	if want := []paint.Point{a, b, c}; !slices.Equal(shapes[0].Points, want) {
		t.Errorf("Points = %v, want %v", shapes[0].Points, want)
	}
	if shapes[0].Kind != paint.Polygon {
		t.Errorf("Kind = %v, want Polygon", shapes[0].Kind)
	}
}

func TestPointerIdleGestures(t *testing.T) {
	scene := paint.NewScene(paint.NewPixmap(8, 8))
	ptr := NewPointer(scene)

	ptr.Up(paint.Pt(1, 1))
	ptr.DoubleClick()
	ptr.Move(paint.Pt(2, 2))

	if scene.Len() != 0 || scene.Active() {
		t.Errorf("idle gestures changed the scene: len=%d active=%v", scene.Len(), scene.Active())
	}
	if p, ok := scene.Cursor(); !ok || p != paint.Pt(2, 2) {
		t.Errorf("Cursor() = %v, %v; want (2,2), true", p, ok)
	}
}

func TestPointerDownWhileActive(t *testing.T) {
	scene := paint.NewScene(paint.NewPixmap(8, 8), paint.WithMode(paint.Polyline))
	ptr := NewPointer(scene)

	ptr.Down(paint.Pt(1, 1))
	ptr.Down(paint.Pt(5, 5))

	sh, _ := scene.InProgress()
	if want := []paint.Point{{X: 1, Y: 1}}; !slices.Equal(sh.Points, want) {
		t.Errorf("Points = %v, want %v", sh.Points, want)
	}
}
