package paint

import (
	"image"
	"testing"

	"github.com/gogpu/paint/raster"
)

func TestRenderShapeLine(t *testing.T) {
	got := renderSet(Shape{Kind: Line, Points: []Point{{2, 3}, {9, 5}}})
	want := lineSet([4]int{2, 3, 9, 5})
	if !equalSets(got, want) {
		t.Errorf("Line render = %v, want %v", got, want)
	}
}

func TestRenderShapeRectangle(t *testing.T) {
	want := lineSet(
		[4]int{1, 1, 6, 1},
		[4]int{1, 4, 6, 4},
		[4]int{1, 1, 1, 4},
		[4]int{6, 1, 6, 4},
	)

	corners := [][2]Point{
		{{1, 1}, {6, 4}},
		{{6, 4}, {1, 1}},
		{{6, 1}, {1, 4}},
		{{1, 4}, {6, 1}},
	}
	for _, c := range corners {
		got := renderSet(Shape{Kind: Rectangle, Points: []Point{c[0], c[1]}})
		if !equalSets(got, want) {
			t.Errorf("Rectangle %v-%v = %v, want %v", c[0], c[1], got, want)
		}
	}
}

func TestRenderShapeCircleRadius(t *testing.T) {
	tests := []struct {
		name string
		edge Point
		r    int
	}{
		{"3-4-5 triangle", Pt(13, 14), 5},
		{"truncated diagonal", Pt(11, 11), 1},
		{"truncated long diagonal", Pt(17, 17), 9}, // 7*sqrt(2) = 9.899
		{"same point", Pt(10, 10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderSet(Shape{Kind: Circle, Points: []Point{{10, 10}, tt.edge}})

			want := make(map[Point]bool)
			raster.Circle(raster.PlotterFunc(func(x, y int) { want[Pt(x, y)] = true }), 10, 10, tt.r)
			if !equalSets(got, want) {
				t.Errorf("Circle to %v: got %d pixels, want radius %d circle (%d pixels)",
					tt.edge, len(got), tt.r, len(want))
			}
		})
	}
}

func TestRenderShapeEllipse(t *testing.T) {
	t.Run("bounding box radii", func(t *testing.T) {
		got := renderSet(Shape{Kind: Ellipse, Points: []Point{{20, 20}, {14, 28}}})

		want := make(map[Point]bool)
		raster.Ellipse(raster.PlotterFunc(func(x, y int) { want[Pt(x, y)] = true }), 20, 20, 6, 8)
		if !equalSets(got, want) {
			t.Errorf("Ellipse render does not match rx=6 ry=8 ellipse")
		}
	})

	t.Run("flat ellipse is horizontal segment", func(t *testing.T) {
		got := renderSet(Shape{Kind: Ellipse, Points: []Point{{20, 20}, {24, 20}}})
		want := lineSet([4]int{16, 20, 24, 20})
		if !equalSets(got, want) {
			t.Errorf("flat Ellipse = %v, want %v", got, want)
		}
	})

	t.Run("thin ellipse is vertical segment", func(t *testing.T) {
		got := renderSet(Shape{Kind: Ellipse, Points: []Point{{20, 20}, {20, 17}}})
		want := lineSet([4]int{20, 17, 20, 23})
		if !equalSets(got, want) {
			t.Errorf("thin Ellipse = %v, want %v", got, want)
		}
	})
}

func TestRenderShapePolygonAndPolyline(t *testing.T) {
	pts := []Point{{10, 10}, {20, 10}, {20, 20}}

	open := lineSet([4]int{10, 10, 20, 10}, [4]int{20, 10, 20, 20})
	closed := lineSet([4]int{10, 10, 20, 10}, [4]int{20, 10, 20, 20}, [4]int{20, 20, 10, 10})

	if got := renderSet(Shape{Kind: Polyline, Points: pts}); !equalSets(got, open) {
		t.Errorf("Polyline = %v, want %v", got, open)
	}
	if got := renderSet(Shape{Kind: Polygon, Points: pts}); !equalSets(got, closed) {
		t.Errorf("Polygon = %v, want %v", got, closed)
	}
	if got := renderSet(Shape{Kind: Polyline, Points: pts}); got[Pt(15, 15)] {
		t.Error("Polyline must not draw the closing edge")
	}
}

func TestRenderShapeShortPointLists(t *testing.T) {
	for _, k := range ShapeKinds() {
		if got := renderSet(Shape{Kind: k}); len(got) != 0 {
			t.Errorf("%v with no points plotted %v", k, got)
		}

		got := renderSet(Shape{Kind: k, Points: []Point{{4, 7}}})
		if len(got) != 1 || !got[Pt(4, 7)] {
			t.Errorf("%v with one point plotted %v, want only (4,7)", k, got)
		}
	}
}

func TestRenderShapeIgnoresExtraPoints(t *testing.T) {
	two := renderSet(Shape{Kind: Line, Points: []Point{{0, 0}, {5, 5}}})
	three := renderSet(Shape{Kind: Line, Points: []Point{{0, 0}, {5, 5}, {50, 0}}})
	if !equalSets(two, three) {
		t.Error("Line must only use its first two points")
	}
}

func TestRenderShapeUnknownKind(t *testing.T) {
	got := renderSet(Shape{Kind: ShapeKind(200), Points: []Point{{0, 0}, {5, 5}}})
	if len(got) != 0 {
		t.Errorf("unknown kind plotted %d pixels, want 0", len(got))
	}
}

func TestShapeBounds(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  image.Rectangle
	}{
		{"empty", Shape{Kind: Line}, image.Rectangle{}},
		{"single point", Shape{Kind: Circle, Points: []Point{{3, 4}}}, image.Rect(3, 4, 4, 5)},
		{"line", Shape{Kind: Line, Points: []Point{{5, 9}, {1, 2}}}, image.Rect(1, 2, 6, 10)},
		{"circle", Shape{Kind: Circle, Points: []Point{{10, 10}, {13, 14}}}, image.Rect(5, 5, 16, 16)},
		{"rectangle", Shape{Kind: Rectangle, Points: []Point{{8, 1}, {2, 6}}}, image.Rect(2, 1, 9, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShapeBounds(tt.shape); got != tt.want {
				t.Errorf("ShapeBounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func BenchmarkRenderShapeCircle(b *testing.B) {
	s := Shape{Kind: Circle, Points: []Point{{400, 300}, {650, 300}}}
	p := raster.PlotterFunc(func(int, int) {})
	b.ReportAllocs()
	for b.Loop() {
		RenderShape(p, s)
	}
}
