package paint

import (
	"image"

	"github.com/gogpu/paint/raster"
)

// RenderShape rasterizes s into p.
//
// Rasterizer parameters are derived from the raw anchor points:
//   - Line: the segment between the first two points.
//   - Rectangle: the four axis-aligned edges of the box spanned by the
//     first two points, which may be any pair of opposite corners.
//   - Circle: centered on the first point, radius is the truncated distance
//     to the second point.
//   - Ellipse: centered on the first point, radii are the absolute x and y
//     distances to the second point. A zero radius on either axis draws the
//     collapsed ellipse as a straight segment.
//   - Polygon, Polyline: a segment between every consecutive pair of points;
//     Polygon adds the closing segment from the last point to the first.
//
// A shape with no points renders nothing and a shape with a single point
// renders that pixel. Shape color is not applied here: callers set the
// sink color before rendering.
func RenderShape(p raster.Plotter, s Shape) {
	pts := s.Points
	switch len(pts) {
	case 0:
		return
	case 1:
		p.Plot(pts[0].X, pts[0].Y)
		return
	}

	a, b := pts[0], pts[1]

	switch s.Kind {
	case Line:
		raster.Line(p, a.X, a.Y, b.X, b.Y)

	case Rectangle:
		raster.Line(p, a.X, a.Y, b.X, a.Y) // top
		raster.Line(p, a.X, b.Y, b.X, b.Y) // bottom
		raster.Line(p, a.X, a.Y, a.X, b.Y) // left
		raster.Line(p, b.X, a.Y, b.X, b.Y) // right

	case Circle:
		raster.Circle(p, a.X, a.Y, Radius(a, b))

	case Ellipse:
		rx, ry := Radii(a, b)
		if rx == 0 || ry == 0 {
			raster.Line(p, a.X-rx, a.Y-ry, a.X+rx, a.Y+ry)
			return
		}
		raster.Ellipse(p, a.X, a.Y, rx, ry)

	case Polygon, Polyline:
		renderPath(p, pts, s.Kind == Polygon)
	}
}

// renderPath draws segments between consecutive points, plus the closing
// segment when closed is set.
func renderPath(p raster.Plotter, pts []Point, closed bool) {
	for i := 1; i < len(pts); i++ {
		raster.Line(p, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y)
	}
	if closed {
		first, last := pts[0], pts[len(pts)-1]
		raster.Line(p, last.X, last.Y, first.X, first.Y)
	}
}

// ShapeBounds returns the smallest rectangle containing every pixel
// RenderShape plots for s. It returns the empty rectangle when s has no
// points.
func ShapeBounds(s Shape) image.Rectangle {
	var bp boundsPlotter
	RenderShape(&bp, s)
	return bp.r
}

// boundsPlotter accumulates the bounding rectangle of plotted pixels.
type boundsPlotter struct {
	r   image.Rectangle
	any bool
}

func (b *boundsPlotter) Plot(x, y int) {
	px := image.Rect(x, y, x+1, y+1)
	if !b.any {
		b.r, b.any = px, true
		return
	}
	b.r = b.r.Union(px)
}

// pixelList records plotted pixels in order.
type pixelList []Point

func (l *pixelList) Plot(x, y int) {
	*l = append(*l, Point{X: x, Y: y})
}
