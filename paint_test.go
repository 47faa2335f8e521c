package paint

import (
	"github.com/gogpu/paint/raster"
)

// plot is one Plot call observed by fakeSink.
type plot struct {
	pt    Point
	color Color
}

// fakeSink is a PixelSink that records the calls made since the last
// ClearSurface.
type fakeSink struct {
	color     Color
	clears    int
	plots     []plot
	colorSets []Color
}

func (f *fakeSink) SetColor(c Color) {
	f.color = c
	f.colorSets = append(f.colorSets, c)
}

func (f *fakeSink) Plot(x, y int) {
	f.plots = append(f.plots, plot{pt: Pt(x, y), color: f.color})
}

func (f *fakeSink) ClearSurface() {
	f.clears++
	f.plots = nil
	f.colorSets = nil
}

// pixels returns the set of plotted points since the last clear.
func (f *fakeSink) pixels() map[Point]bool {
	m := make(map[Point]bool, len(f.plots))
	for _, p := range f.plots {
		m[p.pt] = true
	}
	return m
}

// lastColor returns the color the pixel at pt was last plotted with.
func (f *fakeSink) lastColor(pt Point) (Color, bool) {
	for i := len(f.plots) - 1; i >= 0; i-- {
		if f.plots[i].pt == pt {
			return f.plots[i].color, true
		}
	}
	return 0, false
}

// lineSet returns the pixels raster.Line plots for each segment.
func lineSet(segs ...[4]int) map[Point]bool {
	m := make(map[Point]bool)
	p := raster.PlotterFunc(func(x, y int) { m[Pt(x, y)] = true })
	for _, s := range segs {
		raster.Line(p, s[0], s[1], s[2], s[3])
	}
	return m
}

func equalSets(a, b map[Point]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if !b[p] {
			return false
		}
	}
	return true
}

// renderSet returns the set of pixels RenderShape plots for s.
func renderSet(s Shape) map[Point]bool {
	var l pixelList
	RenderShape(&l, s)
	m := make(map[Point]bool, len(l))
	for _, p := range l {
		m[p] = true
	}
	return m
}
