// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Ellipse plots the outline of the axis-aligned ellipse centered at
// (xc, yc) with horizontal radius rx and vertical radius ry, using the
// two-region midpoint ellipse algorithm.
//
// Region 1 starts at the top of the ellipse (0, ry) and steps along x while
// the slope magnitude is below 1. Region 2 continues from where region 1
// stopped and steps along y down to the x axis. Each computed offset is
// mirrored into all 4 quadrants.
//
// The decision variables carry the fractional ¼ and ½ terms of the
// algorithm, so they are kept in float64 while coordinates stay integral.
//
// With rx == 0 the result is the vertical segment of length 2*ry. With
// ry == 0 only the center is plotted; callers that want a horizontal
// segment for a flat ellipse must draw it themselves.
func Ellipse(p Plotter, xc, yc, rx, ry int) {
	rx2 := rx * rx
	ry2 := ry * ry

	plot4 := func(x, y int) {
		p.Plot(xc+x, yc-y)
		p.Plot(xc-x, yc+y)
		p.Plot(xc+x, yc+y)
		p.Plot(xc-x, yc-y)
	}

	x, y := 0, ry

	// Region 1.
	d1 := float64(ry2) - float64(rx2*ry) + float64(rx2)/4
	for 2*x*ry2 < 2*y*rx2 {
		plot4(x, y)

		x++
		if d1 < 0 {
			d1 += float64(2*ry2*x + ry2)
		} else {
			y--
			d1 += float64(2*ry2*x + ry2 - 2*rx2*y)
		}
	}

	// Region 2.
	fx := float64(x) + 0.5
	fy := float64(y - 1)
	d2 := fx*fx*float64(ry2) + fy*fy*float64(rx2) - float64(rx2*ry2)
	for y >= 0 {
		plot4(x, y)

		y--
		if d2 > 0 {
			d2 -= float64(2*rx2*y + rx2)
		} else {
			x++
			d2 += float64(2*ry2*x - 2*rx2*y - rx2)
		}
	}
}
