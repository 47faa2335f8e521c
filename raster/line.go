// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Line plots the segment from (x1, y1) to (x2, y2) with the midpoint
// line algorithm.
//
// The segment is first normalized to a shallow, left-to-right octant: steep
// segments have their x and y roles exchanged, and the endpoints are swapped
// when the segment runs right to left. A segment is undirected, so both
// directions produce the same pixel set.
//
// Exactly max(|x1-x2|, |y1-y2|)+1 pixels are plotted: the normalized start
// point first, then one pixel per unit step along the major axis. Both
// endpoints are always included and a zero-length segment plots one pixel.
func Line(p Plotter, x1, y1, x2, y2 int) {
	dx := abs(x1 - x2)
	dy := abs(y1 - y2)

	steep := dy > dx
	if steep {
		swap(&x1, &y1)
		swap(&x2, &y2)
		swap(&dx, &dy)
	}

	if x1 > x2 {
		swap(&x1, &x2)
		swap(&y1, &y2)
	}

	decision := 2*dy - dx
	incE := 2 * dy
	incNE := 2 * (dy - dx)
	stepY := 1
	if y1 > y2 {
		stepY = -1
	}

	plot := func(x, y int) {
		if steep {
			p.Plot(y, x)
			return
		}
		p.Plot(x, y)
	}

	x, y := x1, y1
	plot(x, y)
	for x < x2 {
		if decision <= 0 {
			decision += incE
		} else {
			decision += incNE
			y += stepY
		}
		x++
		plot(x, y)
	}
}
