// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Circle plots the outline of the circle centered at (xc, yc) with the
// midpoint circle algorithm.
//
// Only the first octant (from the positive x axis to the 45° diagonal) is
// computed; every computed offset (x, y) is mirrored into all 8 octants.
// The 4 axis points (xc±r, yc) and (xc, yc±r) are always plotted.
//
// A zero radius plots the center. A negative radius is a caller error and
// plots nothing meaningful.
func Circle(p Plotter, xc, yc, r int) {
	x, y := r, 0
	err := 0

	for x >= y {
		p.Plot(xc+x, yc+y)
		p.Plot(xc+y, yc+x)
		p.Plot(xc-y, yc+x)
		p.Plot(xc-x, yc+y)
		p.Plot(xc-x, yc-y)
		p.Plot(xc-y, yc-x)
		p.Plot(xc+y, yc-x)
		p.Plot(xc+x, yc-y)

		if err <= 0 {
			y++
			err += 2*y + 1
		} else {
			x--
			err -= 2*x + 1
		}
	}
}
