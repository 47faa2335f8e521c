// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Plotter receives the pixels produced by the rasterizers.
//
// Plot must accept any integer coordinates, including ones outside the
// visible surface.
type Plotter interface {
	Plot(x, y int)
}

// PlotterFunc adapts an ordinary function to the Plotter interface.
type PlotterFunc func(x, y int)

// Plot calls f(x, y).
func (f PlotterFunc) Plot(x, y int) {
	f(x, y)
}

// swap exchanges the values pointed to by a and b.
func swap[T any](a, b *T) {
	*a, *b = *b, *a
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
