// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"testing"
)

func TestCircleSmall(t *testing.T) {
	tests := []struct {
		name string
		r    int
		want []image.Point
	}{
		{
			name: "zero radius",
			r:    0,
			want: []image.Point{{0, 0}},
		},
		{
			name: "radius 1",
			r:    1,
			want: []image.Point{
				{1, 0}, {-1, 0}, {0, 1}, {0, -1},
				{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
			},
		},
		{
			name: "radius 3",
			r:    3,
			want: []image.Point{
				{3, 0}, {-3, 0}, {0, 3}, {0, -3},
				{3, 1}, {-3, 1}, {3, -1}, {-3, -1},
				{1, 3}, {-1, 3}, {1, -3}, {-1, -3},
				{2, 1}, {-2, 1}, {2, -1}, {-2, -1},
				{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
				{2, 2}, {-2, 2}, {2, -2}, {-2, -2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c collector
			Circle(&c, 0, 0, tt.r)
			sameSet(t, tt.name, c.set(), tt.want)
		})
	}
}

func TestCircleAxisPoints(t *testing.T) {
	for r := 0; r <= 40; r++ {
		var c collector
		Circle(&c, 10, -4, r)
		s := c.set()
		for _, p := range []image.Point{{10 + r, -4}, {10 - r, -4}, {10, -4 + r}, {10, -4 - r}} {
			if !s[p] {
				t.Errorf("Circle(10,-4,%d) missing axis point %v", r, p)
			}
		}
	}
}

// TestCircleSymmetry verifies that the output is invariant under the 8
// symmetries of the square.
func TestCircleSymmetry(t *testing.T) {
	const xc, yc = 7, 3
	for r := 0; r <= 60; r++ {
		var c collector
		Circle(&c, xc, yc, r)
		s := c.set()
		for p := range s {
			a, b := p.X-xc, p.Y-yc
			for _, q := range [][2]int{
				{a, -b}, {-a, b}, {-a, -b},
				{b, a}, {b, -a}, {-b, a}, {-b, -a},
			} {
				if !s[image.Pt(xc+q[0], yc+q[1])] {
					t.Fatalf("Circle r=%d: (%d,%d) plotted but reflection (%d,%d) missing",
						r, a, b, q[0], q[1])
				}
			}
		}
	}
}

func BenchmarkCircle(b *testing.B) {
	p := PlotterFunc(func(int, int) {})
	b.ReportAllocs()
	for b.Loop() {
		Circle(p, 500, 500, 400)
	}
}
