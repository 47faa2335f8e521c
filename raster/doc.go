// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster converts line segments, circles and ellipses into integer
// pixel coordinates using the classic midpoint algorithms.
//
// Every routine works in integer surface coordinates and reports pixels
// through a [Plotter]. The routines never allocate and never fail; pixels
// outside the visible surface are passed through unchanged and it is the
// plotter's job to clip them.
//
// # Algorithms
//
//   - [Line]: midpoint (Bresenham) line, octant-normalized so the loop always
//     steps along the longer axis from left to right.
//   - [Circle]: midpoint circle computing one octant and mirroring it 8 ways.
//   - [Ellipse]: two-region midpoint ellipse mirrored into all 4 quadrants.
//
// Pixels may be reported more than once (for example the axis points of a
// circle). Plotters that count pixels should deduplicate if they care.
//
// # Example
//
//	var pts []image.Point
//	raster.Line(raster.PlotterFunc(func(x, y int) {
//	    pts = append(pts, image.Pt(x, y))
//	}), 0, 0, 3, 3)
//	// pts == [(0,0) (1,1) (2,2) (3,3)]
package raster
