package paint

// PixelSink is the rendering surface the scene draws into.
//
// Implementations must ignore coordinates that fall outside the visible
// surface; the rasterizers never clip. Every PixelSink also satisfies
// raster.Plotter, so it can be handed directly to the rasterizers.
type PixelSink interface {
	// SetColor selects the color used by subsequent Plot calls.
	SetColor(c Color)

	// Plot paints one pixel at (x, y) in the current color.
	Plot(x, y int)

	// ClearSurface erases the whole surface to its background.
	ClearSurface()
}
