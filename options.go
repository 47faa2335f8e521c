package paint

// SceneOption configures a Scene during creation.
// Use functional options to customize Scene behavior.
//
// Example:
//
//	// Default scene: Line mode, Black, no pixel cache
//	s := paint.NewScene(pm)
//
//	// Start in red circle mode and cache committed shape pixels
//	s := paint.NewScene(pm,
//	    paint.WithMode(paint.Circle),
//	    paint.WithColor(paint.Red),
//	    paint.WithPixelCache(),
//	)
type SceneOption func(*sceneOptions)

// sceneOptions holds optional configuration for Scene creation.
type sceneOptions struct {
	mode       ShapeKind
	color      Color
	pixelCache bool
}

// defaultSceneOptions returns the default scene options.
func defaultSceneOptions() sceneOptions {
	return sceneOptions{
		mode:  Line,
		color: Black,
	}
}

// WithMode sets the initial drawing mode.
func WithMode(k ShapeKind) SceneOption {
	return func(o *sceneOptions) {
		o.mode = k
	}
}

// WithColor sets the initial drawing color.
func WithColor(c Color) SceneOption {
	return func(o *sceneOptions) {
		o.color = c
	}
}

// WithPixelCache makes the scene rasterize each committed shape once and
// replay the stored pixels on every redraw instead of running the
// rasterizers again.
// Output is identical with or without the cache. Each cached pixel costs one
// Point of memory.
func WithPixelCache() SceneOption {
	return func(o *sceneOptions) {
		o.pixelCache = true
	}
}
