package glyphgrid

// RenderOption configures a Renderer during creation.
//
// Example:
//
//	// Serial rendering (default)
//	r := glyphgrid.NewRenderer(tiles)
//
//	// One job per grid row on 8 goroutines
//	r := glyphgrid.NewRenderer(tiles, glyphgrid.WithWorkers(8))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for Renderer creation.
type renderOptions struct {
	workers int
}

// defaultRenderOptions returns the default renderer options.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		workers: 1,
	}
}

// WithWorkers sets the number of goroutines used to render rows.
// Values below 1 select serial rendering.
func WithWorkers(n int) RenderOption {
	return func(o *renderOptions) {
		o.workers = max(n, 1)
	}
}
