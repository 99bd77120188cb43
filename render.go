package glyphgrid

import (
	"github.com/gogpu/glyphgrid/internal/parallel"
)

// OutputSize returns the pixel size of an image that exactly holds grid.
func OutputSize(grid *Grid) (width, height int) {
	return grid.Width() * TileWidth, grid.Height() * TileHeight
}

// NewOutput allocates a transparent pixmap sized for grid.
func NewOutput(grid *Grid) *Pixmap {
	return NewPixmap(OutputSize(grid))
}

// RenderGrid draws every cell of grid into dst, row by row.
//
// dst should be at least OutputSize(grid); RenderGrid never resizes it, and
// cells beyond its edge are clipped.
func RenderGrid(dst, tileset *Pixmap, grid *Grid) {
	for y := range grid.Height() {
		renderRow(dst, tileset, grid, y)
	}
}

func renderRow(dst, tileset *Pixmap, grid *Grid, y int) {
	for x := range grid.Width() {
		c, _ := grid.Cell(x, y)
		DrawGlyph(dst, tileset, c.Ch, x, y, c.Fg, c.Bg)
	}
}

// Renderer renders grids with a fixed tileset.
//
// With more than one worker, rows are drawn concurrently. Each cell owns a
// disjoint 12x12 region of the output, so the result is identical to RenderGrid.
type Renderer struct {
	tileset *Pixmap
	workers int
	pool    *parallel.WorkerPool
}

// NewRenderer creates a renderer for tileset.
//
// Example:
//
//	r := glyphgrid.NewRenderer(tiles, glyphgrid.WithWorkers(4))
//	defer r.Close()
//	out := r.Render(grid)
func NewRenderer(tileset *Pixmap, opts ...RenderOption) *Renderer {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		tileset: tileset,
		workers: o.workers,
	}
	if r.workers > 1 {
		r.pool = parallel.NewWorkerPool(r.workers)
	}
	return r
}

// Workers returns the number of workers the renderer draws with.
func (r *Renderer) Workers() int {
	return r.workers
}

// Render allocates an output pixmap sized for grid and draws into it.
func (r *Renderer) Render(grid *Grid) *Pixmap {
	dst := NewOutput(grid)
	r.RenderTo(dst, grid)
	return dst
}

// RenderTo draws grid into an existing pixmap.
func (r *Renderer) RenderTo(dst *Pixmap, grid *Grid) {
	Logger().Debug("glyphgrid: render",
		"cols", grid.Width(), "rows", grid.Height(),
		"output", dst.Bounds().Size(), "workers", r.workers)

	if r.pool == nil || grid.Height() < 2 {
		RenderGrid(dst, r.tileset, grid)
		return
	}

	work := make([]func(), grid.Height())
	for y := range work {
		work[y] = func() { renderRow(dst, r.tileset, grid, y) }
	}
	r.pool.ExecuteAll(work)
}

// Close stops the renderer's workers. The renderer falls back to serial
// rendering afterwards.
func (r *Renderer) Close() {
	if r.pool != nil {
		r.pool.Close()
		r.pool = nil
	}
}
