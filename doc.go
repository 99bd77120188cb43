// Package glyphgrid renders a grid of colored characters into an RGBA image
// using a bitmap tileset.
//
// # Overview
//
// A tileset is a 192x192 image holding 256 glyphs of 12x12 pixels, laid out
// 16 per row in code page 437 order. Each glyph pixel is magenta for
// "transparent" and otherwise a shade that is tinted by the cell foreground.
// A Grid holds one character code and a foreground/background color per
// cell; RenderGrid turns it into a Pixmap of (cols*12)x(rows*12) pixels.
//
// # Quick Start
//
//	import "github.com/gogpu/glyphgrid"
//
//	tiles, err := glyphgrid.LoadTileset("DB_curses_12x12.bmp")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	grid := glyphgrid.NewGrid(80, 50)
//	grid.Fill(glyphgrid.Cell{Ch: ' ', Bg: glyphgrid.Color{A: 255}})
//	grid.PutString(2, 1, "Hello ☺", glyphgrid.Color{R: 255, G: 255, B: 255, A: 255}, glyphgrid.Color{A: 255})
//
//	out := glyphgrid.NewOutput(grid)
//	glyphgrid.RenderGrid(out, tiles.Pixmap, grid)
//	out.SavePNG("output.png")
//
// # Compositing
//
// Blend performs straight-alpha "over" with an opaque result. Modulate
// multiplies two colors channel by channel. A tileset pixel is treated as
// transparent when IsTransparencyKey reports true (near-magenta).
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Pixel and cell accessors ignore out-of-range coordinates instead of
// panicking.
//
// # Concurrency
//
// RenderGrid is single-threaded. Renderer can split rows across a worker pool
// (see WithWorkers); every row writes a disjoint band of the output.
package glyphgrid

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
