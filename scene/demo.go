// Package scene populates character grids: a built-in demo, JSON scene
// descriptions and sandboxed Lua scene scripts.
package scene

import (
	"github.com/gogpu/glyphgrid"
)

// Palette used by the demo and as named defaults in scene files.
var (
	White = glyphgrid.Color{R: 255, G: 255, B: 255, A: 255}
	Black = glyphgrid.Color{R: 0, G: 0, B: 0, A: 255}
	Red   = glyphgrid.Color{R: 255, G: 0, B: 0, A: 255}
	Green = glyphgrid.Color{R: 0, G: 255, B: 0, A: 255}
	Blue  = glyphgrid.Color{R: 0, G: 100, B: 255, A: 255}
)

// Default demo grid size in cells.
const (
	DemoWidth  = 80
	DemoHeight = 50
)

// DemoTitle is written across the top of the demo scene.
const DemoTitle = "Dwarf Fortress Style ASCII Art"

// Demo fills grid with a small roguelike scene: a player, a goblin, a strip
// of water and a title line. Elements that do not fit a smaller grid are
// clipped.
func Demo(grid *glyphgrid.Grid) {
	grid.Fill(glyphgrid.Cell{Ch: ' ', Fg: White, Bg: Black})

	grid.SetCell(25, 40, glyphgrid.Cell{Ch: '@', Fg: White, Bg: Black})
	grid.SetCell(20, 30, glyphgrid.Cell{Ch: 'g', Fg: Green, Bg: Black})

	water := glyphgrid.Cell{Ch: '~', Fg: Blue, Bg: Black}
	for x := 10; x < 30; x++ {
		grid.SetCell(x, 35, water)
	}

	grid.PutString(25, 2, DemoTitle, White, Black)
}
