// Package termview previews a character grid in a terminal using tcell.
//
// The preview is approximate: each cell becomes one terminal cell with the
// code page 437 character as a Unicode rune and the cell colors as 24-bit
// foreground/background. Alpha is ignored.
package termview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/glyphgrid"
)

// Draw paints grid onto screen starting at the top-left corner. Cells that do
// not fit the screen are skipped. Draw does not call screen.Show.
func Draw(screen tcell.Screen, grid *glyphgrid.Grid) {
	sw, sh := screen.Size()
	w, h := min(grid.Width(), sw), min(grid.Height(), sh)

	for y := range h {
		for x := range w {
			c, _ := grid.Cell(x, y)
			screen.SetContent(x, y, cellRune(c.Ch), nil, cellStyle(c))
		}
	}
}

// cellRune maps a character code to a printable rune. Code 0 is shown blank.
func cellRune(ch byte) rune {
	if ch == 0 {
		return ' '
	}
	return glyphgrid.DecodeChar(ch)
}

func cellStyle(c glyphgrid.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(rgb(c.Fg)).
		Background(rgb(c.Bg))
}

func rgb(c glyphgrid.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Show draws grid on the terminal and blocks until Escape, Enter, q or
// Ctrl-C is pressed. The grid is redrawn when the terminal is resized.
func Show(grid *glyphgrid.Grid) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("termview: open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("termview: init screen: %w", err)
	}
	defer screen.Fini()

	return run(screen, grid)
}

// run is the event loop behind Show, split out so it can be driven by a
// simulation screen.
func run(screen tcell.Screen, grid *glyphgrid.Grid) error {
	screen.Clear()
	Draw(screen, grid)
	screen.Show()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			screen.Clear()
			Draw(screen, grid)
			screen.Show()
		case *tcell.EventKey:
			if isQuitKey(ev) {
				return nil
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return ev.Rune() == 'c' || ev.Rune() == 'C'
		}
		return ev.Rune() == 'q'
	}
	return false
}
