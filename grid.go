package glyphgrid

import (
	"golang.org/x/text/encoding/charmap"
)

// Cell is the content of one grid position: a code page 437 character code
// with foreground and background colors.
type Cell struct {
	Ch byte
	Fg Color
	Bg Color
}

// Grid is a fixed-size, row-major array of cells.
//
// Every position in [0,Width)x[0,Height) holds a cell (the zero Cell until
// written). Positions outside that range do not exist: Cell reports them as
// absent and SetCell ignores them.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid allocates a width x height grid of zero cells.
// Negative dimensions are treated as zero.
func NewGrid(width, height int) *Grid {
	width, height = max(width, 0), max(height, 0)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Release drops the cell storage. The grid reads as empty afterwards.
func (g *Grid) Release() {
	g.cells = nil
	g.width = 0
	g.height = 0
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height && g.cells != nil
}

// Cell returns the cell at (x, y). ok is false when the position is outside
// the grid.
func (g *Grid) Cell(x, y int) (c Cell, ok bool) {
	if !g.inBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[y*g.width+x], true
}

// SetCell stores c at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) SetCell(x, y int, c Cell) {
	if !g.inBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = c
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// PutString writes s starting at (x, y) and moving right, one cell per rune.
// Runes are mapped to code page 437; runes with no CP437 code are written as '?'.
// Characters that fall off the grid are dropped. It returns the number of
// runes consumed, which is also the column advance.
func (g *Grid) PutString(x, y int, s string, fg, bg Color) int {
	n := 0
	for _, r := range s {
		g.SetCell(x+n, y, Cell{Ch: EncodeRune(r), Fg: fg, Bg: bg})
		n++
	}
	return n
}

// cp437Graphics holds the glyphs drawn for the control range 0x00-0x1f by
// IBM PC fonts and roguelike tilesets. charmap treats these codes as ASCII
// controls.
var cp437Graphics = [32]rune{
	' ', '☺', '☻', '♥', '♦', '♣', '♠', '•', '◘', '○', '◙', '♂', '♀', '♪', '♫', '☼',
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨', '↑', '↓', '→', '←', '∟', '↔', '▲', '▼',
}

const cp437House = '⌂' // 0x7f

// EncodeRune maps r to its code page 437 character code, or '?' if it has none.
func EncodeRune(r rune) byte {
	if r != ' ' {
		for i, g := range cp437Graphics {
			if g == r {
				return byte(i)
			}
		}
	}
	if r == cp437House {
		return 0x7f
	}
	if b, ok := charmap.CodePage437.EncodeRune(r); ok {
		return b
	}
	return '?'
}

// DecodeChar maps a code page 437 character code to the rune it displays as.
func DecodeChar(ch byte) rune {
	switch {
	case ch < 0x20:
		return cp437Graphics[ch]
	case ch == 0x7f:
		return cp437House
	}
	return charmap.CodePage437.DecodeByte(ch)
}
