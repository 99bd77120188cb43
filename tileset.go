package glyphgrid

import (
	"fmt"
	"image"
)

// Tileset layout. A tileset is a 16x16 grid of 12x12 pixel tiles, one per
// character code, so code c lives at column c%16, row c/16.
const (
	TileWidth   = 12
	TileHeight  = 12
	TilesetCols = 16
	TilesetRows = 16

	// TilesetWidth and TilesetHeight are the pixel size of a conforming tileset.
	TilesetWidth  = TileWidth * TilesetCols
	TilesetHeight = TileHeight * TilesetRows
)

// TileRect returns the source rectangle of character code ch in a tileset.
func TileRect(ch byte) image.Rectangle {
	x := int(ch) % TilesetCols * TileWidth
	y := int(ch) / TilesetCols * TileHeight
	return image.Rect(x, y, x+TileWidth, y+TileHeight)
}

// CellRect returns the output rectangle covered by grid position (gx, gy).
func CellRect(gx, gy int) image.Rectangle {
	x, y := gx*TileWidth, gy*TileHeight
	return image.Rect(x, y, x+TileWidth, y+TileHeight)
}

// Tileset is a bitmap font laid out as described by TileRect.
type Tileset struct {
	*Pixmap
}

// NewTileset wraps pm as a tileset. The layout is not enforced; see Validate.
func NewTileset(pm *Pixmap) *Tileset {
	return &Tileset{Pixmap: pm}
}

// Tile returns a copy of the tile for ch.
func (t *Tileset) Tile(ch byte) *Pixmap {
	return t.SubPixmap(TileRect(ch))
}

// Validate reports whether the bitmap has the expected 192x192 size.
// Drawing with a non-conforming tileset still works; missing tiles read as
// transparent black.
func (t *Tileset) Validate() error {
	if !t.IsValid() {
		return ErrInvalidImage
	}
	if t.Width() != TilesetWidth || t.Height() != TilesetHeight {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrTilesetSize,
			t.Width(), t.Height(), TilesetWidth, TilesetHeight)
	}
	return nil
}

// DrawGlyph renders one cell into dst at grid position (gx, gy).
//
// The 12x12 destination tile is first filled with bg. Each tileset pixel of
// ch's tile that is not the transparency key is then tinted by fg and
// composited over bg. Only the destination tile is written; anything that
// falls outside dst or tileset is clipped by the pixel accessors.
func DrawGlyph(dst, tileset *Pixmap, ch byte, gx, gy int, fg, bg Color) {
	src := TileRect(ch).Min
	out := CellRect(gx, gy).Min

	for py := range TileHeight {
		for px := range TileWidth {
			dst.SetPixel(out.X+px, out.Y+py, bg)
		}
	}

	for py := range TileHeight {
		for px := range TileWidth {
			tp := tileset.GetPixel(src.X+px, src.Y+py)
			if IsTransparencyKey(tp) {
				continue
			}
			dst.SetPixel(out.X+px, out.Y+py, Blend(Modulate(tp, fg), bg))
		}
	}
}
