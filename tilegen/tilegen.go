// Package tilegen rasterizes a font into a code page 437 tileset.
//
// The result follows the glyphgrid layout: 16x16 tiles of 12x12 pixels, tile
// n holding the glyph for character code n. Glyph pixels are drawn in the
// foreground color (white by default) on the magenta transparency key, so the
// tileset can be tinted per cell like a hand-drawn one.
//
// Basic usage:
//
//	tiles, err := tilegen.Generate()
//	if err != nil {
//	    return err
//	}
//	glyphgrid.RenderGrid(out, tiles, grid)
package tilegen

import (
	"errors"
	"fmt"
	"image"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphgrid"
)

// ErrNoFace is returned when no usable font face is configured.
var ErrNoFace = errors.New("tilegen: no font face")

// Key is the default background: the magenta transparency key.
var Key = glyphgrid.Color{R: 255, G: 0, B: 255, A: 255}

// Option configures Generate.
type Option func(*options)

type options struct {
	face     font.Face
	goSize   float64
	fg, bg   glyphgrid.Color
	blankSet map[byte]bool
}

func defaultOptions() options {
	return options{
		face:     basicfont.Face7x13,
		fg:       glyphgrid.Color{R: 255, G: 255, B: 255, A: 255},
		bg:       Key,
		blankSet: map[byte]bool{0x00: true, 0x20: true, 0xff: true},
	}
}

// WithFace draws glyphs with face. The face is used as is; glyphs larger than
// a tile are clipped.
func WithFace(face font.Face) Option {
	return func(o *options) {
		o.face = face
		o.goSize = 0
	}
}

// WithGoRegular draws glyphs with the Go Regular font at size points (72 DPI).
// Go Regular covers the box drawing and symbol ranges of code page 437,
// which the default bitmap face lacks.
func WithGoRegular(size float64) Option {
	return func(o *options) {
		o.goSize = size
	}
}

// WithForeground sets the glyph color. Antialiased edges keep the coverage
// in the alpha channel.
func WithForeground(c glyphgrid.Color) Option {
	return func(o *options) {
		o.fg = c
	}
}

// WithBackground sets the color of non-glyph pixels.
func WithBackground(c glyphgrid.Color) Option {
	return func(o *options) {
		o.bg = c
	}
}

// Generate renders all 256 character codes into a new tileset pixmap.
func Generate(opts ...Option) (*glyphgrid.Pixmap, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	face := o.face
	if o.goSize > 0 {
		f, err := goRegularFace(o.goSize)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		face = f
	}
	if face == nil {
		return nil, ErrNoFace
	}

	pm := glyphgrid.NewPixmap(glyphgrid.TilesetWidth, glyphgrid.TilesetHeight)
	pm.Fill(o.bg)

	baseline := baselineFor(face)
	for code := range 256 {
		ch := byte(code)
		if o.blankSet[ch] {
			continue
		}
		r := glyphgrid.DecodeChar(ch)
		if !unicode.IsPrint(r) {
			continue
		}
		drawTile(pm, face, ch, r, baseline, o.fg)
	}

	glyphgrid.Logger().Debug("tilegen: tileset generated",
		"width", pm.Width(), "height", pm.Height())
	return pm, nil
}

func goRegularFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("tilegen: parse Go Regular: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("tilegen: create face: %w", err)
	}
	return face, nil
}

// baselineFor centers the face's line box vertically in a tile.
func baselineFor(face font.Face) int {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	lineHeight := ascent + m.Descent.Ceil()
	return max((glyphgrid.TileHeight-lineHeight)/2, 0) + ascent
}

// drawTile rasterizes r into a coverage mask and composites it into ch's tile.
func drawTile(pm *glyphgrid.Pixmap, face font.Face, ch byte, r rune, baseline int, fg glyphgrid.Color) {
	mask := image.NewAlpha(image.Rect(0, 0, glyphgrid.TileWidth, glyphgrid.TileHeight))

	s := string(r)
	advance := font.MeasureString(face, s).Round()
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P((glyphgrid.TileWidth-advance)/2, baseline),
	}
	d.DrawString(s)

	origin := glyphgrid.TileRect(ch).Min
	for y := range glyphgrid.TileHeight {
		for x := range glyphgrid.TileWidth {
			a := mask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			c := fg
			c.A = uint8(uint16(fg.A) * uint16(a) / 255)
			pm.SetPixel(origin.X+x, origin.Y+y, c)
		}
	}
}
