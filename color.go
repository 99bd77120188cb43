package glyphgrid

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a non-premultiplied RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// Transparent is the zero Color. It is also the value read from outside a Pixmap.
var Transparent = Color{}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// NRGBA converts the color to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// String returns the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Blend composites fg over bg.
//
// An opaque foreground is returned as is and a fully transparent one yields bg.
// Otherwise each channel is fg*a + bg*(1-a) with a = fg.A/255, truncated, and the
// result is opaque.
func Blend(fg, bg Color) Color {
	if fg.A == 255 {
		return fg
	}
	if fg.A == 0 {
		return bg
	}

	alpha := float32(fg.A) / 255
	return Color{
		R: blendChannel(fg.R, bg.R, alpha),
		G: blendChannel(fg.G, bg.G, alpha),
		B: blendChannel(fg.B, bg.B, alpha),
		A: 255,
	}
}

// blendChannel works in single precision. The explicit conversions round each
// product and keep the compiler from fusing them, so truncation is stable
// across architectures.
func blendChannel(f, b uint8, alpha float32) uint8 {
	return uint8(float32(float32(f)*alpha) + float32(float32(b)*(1-alpha)))
}

// Modulate tints pixel by mod. Each color channel becomes pixel*mod/255 using
// integer division; alpha is copied from pixel.
func Modulate(pixel, mod Color) Color {
	return Color{
		R: mulDiv255(pixel.R, mod.R),
		G: mulDiv255(pixel.G, mod.G),
		B: mulDiv255(pixel.B, mod.B),
		A: pixel.A,
	}
}

// mulDiv255 computes a*b/255 exactly, truncating.
func mulDiv255(a, b uint8) uint8 {
	return uint8(uint16(a) * uint16(b) / 255)
}

// Transparency key thresholds. A tileset pixel is treated as a hole when it is
// (near) bright magenta. Alpha is not considered.
const (
	keyMinRed   = 250
	keyMaxGreen = 5
	keyMinBlue  = 250
)

// IsTransparencyKey reports whether c is the magenta key color.
func IsTransparencyKey(c Color) bool {
	return c.R > keyMinRed && c.G < keyMaxGreen && c.B > keyMinBlue
}

// ErrInvalidColor is returned by ParseColor for unrecognized input.
var ErrInvalidColor = errors.New("glyphgrid: invalid color")

// ParseColor parses a color given as hex ("#rgb", "#rrggbb", "#rrggbbaa") or as
// a name known to tcell ("red", "navy", "darkslategray", ...). Named and
// 3/6-digit hex colors are opaque.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Transparent, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}

	name := strings.ToLower(s)
	if name == "transparent" {
		return Transparent, nil
	}
	tc := tcell.GetColor(name)
	if tc == tcell.ColorDefault || !tc.Valid() {
		return Transparent, fmt.Errorf("%w: unknown name %q", ErrInvalidColor, s)
	}
	r, g, b := tc.RGB()
	if r < 0 {
		return Transparent, fmt.Errorf("%w: %q has no RGB value", ErrInvalidColor, s)
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
}

func parseHexColor(s string) (Color, error) {
	alpha := uint8(255)
	if len(s) == 9 {
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return Transparent, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = a
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Transparent, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}
