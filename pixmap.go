package glyphgrid

import (
	"image"
	"image/color"
)

// Pixmap is a rectangular RGBA pixel buffer, 4 bytes per pixel, row-major.
//
// Reads outside the pixmap return Transparent and writes outside it are
// discarded, so callers may draw partially off-canvas without clipping first.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA, non-premultiplied
}

// NewPixmap creates a zero-filled (transparent black) pixmap.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format). The slice aliases the pixmap.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// IsValid reports whether the pixmap has a backing buffer.
// A released pixmap is not valid.
func (p *Pixmap) IsValid() bool {
	return p != nil && p.data != nil
}

// Release drops the pixel buffer. The pixmap reads as empty afterwards.
func (p *Pixmap) Release() {
	p.data = nil
	p.width = 0
	p.height = 0
}

func (p *Pixmap) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height && p.data != nil
}

// GetPixel returns the color at (x, y), or Transparent outside the pixmap.
func (p *Pixmap) GetPixel(x, y int) Color {
	if !p.inBounds(x, y) {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return Color{
		R: p.data[i+0],
		G: p.data[i+1],
		B: p.data[i+2],
		A: p.data[i+3],
	}
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if !p.inBounds(x, y) {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// Fill sets every pixel to c.
func (p *Pixmap) Fill(c Color) {
	for i := 0; i+3 < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// FillRect sets every pixel of r that lies inside the pixmap to c.
func (p *Pixmap) FillRect(r image.Rectangle, c Color) {
	r = r.Intersect(p.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p.SetPixel(x, y, c)
		}
	}
}

// SubPixmap copies the region r into a new pixmap of r's size.
// Parts of r outside p read as Transparent.
func (p *Pixmap) SubPixmap(r image.Rectangle) *Pixmap {
	sub := NewPixmap(r.Dx(), r.Dy())
	for y := 0; y < sub.height; y++ {
		for x := 0; x < sub.width; x++ {
			sub.SetPixel(x, y, p.GetPixel(r.Min.X+x, r.Min.Y+y))
		}
	}
	return sub
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := &Pixmap{width: p.width, height: p.height}
	if p.data != nil {
		c.data = make([]uint8, len(p.data))
		copy(c.data, p.data)
	}
	return c
}

// ToImage converts the pixmap to an image.NRGBA sharing no memory with p.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image. Sources without an alpha channel
// come out opaque.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			src := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pm.data[y*width*4:(y+1)*width*4], nrgba.Pix[src:src+width*4])
		}
		return pm
	}

	for y := range height {
		for x := range width {
			pm.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
