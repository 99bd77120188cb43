package glyphgrid

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrInvalidImage is returned when a pixmap has no backing buffer.
	ErrInvalidImage = errors.New("glyphgrid: invalid image")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("glyphgrid: empty data")

	// ErrTilesetSize is returned by Tileset.Validate for a bitmap that does
	// not match the 16x16 tile layout.
	ErrTilesetSize = errors.New("glyphgrid: tileset size mismatch")
)

// LoadImage decodes the image file at path into a 4-channel pixmap.
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported; images without alpha
// come out opaque.
func LoadImage(path string) (*Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("glyphgrid: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	pm, err := DecodeImage(f)
	if err != nil {
		return nil, err
	}
	Logger().Debug("glyphgrid: image loaded", "path", path,
		"width", pm.Width(), "height", pm.Height())
	return pm, nil
}

// LoadImageFromBytes decodes an in-memory image file.
func LoadImageFromBytes(data []byte) (*Pixmap, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return DecodeImage(bytes.NewReader(data))
}

// DecodeImage decodes an image from r, auto-detecting the format.
func DecodeImage(r io.Reader) (*Pixmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("glyphgrid: decode: %w", err)
	}
	return FromImage(img), nil
}

// LoadTileset loads a tileset bitmap. A size that does not match the 16x16
// layout is logged, not rejected.
func LoadTileset(path string) (*Tileset, error) {
	pm, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	ts := NewTileset(pm)
	if err := ts.Validate(); err != nil {
		Logger().Warn("glyphgrid: tileset layout", "path", path, "err", err)
	}
	return ts, nil
}

// SavePNG saves the pixmap as a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("glyphgrid: create file: %w", err)
	}

	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("glyphgrid: close file: %w", err)
	}
	Logger().Info("glyphgrid: image saved", "path", path,
		"width", p.width, "height", p.height)
	return nil
}

// EncodePNG encodes the pixmap as PNG to w.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	if !p.IsValid() {
		return ErrInvalidImage
	}
	if err := png.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("glyphgrid: encode PNG: %w", err)
	}
	return nil
}

// Scale returns a copy of p enlarged by an integer factor with
// nearest-neighbour sampling, which keeps tile edges sharp. A factor below 2
// returns a plain copy.
func (p *Pixmap) Scale(factor int) *Pixmap {
	if factor < 2 {
		return p.Clone()
	}
	dst := image.NewNRGBA(image.Rect(0, 0, p.width*factor, p.height*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), p.ToImage(), p.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}
