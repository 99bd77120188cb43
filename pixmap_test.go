package glyphgrid

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

// Verify at compile time that Pixmap implements image.Image.
var _ image.Image = (*Pixmap)(nil)

func TestNewPixmap(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"regular", 10, 4, 10, 4},
		{"empty", 0, 0, 0, 0},
		{"zero height", 7, 0, 7, 0},
		{"negative clamps", -3, 5, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(tt.width, tt.height)
			if pm.Width() != tt.wantW || pm.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", pm.Width(), pm.Height(), tt.wantW, tt.wantH)
			}
			if len(pm.Data()) != tt.wantW*tt.wantH*4 {
				t.Errorf("len(Data()) = %d, want %d", len(pm.Data()), tt.wantW*tt.wantH*4)
			}
			if !pm.IsValid() {
				t.Error("new pixmap should be valid")
			}
			for i, v := range pm.Data() {
				if v != 0 {
					t.Fatalf("Data()[%d] = %d, want zero fill", i, v)
				}
			}
		})
	}
}

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	c := Color{128, 64, 32, 200}
	pm.SetPixel(5, 3, c)

	if got := pm.GetPixel(5, 3); got != c {
		t.Errorf("GetPixel(5, 3) = %v, want %v", got, c)
	}

	i := (3*10 + 5) * 4
	data := pm.Data()
	if data[i+0] != 128 || data[i+1] != 64 || data[i+2] != 32 || data[i+3] != 200 {
		t.Errorf("raw data = %v, want [128 64 32 200]", data[i:i+4])
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Fill(Color{1, 2, 3, 4})

	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100}, {-1 << 40, 0}, {0, 1 << 40},
	}
	for _, c := range oob {
		if got := pm.GetPixel(c.x, c.y); got != Transparent {
			t.Errorf("GetPixel(%d, %d) = %v, want Transparent", c.x, c.y, got)
		}
		pm.SetPixel(c.x, c.y, Color{255, 0, 0, 255})
	}

	if !bytes.Equal(pm.Data(), original) {
		t.Fatal("out-of-bounds write modified data")
	}
}

func TestPixmapRelease(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Fill(Color{9, 9, 9, 9})
	pm.Release()

	if pm.IsValid() {
		t.Error("IsValid() = true after Release")
	}
	if got := pm.GetPixel(0, 0); got != Transparent {
		t.Errorf("GetPixel after Release = %v, want Transparent", got)
	}
	pm.SetPixel(0, 0, Color{1, 1, 1, 1}) // must not panic
	pm.Fill(Color{1, 1, 1, 1})

	var nilPixmap *Pixmap
	if nilPixmap.IsValid() {
		t.Error("nil pixmap should not be valid")
	}
}

func TestPixmapFillRect(t *testing.T) {
	pm := NewPixmap(6, 6)
	c := Color{0, 255, 0, 255}
	pm.FillRect(image.Rect(4, 4, 20, 20), c)

	for y := range 6 {
		for x := range 6 {
			want := Transparent
			if x >= 4 && y >= 4 {
				want = c
			}
			if got := pm.GetPixel(x, y); got != want {
				t.Errorf("(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPixmapSubPixmap(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(3, 3, Color{7, 7, 7, 7})

	sub := pm.SubPixmap(image.Rect(2, 2, 6, 6))
	if sub.Width() != 4 || sub.Height() != 4 {
		t.Fatalf("sub size = %dx%d, want 4x4", sub.Width(), sub.Height())
	}
	if got := sub.GetPixel(1, 1); got != (Color{7, 7, 7, 7}) {
		t.Errorf("sub(1, 1) = %v, want copied pixel", got)
	}
	if got := sub.GetPixel(3, 3); got != Transparent {
		t.Errorf("sub(3, 3) = %v, want Transparent outside source", got)
	}
}

func TestPixmapClone(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(1, 1, Color{1, 2, 3, 4})

	c := pm.Clone()
	c.SetPixel(1, 1, Color{})
	if got := pm.GetPixel(1, 1); got != (Color{1, 2, 3, 4}) {
		t.Errorf("Clone shares memory with source: %v", got)
	}
}

func TestPixmapImageConversion(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.SetPixel(0, 0, Color{255, 0, 0, 255})
	pm.SetPixel(2, 1, Color{10, 20, 30, 40})

	img := pm.ToImage()
	if got := img.NRGBAAt(2, 1); got != (color.NRGBA{10, 20, 30, 40}) {
		t.Errorf("ToImage pixel = %v", got)
	}

	back := FromImage(img)
	if !bytes.Equal(back.Data(), pm.Data()) {
		t.Error("FromImage(ToImage()) changed pixels")
	}

	if pm.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() should be NRGBAModel")
	}
	if got := pm.At(2, 1); got != (color.NRGBA{10, 20, 30, 40}) {
		t.Errorf("At(2, 1) = %v", got)
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	src.SetNRGBA(7, 6, color.NRGBA{1, 2, 3, 4})

	pm := FromImage(src)
	if pm.Width() != 3 || pm.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", pm.Width(), pm.Height())
	}
	if got := pm.GetPixel(2, 1); got != (Color{1, 2, 3, 4}) {
		t.Errorf("GetPixel(2, 1) = %v", got)
	}
}

func TestFromImageOpaqueSource(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.SetGray(1, 0, color.Gray{Y: 77})

	pm := FromImage(gray)
	if got := pm.GetPixel(1, 0); got != (Color{77, 77, 77, 255}) {
		t.Errorf("GetPixel(1, 0) = %v, want opaque gray", got)
	}
}

func BenchmarkPixmapSetPixel(b *testing.B) {
	pm := NewPixmap(256, 256)
	c := Color{1, 2, 3, 255}
	b.ReportAllocs()
	for b.Loop() {
		for y := range 256 {
			for x := range 256 {
				pm.SetPixel(x, y, c)
			}
		}
	}
}
