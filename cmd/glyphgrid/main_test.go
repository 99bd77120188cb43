package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/glyphgrid"
)

func TestRunGeneratedTileset(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	var stderr bytes.Buffer

	code := run([]string{"-gen", "-width", "30", "-height", "4", "-out", out}, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}

	pm, err := glyphgrid.LoadImage(out)
	if err != nil {
		t.Fatalf("LoadImage() error = %v", err)
	}
	if pm.Width() != 30*glyphgrid.TileWidth || pm.Height() != 4*glyphgrid.TileHeight {
		t.Errorf("output size = %dx%d", pm.Width(), pm.Height())
	}
	for _, msg := range []string{"generating tileset", "rendering", "saving", "image saved"} {
		if !strings.Contains(stderr.String(), msg) {
			t.Errorf("log output missing %q:\n%s", msg, stderr.String())
		}
	}
}

func TestRunScaledLuaScene(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "s.lua")
	if err := os.WriteFile(script, []byte(`fill("#", "green", "black")`), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.png")

	var stderr bytes.Buffer
	code := run([]string{"-gen", "-scene", script, "-width", "2", "-height", "1",
		"-scale", "3", "-workers", "2", "-out", out}, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}

	pm, err := glyphgrid.LoadImage(out)
	if err != nil {
		t.Fatal(err)
	}
	if pm.Width() != 2*glyphgrid.TileWidth*3 || pm.Height() != glyphgrid.TileHeight*3 {
		t.Errorf("scaled size = %dx%d", pm.Width(), pm.Height())
	}
}

func TestRunLoadedTileset(t *testing.T) {
	dir := t.TempDir()
	tiles := glyphgrid.NewPixmap(glyphgrid.TilesetWidth, glyphgrid.TilesetHeight)
	tiles.Fill(glyphgrid.Color{R: 255, G: 255, B: 255, A: 255})
	tilesPath := filepath.Join(dir, "tiles.png")
	if err := tiles.SavePNG(tilesPath); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.png")

	var stderr bytes.Buffer
	if code := run([]string{"-tileset", tilesPath, "-width", "1", "-height", "1", "-out", out}, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "tileset loaded") {
		t.Errorf("log output missing tileset size:\n%s", stderr.String())
	}
}

func TestRunFailures(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"missing tileset", []string{"-tileset", filepath.Join(dir, "nope.bmp"), "-out", filepath.Join(dir, "a.png")}, 1},
		{"bad scene", []string{"-gen", "-scene", filepath.Join(dir, "nope.json")}, 1},
		{"unwritable output", []string{"-gen", "-width", "1", "-height", "1", "-out", filepath.Join(dir, "x", "y", "z.png")}, 1},
		{"unknown flag", []string{"-bogus"}, 2},
		{"zero width", []string{"-width", "0"}, 2},
		{"zero scale", []string{"-scale", "0"}, 2},
		{"help", []string{"-h"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if got := run(tt.args, &stderr); got != tt.want {
				t.Errorf("run(%v) = %d, want %d; stderr:\n%s", tt.args, got, tt.want, stderr.String())
			}
		})
	}
}
