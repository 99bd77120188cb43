package scene

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/gogpu/glyphgrid"
)

// Scene errors.
var (
	// ErrInvalidScene is returned for malformed scene descriptions.
	ErrInvalidScene = errors.New("scene: invalid scene")

	// ErrUnsupportedFormat is returned by Load for unknown file extensions.
	ErrUnsupportedFormat = errors.New("scene: unsupported format")
)

// MaxDimension bounds the grid size a scene file may request.
const MaxDimension = 4096

// LoadJSON builds a grid from a JSON scene description:
//
//	{
//	  "width": 80, "height": 50,
//	  "fill":  {"ch": " ", "fg": "white", "bg": "black"},
//	  "cells": [{"x": 25, "y": 40, "ch": "@", "fg": "#ffffff"}],
//	  "text":  [{"x": 25, "y": 2, "s": "Title", "fg": [255, 255, 0]}]
//	}
//
// width and height default to the given values when absent. A character is
// either a one-rune string (mapped to code page 437) or a code 0-255. A color
// is a string accepted by glyphgrid.ParseColor or an [r, g, b] / [r, g, b, a]
// array. Cell and text entries inherit unspecified fields from "fill".
func LoadJSON(data []byte, width, height int) (*glyphgrid.Grid, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidScene)
	}
	root := gjson.ParseBytes(data)

	if v := root.Get("width"); v.Exists() {
		width = int(v.Int())
	}
	if v := root.Get("height"); v.Exists() {
		height = int(v.Int())
	}
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: grid size %dx%d", ErrInvalidScene, width, height)
	}

	grid := glyphgrid.NewGrid(width, height)

	base := glyphgrid.Cell{Ch: ' ', Fg: White, Bg: Black}
	if v := root.Get("fill"); v.Exists() {
		c, err := jsonCell(v, base)
		if err != nil {
			return nil, fmt.Errorf("fill: %w", err)
		}
		base = c
	}
	grid.Fill(base)

	for i, v := range root.Get("cells").Array() {
		c, err := jsonCell(v, base)
		if err != nil {
			return nil, fmt.Errorf("cells[%d]: %w", i, err)
		}
		grid.SetCell(int(v.Get("x").Int()), int(v.Get("y").Int()), c)
	}

	for i, v := range root.Get("text").Array() {
		c, err := jsonCell(v, base)
		if err != nil {
			return nil, fmt.Errorf("text[%d]: %w", i, err)
		}
		grid.PutString(int(v.Get("x").Int()), int(v.Get("y").Int()), v.Get("s").String(), c.Fg, c.Bg)
	}

	glyphgrid.Logger().Debug("scene: json loaded", "width", width, "height", height,
		"cells", len(root.Get("cells").Array()), "text", len(root.Get("text").Array()))
	return grid, nil
}

func jsonCell(v gjson.Result, def glyphgrid.Cell) (glyphgrid.Cell, error) {
	c := def
	var err error
	if ch := v.Get("ch"); ch.Exists() {
		if c.Ch, err = jsonChar(ch); err != nil {
			return c, err
		}
	}
	if fg := v.Get("fg"); fg.Exists() {
		if c.Fg, err = jsonColor(fg); err != nil {
			return c, err
		}
	}
	if bg := v.Get("bg"); bg.Exists() {
		if c.Bg, err = jsonColor(bg); err != nil {
			return c, err
		}
	}
	return c, nil
}

func jsonChar(v gjson.Result) (byte, error) {
	switch v.Type {
	case gjson.Number:
		n := v.Int()
		if n < 0 || n > 255 {
			return 0, fmt.Errorf("%w: character code %d out of range", ErrInvalidScene, n)
		}
		return byte(n), nil
	case gjson.String:
		return charFromString(v.String())
	default:
		return 0, fmt.Errorf("%w: character %s", ErrInvalidScene, v.Raw)
	}
}

func charFromString(s string) (byte, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: character %q must be a single rune", ErrInvalidScene, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return glyphgrid.EncodeRune(r), nil
}

func jsonColor(v gjson.Result) (glyphgrid.Color, error) {
	if v.IsArray() {
		parts := v.Array()
		ch := make([]int64, len(parts))
		for i, p := range parts {
			ch[i] = p.Int()
		}
		return colorFromChannels(ch)
	}
	if v.Type != gjson.String {
		return glyphgrid.Color{}, fmt.Errorf("%w: color %s", ErrInvalidScene, v.Raw)
	}
	return glyphgrid.ParseColor(v.String())
}

// colorFromChannels builds a color from 3 or 4 channel values in 0-255.
func colorFromChannels(ch []int64) (glyphgrid.Color, error) {
	if len(ch) != 3 && len(ch) != 4 {
		return glyphgrid.Color{}, fmt.Errorf("%w: color needs 3 or 4 channels, got %d", ErrInvalidScene, len(ch))
	}
	if len(ch) == 3 {
		ch = append(ch, 255)
	}
	var out [4]uint8
	for i, v := range ch {
		if v < 0 || v > 255 {
			return glyphgrid.Color{}, fmt.Errorf("%w: channel value %d out of range", ErrInvalidScene, v)
		}
		out[i] = uint8(v)
	}
	return glyphgrid.Color{R: out[0], G: out[1], B: out[2], A: out[3]}, nil
}
