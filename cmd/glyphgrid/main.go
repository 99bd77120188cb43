// Command glyphgrid renders a character grid scene to a PNG using a
// 16x16 tileset of 12x12 glyphs.
//
// Usage:
//
//	glyphgrid -tileset ./bitmaps/DB_curses_12x12.bmp -out output.png
//	glyphgrid -gen -scene room.lua -scale 2
//	glyphgrid -scene title.json -preview
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/scene"
	"github.com/gogpu/glyphgrid/termview"
	"github.com/gogpu/glyphgrid/tilegen"
)

const defaultTileset = "./bitmaps/DB_curses_12x12.bmp"

type config struct {
	tileset   string
	generate  bool
	goSize    float64
	scenePath string
	width     int
	height    int
	out       string
	scale     int
	workers   int
	preview   bool
	verbose   bool
	timeout   time.Duration
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("glyphgrid", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.tileset, "tileset", defaultTileset, "tileset bitmap (16x16 tiles of 12x12 pixels)")
	fs.BoolVar(&cfg.generate, "gen", false, "generate the tileset from a built-in font instead of loading it")
	fs.Float64Var(&cfg.goSize, "gen-size", 0, "with -gen, rasterize Go Regular at this point size (0 = bitmap font)")
	fs.StringVar(&cfg.scenePath, "scene", "", "scene file (.json or .lua); empty renders the demo scene")
	fs.IntVar(&cfg.width, "width", scene.DemoWidth, "grid width in cells")
	fs.IntVar(&cfg.height, "height", scene.DemoHeight, "grid height in cells")
	fs.StringVar(&cfg.out, "out", "output.png", "output PNG file")
	fs.IntVar(&cfg.scale, "scale", 1, "integer upscale factor for the output")
	fs.IntVar(&cfg.workers, "workers", 1, "goroutines used to render rows")
	fs.BoolVar(&cfg.preview, "preview", false, "show the grid in the terminal instead of writing a PNG")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.DurationVar(&cfg.timeout, "timeout", 5*time.Second, "time limit for Lua scene scripts")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return cfg, fmt.Errorf("grid size must be positive, got %dx%d", cfg.width, cfg.height)
	}
	if cfg.scale < 1 {
		return cfg, fmt.Errorf("scale must be at least 1, got %d", cfg.scale)
	}
	return cfg, nil
}

func run(args []string, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	glyphgrid.SetLogger(logger)
	defer glyphgrid.SetLogger(nil)

	if err := render(cfg, logger); err != nil {
		logger.Error("glyphgrid failed", "err", err)
		return 1
	}
	return 0
}

func render(cfg config, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
	defer cancel()

	grid, err := scene.Load(ctx, cfg.scenePath, cfg.width, cfg.height)
	if err != nil {
		return err
	}
	defer grid.Release()

	if cfg.preview {
		return termview.Show(grid)
	}

	tiles, err := loadTileset(cfg, logger)
	if err != nil {
		return err
	}
	defer tiles.Release()

	logger.Info("rendering", "cols", grid.Width(), "rows", grid.Height(), "workers", cfg.workers)
	r := glyphgrid.NewRenderer(tiles, glyphgrid.WithWorkers(cfg.workers))
	out := r.Render(grid)
	r.Close()
	defer out.Release()

	if cfg.scale > 1 {
		scaled := out.Scale(cfg.scale)
		defer scaled.Release()
		out = scaled
	}

	logger.Info("saving", "path", cfg.out)
	return out.SavePNG(cfg.out)
}

func loadTileset(cfg config, logger *slog.Logger) (*glyphgrid.Pixmap, error) {
	if cfg.generate || cfg.tileset == "" {
		logger.Info("generating tileset", "go_regular_size", cfg.goSize)
		var opts []tilegen.Option
		if cfg.goSize > 0 {
			opts = append(opts, tilegen.WithGoRegular(cfg.goSize))
		}
		return tilegen.Generate(opts...)
	}

	logger.Info("loading tileset", "path", cfg.tileset)
	ts, err := glyphgrid.LoadTileset(cfg.tileset)
	if err != nil {
		return nil, fmt.Errorf("load tileset %s: %w", cfg.tileset, err)
	}
	logger.Info("tileset loaded", "width", ts.Width(), "height", ts.Height())
	return ts.Pixmap, nil
}
