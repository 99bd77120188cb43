package scene

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/glyphgrid"
)

// Load builds a grid from a scene file chosen by extension:
//
//   - ".json": LoadJSON, width and height are defaults for the file
//   - ".lua": RunLua on a new width x height grid
//
// An empty path yields the demo scene on a width x height grid.
func Load(ctx context.Context, path string, width, height int) (*glyphgrid.Grid, error) {
	if path == "" {
		grid := glyphgrid.NewGrid(width, height)
		Demo(grid)
		return grid, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("scene: read file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return LoadJSON(data, width, height)
	case ".lua":
		grid := glyphgrid.NewGrid(width, height)
		if err := RunLua(ctx, grid, string(data), filepath.Base(path)); err != nil {
			return nil, err
		}
		return grid, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
