package game

import (
	"context"
	"fmt"
	"time"

	"planets/internal/raster"
	"planets/internal/scene"
)

// SaveSnapshot renders f on the CPU at its own resolution and writes a
// timestamped PNG into dir. It returns the path written.
func SaveSnapshot(ctx context.Context, f scene.Frame, dir string, workers int) (string, error) {
	w, h := int(f.Resolution.X()), int(f.Resolution.Y())
	img, stats, err := raster.Render(ctx, scene.Prepare(f), w, h, raster.Options{Workers: workers})
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	path := raster.SnapshotPath(dir, time.Now())
	if err := raster.WritePNG(path, img); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	fmt.Printf("snapshot %s: %dx%d, %d tiles on %d workers in %v\n",
		path, w, h, stats.Tiles, stats.Workers, stats.Elapsed.Round(time.Millisecond))
	return path, nil
}
