package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// SnapshotPath returns dir/render_<timestamp>.png.
func SnapshotPath(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

// WritePNG encodes img to path, creating the parent directory.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}
