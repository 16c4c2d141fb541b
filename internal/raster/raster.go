// Package raster evaluates a pixel shader over a whole surface on the CPU.
package raster

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"runtime"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// PixelShader returns the colour of the pixel at frag, where frag has its
// origin at the bottom-left corner and pixel centres at +0.5.
type PixelShader interface {
	Color(frag mgl32.Vec2) mgl32.Vec3
}

// Options control a Render call. Zero values pick defaults.
type Options struct {
	TileSize int
	Workers  int
}

// Stats describe a finished render.
type Stats struct {
	Tiles   int
	Pixels  int
	Workers int
	Elapsed time.Duration
}

// Render evaluates sh for every pixel of a width x height image. Tiles are
// handed to a pool of workers; each worker writes only the pixels of its own
// tile. Image row 0 is the top of the frame.
func Render(ctx context.Context, sh PixelShader, width, height int, opts Options) (*image.RGBA, Stats, error) {
	if width <= 0 || height <= 0 {
		return nil, Stats{}, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	start := time.Now()

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	tiles := SplitTiles(width, height, opts.TileSize)
	workers = min(workers, len(tiles))

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	taskQueue := make(chan Tile, len(tiles))
	for _, t := range tiles {
		taskQueue <- t
	}
	close(taskQueue)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range taskQueue {
				if ctx.Err() != nil {
					return
				}
				renderTile(sh, img, t.Bounds, height)
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, Stats{}, fmt.Errorf("raster: %w", err)
	}
	return img, Stats{
		Tiles:   len(tiles),
		Pixels:  width * height,
		Workers: workers,
		Elapsed: time.Since(start),
	}, nil
}

func renderTile(sh PixelShader, img *image.RGBA, bounds image.Rectangle, height int) {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		fragY := float32(height-y) - 0.5
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x, y, ToRGBA(sh.Color(mgl32.Vec2{float32(x) + 0.5, fragY})))
		}
	}
}

// ToRGBA clamps a linear colour to [0,1] and converts it to opaque 8-bit RGBA.
func ToRGBA(c mgl32.Vec3) color.RGBA {
	return color.RGBA{R: toByte(c[0]), G: toByte(c[1]), B: toByte(c[2]), A: 255}
}

func toByte(v float32) uint8 {
	if v != v || v <= 0 { // NaN or negative
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
