package raster

import (
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"planets/internal/scene"
)

// gradientShader encodes the fragment coordinate into red and green.
type gradientShader struct{ w, h float32 }

func (g gradientShader) Color(frag mgl32.Vec2) mgl32.Vec3 {
	return mgl32.Vec3{frag[0] / g.w, frag[1] / g.h, 0}
}

func TestSplitTilesCoverSurface(t *testing.T) {
	tests := []struct {
		w, h, size int
		wantTiles  int
	}{
		{64, 64, 32, 4},
		{65, 33, 32, 6},
		{10, 7, 32, 1},
		{100, 40, 0, 8},
	}
	for _, tt := range tests {
		tiles := SplitTiles(tt.w, tt.h, tt.size)
		if len(tiles) != tt.wantTiles {
			t.Errorf("SplitTiles(%d,%d,%d) = %d tiles, want %d", tt.w, tt.h, tt.size, len(tiles), tt.wantTiles)
		}
		covered := make([]int, tt.w*tt.h)
		for i, tile := range tiles {
			if tile.ID != i {
				t.Errorf("tile %d has ID %d", i, tile.ID)
			}
			for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
				for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
					covered[y*tt.w+x]++
				}
			}
		}
		for i, n := range covered {
			if n != 1 {
				t.Fatalf("%dx%d: pixel %d covered %d times", tt.w, tt.h, i, n)
			}
		}
	}
	if SplitTiles(0, 10, 8) != nil {
		t.Error("empty surface should have no tiles")
	}
}

func TestRenderOrientation(t *testing.T) {
	const w, h = 8, 4
	img, stats, err := Render(context.Background(), gradientShader{w, h}, w, h, Options{TileSize: 2, Workers: 3})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Pixels != w*h || stats.Tiles != 8 {
		t.Errorf("stats = %+v", stats)
	}
	top, bottom := img.RGBAAt(0, 0), img.RGBAAt(0, h-1)
	if top.G <= bottom.G {
		t.Errorf("row 0 should be the top of the frame: top G=%d bottom G=%d", top.G, bottom.G)
	}
	left, right := img.RGBAAt(0, 0), img.RGBAAt(w-1, 0)
	if left.R >= right.R {
		t.Errorf("x should grow to the right: left R=%d right R=%d", left.R, right.R)
	}
	if want := ToRGBA(mgl32.Vec3{0.5 / w, 3.5 / h, 0}); top != want {
		t.Errorf("top-left = %v, want %v", top, want)
	}
}

func TestRenderDeterministicAcrossWorkers(t *testing.T) {
	const w, h = 48, 36
	sh := scene.Prepare(scene.Frame{
		Resolution: mgl32.Vec2{w, h},
		Time:       1.25,
		Pointer:    mgl32.Vec2{20, 15},
		ClickTime:  scene.NoClick,
	})
	one, _, err := Render(context.Background(), sh, w, h, Options{Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	many, stats, err := Render(context.Background(), sh, w, h, Options{Workers: 4, TileSize: 8})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Workers != 4 {
		t.Errorf("workers = %d, want 4", stats.Workers)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if one.RGBAAt(x, y) != many.RGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) differs: %v vs %v", x, y, one.RGBAAt(x, y), many.RGBAAt(x, y))
			}
		}
	}
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := Render(ctx, gradientShader{4, 4}, 64, 64, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRenderInvalidSize(t *testing.T) {
	if _, _, err := Render(context.Background(), gradientShader{1, 1}, 0, 10, Options{}); err == nil {
		t.Error("expected an error for zero width")
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		in   mgl32.Vec3
		want [3]uint8
	}{
		{mgl32.Vec3{0, 0, 0}, [3]uint8{0, 0, 0}},
		{mgl32.Vec3{1, 1, 1}, [3]uint8{255, 255, 255}},
		{mgl32.Vec3{-0.5, 2, 0.5}, [3]uint8{0, 255, 128}},
	}
	for _, tt := range tests {
		got := ToRGBA(tt.in)
		if got.R != tt.want[0] || got.G != tt.want[1] || got.B != tt.want[2] || got.A != 255 {
			t.Errorf("ToRGBA(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	dir := t.TempDir()
	path := SnapshotPath(filepath.Join(dir, "nested"), time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	if filepath.Base(path) != "render_20260102_030405.png" {
		t.Errorf("snapshot name = %s", filepath.Base(path))
	}

	img := image.NewRGBA(image.Rect(0, 0, 5, 3))
	if err := WritePNG(path, img); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds().Dx() != 5 || decoded.Bounds().Dy() != 3 {
		t.Errorf("decoded bounds = %v", decoded.Bounds())
	}
}
