package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"planets/internal/config"
	"planets/internal/game"
	"planets/internal/raster"
	"planets/internal/scene"
	"planets/internal/term"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "planets: %v\n", err)
		os.Exit(1)
	}
}

// snapshotOptions describe the single frame rendered in snapshot mode.
type snapshotOptions struct {
	time    float32
	pointer mgl32.Vec2
	click   float32
	out     string
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	fs := flag.NewFlagSet("planets", flag.ContinueOnError)
	mode := fs.String("mode", string(cfg.Mode), "Harness: 'desktop', 'terminal' or 'snapshot'")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Window and snapshot width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Window and snapshot height in pixels")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Terminal frame rate")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "CPU render workers (0 = one per CPU)")
	fs.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Directory for snapshots")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable audio")
	snapTime := fs.Float64("time", 0, "Snapshot: elapsed time in seconds")
	pointer := fs.String("pointer", "", "Snapshot: pointer position 'x,y' in pixels from the bottom-left (default: corner)")
	click := fs.Float64("click", float64(scene.NoClick), "Snapshot: click explosion start time, negative for none")
	out := fs.String("out", "", "Snapshot: output file (default: <output>/render_<timestamp>.png)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Mode = config.Mode(strings.ToLower(*mode))
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	switch cfg.Mode {
	case config.ModeDesktop:
		return game.RunDesktop(cfg)
	case config.ModeTerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return term.Run(ctx, cfg)
	}

	opts := snapshotOptions{time: float32(*snapTime), click: float32(*click), out: *out}
	if opts.click < 0 {
		opts.click = scene.NoClick
	}
	if *pointer != "" {
		if opts.pointer, err = parsePointer(*pointer); err != nil {
			return err
		}
	}
	return renderSnapshot(context.Background(), cfg, opts)
}

// parsePointer reads "x,y".
func parsePointer(s string) (mgl32.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return mgl32.Vec2{}, fmt.Errorf("pointer %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return mgl32.Vec2{}, fmt.Errorf("pointer %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return mgl32.Vec2{}, fmt.Errorf("pointer %q: %w", s, err)
	}
	return mgl32.Vec2{float32(x), float32(y)}, nil
}

func renderSnapshot(ctx context.Context, cfg *config.Config, opts snapshotOptions) error {
	frame := scene.Frame{
		Resolution: mgl32.Vec2{float32(cfg.Width), float32(cfg.Height)},
		Time:       opts.time,
		Pointer:    opts.pointer,
		ClickTime:  opts.click,
	}

	img, stats, err := raster.Render(ctx, scene.Prepare(frame), cfg.Width, cfg.Height, raster.Options{Workers: cfg.Workers})
	if err != nil {
		return err
	}
	fmt.Printf("Render completed in %v (%d tiles, %d workers)\n", stats.Elapsed.Round(time.Millisecond), stats.Tiles, stats.Workers)

	path := opts.out
	if path == "" {
		path = raster.SnapshotPath(cfg.OutputDir, time.Now())
	}
	if err := raster.WritePNG(path, img); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", path)
	return nil
}
