// Package term renders the scene into a true-colour terminal, two pixels per
// character cell.
package term

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"planets/internal/config"
	"planets/internal/raster"
	"planets/internal/scene"
)

// halfBlock paints the top pixel as foreground and the bottom as background.
const halfBlock = '▀'

type cellPainter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

type viewer struct {
	screen     tcell.Screen
	cols, rows int

	pointer    mgl32.Vec2
	clicked    bool
	buttonDown bool
	trigger    scene.Trigger

	audio   *audio
	workers int
}

// Run drives the terminal viewer until Escape, Ctrl-C or q is pressed or ctx
// is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	v := &viewer{screen: screen, workers: cfg.Workers}
	v.cols, v.rows = screen.Size()

	var audioErr error
	if !cfg.Mute {
		v.audio, audioErr = newAudio()
	}
	defer func() {
		v.audio.close()
		screen.Fini()
		// Printed after Fini so the message survives the screen teardown.
		if audioErr != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continued without sound): %v\n", audioErr)
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !v.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if err := v.drawFrame(ctx, float32(time.Since(start).Seconds())); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
		}
	}
}

// handleEvent applies one terminal event and reports whether to keep running.
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.cols, v.rows = v.screen.Size()
	case *tcell.EventMouse:
		x, y := ev.Position()
		v.pointerEvent(x, y, ev.Buttons()&tcell.Button1 != 0)
	}
	return true
}

// pointerEvent records the pointer and latches a press edge until the next
// frame consumes it.
func (v *viewer) pointerEvent(x, y int, down bool) {
	v.pointer = cellToPixel(x, y, v.rows)
	if down && !v.buttonDown {
		v.clicked = true
	}
	v.buttonDown = down
}

// sample hands the latched pointer state to a frame and clears the click.
func (v *viewer) sample() scene.PointerSample {
	s := scene.PointerSample{Position: v.pointer, Clicked: v.clicked}
	v.clicked = false
	return s
}

// step advances the trigger and audio for a frame at now.
func (v *viewer) step(now float32) scene.Frame {
	res := mgl32.Vec2{float32(v.cols), float32(2 * v.rows)}
	in := v.sample()

	var armed bool
	v.trigger, armed = v.trigger.Update(now, in, res)
	proximity := float64(scene.PointerProximity(res, in.Position))
	if armed {
		v.audio.boom(proximity)
	}
	if v.trigger.Active() {
		v.audio.setDroneLevel(0)
	} else {
		v.audio.setDroneLevel(proximity)
	}
	return v.trigger.Frame(now, in, res)
}

func (v *viewer) drawFrame(ctx context.Context, now float32) error {
	if v.cols <= 0 || v.rows <= 0 {
		return nil
	}
	frame := v.step(now)
	img, _, err := raster.Render(ctx, scene.Prepare(frame), v.cols, 2*v.rows, raster.Options{Workers: v.workers})
	if err != nil {
		return err
	}
	paint(v.screen, img)
	v.screen.Show()
	return nil
}

// paint copies img into half-block cells; img must be twice as tall as the
// cell grid it covers.
func paint(dst cellPainter, img *image.RGBA) {
	b := img.Bounds()
	for y := 0; y < b.Dy()/2; y++ {
		for x := 0; x < b.Dx(); x++ {
			top := img.RGBAAt(x, 2*y)
			bottom := img.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			dst.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

// cellToPixel maps a character cell to the fragment coordinate of its centre
// on a surface of 2*rows pixel rows with a bottom-left origin.
func cellToPixel(x, y, rows int) mgl32.Vec2 {
	return mgl32.Vec2{float32(x) + 0.5, float32(2*rows - 2*y - 1)}
}
