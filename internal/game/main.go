package game

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"planets/internal/config"
	"planets/internal/scene"
)

// RunDesktop opens a window and renders the scene on the GPU until the
// window is closed or Escape is pressed.
func RunDesktop(cfg *config.Config) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	var audio *AudioSystem
	if !cfg.Mute {
		a, err := NewAudio()
		if err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		} else {
			audio = a
			defer audio.Close()
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0, 0, 0, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	input := NewInput()
	var trigger scene.Trigger
	var snapshotBusy atomic.Bool

	start := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		now := float32(glfw.GetTime() - start)
		res := mgl32.Vec2{float32(fbW), float32(fbH)}
		sample := input.Sample(window, fbW, fbH)

		var armed bool
		trigger, armed = trigger.Update(now, sample, res)
		proximity := float64(scene.PointerProximity(res, sample.Position))
		if armed {
			audio.PlayBoom(proximity)
		}
		if trigger.Active() {
			audio.SetDroneLevel(0)
		} else {
			audio.SetDroneLevel(proximity)
		}

		frame := trigger.Frame(now, sample, res)

		if input.JustPressed(window, glfw.KeyF12) && snapshotBusy.CompareAndSwap(false, true) {
			go func(f scene.Frame) {
				defer snapshotBusy.Store(false)
				if _, err := SaveSnapshot(context.Background(), f, cfg.OutputDir, cfg.Workers); err != nil {
					fmt.Fprintf(os.Stderr, "%v\n", err)
				}
			}(frame)
		}

		rend.Draw(frame, fbW, fbH)
		window.SwapBuffers()
	}
	return nil
}
