package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"planets/internal/scene"
)

type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// Sample reads the pointer for this frame in framebuffer pixels with a
// bottom-left origin, the space gl_FragCoord uses.
func (in *Input) Sample(window *glfw.Window, fbW, fbH int) scene.PointerSample {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	return scene.PointerSample{
		Position: CursorPixelPos(cx, cy, winW, winH, fbW, fbH),
		Clicked:  in.JustClicked(window, glfw.MouseButtonLeft),
	}
}

// CursorPixelPos converts a window-space cursor (top-left origin, screen
// coordinates) to framebuffer pixels with the y axis flipped. On HiDPI
// displays the framebuffer is larger than the window.
func CursorPixelPos(cx, cy float64, winW, winH, fbW, fbH int) mgl32.Vec2 {
	if winW <= 0 || winH <= 0 {
		return mgl32.Vec2{}
	}
	scaleX := float64(fbW) / float64(winW)
	scaleY := float64(fbH) / float64(winH)
	fx := cx * scaleX
	fy := float64(fbH) - cy*scaleY
	return mgl32.Vec2{float32(fx), float32(fy)}
}
