package game

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"planets/internal/scene"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws the planet shader over the whole framebuffer.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uResolution int32
	uTime       int32
	uMouse      int32
	uClickTime  int32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram("planet", quadVertSrc, planetFragSrc)
	if err != nil {
		return nil, err
	}

	r := &Renderer{prog: prog}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.UseProgram(prog)
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.uTime = gl.GetUniformLocation(prog, gl.Str("uTime\x00"))
	r.uMouse = gl.GetUniformLocation(prog, gl.Str("uMouse\x00"))
	r.uClickTime = gl.GetUniformLocation(prog, gl.Str("uClickTime\x00"))
	gl.Uniform1f(r.uClickTime, scene.NoClick)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// Draw renders one frame. Pointer and resolution are in framebuffer pixels.
func (r *Renderer) Draw(f scene.Frame, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)

	gl.Uniform2f(r.uResolution, f.Resolution.X(), f.Resolution.Y())
	gl.Uniform1f(r.uTime, f.Time)
	gl.Uniform2f(r.uMouse, f.Pointer.X(), f.Pointer.Y())
	gl.Uniform1f(r.uClickTime, f.ClickTime)

	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, int32(len(quadVerts)/2))
	gl.BindVertexArray(0)
}
