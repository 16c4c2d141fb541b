// Package scene evaluates the exploding planet system one pixel at a time.
//
// A Frame holds everything that changes between frames. Prepare derives the
// per-frame values once (pointer proximity, explosion intensity, click
// progress) and returns a Shader, an immutable value whose Color method may
// be called for any number of pixels from any number of goroutines.
package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// NoClick is the click timestamp of a frame without an active click explosion.
const NoClick float32 = -1

// Frame is the input supplied by a harness for one displayed frame.
type Frame struct {
	Resolution mgl32.Vec2 // viewport size in pixels
	Time       float32    // seconds since start
	Pointer    mgl32.Vec2 // last pointer position in pixels
	ClickTime  float32    // explosion start in seconds, or NoClick
}

// Shader is a prepared frame. The zero value renders nothing useful; use Prepare.
type Shader struct {
	resolution  mgl32.Vec2
	time        float32
	proximity   float32
	intensity   float32
	progress    float32
	clickActive bool
}

// Prepare computes the per-frame derived values.
func Prepare(f Frame) Shader {
	proximity := PointerProximity(f.Resolution, f.Pointer)
	return Shader{
		resolution:  f.Resolution,
		time:        f.Time,
		proximity:   proximity,
		intensity:   proximity * proximity * proximity,
		progress:    ClickProgress(f.ClickTime, f.Time),
		clickActive: ClickActive(f.ClickTime, f.Time),
	}
}

// Time is the frame time in seconds.
func (s Shader) Time() float32 { return s.time }

// Proximity is the linear pointer closeness to the viewport centre in [0,1].
// It scales the frame-wide ambient glow.
func (s Shader) Proximity() float32 { return s.proximity }

// Intensity is Proximity cubed; it drives the planet distortion and tint.
func (s Shader) Intensity() float32 { return s.intensity }

// Progress is the click explosion's progress in [0,1].
func (s Shader) Progress() float32 { return s.progress }

// ClickActive reports whether this frame renders the click explosion.
func (s Shader) ClickActive() bool { return s.clickActive }

// PointerProximity is 1 with the pointer at the viewport centre and falls
// linearly to 0 at the half diagonal.
func PointerProximity(resolution, pointer mgl32.Vec2) float32 {
	center := resolution.Mul(0.5)
	radius := center.Len()
	if radius == 0 {
		return 0
	}
	d := pointer.Sub(center).Len() / radius
	return 1 - clampF(d, 0, 1)
}

// ExplosionIntensity is the cubed pointer proximity, in [0,1].
func ExplosionIntensity(resolution, pointer mgl32.Vec2) float32 {
	p := PointerProximity(resolution, pointer)
	return p * p * p
}

// ClickActive reports whether a click explosion started at clickTime is
// still playing at now.
func ClickActive(clickTime, now float32) bool {
	if clickTime < 0 {
		return false
	}
	elapsed := now - clickTime
	return elapsed >= 0 && elapsed <= ExplosionDuration
}

// ClickProgress maps time since the click onto [0,1] over ExplosionDuration.
func ClickProgress(clickTime, now float32) float32 {
	if clickTime < 0 {
		return 0
	}
	return clampF((now-clickTime)/ExplosionDuration, 0, 1)
}

var (
	cameraOrigin     = mgl32.Vec3{0, 0, 5}
	ambientGlowColor = mgl32.Vec3{0.8, 0.5, 0.2}
)

// UV maps a fragment coordinate to the square-normalized screen plane,
// with the shorter viewport axis spanning [-1,1].
func (s Shader) UV(frag mgl32.Vec2) mgl32.Vec2 {
	short := math32.Min(s.resolution[0], s.resolution[1])
	if short <= 0 {
		return mgl32.Vec2{}
	}
	return frag.Mul(2).Sub(s.resolution).Mul(1 / short)
}

// Color returns the RGB colour of the pixel at frag. frag has its origin at
// the bottom-left corner with pixel centres at +0.5.
func (s Shader) Color(frag mgl32.Vec2) mgl32.Vec3 {
	uv := s.UV(frag)
	rd := normalize(mgl32.Vec3{uv[0], uv[1], -1})

	col := s.Shade(cameraOrigin, rd)
	if !s.clickActive {
		col = col.Add(ambientGlowColor.Mul(s.proximity * 0.3 * (1 - uv.Dot(uv))))
	}
	return col
}
