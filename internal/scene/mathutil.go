package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func fract(x float32) float32 { return x - math32.Floor(x) }

// mix is GLSL mix: a*(1-t) + b*t.
func mix(a, b, t float32) float32 { return a*(1-t) + b*t }

func mixVec(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func step(edge, x float32) float32 {
	if x < edge {
		return 0
	}
	return 1
}

// smoothstep follows GLSL, including reversed edges (e0 > e1).
func smoothstep(e0, e1, x float32) float32 {
	t := clampF((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}

// normalize returns v unchanged when it has zero length.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

func splat(v float32) mgl32.Vec3 { return mgl32.Vec3{v, v, v} }
