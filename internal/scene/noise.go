package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// lattice is the per-corner pseudo random value of valueNoise.
func lattice(a float32) float32 { return math32.Sin(math32.Cos(a) * a) }

// valueNoise is a trig-based 3D value noise. Corner values come from
// lattice() instead of a hash table and are blended with a cosine fade,
// so the result is continuous and depends only on p.
func valueNoise(p mgl32.Vec3) float32 {
	i := mgl32.Vec3{math32.Floor(p[0]), math32.Floor(p[1]), math32.Floor(p[2])}
	base := i.Dot(mgl32.Vec3{1, 57, 21})
	a := [4]float32{base, base + 57, base + 21, base + 78}

	var f [3]float32
	for k := range f {
		f[k] = math32.Cos((p[k]-i[k])*math32.Pi)*-0.5 + 0.5
	}

	for k := range a {
		a[k] = mix(lattice(a[k]), lattice(a[k]+1), f[0])
	}
	x := mix(a[0], a[1], f[1])
	y := mix(a[2], a[3], f[1])
	return mix(x, y, f[2])
}

// hash2 returns a pseudo random value in [0,1) for a 2D coordinate.
func hash2(co mgl32.Vec2) float32 {
	return fract(math32.Sin(co.Dot(mgl32.Vec2{12.9898, 78.233})) * 43758.5453)
}
