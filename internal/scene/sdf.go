package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	mainPlanetRadius   = 1.0
	staticPlanetRadius = 0.4
	spinRate           = 0.3 // rad/s about X
)

type staticPlanet struct {
	center mgl32.Vec3
	light  mgl32.Vec3
	base   mgl32.Vec3
}

var (
	leftPlanet = staticPlanet{
		center: mgl32.Vec3{-5, 1, -2},
		light:  mgl32.Vec3{0.8, 0.6, 0.1},
		base:   mgl32.Vec3{0.5, 0.5, 0.5},
	}
	rightPlanet = staticPlanet{
		center: mgl32.Vec3{-4, -4, -7},
		light:  mgl32.Vec3{0.8, 0.6, 0.2},
		base:   mgl32.Vec3{0.4, 0.7, 0.7},
	}
)

func sphereDistance(p, center mgl32.Vec3, r float32) float32 {
	return p.Sub(center).Len() - r
}

// spin turns p about the X axis. The y/z update is kept in this exact form;
// the planet's look depends on it.
func spin(p mgl32.Vec3, angle float32) mgl32.Vec3 {
	s, c := math32.Sincos(angle)
	return mgl32.Vec3{
		p[0],
		c*p[1] + s*p[2],
		c*p[2] - s*p[1],
	}
}

// MainPlanetDistance is the distance to the spinning central planet,
// including the noise and crack distortion while intensity is positive.
func (s Shader) MainPlanetDistance(p mgl32.Vec3) float32 {
	pr := spin(p, s.time*spinRate)
	r := pr.Len()
	d := r - mainPlanetRadius
	if s.intensity > 0 {
		d += valueNoise(pr.Mul(10).Add(splat(s.time*2))) * 0.9 * s.intensity
		d += math32.Sin(30*r+s.time*5) * math32.Pow(s.intensity, 5) * 1.4
	}
	return d
}

// LeftPlanetDistance is the distance to the small planet at (-5, 1, -2).
func (s Shader) LeftPlanetDistance(p mgl32.Vec3) float32 {
	return s.staticPlanetDistance(p, leftPlanet.center)
}

// RightPlanetDistance is the distance to the small planet at (-4, -4, -7).
func (s Shader) RightPlanetDistance(p mgl32.Vec3) float32 {
	return s.staticPlanetDistance(p, rightPlanet.center)
}

// The crack term uses |p| from the origin, not from the planet centre.
func (s Shader) staticPlanetDistance(p, center mgl32.Vec3) float32 {
	d := sphereDistance(p, center, staticPlanetRadius)
	if s.intensity > 0 {
		d += valueNoise(p.Mul(10).Add(splat(s.time*2))) * 0.3 * s.intensity
		d += math32.Sin(30*p.Len()+s.time) * s.intensity * s.intensity * 0.1
	}
	return d
}

// SceneDistance is the union of the three planets.
func (s Shader) SceneDistance(p mgl32.Vec3) float32 {
	return min(s.MainPlanetDistance(p), s.LeftPlanetDistance(p), s.RightPlanetDistance(p))
}
