package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Surface identifies what a ray ended on.
type Surface int

const (
	SurfaceNone Surface = iota // background
	SurfaceMainPlanet
	SurfaceLeftPlanet
	SurfaceRightPlanet
)

func (k Surface) String() string {
	switch k {
	case SurfaceMainPlanet:
		return "main"
	case SurfaceLeftPlanet:
		return "left"
	case SurfaceRightPlanet:
		return "right"
	default:
		return "none"
	}
}

// staticHitBand is how close to the unperturbed sphere a hit point must be
// to be lit as a static planet.
const staticHitBand = 0.01

// Palette.
var (
	burstStart   = mgl32.Vec3{1.0, 0.3, 0.1}
	burstEnd     = mgl32.Vec3{0.8, 0.1, 0.8}
	staticGlow   = mgl32.Vec3{0.8, 0.5, 0.1}
	planetCool   = mgl32.Vec3{0.1, 0.3, 0.8}
	planetHot    = mgl32.Vec3{0.8, 0.4, 0.1}
	planetGlow   = mgl32.Vec3{1.0, 0.7, 0.3}
	mainLight    = mgl32.Vec3{0.8, 0.6, 0.2}
	spaceColor   = mgl32.Vec3{0.02, 0.03, 0.05}
	starColor    = mgl32.Vec3{0.8, 0.9, 1.0}
	ambientLight = float32(0.3)
	starCutoff   = float32(0.995)
)

// SurfaceAt classifies a hit point. Static planets are tested against their
// plain spheres; everything else belongs to the main planet.
func SurfaceAt(p mgl32.Vec3) Surface {
	switch {
	case sphereDistance(p, leftPlanet.center, staticPlanetRadius) < staticHitBand:
		return SurfaceLeftPlanet
	case sphereDistance(p, rightPlanet.center, staticPlanetRadius) < staticHitBand:
		return SurfaceRightPlanet
	default:
		return SurfaceMainPlanet
	}
}

// Shade returns the colour seen along the ray (ro, rd) before the
// frame-wide ambient glow is added.
func (s Shader) Shade(ro, rd mgl32.Vec3) mgl32.Vec3 {
	if s.clickActive {
		return s.shadeBurst(rd)
	}

	hit := s.MarchRay(ro, rd)
	if !hit.Hit {
		return starfield(rd)
	}

	p := ro.Add(rd.Mul(hit.Distance))
	switch SurfaceAt(p) {
	case SurfaceLeftPlanet:
		return s.shadeStatic(p, leftPlanet)
	case SurfaceRightPlanet:
		return s.shadeStatic(p, rightPlanet)
	}
	return s.shadeMain(p, s.EstimateNormal(p))
}

// shadeBurst draws the click explosion: a colour fade with sparkle that dies
// out and a ring expanding across the screen. Geometry is skipped.
func (s Shader) shadeBurst(rd mgl32.Vec3) mgl32.Vec3 {
	dir := rd.Vec2()
	particles := hash2(dir.Mul(100).Add(mgl32.Vec2{s.time, s.time})) * (1 - s.progress)
	wave := smoothstep(0.3, 0, math32.Abs(dir.Len()-s.progress*2))
	return BurstColor(s.progress).Mul(particles + wave*2)
}

// BurstColor is the base colour of the click explosion at the given progress.
func BurstColor(progress float32) mgl32.Vec3 {
	return mixVec(burstStart, burstEnd, progress)
}

// Static planets use the analytic sphere normal.
func (s Shader) shadeStatic(p mgl32.Vec3, planet staticPlanet) mgl32.Vec3 {
	n := normalize(p.Sub(planet.center))
	diff := math32.Max(n.Dot(normalize(planet.light)), 0)
	return planet.base.Mul(diff + ambientLight).Add(staticGlow.Mul(s.intensity * 0.1))
}

func (s Shader) shadeMain(p, n mgl32.Vec3) mgl32.Vec3 {
	diff := math32.Max(n.Dot(normalize(mainLight)), 0)
	return PlanetTint(s.intensity).Mul(diff + ambientLight).Add(planetGlow.Mul(MainGlow(p, s.intensity)))
}

// PlanetTint blends the main planet from cool to hot with intensity.
func PlanetTint(intensity float32) mgl32.Vec3 {
	return mixVec(planetCool, planetHot, intensity)
}

// MainGlow peaks at the main planet's radius and scales with intensity.
func MainGlow(p mgl32.Vec3, intensity float32) float32 {
	g := math32.Max(1-math32.Abs(p.Len()-mainPlanetRadius), 0)
	return g * g * intensity * 5
}

func starfield(rd mgl32.Vec3) mgl32.Vec3 {
	stars := step(starCutoff, hash2(rd.Vec2().Mul(100)))
	return mixVec(spaceColor, starColor, stars)
}
