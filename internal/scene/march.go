package scene

import "github.com/go-gl/mathgl/mgl32"

// Sphere tracing limits. MaxMarchSteps is the hard bound on work per ray.
const (
	MaxMarchSteps = 100
	HitEpsilon    = 0.001
	MaxDistance   = 50.0
	normalEpsilon = 0.001
)

// RayHit is the outcome of MarchRay.
type RayHit struct {
	Distance float32 // accumulated distance along the ray
	Steps    int     // distance evaluations that advanced the ray
	Hit      bool    // Distance stayed below MaxDistance
}

// MarchRay sphere-traces from ro along the unit direction rd.
// A ray that runs out of steps before MaxDistance still counts as a hit.
func (s Shader) MarchRay(ro, rd mgl32.Vec3) RayHit {
	var t float32
	steps := 0
	for ; steps < MaxMarchSteps; steps++ {
		d := s.SceneDistance(ro.Add(rd.Mul(t)))
		if d < HitEpsilon || t > MaxDistance {
			break
		}
		t += d
	}
	return RayHit{Distance: t, Steps: steps, Hit: t < MaxDistance}
}

// EstimateNormal is the normalized central-difference gradient of SceneDistance.
func (s Shader) EstimateNormal(p mgl32.Vec3) mgl32.Vec3 {
	ex := mgl32.Vec3{normalEpsilon, 0, 0}
	ey := mgl32.Vec3{0, normalEpsilon, 0}
	ez := mgl32.Vec3{0, 0, normalEpsilon}
	return normalize(mgl32.Vec3{
		s.SceneDistance(p.Add(ex)) - s.SceneDistance(p.Sub(ex)),
		s.SceneDistance(p.Add(ey)) - s.SceneDistance(p.Sub(ey)),
		s.SceneDistance(p.Add(ez)) - s.SceneDistance(p.Sub(ez)),
	})
}
