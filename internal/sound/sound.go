// Package sound synthesizes the scene's procedural audio as mono samples in
// [-1,1]. Playback backends encode and stream them.
package sound

import "math"

// SampleRate is the rate every generator in this package assumes.
const SampleRate = 44100

// softSat applies gentle tanh-like saturation, no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Boom renders a planet explosion. magnitude in [0,1] makes it deeper,
// longer and rumblier; seed varies the noise between plays.
func Boom(magnitude float64, seed uint64) []float64 {
	norm := clamp01(magnitude)
	dur := 1.2 + 1.8*norm
	n := int(dur * SampleRate)
	out := make([]float64, n)

	lp1, lp2 := 0.0, 0.0 // two lowpasses for bandpass body
	rumLP := 0.0
	subPhase := 0.0
	subStart := 140.0 - 70.0*norm
	subEnd := math.Max(28.0-14.0*norm, 10)
	crackWin := math.Max(0.03-0.02*norm, 0.01)

	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)

		// Sub boom sweeping down.
		subFreq := subStart * math.Pow(subEnd/subStart, p*(1.4+1.2*norm))
		subPhase += 2 * math.Pi * subFreq / SampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*(5.5-2.5*norm)) * (0.45 + 0.3*norm)

		// Transient crack.
		crack := 0.0
		if p < crackWin {
			crack = lcg(&seed) * (1 - p/crackWin) * 0.8
		}

		// Bandpassed body.
		raw := lcg(&seed)
		lp1 = lp1*0.76 + raw*0.24
		lp2 = lp2*0.975 + raw*0.025
		body := (lp1 - lp2) * math.Exp(-p*(4.5-1.5*norm)) * (0.3 + 0.15*norm)

		// Long debris rumble.
		rumLP = rumLP*0.95 + lcg(&seed)*0.05
		rumble := rumLP * math.Exp(-p*(2.2-1.0*norm)) * (0.1 + 0.25*norm)

		out[i] = softSat((sub + crack + body + rumble) * 0.86)
	}
	return out
}

// Drone is an endless low hum, the sound of the main planet under strain.
// It is not safe for concurrent use.
type Drone struct {
	t    float64
	seed uint64
	lp   float64
}

// NewDrone returns a drone generator.
func NewDrone(seed uint64) *Drone {
	if seed == 0 {
		seed = 1
	}
	return &Drone{seed: seed}
}

// Next returns the next sample.
func (d *Drone) Next() float64 {
	t := d.t
	d.t += 1.0 / SampleRate

	wobble := 0.5 + 0.5*math.Sin(2*math.Pi*0.25*t)
	s := math.Sin(2*math.Pi*55*t) * 0.35
	s += math.Sin(2*math.Pi*82.5*t+wobble) * 0.18
	s += math.Sin(2*math.Pi*110.7*t) * 0.08 * wobble
	d.lp = d.lp*0.97 + lcg(&d.seed)*0.03
	s += d.lp * 0.4
	return softSat(s)
}

// Fill writes len(buf) consecutive samples.
func (d *Drone) Fill(buf []float64) {
	for i := range buf {
		buf[i] = d.Next()
	}
}
