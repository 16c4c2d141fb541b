package sound

import (
	"math"
	"testing"
)

func TestBoomRangeAndLength(t *testing.T) {
	for _, mag := range []float64{-1, 0, 0.5, 1, 3} {
		samples := Boom(mag, 42)
		norm := clamp01(mag)
		want := int((1.2 + 1.8*norm) * SampleRate)
		if len(samples) != want {
			t.Errorf("Boom(%v) length = %d, want %d", mag, len(samples), want)
		}
		peak := 0.0
		for i, s := range samples {
			if math.IsNaN(s) || s < -1 || s > 1 {
				t.Fatalf("Boom(%v) sample %d = %v out of range", mag, i, s)
			}
			peak = math.Max(peak, math.Abs(s))
		}
		if peak < 0.05 {
			t.Errorf("Boom(%v) is nearly silent (peak %v)", mag, peak)
		}
	}
}

func TestBoomDecays(t *testing.T) {
	samples := Boom(0.5, 7)
	energy := func(from, to int) float64 {
		sum := 0.0
		for _, s := range samples[from:to] {
			sum += s * s
		}
		return sum / float64(to-from)
	}
	n := len(samples)
	if head, tail := energy(0, n/10), energy(n*9/10, n); tail >= head {
		t.Errorf("tail energy %v not below head energy %v", tail, head)
	}
}

func TestBoomSeeded(t *testing.T) {
	a, b := Boom(0.3, 99), Boom(0.3, 99)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed differs at sample %d", i)
		}
	}
}

func TestDrone(t *testing.T) {
	d := NewDrone(0)
	buf := make([]float64, SampleRate/10)
	d.Fill(buf)
	for i, s := range buf {
		if math.IsNaN(s) || s < -1 || s > 1 {
			t.Fatalf("sample %d = %v out of range", i, s)
		}
	}
	if d.t <= 0 {
		t.Error("drone clock did not advance")
	}
}

func TestSoftSatBounded(t *testing.T) {
	for _, x := range []float64{-100, -2, -1, -0.5, 0, 0.5, 1, 2, 100} {
		if y := softSat(x); y < -1 || y > 1 {
			t.Errorf("softSat(%v) = %v", x, y)
		}
	}
}
