package term

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"planets/internal/sound"
)

const (
	maxActiveBooms = 2
	boomGain       = 0.8
	droneGain      = 0.5
	// Drone levels below this are muted rather than attenuated.
	droneFloor = 0.01
)

// audio plays the scene through the default speaker. A nil *audio is silent.
type audio struct {
	mixer *beep.Mixer
	drone *effects.Volume

	activeBooms int32
	boomCounter uint64
}

func newAudio() (*audio, error) {
	sr := beep.SampleRate(sound.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, err
	}
	a := &audio{mixer: &beep.Mixer{}}
	a.drone = &effects.Volume{
		Streamer: droneStreamer(sound.NewDrone(uint64(time.Now().UnixNano()))),
		Base:     2,
		Silent:   true,
	}
	a.mixer.Add(a.drone)
	speaker.Play(a.mixer)
	return a, nil
}

func (a *audio) boom(magnitude float64) {
	if a == nil || atomic.LoadInt32(&a.activeBooms) >= maxActiveBooms {
		return
	}
	atomic.AddInt32(&a.activeBooms, 1)
	seed := atomic.AddUint64(&a.boomCounter, 1) ^ uint64(time.Now().UnixNano())
	s := beep.Seq(
		&effects.Volume{Streamer: samplesStreamer(sound.Boom(magnitude, seed)), Base: 2, Volume: math.Log2(boomGain)},
		beep.Callback(func() { atomic.AddInt32(&a.activeBooms, -1) }),
	)
	speaker.Lock()
	a.mixer.Add(s)
	speaker.Unlock()
}

// setDroneLevel sets the drone loudness in [0,1].
func (a *audio) setDroneLevel(level float64) {
	if a == nil {
		return
	}
	silent, volume := droneVolume(level)
	speaker.Lock()
	a.drone.Silent = silent
	a.drone.Volume = volume
	speaker.Unlock()
}

func (a *audio) close() {
	if a == nil {
		return
	}
	speaker.Lock()
	a.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// droneVolume maps a linear level to effects.Volume settings with base 2.
func droneVolume(level float64) (silent bool, volume float64) {
	if level < droneFloor {
		return true, 0
	}
	return false, math.Log2(math.Min(level, 1) * droneGain)
}

// samplesStreamer plays mono samples once on both channels.
func samplesStreamer(samples []float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(buf [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := copy2(buf, samples[pos:])
		pos += n
		return n, true
	})
}

func droneStreamer(d *sound.Drone) beep.Streamer {
	return beep.StreamerFunc(func(buf [][2]float64) (int, bool) {
		for i := range buf {
			s := d.Next()
			buf[i] = [2]float64{s, s}
		}
		return len(buf), true
	})
}

func copy2(dst [][2]float64, src []float64) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = [2]float64{src[i], src[i]}
	}
	return n
}
