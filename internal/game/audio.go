package game

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"planets/internal/sound"
)

const (
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// AudioSystem plays the explosion booms and the proximity drone.
// A nil *AudioSystem is valid and silent.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}

	droneOnce   sync.Once
	dronePlayer oto.Player

	activeBooms int32
	boomCounter uint64
}

// NewAudio opens the output device. The context becomes usable once ready
// is closed; until then every call is a no-op.
func NewAudio() (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(sound.SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &AudioSystem{ctx: ctx, ready: ready}, nil
}

func (a *AudioSystem) isReady() bool {
	if a == nil {
		return false
	}
	select {
	case <-a.ready:
		return true
	default:
		return false
	}
}

// PlayBoom plays one explosion. magnitude in [0,1] scales its depth and
// length.
func (a *AudioSystem) PlayBoom(magnitude float64) {
	if !a.isReady() {
		return
	}
	if atomic.LoadInt32(&a.activeBooms) >= MaxActiveBooms {
		return
	}
	atomic.AddInt32(&a.activeBooms, 1)

	seed := splitmix64(atomic.AddUint64(&a.boomCounter, 1) ^ uint64(time.Now().UnixNano()))
	data := encodeStereoF32(sound.Boom(magnitude, seed))
	go func() {
		defer atomic.AddInt32(&a.activeBooms, -1)
		player := a.ctx.NewPlayer(&soundReader{data: data})
		player.SetVolume(BoomVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// SetDroneLevel starts the drone on first use and sets its loudness in [0,1].
func (a *AudioSystem) SetDroneLevel(level float64) {
	if !a.isReady() {
		return
	}
	a.droneOnce.Do(func() {
		a.dronePlayer = a.ctx.NewPlayer(&droneReader{drone: sound.NewDrone(uint64(time.Now().UnixNano()))})
		a.dronePlayer.SetVolume(0)
		a.dronePlayer.Play()
	})
	a.dronePlayer.SetVolume(DroneVolume * clampF(level, 0, 1))
}

// Close stops the drone. Booms in flight finish on their own.
func (a *AudioSystem) Close() {
	if a == nil || a.dronePlayer == nil {
		return
	}
	a.dronePlayer.Pause()
	a.dronePlayer.Close()
}

// soundReader serves a pre-rendered buffer once.
type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// droneReader streams the endless drone, whole stereo frames at a time.
type droneReader struct {
	drone *sound.Drone
	buf   []float64
}

func (r *droneReader) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	if cap(r.buf) < frames {
		r.buf = make([]float64, frames)
	}
	r.buf = r.buf[:frames]
	r.drone.Fill(r.buf)
	for i, s := range r.buf {
		putStereoF32(p, i, s)
	}
	return frames * 8, nil
}

// encodeStereoF32 duplicates mono samples into interleaved float32 LE frames.
func encodeStereoF32(samples []float64) []byte {
	buf := make([]byte, len(samples)*8)
	for i, s := range samples {
		putStereoF32(buf, i, s)
	}
	return buf
}

func putStereoF32(buf []byte, i int, sample float64) {
	bits := math.Float32bits(float32(clampF(sample, -1, 1)))
	binary.LittleEndian.PutUint32(buf[i*8:], bits)
	binary.LittleEndian.PutUint32(buf[i*8+4:], bits)
}
