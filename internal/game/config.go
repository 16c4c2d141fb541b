package game

// Window.
const WindowTitle = "Planets"

// Audio mix.
const (
	MaxActiveBooms = 2 // more than two overlapping booms clip the speakers
	BoomVolume     = 0.8
	DroneVolume    = 0.5
)

// Full-screen quad as a triangle strip, clip-space xy.
var quadVerts = [8]float32{
	-1, -1,
	1, -1,
	-1, 1,
	1, 1,
}
