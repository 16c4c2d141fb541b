package scene

import "github.com/go-gl/mathgl/mgl32"

const (
	// ExplosionDuration is how long a click explosion plays, in seconds.
	ExplosionDuration float32 = 3
	// TriggerRadius is the distance from the viewport centre, in pixels,
	// inside which a click arms the explosion.
	TriggerRadius float32 = 100
)

// PointerSample is the latest pointer state handed to a frame.
type PointerSample struct {
	Position mgl32.Vec2 // pixels
	Clicked  bool       // primary button went down since the previous sample
}

// Trigger holds the optional explosion start time. Transitions return a new
// value; the frame loop owns the current one.
type Trigger struct {
	start float32
	armed bool
}

// Active reports whether an explosion has been armed and not yet expired.
func (t Trigger) Active() bool { return t.armed }

// ClickTime is the armed start time, or NoClick.
func (t Trigger) ClickTime() float32 {
	if !t.armed {
		return NoClick
	}
	return t.start
}

// Arm starts an explosion at now if none is playing and the pointer is
// within TriggerRadius of the viewport centre.
func (t Trigger) Arm(now float32, pointer, resolution mgl32.Vec2) Trigger {
	if t.armed {
		return t
	}
	if pointer.Sub(resolution.Mul(0.5)).Len() >= TriggerRadius {
		return t
	}
	return Trigger{start: now, armed: true}
}

// Expire clears the explosion once more than ExplosionDuration has passed.
func (t Trigger) Expire(now float32) Trigger {
	if t.armed && now-t.start > ExplosionDuration {
		return Trigger{}
	}
	return t
}

// Update applies one frame of input: expire first, then arm on click.
// armed reports whether this sample started a new explosion.
func (t Trigger) Update(now float32, in PointerSample, resolution mgl32.Vec2) (next Trigger, armed bool) {
	next = t.Expire(now)
	if !in.Clicked || next.armed {
		return next, false
	}
	next = next.Arm(now, in.Position, resolution)
	return next, next.armed
}

// Frame assembles the shader input for one frame.
func (t Trigger) Frame(now float32, in PointerSample, resolution mgl32.Vec2) Frame {
	return Frame{
		Resolution: resolution,
		Time:       now,
		Pointer:    in.Position,
		ClickTime:  t.ClickTime(),
	}
}
