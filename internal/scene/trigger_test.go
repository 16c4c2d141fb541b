package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTriggerArm(t *testing.T) {
	res := mgl32.Vec2{800, 600}
	tests := []struct {
		name    string
		pointer mgl32.Vec2
		want    bool
	}{
		{"centre", mgl32.Vec2{400, 300}, true},
		{"inside radius", mgl32.Vec2{460, 360}, true},
		{"on radius", mgl32.Vec2{500, 300}, false},
		{"far", mgl32.Vec2{10, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Trigger{}.Arm(1, tt.pointer, res)
			if got.Active() != tt.want {
				t.Errorf("Active() = %v, want %v", got.Active(), tt.want)
			}
			if tt.want && got.ClickTime() != 1 {
				t.Errorf("ClickTime() = %f, want 1", got.ClickTime())
			}
			if !tt.want && got.ClickTime() != NoClick {
				t.Errorf("ClickTime() = %f, want NoClick", got.ClickTime())
			}
		})
	}
}

func TestTriggerIgnoresRearm(t *testing.T) {
	res := mgl32.Vec2{800, 600}
	center := mgl32.Vec2{400, 300}
	trig := Trigger{}.Arm(2, center, res)
	again := trig.Arm(3, center, res)
	if again.ClickTime() != 2 {
		t.Errorf("re-arm moved start to %f", again.ClickTime())
	}
}

func TestTriggerExpire(t *testing.T) {
	res := mgl32.Vec2{800, 600}
	trig := Trigger{}.Arm(2, mgl32.Vec2{400, 300}, res)

	if !trig.Expire(2 + ExplosionDuration).Active() {
		t.Error("expired at exactly the duration")
	}
	if trig.Expire(2 + 3.1).Active() {
		t.Error("still active after the duration")
	}
	if (Trigger{}).Expire(100).Active() {
		t.Error("idle trigger became active")
	}
}

func TestTriggerUpdate(t *testing.T) {
	res := mgl32.Vec2{800, 600}
	click := PointerSample{Position: mgl32.Vec2{400, 300}, Clicked: true}
	move := PointerSample{Position: mgl32.Vec2{400, 300}}

	trig, armed := Trigger{}.Update(1, move, res)
	if armed || trig.Active() {
		t.Fatal("armed without a click")
	}
	trig, armed = trig.Update(1, click, res)
	if !armed || trig.ClickTime() != 1 {
		t.Fatalf("click did not arm: armed=%v start=%f", armed, trig.ClickTime())
	}
	trig, armed = trig.Update(2, click, res)
	if armed || trig.ClickTime() != 1 {
		t.Fatalf("click while active re-armed: armed=%v start=%f", armed, trig.ClickTime())
	}
	trig, armed = trig.Update(4.5, click, res)
	if !armed || trig.ClickTime() != 4.5 {
		t.Fatalf("click after expiry did not re-arm: armed=%v start=%f", armed, trig.ClickTime())
	}

	f := trig.Frame(5, move, res)
	if f.ClickTime != 4.5 || f.Time != 5 || f.Resolution != res || f.Pointer != move.Position {
		t.Errorf("unexpected frame %+v", f)
	}
}
