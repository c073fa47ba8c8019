package arc

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenVector3_Linear(t *testing.T) {
	tw := TweenVector3(Vector3Zero, NewVector3(10, 20, -4), 1, nil)

	got, done := tw.Update(0.5)
	if done {
		t.Fatal("tween should not be done halfway")
	}
	assertVec3(t, "halfway", got, NewVector3(5, 10, -2))
	assertVec3(t, "Value", tw.Value(), got)

	got, done = tw.Update(0.75)
	if !done || !tw.Done {
		t.Error("tween should be done after its duration")
	}
	assertVec3(t, "end", got, NewVector3(10, 20, -4))

	got, done = tw.Update(1)
	if !done {
		t.Error("finished tween should stay done")
	}
	assertVec3(t, "after end", got, NewVector3(10, 20, -4))
}

func TestTweenVector3_Reset(t *testing.T) {
	from := NewVector3(1, 1, 1)
	tw := TweenVector3(from, NewVector3(2, 2, 2), 1, ease.InOutQuad)
	tw.Update(2)
	tw.Reset()
	if tw.Done {
		t.Error("Reset should clear Done")
	}
	assertVec3(t, "after Reset", tw.Value(), from)
}

func TestTweenVector3_Easing(t *testing.T) {
	tw := TweenVector3(Vector3Zero, NewVector3(1, 0, 0), 1, ease.OutCubic)
	got, _ := tw.Update(0.5)
	// Ease-out is ahead of linear at the midpoint.
	if got.X() <= 0.5 || got.X() >= 1 {
		t.Errorf("OutCubic midpoint x = %v, want in (0.5, 1)", got.X())
	}
}

func TestTweenVector3_ZeroDuration(t *testing.T) {
	tw := TweenVector3(Vector3Zero, Vector3One, 0, nil)
	got, done := tw.Update(1.0 / 60)
	if !done {
		t.Error("zero-duration tween should finish on the first update")
	}
	assertVec3(t, "value", got, Vector3One)
}

func TestTweenColor(t *testing.T) {
	tw := TweenColor(ColorBlack, ColorWhite, 2, nil)
	got, done := tw.Update(1)
	if done {
		t.Fatal("color tween should not be done halfway")
	}
	if !got.ApproxEqual(NewColor(0.5, 0.5, 0.5, 1)) {
		t.Errorf("halfway = %v", got)
	}
	got, done = tw.Update(1)
	if !done || !got.Equals(ColorWhite) {
		t.Errorf("end = %v, done %v", got, done)
	}
	if tw.Value() != ColorWhite {
		t.Errorf("Value = %v", tw.Value())
	}
}
