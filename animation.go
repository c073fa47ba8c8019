package arc

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Vector3Tween animates a Vector3 by driving one gween.Tween per axis.
// Call Update(dt) each frame; there is no global animation manager.
type Vector3Tween struct {
	tweens [3]*gween.Tween
	value  Vector3
	Done   bool
}

// TweenVector3 creates a tween from from to to over duration seconds using
// the easing function. A nil fn uses ease.Linear.
func TweenVector3(from, to Vector3, duration float32, fn ease.TweenFunc) *Vector3Tween {
	if fn == nil {
		fn = ease.Linear
	}
	t := &Vector3Tween{value: from}
	for i := range t.tweens {
		a, _ := from.Component(i)
		b, _ := to.Component(i)
		t.tweens[i] = gween.New(a, b, duration, fn)
	}
	return t
}

// Update advances the tween by dt seconds and returns the current value and
// whether the tween has finished. Once done, further updates return the
// final value.
func (t *Vector3Tween) Update(dt float32) (Vector3, bool) {
	if t.Done {
		return t.value, true
	}
	allDone := true
	for i, tw := range t.tweens {
		val, finished := tw.Update(dt)
		_ = t.value.SetComponent(i, val)
		if !finished {
			allDone = false
		}
	}
	t.Done = allDone
	return t.value, t.Done
}

// Value returns the most recent value without advancing the tween.
func (t *Vector3Tween) Value() Vector3 { return t.value }

// Reset rewinds the tween to its start value.
func (t *Vector3Tween) Reset() {
	for i, tw := range t.tweens {
		tw.Reset()
		val, _ := tw.Update(0)
		_ = t.value.SetComponent(i, val)
	}
	t.Done = false
}

// ColorTween animates all four channels of a Color.
type ColorTween struct {
	tweens [4]*gween.Tween
	value  Color
	Done   bool
}

// TweenColor creates a tween between two colors over duration seconds using
// the easing function. A nil fn uses ease.Linear.
func TweenColor(from, to Color, duration float32, fn ease.TweenFunc) *ColorTween {
	if fn == nil {
		fn = ease.Linear
	}
	t := &ColorTween{value: from}
	for i := range t.tweens {
		a, _ := from.Component(i)
		b, _ := to.Component(i)
		t.tweens[i] = gween.New(a, b, duration, fn)
	}
	return t
}

// Update advances the tween by dt seconds and returns the current color and
// whether the tween has finished.
func (t *ColorTween) Update(dt float32) (Color, bool) {
	if t.Done {
		return t.value, true
	}
	allDone := true
	for i, tw := range t.tweens {
		val, finished := tw.Update(dt)
		_ = t.value.SetComponent(i, val)
		if !finished {
			allDone = false
		}
	}
	t.Done = allDone
	return t.value, t.Done
}

// Value returns the most recent color without advancing the tween.
func (t *ColorTween) Value() Color { return t.value }
