package arc

import (
	"errors"
	"testing"
)

func TestInput_Unbound(t *testing.T) {
	var in Input
	if in.IsKeyPressed(KeyW) || in.IsMouseButtonPressed(MouseButtonLeft) {
		t.Error("zero Input reports pressed state")
	}
	if !in.MousePosition().Equals(Vector2Zero) {
		t.Error("zero Input mouse is not at the origin")
	}
	if in.Modifiers() != 0 || !in.Direction().Equals(Vector2Zero) {
		t.Error("zero Input reports modifiers or direction")
	}
}

func TestInput_Queries(t *testing.T) {
	h := newFakeHost()
	in := NewInput(h)
	h.keys[KeyW] = true
	h.buttons[MouseButtonRight] = true
	h.mouse = NewVector2(10, 20)

	if !in.IsKeyPressed(KeyW) || in.IsKeyPressed(KeyS) {
		t.Error("IsKeyPressed mismatch")
	}
	if !in.IsMouseButtonPressed(MouseButtonRight) || in.IsMouseButtonPressed(MouseButtonLeft) {
		t.Error("IsMouseButtonPressed mismatch")
	}
	assertVec2(t, "MousePosition", in.MousePosition(), NewVector2(10, 20))
}

func TestInput_Modifiers(t *testing.T) {
	h := newFakeHost()
	in := NewInput(h)
	h.keys[KeyRightShift] = true
	h.keys[KeyLeftControl] = true
	if got := in.Modifiers(); got != ModShift|ModCtrl {
		t.Errorf("Modifiers = %b, want shift|ctrl", got)
	}
	h.keys[KeyLeftAlt] = true
	h.keys[KeyRightSuper] = true
	if got := in.Modifiers(); got != ModShift|ModCtrl|ModAlt|ModMeta {
		t.Errorf("Modifiers = %b, want all", got)
	}
}

func TestInput_AxisDirection(t *testing.T) {
	h := newFakeHost()
	in := NewInput(h)

	h.keys[KeyA] = true
	if got := in.Axis(KeyA, KeyD); got != -1 {
		t.Errorf("Axis with negative held = %v", got)
	}
	h.keys[KeyD] = true
	if got := in.Axis(KeyA, KeyD); got != 1 {
		t.Errorf("Axis with both held = %v, want positive to win", got)
	}
	h.keys[KeyW] = true
	assertVec2(t, "Direction", in.Direction(), NewVector2(1, 1))
	delete(h.keys, KeyD)
	delete(h.keys, KeyW)
	h.keys[KeyS] = true
	assertVec2(t, "Direction", in.Direction(), NewVector2(-1, -1))
}

func TestKeyCodeString(t *testing.T) {
	tests := []struct {
		key  KeyCode
		want string
	}{
		{KeyA, "A"},
		{Key7, "7"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeySpace, "Space"},
		{KeyLeftShift, "LeftShift"},
		{KeyCode(1000), "KeyCode(1000)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("KeyCode(%d).String() = %q, want %q", uint16(tt.key), got, tt.want)
		}
	}
}

func TestParseKeyCode(t *testing.T) {
	tests := []struct {
		name string
		want KeyCode
	}{
		{"w", KeyW},
		{"W", KeyW},
		{"0", Key0},
		{"f5", KeyF5},
		{"F10", KeyF10},
		{"space", KeySpace},
		{" Escape ", KeyEscape},
		{"RIGHTCONTROL", KeyRightControl},
	}
	for _, tt := range tests {
		got, err := ParseKeyCode(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseKeyCode(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}
	for _, bad := range []string{"", "F13", "F0", "F1x", "Hyper", "ab"} {
		if _, err := ParseKeyCode(bad); !errors.Is(err, ErrUnknownKey) {
			t.Errorf("ParseKeyCode(%q) err = %v, want ErrUnknownKey", bad, err)
		}
	}
}

func TestParseKeyCode_RoundTrip(t *testing.T) {
	keys := []KeyCode{KeyComma, KeyGraveAccent, KeyZ, Key9, KeyF3, KeyPageDown, KeyRightAlt}
	for _, k := range keys {
		got, err := ParseKeyCode(k.String())
		if err != nil || got != k {
			t.Errorf("round trip %v = %v, %v", k, got, err)
		}
	}
}

func TestParseMouseButton(t *testing.T) {
	for _, b := range []MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle} {
		got, err := ParseMouseButton(b.String())
		if err != nil || got != b {
			t.Errorf("ParseMouseButton(%q) = %v, %v", b.String(), got, err)
		}
	}
	if got, _ := ParseMouseButton("right"); got != MouseButtonRight {
		t.Errorf("ParseMouseButton(right) = %v", got)
	}
	if _, err := ParseMouseButton("back"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("ParseMouseButton(back) err = %v", err)
	}
	if got := MouseButton(9).String(); got != "MouseButton(9)" {
		t.Errorf("unknown button = %q", got)
	}
}
