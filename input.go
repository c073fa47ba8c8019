package arc

import (
	"fmt"
	"strings"
)

// KeyCode identifies a keyboard key. Values follow the GLFW key table so they
// can cross the host boundary unchanged.
type KeyCode uint16

const (
	KeySpace      KeyCode = 32
	KeyApostrophe KeyCode = 39
	KeyComma      KeyCode = 44
	KeyMinus      KeyCode = 45
	KeyPeriod     KeyCode = 46
	KeySlash      KeyCode = 47

	Key0 KeyCode = 48
	Key1 KeyCode = 49
	Key2 KeyCode = 50
	Key3 KeyCode = 51
	Key4 KeyCode = 52
	Key5 KeyCode = 53
	Key6 KeyCode = 54
	Key7 KeyCode = 55
	Key8 KeyCode = 56
	Key9 KeyCode = 57

	KeySemicolon KeyCode = 59
	KeyEqual     KeyCode = 61

	KeyA KeyCode = 65
	KeyB KeyCode = 66
	KeyC KeyCode = 67
	KeyD KeyCode = 68
	KeyE KeyCode = 69
	KeyF KeyCode = 70
	KeyG KeyCode = 71
	KeyH KeyCode = 72
	KeyI KeyCode = 73
	KeyJ KeyCode = 74
	KeyK KeyCode = 75
	KeyL KeyCode = 76
	KeyM KeyCode = 77
	KeyN KeyCode = 78
	KeyO KeyCode = 79
	KeyP KeyCode = 80
	KeyQ KeyCode = 81
	KeyR KeyCode = 82
	KeyS KeyCode = 83
	KeyT KeyCode = 84
	KeyU KeyCode = 85
	KeyV KeyCode = 86
	KeyW KeyCode = 87
	KeyX KeyCode = 88
	KeyY KeyCode = 89
	KeyZ KeyCode = 90

	KeyLeftBracket  KeyCode = 91
	KeyBackslash    KeyCode = 92
	KeyRightBracket KeyCode = 93
	KeyGraveAccent  KeyCode = 96

	KeyEscape    KeyCode = 256
	KeyEnter     KeyCode = 257
	KeyTab       KeyCode = 258
	KeyBackspace KeyCode = 259
	KeyInsert    KeyCode = 260
	KeyDelete    KeyCode = 261
	KeyRight     KeyCode = 262
	KeyLeft      KeyCode = 263
	KeyDown      KeyCode = 264
	KeyUp        KeyCode = 265
	KeyPageUp    KeyCode = 266
	KeyPageDown  KeyCode = 267
	KeyHome      KeyCode = 268
	KeyEnd       KeyCode = 269

	KeyF1  KeyCode = 290
	KeyF2  KeyCode = 291
	KeyF3  KeyCode = 292
	KeyF4  KeyCode = 293
	KeyF5  KeyCode = 294
	KeyF6  KeyCode = 295
	KeyF7  KeyCode = 296
	KeyF8  KeyCode = 297
	KeyF9  KeyCode = 298
	KeyF10 KeyCode = 299
	KeyF11 KeyCode = 300
	KeyF12 KeyCode = 301

	KeyLeftShift    KeyCode = 340
	KeyLeftControl  KeyCode = 341
	KeyLeftAlt      KeyCode = 342
	KeyLeftSuper    KeyCode = 343
	KeyRightShift   KeyCode = 344
	KeyRightControl KeyCode = 345
	KeyRightAlt     KeyCode = 346
	KeyRightSuper   KeyCode = 347
)

var keyNames = map[KeyCode]string{
	KeySpace:        "Space",
	KeyApostrophe:   "Apostrophe",
	KeyComma:        "Comma",
	KeyMinus:        "Minus",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeySemicolon:    "Semicolon",
	KeyEqual:        "Equal",
	KeyLeftBracket:  "LeftBracket",
	KeyBackslash:    "Backslash",
	KeyRightBracket: "RightBracket",
	KeyGraveAccent:  "GraveAccent",
	KeyEscape:       "Escape",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyRight:        "Right",
	KeyLeft:         "Left",
	KeyDown:         "Down",
	KeyUp:           "Up",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyLeftShift:    "LeftShift",
	KeyLeftControl:  "LeftControl",
	KeyLeftAlt:      "LeftAlt",
	KeyLeftSuper:    "LeftSuper",
	KeyRightShift:   "RightShift",
	KeyRightControl: "RightControl",
	KeyRightAlt:     "RightAlt",
	KeyRightSuper:   "RightSuper",
}

// String returns the key name: "A", "7", "F5", "Space", "LeftShift".
func (k KeyCode) String() string {
	switch {
	case k >= KeyA && k <= KeyZ, k >= Key0 && k <= Key9:
		return string(rune(k))
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KeyCode(%d)", uint16(k))
}

// ParseKeyCode resolves a key by the name String returns, ignoring case.
func ParseKeyCode(name string) (KeyCode, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if len(key) == 1 {
		if c := KeyCode(key[0]); c >= KeyA && c <= KeyZ || c >= Key0 && c <= Key9 {
			return c, nil
		}
	}
	var n int
	if _, err := fmt.Sscanf(key, "F%d", &n); err == nil && n >= 1 && n <= 12 && key == fmt.Sprintf("F%d", n) {
		return KeyF1 + KeyCode(n-1), nil
	}
	for code, kn := range keyNames {
		if strings.EqualFold(kn, key) {
			return code, nil
		}
	}
	return 0, fmt.Errorf("arc: parse key %q: %w", name, ErrUnknownKey)
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	}
	return fmt.Sprintf("MouseButton(%d)", uint8(b))
}

// ParseMouseButton resolves "left", "right" or "middle", ignoring case.
func ParseMouseButton(name string) (MouseButton, error) {
	for _, b := range []MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle} {
		if strings.EqualFold(b.String(), strings.TrimSpace(name)) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("arc: parse mouse button %q: %w", name, ErrUnknownKey)
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Input forwards input queries to the host. The zero Input reports nothing
// pressed and a mouse at the origin.
type Input struct {
	calls InputCalls
}

// NewInput returns an Input bound to calls.
func NewInput(calls InputCalls) Input { return Input{calls: calls} }

// IsKeyPressed reports whether key is held this frame.
func (in Input) IsKeyPressed(key KeyCode) bool {
	return in.calls != nil && in.calls.IsKeyPressed(key)
}

// IsMouseButtonPressed reports whether button is held this frame.
func (in Input) IsMouseButtonPressed(button MouseButton) bool {
	return in.calls != nil && in.calls.IsMouseButtonPressed(button)
}

// MousePosition returns the cursor position in window coordinates.
func (in Input) MousePosition() Vector2 {
	if in.calls == nil {
		return Vector2Zero
	}
	return in.calls.MousePosition()
}

// Modifiers reads the current keyboard modifier state.
func (in Input) Modifiers() KeyModifiers {
	var mods KeyModifiers
	if in.IsKeyPressed(KeyLeftShift) || in.IsKeyPressed(KeyRightShift) {
		mods |= ModShift
	}
	if in.IsKeyPressed(KeyLeftControl) || in.IsKeyPressed(KeyRightControl) {
		mods |= ModCtrl
	}
	if in.IsKeyPressed(KeyLeftAlt) || in.IsKeyPressed(KeyRightAlt) {
		mods |= ModAlt
	}
	if in.IsKeyPressed(KeyLeftSuper) || in.IsKeyPressed(KeyRightSuper) {
		mods |= ModMeta
	}
	return mods
}

// Axis returns 1 while positive is held, otherwise -1 while negative is held,
// otherwise 0. The positive key wins when both are held.
func (in Input) Axis(negative, positive KeyCode) float32 {
	switch {
	case in.IsKeyPressed(positive):
		return 1
	case in.IsKeyPressed(negative):
		return -1
	}
	return 0
}

// Direction returns the WASD direction for this frame, with W/S on Y and
// D/A on X. The result is not normalized.
func (in Input) Direction() Vector2 {
	return NewVector2(in.Axis(KeyA, KeyD), in.Axis(KeyS, KeyW))
}
