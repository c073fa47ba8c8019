package ecs

import "github.com/arcengine/arc"

// PressKey marks key as held until ReleaseKey.
func (w *World) PressKey(key arc.KeyCode) { w.keys[key] = true }

// ReleaseKey marks key as released.
func (w *World) ReleaseKey(key arc.KeyCode) { delete(w.keys, key) }

// PressMouseButton marks button as held. Unknown buttons are ignored.
func (w *World) PressMouseButton(button arc.MouseButton) {
	if int(button) < len(w.buttons) {
		w.buttons[button] = true
	}
}

// ReleaseMouseButton marks button as released.
func (w *World) ReleaseMouseButton(button arc.MouseButton) {
	if int(button) < len(w.buttons) {
		w.buttons[button] = false
	}
}

// SetMousePosition sets the cursor position in window coordinates.
func (w *World) SetMousePosition(p arc.Vector2) { w.mousePos = p }

// ClearInput releases every key and button.
func (w *World) ClearInput() {
	clear(w.keys)
	w.buttons = [3]bool{}
}

// --- arc.InputCalls ---

func (w *World) IsKeyPressed(key arc.KeyCode) bool { return w.keys[key] }

func (w *World) IsMouseButtonPressed(button arc.MouseButton) bool {
	return int(button) < len(w.buttons) && w.buttons[button]
}

func (w *World) MousePosition() arc.Vector2 { return w.mousePos }
