package ebitenhost

import (
	"github.com/arcengine/arc"

	"github.com/hajimehoshi/ebiten/v2"
)

// keymap translates arc key codes to ebiten keys.
var keymap = map[arc.KeyCode]ebiten.Key{
	arc.KeySpace:      ebiten.KeySpace,
	arc.KeyApostrophe: ebiten.KeyQuote,
	arc.KeyComma:      ebiten.KeyComma,
	arc.KeyMinus:      ebiten.KeyMinus,
	arc.KeyPeriod:     ebiten.KeyPeriod,
	arc.KeySlash:      ebiten.KeySlash,

	arc.Key0: ebiten.KeyDigit0,
	arc.Key1: ebiten.KeyDigit1,
	arc.Key2: ebiten.KeyDigit2,
	arc.Key3: ebiten.KeyDigit3,
	arc.Key4: ebiten.KeyDigit4,
	arc.Key5: ebiten.KeyDigit5,
	arc.Key6: ebiten.KeyDigit6,
	arc.Key7: ebiten.KeyDigit7,
	arc.Key8: ebiten.KeyDigit8,
	arc.Key9: ebiten.KeyDigit9,

	arc.KeySemicolon: ebiten.KeySemicolon,
	arc.KeyEqual:     ebiten.KeyEqual,

	arc.KeyA: ebiten.KeyA,
	arc.KeyB: ebiten.KeyB,
	arc.KeyC: ebiten.KeyC,
	arc.KeyD: ebiten.KeyD,
	arc.KeyE: ebiten.KeyE,
	arc.KeyF: ebiten.KeyF,
	arc.KeyG: ebiten.KeyG,
	arc.KeyH: ebiten.KeyH,
	arc.KeyI: ebiten.KeyI,
	arc.KeyJ: ebiten.KeyJ,
	arc.KeyK: ebiten.KeyK,
	arc.KeyL: ebiten.KeyL,
	arc.KeyM: ebiten.KeyM,
	arc.KeyN: ebiten.KeyN,
	arc.KeyO: ebiten.KeyO,
	arc.KeyP: ebiten.KeyP,
	arc.KeyQ: ebiten.KeyQ,
	arc.KeyR: ebiten.KeyR,
	arc.KeyS: ebiten.KeyS,
	arc.KeyT: ebiten.KeyT,
	arc.KeyU: ebiten.KeyU,
	arc.KeyV: ebiten.KeyV,
	arc.KeyW: ebiten.KeyW,
	arc.KeyX: ebiten.KeyX,
	arc.KeyY: ebiten.KeyY,
	arc.KeyZ: ebiten.KeyZ,

	arc.KeyLeftBracket:  ebiten.KeyBracketLeft,
	arc.KeyBackslash:    ebiten.KeyBackslash,
	arc.KeyRightBracket: ebiten.KeyBracketRight,
	arc.KeyGraveAccent:  ebiten.KeyBackquote,

	arc.KeyEscape:    ebiten.KeyEscape,
	arc.KeyEnter:     ebiten.KeyEnter,
	arc.KeyTab:       ebiten.KeyTab,
	arc.KeyBackspace: ebiten.KeyBackspace,
	arc.KeyInsert:    ebiten.KeyInsert,
	arc.KeyDelete:    ebiten.KeyDelete,
	arc.KeyRight:     ebiten.KeyArrowRight,
	arc.KeyLeft:      ebiten.KeyArrowLeft,
	arc.KeyDown:      ebiten.KeyArrowDown,
	arc.KeyUp:        ebiten.KeyArrowUp,
	arc.KeyPageUp:    ebiten.KeyPageUp,
	arc.KeyPageDown:  ebiten.KeyPageDown,
	arc.KeyHome:      ebiten.KeyHome,
	arc.KeyEnd:       ebiten.KeyEnd,

	arc.KeyF1:  ebiten.KeyF1,
	arc.KeyF2:  ebiten.KeyF2,
	arc.KeyF3:  ebiten.KeyF3,
	arc.KeyF4:  ebiten.KeyF4,
	arc.KeyF5:  ebiten.KeyF5,
	arc.KeyF6:  ebiten.KeyF6,
	arc.KeyF7:  ebiten.KeyF7,
	arc.KeyF8:  ebiten.KeyF8,
	arc.KeyF9:  ebiten.KeyF9,
	arc.KeyF10: ebiten.KeyF10,
	arc.KeyF11: ebiten.KeyF11,
	arc.KeyF12: ebiten.KeyF12,

	arc.KeyLeftShift:    ebiten.KeyShiftLeft,
	arc.KeyLeftControl:  ebiten.KeyControlLeft,
	arc.KeyLeftAlt:      ebiten.KeyAltLeft,
	arc.KeyLeftSuper:    ebiten.KeyMetaLeft,
	arc.KeyRightShift:   ebiten.KeyShiftRight,
	arc.KeyRightControl: ebiten.KeyControlRight,
	arc.KeyRightAlt:     ebiten.KeyAltRight,
	arc.KeyRightSuper:   ebiten.KeyMetaRight,
}

// EbitenKey returns the ebiten key for k.
func EbitenKey(k arc.KeyCode) (ebiten.Key, bool) {
	key, ok := keymap[k]
	return key, ok
}

var mouseButtons = [...]struct {
	button arc.MouseButton
	key    ebiten.MouseButton
}{
	{arc.MouseButtonLeft, ebiten.MouseButtonLeft},
	{arc.MouseButtonRight, ebiten.MouseButtonRight},
	{arc.MouseButtonMiddle, ebiten.MouseButtonMiddle},
}

// InputSink receives polled input state.
type InputSink interface {
	PressKey(arc.KeyCode)
	ReleaseKey(arc.KeyCode)
	PressMouseButton(arc.MouseButton)
	ReleaseMouseButton(arc.MouseButton)
	SetMousePosition(arc.Vector2)
}

// pollInput copies the current ebiten keyboard and mouse state into sink.
func pollInput(sink InputSink) {
	for code, key := range keymap {
		if ebiten.IsKeyPressed(key) {
			sink.PressKey(code)
		} else {
			sink.ReleaseKey(code)
		}
	}
	for _, b := range mouseButtons {
		if ebiten.IsMouseButtonPressed(b.key) {
			sink.PressMouseButton(b.button)
		} else {
			sink.ReleaseMouseButton(b.button)
		}
	}
	mx, my := ebiten.CursorPosition()
	sink.SetMousePosition(arc.NewVector2(float32(mx), float32(my)))
}
