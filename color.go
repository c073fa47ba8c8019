package arc

import (
	"fmt"
	"image/color"
)

// Color represents an RGBA color with components conceptually in [0, 1].
// Not premultiplied.
type Color struct {
	R, G, B, A float32
}

// Named colors.
var (
	ColorBlack   = Color{0, 0, 0, 1}
	ColorBlue    = Color{0, 0, 1, 1}
	ColorClear   = Color{0, 0, 0, 0}
	ColorCyan    = Color{0, 1, 1, 1}
	ColorGreen   = Color{0, 1, 0, 1}
	ColorGrey    = Color{0.5, 0.5, 0.5, 1}
	ColorMagenta = Color{1, 0, 1, 1}
	ColorRed     = Color{1, 0, 0, 1}
	ColorWhite   = Color{1, 1, 1, 1}
	ColorYellow  = Color{1, 0.92, 0.016, 1}
)

// NewColor returns the color (r, g, b, a).
func NewColor(r, g, b, a float32) Color { return Color{r, g, b, a} }

// ColorFromVector3 builds a color from rgb and an explicit alpha.
func ColorFromVector3(rgb Vector3, a float32) Color { return Color{rgb.X(), rgb.Y(), rgb.Z(), a} }

// ColorFromVectors builds a color from (r, g) and (b, a).
func ColorFromVectors(rg, ba Vector2) Color { return Color{rg.X(), rg.Y(), ba.X(), ba.Y()} }

// Component returns the i'th channel (0=r, 1=g, 2=b, 3=a).
func (c Color) Component(i int) (float32, error) {
	switch i {
	case 0:
		return c.R, nil
	case 1:
		return c.G, nil
	case 2:
		return c.B, nil
	case 3:
		return c.A, nil
	}
	return 0, indexError("Color", i, 4)
}

// SetComponent assigns the i'th channel. Out-of-range indices leave c
// unchanged and return ErrIndexOutOfRange.
func (c *Color) SetComponent(i int, v float32) error {
	switch i {
	case 0:
		c.R = v
	case 1:
		c.G = v
	case 2:
		c.B = v
	case 3:
		c.A = v
	default:
		return indexError("Color", i, 4)
	}
	return nil
}

// Greyscale averages r, g and b into every color channel and keeps alpha.
func (c Color) Greyscale() Color {
	avg := (c.R + c.G + c.B) / 3
	return Color{avg, avg, avg, c.A}
}

// Lerp interpolates toward d with t clamped to [0, 1].
func (c Color) Lerp(d Color, t float32) Color {
	return c.Vector4().Lerp(d.Vector4(), t).Color()
}

// Vector4 reinterprets (r, g, b, a) as (x, y, z, w).
func (c Color) Vector4() Vector4 { return NewVector4(c.R, c.G, c.B, c.A) }

// Vector3 drops alpha.
func (c Color) Vector3() Vector3 { return NewVector3(c.R, c.G, c.B) }

// Equals compares every channel exactly.
func (c Color) Equals(d Color) bool { return c == d }

// ApproxEqual compares channels with Approximately.
func (c Color) ApproxEqual(d Color) bool { return c.Vector4().ApproxEqual(d.Vector4()) }

// HTMLStringRGBA formats c as "#RRGGBBAA", rounding each channel to 0..255.
func (c Color) HTMLStringRGBA() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", channel8(c.R), channel8(c.G), channel8(c.B), channel8(c.A))
}

// HTMLStringRGB formats c as "#RRGGBB".
func (c Color) HTMLStringRGB() string {
	return fmt.Sprintf("#%02X%02X%02X", channel8(c.R), channel8(c.G), channel8(c.B))
}

// RGBA converts c to a premultiplied color.RGBA for drawing. Channels are
// clamped to [0, 1] first.
func (c Color) RGBA() color.RGBA {
	a := Clamp01(c.A)
	return color.RGBA{
		R: channel8(Clamp01(c.R) * a),
		G: channel8(Clamp01(c.G) * a),
		B: channel8(Clamp01(c.B) * a),
		A: channel8(a),
	}
}

func channel8(v float32) uint8 {
	return uint8(Clamp(float32(RoundToInt(v*255)), 0, 255))
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}
