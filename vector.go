package arc

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Vector2 is a 2D vector used for positions, velocities, sizes, and
// directions. Values are copied on assignment and every operation returns a
// new vector without touching its operands.
type Vector2 struct {
	v f32.Vec2
}

// Vector3 is a 3D vector. Transform translation, Euler rotation, and scale
// are all expressed as Vector3.
type Vector3 struct {
	v f32.Vec3
}

// Vector4 is a 4D vector.
type Vector4 struct {
	v f32.Vec4
}

// NewVector2 returns the vector (x, y).
func NewVector2(x, y float32) Vector2 { return Vector2{f32.Vec2{x, y}} }

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float32) Vector3 { return Vector3{f32.Vec3{x, y, z}} }

// NewVector4 returns the vector (x, y, z, w).
func NewVector4(x, y, z, w float32) Vector4 { return Vector4{f32.Vec4{x, y, z, w}} }

// Splat2 returns a Vector2 with every component set to s.
func Splat2(s float32) Vector2 { return NewVector2(s, s) }

// Splat3 returns a Vector3 with every component set to s.
func Splat3(s float32) Vector3 { return NewVector3(s, s, s) }

// Splat4 returns a Vector4 with every component set to s.
func Splat4(s float32) Vector4 { return NewVector4(s, s, s, s) }

var (
	Vector2Zero  = NewVector2(0, 0)
	Vector2One   = NewVector2(1, 1)
	Vector2Up    = NewVector2(0, 1)
	Vector2Down  = NewVector2(0, -1)
	Vector2Right = NewVector2(1, 0)
	Vector2Left  = NewVector2(-1, 0)

	Vector3Zero     = NewVector3(0, 0, 0)
	Vector3One      = NewVector3(1, 1, 1)
	Vector3Forward  = NewVector3(0, 0, 1)
	Vector3Backward = NewVector3(0, 0, -1)
	Vector3Up       = NewVector3(0, 1, 0)
	Vector3Down     = NewVector3(0, -1, 0)
	Vector3Right    = NewVector3(1, 0, 0)
	Vector3Left     = NewVector3(-1, 0, 0)

	Vector4Zero = NewVector4(0, 0, 0, 0)
	Vector4One  = NewVector4(1, 1, 1, 1)
)

// --- Vector2 ---

func (a Vector2) X() float32 { return a.v[0] }
func (a Vector2) Y() float32 { return a.v[1] }

func (a *Vector2) SetX(x float32) { a.v[0] = x }
func (a *Vector2) SetY(y float32) { a.v[1] = y }

// Component returns the i'th component (0=x, 1=y).
func (a Vector2) Component(i int) (float32, error) { return component("Vector2", a.v[:], i) }

// SetComponent assigns the i'th component. Out-of-range indices leave the
// vector unchanged and return ErrIndexOutOfRange.
func (a *Vector2) SetComponent(i int, val float32) error {
	return setComponent("Vector2", a.v[:], i, val)
}

func (a Vector2) Add(b Vector2) Vector2 { return NewVector2(a.v[0]+b.v[0], a.v[1]+b.v[1]) }
func (a Vector2) Sub(b Vector2) Vector2 { return NewVector2(a.v[0]-b.v[0], a.v[1]-b.v[1]) }

// Mul multiplies componentwise.
func (a Vector2) Mul(b Vector2) Vector2 { return NewVector2(a.v[0]*b.v[0], a.v[1]*b.v[1]) }

// Div divides componentwise.
func (a Vector2) Div(b Vector2) Vector2 { return NewVector2(a.v[0]/b.v[0], a.v[1]/b.v[1]) }

func (a Vector2) Scale(s float32) Vector2     { return NewVector2(a.v[0]*s, a.v[1]*s) }
func (a Vector2) DivScalar(s float32) Vector2 { return NewVector2(a.v[0]/s, a.v[1]/s) }
func (a Vector2) Negate() Vector2             { return NewVector2(-a.v[0], -a.v[1]) }

func (a Vector2) Dot(b Vector2) float32 { return a.v[0]*b.v[0] + a.v[1]*b.v[1] }

func (a Vector2) SqrMagnitude() float32 { return a.Dot(a) }
func (a Vector2) Magnitude() float32    { return float32(norm(a.v[:])) }

// Normalized returns a unit vector in the direction of a. A zero or
// non-finite magnitude yields the zero vector.
func (a Vector2) Normalized() Vector2 {
	if !normalize(a.v[:]) {
		return Vector2Zero
	}
	return a
}

// Normalize normalizes a in place and reports whether it had a usable
// magnitude. On false, a is set to zero.
func (a *Vector2) Normalize() bool {
	n := a.Normalized()
	*a = n
	return n != Vector2Zero
}

func (a Vector2) Distance(b Vector2) float32 { return a.Sub(b).Magnitude() }

// Lerp interpolates toward b with t clamped to [0, 1].
func (a Vector2) Lerp(b Vector2, t float32) Vector2 { return a.LerpUnclamped(b, Clamp01(t)) }

func (a Vector2) LerpUnclamped(b Vector2, t float32) Vector2 {
	return NewVector2(LerpUnclamped(a.v[0], b.v[0], t), LerpUnclamped(a.v[1], b.v[1], t))
}

func (a Vector2) Min(b Vector2) Vector2 { return NewVector2(min(a.v[0], b.v[0]), min(a.v[1], b.v[1])) }
func (a Vector2) Max(b Vector2) Vector2 { return NewVector2(max(a.v[0], b.v[0]), max(a.v[1], b.v[1])) }

// Equals compares every component exactly.
func (a Vector2) Equals(b Vector2) bool { return a.v == b.v }

// ApproxEqual compares components with Approximately.
func (a Vector2) ApproxEqual(b Vector2) bool {
	return Approximately(a.v[0], b.v[0]) && Approximately(a.v[1], b.v[1])
}

// Vector3 extends a with z.
func (a Vector2) Vector3(z float32) Vector3 { return NewVector3(a.v[0], a.v[1], z) }

func (a Vector2) String() string { return fmt.Sprintf("Vector2(%g, %g)", a.v[0], a.v[1]) }

// --- Vector3 ---

func (a Vector3) X() float32 { return a.v[0] }
func (a Vector3) Y() float32 { return a.v[1] }
func (a Vector3) Z() float32 { return a.v[2] }

func (a *Vector3) SetX(x float32) { a.v[0] = x }
func (a *Vector3) SetY(y float32) { a.v[1] = y }
func (a *Vector3) SetZ(z float32) { a.v[2] = z }

// Component returns the i'th component (0=x, 1=y, 2=z).
func (a Vector3) Component(i int) (float32, error) { return component("Vector3", a.v[:], i) }

// SetComponent assigns the i'th component. Out-of-range indices leave the
// vector unchanged and return ErrIndexOutOfRange.
func (a *Vector3) SetComponent(i int, val float32) error {
	return setComponent("Vector3", a.v[:], i, val)
}

func (a Vector3) Add(b Vector3) Vector3 {
	return NewVector3(a.v[0]+b.v[0], a.v[1]+b.v[1], a.v[2]+b.v[2])
}

func (a Vector3) Sub(b Vector3) Vector3 {
	return NewVector3(a.v[0]-b.v[0], a.v[1]-b.v[1], a.v[2]-b.v[2])
}

// Mul multiplies componentwise.
func (a Vector3) Mul(b Vector3) Vector3 {
	return NewVector3(a.v[0]*b.v[0], a.v[1]*b.v[1], a.v[2]*b.v[2])
}

// Div divides componentwise.
func (a Vector3) Div(b Vector3) Vector3 {
	return NewVector3(a.v[0]/b.v[0], a.v[1]/b.v[1], a.v[2]/b.v[2])
}

func (a Vector3) Scale(s float32) Vector3     { return NewVector3(a.v[0]*s, a.v[1]*s, a.v[2]*s) }
func (a Vector3) DivScalar(s float32) Vector3 { return NewVector3(a.v[0]/s, a.v[1]/s, a.v[2]/s) }
func (a Vector3) Negate() Vector3             { return NewVector3(-a.v[0], -a.v[1], -a.v[2]) }

func (a Vector3) Dot(b Vector3) float32 { return a.v[0]*b.v[0] + a.v[1]*b.v[1] + a.v[2]*b.v[2] }

// Cross returns the right-handed cross product a × b.
func (a Vector3) Cross(b Vector3) Vector3 {
	return NewVector3(
		a.v[1]*b.v[2]-a.v[2]*b.v[1],
		a.v[2]*b.v[0]-a.v[0]*b.v[2],
		a.v[0]*b.v[1]-a.v[1]*b.v[0],
	)
}

func (a Vector3) SqrMagnitude() float32 { return a.Dot(a) }
func (a Vector3) Magnitude() float32    { return float32(norm(a.v[:])) }

// Normalized returns a unit vector in the direction of a. A zero or
// non-finite magnitude yields the zero vector.
func (a Vector3) Normalized() Vector3 {
	if !normalize(a.v[:]) {
		return Vector3Zero
	}
	return a
}

// Normalize normalizes a in place and reports whether it had a usable
// magnitude. On false, a is set to zero.
func (a *Vector3) Normalize() bool {
	n := a.Normalized()
	*a = n
	return n != Vector3Zero
}

func (a Vector3) Distance(b Vector3) float32 { return a.Sub(b).Magnitude() }

// Lerp interpolates toward b with t clamped to [0, 1].
func (a Vector3) Lerp(b Vector3, t float32) Vector3 { return a.LerpUnclamped(b, Clamp01(t)) }

func (a Vector3) LerpUnclamped(b Vector3, t float32) Vector3 {
	return NewVector3(
		LerpUnclamped(a.v[0], b.v[0], t),
		LerpUnclamped(a.v[1], b.v[1], t),
		LerpUnclamped(a.v[2], b.v[2], t),
	)
}

func (a Vector3) Min(b Vector3) Vector3 {
	return NewVector3(min(a.v[0], b.v[0]), min(a.v[1], b.v[1]), min(a.v[2], b.v[2]))
}

func (a Vector3) Max(b Vector3) Vector3 {
	return NewVector3(max(a.v[0], b.v[0]), max(a.v[1], b.v[1]), max(a.v[2], b.v[2]))
}

// Equals compares every component exactly.
func (a Vector3) Equals(b Vector3) bool { return a.v == b.v }

// ApproxEqual compares components with Approximately.
func (a Vector3) ApproxEqual(b Vector3) bool {
	return Approximately(a.v[0], b.v[0]) &&
		Approximately(a.v[1], b.v[1]) &&
		Approximately(a.v[2], b.v[2])
}

// XY drops z.
func (a Vector3) XY() Vector2 { return NewVector2(a.v[0], a.v[1]) }

// Vector4 extends a with w.
func (a Vector3) Vector4(w float32) Vector4 { return NewVector4(a.v[0], a.v[1], a.v[2], w) }

func (a Vector3) String() string {
	return fmt.Sprintf("Vector3(%g, %g, %g)", a.v[0], a.v[1], a.v[2])
}

// --- Vector4 ---

func (a Vector4) X() float32 { return a.v[0] }
func (a Vector4) Y() float32 { return a.v[1] }
func (a Vector4) Z() float32 { return a.v[2] }
func (a Vector4) W() float32 { return a.v[3] }

func (a *Vector4) SetX(x float32) { a.v[0] = x }
func (a *Vector4) SetY(y float32) { a.v[1] = y }
func (a *Vector4) SetZ(z float32) { a.v[2] = z }
func (a *Vector4) SetW(w float32) { a.v[3] = w }

// Component returns the i'th component (0=x, 1=y, 2=z, 3=w).
func (a Vector4) Component(i int) (float32, error) { return component("Vector4", a.v[:], i) }

// SetComponent assigns the i'th component. Out-of-range indices leave the
// vector unchanged and return ErrIndexOutOfRange.
func (a *Vector4) SetComponent(i int, val float32) error {
	return setComponent("Vector4", a.v[:], i, val)
}

func (a Vector4) Add(b Vector4) Vector4 {
	return NewVector4(a.v[0]+b.v[0], a.v[1]+b.v[1], a.v[2]+b.v[2], a.v[3]+b.v[3])
}

func (a Vector4) Sub(b Vector4) Vector4 {
	return NewVector4(a.v[0]-b.v[0], a.v[1]-b.v[1], a.v[2]-b.v[2], a.v[3]-b.v[3])
}

// Mul multiplies componentwise.
func (a Vector4) Mul(b Vector4) Vector4 {
	return NewVector4(a.v[0]*b.v[0], a.v[1]*b.v[1], a.v[2]*b.v[2], a.v[3]*b.v[3])
}

// Div divides componentwise.
func (a Vector4) Div(b Vector4) Vector4 {
	return NewVector4(a.v[0]/b.v[0], a.v[1]/b.v[1], a.v[2]/b.v[2], a.v[3]/b.v[3])
}

func (a Vector4) Scale(s float32) Vector4 {
	return NewVector4(a.v[0]*s, a.v[1]*s, a.v[2]*s, a.v[3]*s)
}

func (a Vector4) DivScalar(s float32) Vector4 {
	return NewVector4(a.v[0]/s, a.v[1]/s, a.v[2]/s, a.v[3]/s)
}

func (a Vector4) Negate() Vector4 { return NewVector4(-a.v[0], -a.v[1], -a.v[2], -a.v[3]) }

func (a Vector4) Dot(b Vector4) float32 {
	return a.v[0]*b.v[0] + a.v[1]*b.v[1] + a.v[2]*b.v[2] + a.v[3]*b.v[3]
}

func (a Vector4) SqrMagnitude() float32 { return a.Dot(a) }
func (a Vector4) Magnitude() float32    { return float32(norm(a.v[:])) }

// Normalized returns a unit vector in the direction of a. A zero or
// non-finite magnitude yields the zero vector.
func (a Vector4) Normalized() Vector4 {
	if !normalize(a.v[:]) {
		return Vector4Zero
	}
	return a
}

// Normalize normalizes a in place and reports whether it had a usable
// magnitude. On false, a is set to zero.
func (a *Vector4) Normalize() bool {
	n := a.Normalized()
	*a = n
	return n != Vector4Zero
}

// Lerp interpolates toward b with t clamped to [0, 1].
func (a Vector4) Lerp(b Vector4, t float32) Vector4 { return a.LerpUnclamped(b, Clamp01(t)) }

func (a Vector4) LerpUnclamped(b Vector4, t float32) Vector4 {
	return NewVector4(
		LerpUnclamped(a.v[0], b.v[0], t),
		LerpUnclamped(a.v[1], b.v[1], t),
		LerpUnclamped(a.v[2], b.v[2], t),
		LerpUnclamped(a.v[3], b.v[3], t),
	)
}

// Equals compares every component exactly.
func (a Vector4) Equals(b Vector4) bool { return a.v == b.v }

// ApproxEqual compares components with Approximately.
func (a Vector4) ApproxEqual(b Vector4) bool {
	return Approximately(a.v[0], b.v[0]) &&
		Approximately(a.v[1], b.v[1]) &&
		Approximately(a.v[2], b.v[2]) &&
		Approximately(a.v[3], b.v[3])
}

// XYZ drops w.
func (a Vector4) XYZ() Vector3 { return NewVector3(a.v[0], a.v[1], a.v[2]) }

// Color reinterprets (x, y, z, w) as (r, g, b, a).
func (a Vector4) Color() Color { return NewColor(a.v[0], a.v[1], a.v[2], a.v[3]) }

func (a Vector4) String() string {
	return fmt.Sprintf("Vector4(%g, %g, %g, %g)", a.v[0], a.v[1], a.v[2], a.v[3])
}
