package arc

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// Matrix4 is a 4x4 transform matrix in row-major order. Points are column
// vectors, so the translation lives in the last column:
//
//	| m00 m01 m02 tx |
//	| m10 m11 m12 ty |
//	| m20 m21 m22 tz |
//	|  0   0   0   1 |
type Matrix4 struct {
	m f32.Mat4
}

// Identity returns the identity matrix.
func Identity() Matrix4 {
	return Matrix4{f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// Diagonal returns a matrix with v on the diagonal and zero elsewhere.
func Diagonal(v float32) Matrix4 {
	return Matrix4{f32.Mat4{
		v, 0, 0, 0,
		0, v, 0, 0,
		0, 0, v, 0,
		0, 0, 0, v,
	}}
}

// MatrixFromRows builds a matrix from four row vectors.
func MatrixFromRows(r0, r1, r2, r3 Vector4) Matrix4 {
	var m Matrix4
	for r, row := range [4]Vector4{r0, r1, r2, r3} {
		copy(m.m[4*r:4*r+4], row.v[:])
	}
	return m
}

// Translate returns an identity matrix with its translation column set to t.
func Translate(t Vector3) Matrix4 {
	m := Identity()
	m.m[3], m.m[7], m.m[11] = t.X(), t.Y(), t.Z()
	return m
}

// Scale returns an identity matrix with its diagonal set to s.
func Scale(s Vector3) Matrix4 {
	m := Identity()
	m.m[0], m.m[5], m.m[10] = s.X(), s.Y(), s.Z()
	return m
}

// ScaleUniform returns Scale(s, s, s).
func ScaleUniform(s float32) Matrix4 { return Scale(Splat3(s)) }

// RotationX returns a rotation of angle radians about +X.
func RotationX(angle float32) Matrix4 {
	s, c := sincos(angle)
	m := Identity()
	m.m[5], m.m[6] = c, -s
	m.m[9], m.m[10] = s, c
	return m
}

// RotationY returns a rotation of angle radians about +Y.
func RotationY(angle float32) Matrix4 {
	s, c := sincos(angle)
	m := Identity()
	m.m[0], m.m[2] = c, s
	m.m[8], m.m[10] = -s, c
	return m
}

// RotationZ returns a rotation of angle radians about +Z.
func RotationZ(angle float32) Matrix4 {
	s, c := sincos(angle)
	m := Identity()
	m.m[0], m.m[1] = c, -s
	m.m[4], m.m[5] = s, c
	return m
}

func sincos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}

// Get returns the entry at (row, col).
func (a Matrix4) Get(row, col int) (float32, error) {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		return 0, fmt.Errorf("arc: Matrix4 entry (%d, %d): %w", row, col, ErrIndexOutOfRange)
	}
	return a.m[4*row+col], nil
}

// Set assigns the entry at (row, col). Out-of-range coordinates leave the
// matrix unchanged.
func (a *Matrix4) Set(row, col int, v float32) error {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		return fmt.Errorf("arc: Matrix4 entry (%d, %d): %w", row, col, ErrIndexOutOfRange)
	}
	a.m[4*row+col] = v
	return nil
}

// Row returns row r; r must be in 0..3.
func (a Matrix4) Row(r int) Vector4 {
	return NewVector4(a.m[4*r], a.m[4*r+1], a.m[4*r+2], a.m[4*r+3])
}

// Column returns column c; c must be in 0..3.
func (a Matrix4) Column(c int) Vector4 {
	return NewVector4(a.m[c], a.m[4+c], a.m[8+c], a.m[12+c])
}

// Translation returns the translation column.
func (a Matrix4) Translation() Vector3 { return NewVector3(a.m[3], a.m[7], a.m[11]) }

// SetTranslation overwrites the translation column.
func (a *Matrix4) SetTranslation(t Vector3) {
	a.m[3], a.m[7], a.m[11] = t.X(), t.Y(), t.Z()
}

// Mul returns a·b, the transform that applies b first and then a.
func (a Matrix4) Mul(b Matrix4) Matrix4 {
	var out Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.m[4*r+c] = a.m[4*r]*b.m[c] +
				a.m[4*r+1]*b.m[4+c] +
				a.m[4*r+2]*b.m[8+c] +
				a.m[4*r+3]*b.m[12+c]
		}
	}
	return out
}

// MultiplyPoint transforms p as a point (w = 1), including translation.
// The bottom row is assumed to be (0, 0, 0, 1).
func (a Matrix4) MultiplyPoint(p Vector3) Vector3 {
	x, y, z := p.X(), p.Y(), p.Z()
	return NewVector3(
		a.m[0]*x+a.m[1]*y+a.m[2]*z+a.m[3],
		a.m[4]*x+a.m[5]*y+a.m[6]*z+a.m[7],
		a.m[8]*x+a.m[9]*y+a.m[10]*z+a.m[11],
	)
}

// MultiplyVector transforms v as a direction (w = 0), ignoring translation.
func (a Matrix4) MultiplyVector(v Vector3) Vector3 {
	x, y, z := v.X(), v.Y(), v.Z()
	return NewVector3(
		a.m[0]*x+a.m[1]*y+a.m[2]*z,
		a.m[4]*x+a.m[5]*y+a.m[6]*z,
		a.m[8]*x+a.m[9]*y+a.m[10]*z,
	)
}

// Transpose swaps rows and columns.
func (a Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.m[4*c+r] = a.m[4*r+c]
		}
	}
	return out
}

// Equals compares all sixteen entries exactly.
func (a Matrix4) Equals(b Matrix4) bool { return a.m == b.m }

// ApproxEqual compares entries with Approximately.
func (a Matrix4) ApproxEqual(b Matrix4) bool {
	for i := range a.m {
		if !Approximately(a.m[i], b.m[i]) {
			return false
		}
	}
	return true
}

func (a Matrix4) String() string {
	return fmt.Sprintf("Matrix4[%v %v %v %v]", a.Row(0), a.Row(1), a.Row(2), a.Row(3))
}
