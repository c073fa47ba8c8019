package arc

import (
	"fmt"
	"math"
)

// Transform is the translation, Euler rotation (radians) and scale of an
// entity, exchanged by value with the host.
type Transform struct {
	Translation Vector3
	Rotation    Vector3
	Scale       Vector3
}

// NewTransform returns the transform with the given parts.
func NewTransform(translation, rotation, scale Vector3) Transform {
	return Transform{Translation: translation, Rotation: rotation, Scale: scale}
}

// DefaultTransform is positioned at the origin, unrotated, with unit scale.
func DefaultTransform() Transform {
	return Transform{Scale: Vector3One}
}

// Matrix computes the local transform matrix.
//
// Composition order, applied right to left:
//
//	Scale -> RotateX -> RotateY -> RotateZ -> Translate
func (t Transform) Matrix() Matrix4 {
	return Translate(t.Translation).
		Mul(t.RotationMatrix()).
		Mul(Scale(t.Scale))
}

// FromTransform builds the TRS matrix of t. It is t.Matrix as a
// constructor.
func FromTransform(t Transform) Matrix4 { return t.Matrix() }

// RotationMatrix returns RotationZ·RotationY·RotationX for the Euler angles.
func (t Transform) RotationMatrix() Matrix4 {
	r := t.Rotation
	return RotationZ(r.Z()).Mul(RotationY(r.Y())).Mul(RotationX(r.X()))
}

// Forward returns the local +Z axis in parent space.
func (t Transform) Forward() Vector3 { return t.RotationMatrix().MultiplyVector(Vector3Forward) }

// Right returns the local +X axis in parent space.
func (t Transform) Right() Vector3 { return t.RotationMatrix().MultiplyVector(Vector3Right) }

// Up returns the local +Y axis in parent space.
func (t Transform) Up() Vector3 { return t.RotationMatrix().MultiplyVector(Vector3Up) }

// TransformPoint converts a local-space point to parent space.
func (t Transform) TransformPoint(p Vector3) Vector3 { return t.Matrix().MultiplyPoint(p) }

// InverseTransformPoint converts a parent-space point to local space.
func (t Transform) InverseTransformPoint(p Vector3) Vector3 {
	return t.Matrix().InverseAffine().MultiplyPoint(p)
}

func (t Transform) String() string {
	return fmt.Sprintf("Transform(translation:%v, rotation:%v, scale:%v)", t.Translation, t.Rotation, t.Scale)
}

// singularRatio is the smallest |det| relative to the product of the row
// lengths that InverseAffine still inverts.
const singularRatio = 1e-6

// InverseAffine inverts a matrix whose bottom row is (0, 0, 0, 1).
// Returns the identity matrix if the linear part is singular.
func (a Matrix4) InverseAffine() Matrix4 {
	var m [16]float64
	for i, v := range a.m {
		m[i] = float64(v)
	}
	// Cofactors of the upper-left 3x3.
	c00 := m[5]*m[10] - m[6]*m[9]
	c01 := m[6]*m[8] - m[4]*m[10]
	c02 := m[4]*m[9] - m[5]*m[8]
	det := m[0]*c00 + m[1]*c01 + m[2]*c02
	// |det| never exceeds the product of the row lengths, so the ratio is
	// independent of scale.
	bound := norm(a.m[0:3]) * norm(a.m[4:7]) * norm(a.m[8:11])
	if bound == 0 || math.Abs(det) <= singularRatio*bound {
		return Identity()
	}
	inv := 1 / det

	var o [16]float64
	o[0] = c00 * inv
	o[1] = (m[2]*m[9] - m[1]*m[10]) * inv
	o[2] = (m[1]*m[6] - m[2]*m[5]) * inv
	o[4] = c01 * inv
	o[5] = (m[0]*m[10] - m[2]*m[8]) * inv
	o[6] = (m[2]*m[4] - m[0]*m[6]) * inv
	o[8] = c02 * inv
	o[9] = (m[1]*m[8] - m[0]*m[9]) * inv
	o[10] = (m[0]*m[5] - m[1]*m[4]) * inv

	// -R⁻¹·t
	tx, ty, tz := m[3], m[7], m[11]
	o[3] = -(o[0]*tx + o[1]*ty + o[2]*tz)
	o[7] = -(o[4]*tx + o[5]*ty + o[6]*tz)
	o[11] = -(o[8]*tx + o[9]*ty + o[10]*tz)
	o[15] = 1

	var out Matrix4
	for i, v := range o {
		out.m[i] = float32(v)
	}
	return out
}
