package arc

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// Quaternion is a rotation stored as (x, y, z, w), where xyz is the
// imaginary part and w the scalar part.
type Quaternion struct {
	v f32.Vec4
}

// QuaternionIdentity is the rotation that leaves every vector unchanged.
var QuaternionIdentity = NewQuaternion(0, 0, 0, 1)

// NewQuaternion returns the quaternion with the given raw components. The
// components are not normalized.
func NewQuaternion(x, y, z, w float32) Quaternion { return Quaternion{f32.Vec4{x, y, z, w}} }

// QuaternionFromVector returns the quaternion with imaginary part xyz and
// scalar part w.
func QuaternionFromVector(xyz Vector3, w float32) Quaternion {
	return NewQuaternion(xyz.X(), xyz.Y(), xyz.Z(), w)
}

// AxisAngle returns the rotation of angle radians about axis. A zero axis
// yields the identity.
func AxisAngle(axis Vector3, angle float32) Quaternion {
	n := axis.Normalized()
	if n == Vector3Zero {
		return QuaternionIdentity
	}
	s, c := math.Sincos(float64(angle) / 2)
	return QuaternionFromVector(n.Scale(float32(s)), float32(c))
}

// FromToRotation returns the shortest rotation that maps the direction of v1
// onto the direction of v2.
//
// Both inputs are normalized first, then the imaginary part is u1 × u2 and
// the scalar part is 1 + u1·u2, the doubled half-angle form; the result is
// normalized again. Zero-length inputs yield the identity. Opposite vectors
// yield a half turn about an arbitrary axis perpendicular to v1.
func FromToRotation(v1, v2 Vector3) Quaternion {
	u1, u2 := v1.Normalized(), v2.Normalized()
	if u1 == Vector3Zero || u2 == Vector3Zero {
		return QuaternionIdentity
	}
	w := 1 + u1.Dot(u2)
	if w <= Epsilon {
		axis := Vector3Right.Cross(u1)
		if axis.SqrMagnitude() <= Epsilon {
			axis = Vector3Up.Cross(u1)
		}
		return QuaternionFromVector(axis.Normalized(), 0)
	}
	return QuaternionFromVector(u1.Cross(u2), w).Normalized()
}

func (q Quaternion) X() float32 { return q.v[0] }
func (q Quaternion) Y() float32 { return q.v[1] }
func (q Quaternion) Z() float32 { return q.v[2] }
func (q Quaternion) W() float32 { return q.v[3] }

// XYZ returns the imaginary part.
func (q Quaternion) XYZ() Vector3 { return NewVector3(q.v[0], q.v[1], q.v[2]) }

// Component returns the i'th component (0=x, 1=y, 2=z, 3=w).
func (q Quaternion) Component(i int) (float32, error) { return component("Quaternion", q.v[:], i) }

// SetComponent assigns the i'th component.
func (q *Quaternion) SetComponent(i int, val float32) error {
	return setComponent("Quaternion", q.v[:], i, val)
}

func (q Quaternion) Dot(r Quaternion) float32 {
	return q.v[0]*r.v[0] + q.v[1]*r.v[1] + q.v[2]*r.v[2] + q.v[3]*r.v[3]
}

func (q Quaternion) Magnitude() float32 { return float32(norm(q.v[:])) }

// Normalized returns q scaled to unit length, or the identity when q has no
// usable magnitude.
func (q Quaternion) Normalized() Quaternion {
	if !normalize(q.v[:]) {
		return QuaternionIdentity
	}
	return q
}

// Conjugate negates the imaginary part. For unit quaternions this is the
// inverse rotation.
func (q Quaternion) Conjugate() Quaternion { return NewQuaternion(-q.v[0], -q.v[1], -q.v[2], q.v[3]) }

// Mul returns the Hamilton product q·r: the rotation r followed by q.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	qx, qy, qz, qw := q.v[0], q.v[1], q.v[2], q.v[3]
	rx, ry, rz, rw := r.v[0], r.v[1], r.v[2], r.v[3]
	return NewQuaternion(
		qw*rx+qx*rw+qy*rz-qz*ry,
		qw*ry-qx*rz+qy*rw+qz*rx,
		qw*rz+qx*ry-qy*rx+qz*rw,
		qw*rw-qx*rx-qy*ry-qz*rz,
	)
}

// Rotate applies the rotation q to v. q is expected to be unit length.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	u := q.XYZ()
	w := q.v[3]
	// v' = v + 2w(u × v) + 2u × (u × v)
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(w)).Add(u.Cross(t))
}

// Matrix returns the rotation matrix of the unit quaternion q.
func (q Quaternion) Matrix() Matrix4 {
	x, y, z, w := q.v[0], q.v[1], q.v[2], q.v[3]
	return Matrix4{f32.Mat4{
		1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w), 0,
		2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w), 0,
		2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y), 0,
		0, 0, 0, 1,
	}}
}

// Equals compares all four components exactly, with no tolerance.
func (q Quaternion) Equals(r Quaternion) bool { return q.v == r.v }

func (q Quaternion) String() string {
	return fmt.Sprintf("Quaternion(%g, %g, %g, %g)", q.v[0], q.v[1], q.v[2], q.v[3])
}
