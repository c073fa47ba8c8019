package arc

import (
	"errors"
	"testing"
)

func assertQuat(t *testing.T, name string, got, want Quaternion) {
	t.Helper()
	if !got.XYZ().ApproxEqual(want.XYZ()) || !Approximately(got.W(), want.W()) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestAxisAngleRotate(t *testing.T) {
	q := AxisAngle(Vector3Up, Pi/2)
	assertNear(t, "magnitude", q.Magnitude(), 1)
	assertVec3(t, "rotate +X about +Y", q.Rotate(Vector3Right), Vector3Backward)
}

func TestAxisAngleZeroAxis(t *testing.T) {
	if got := AxisAngle(Vector3Zero, 1); !got.Equals(QuaternionIdentity) {
		t.Errorf("AxisAngle(zero) = %v, want identity", got)
	}
}

func TestQuaternionMatrixMatchesRotate(t *testing.T) {
	q := AxisAngle(NewVector3(1, 2, 3), 0.7)
	v := NewVector3(-2, 0.5, 4)
	assertVec3(t, "Matrix vs Rotate", q.Matrix().MultiplyVector(v), q.Rotate(v))
}

func TestQuaternionMulConjugate(t *testing.T) {
	q := AxisAngle(NewVector3(0, 1, 1), 1.2)
	assertQuat(t, "q * conj(q)", q.Mul(q.Conjugate()), QuaternionIdentity)

	// Mul applies the right operand first.
	a := AxisAngle(Vector3Forward, Pi/2)
	b := AxisAngle(Vector3Up, Pi/2)
	v := Vector3Right
	assertVec3(t, "composition", a.Mul(b).Rotate(v), a.Rotate(b.Rotate(v)))
}

func TestFromToRotation(t *testing.T) {
	tests := []struct {
		name   string
		v1, v2 Vector3
	}{
		{"right to up", Vector3Right, Vector3Up},
		{"scaled", NewVector3(3, 0, 0), NewVector3(0, 0, 0.5)},
		{"opposite", Vector3Right, Vector3Left},
		{"opposite on x axis", Vector3Up, Vector3Down},
		{"same", Vector3Forward, Vector3Forward},
		{"large", NewVector3(5e9, 0, 0), NewVector3(0, 5e9, 0)},
		{"large opposite", NewVector3(0, 0, 3e20), NewVector3(0, 0, -1e20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := FromToRotation(tt.v1, tt.v2)
			assertNear(t, "magnitude", q.Magnitude(), 1)
			assertVec3(t, "rotated", q.Rotate(tt.v1.Normalized()), tt.v2.Normalized())
		})
	}
}

func TestFromToRotationZero(t *testing.T) {
	if got := FromToRotation(Vector3Zero, Vector3Up); !got.Equals(QuaternionIdentity) {
		t.Errorf("FromToRotation(zero, up) = %v, want identity", got)
	}
}

func TestFromToRotationLargeMatchesUnit(t *testing.T) {
	big := FromToRotation(NewVector3(5e9, 0, 0), NewVector3(0, 5e9, 0))
	assertQuat(t, "large", big, FromToRotation(Vector3Right, Vector3Up))
}

func TestQuaternionNormalized(t *testing.T) {
	q := NewQuaternion(0, 0, 0, 2).Normalized()
	assertQuat(t, "Normalized", q, QuaternionIdentity)
	if got := NewQuaternion(0, 0, 0, 0).Normalized(); !got.Equals(QuaternionIdentity) {
		t.Errorf("zero.Normalized = %v, want identity", got)
	}
}

func TestQuaternionComponent(t *testing.T) {
	q := NewQuaternion(1, 2, 3, 4)
	if got, _ := q.Component(3); got != 4 {
		t.Errorf("Component(3) = %v, want 4", got)
	}
	if _, err := q.Component(4); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Component(4) err = %v", err)
	}
	if err := q.SetComponent(0, 9); err != nil || q.X() != 9 {
		t.Errorf("SetComponent(0, 9): x = %v, err = %v", q.X(), err)
	}
}
