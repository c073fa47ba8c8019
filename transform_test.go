package arc

import "testing"

func TestDefaultTransform(t *testing.T) {
	tr := DefaultTransform()
	if !tr.Scale.Equals(Vector3One) || !tr.Translation.Equals(Vector3Zero) {
		t.Errorf("DefaultTransform = %v", tr)
	}
	if !tr.Matrix().ApproxEqual(Identity()) {
		t.Errorf("Matrix = %v, want identity", tr.Matrix())
	}
	assertVec3(t, "Forward", tr.Forward(), Vector3Forward)
	assertVec3(t, "Right", tr.Right(), Vector3Right)
	assertVec3(t, "Up", tr.Up(), Vector3Up)
}

func TestFromTransform(t *testing.T) {
	tr := NewTransform(NewVector3(1, 2, 3), NewVector3(0.1, 0.2, 0.3), NewVector3(1, 2, 1))
	if !FromTransform(tr).Equals(tr.Matrix()) {
		t.Error("FromTransform != Matrix")
	}
}

func TestTransformPoint(t *testing.T) {
	tr := NewTransform(NewVector3(1, 2, 3), NewVector3(0, 0, Pi/2), Splat3(2))
	// scale (2, 0, 0), rotate to (0, 2, 0), translate.
	assertVec3(t, "TransformPoint", tr.TransformPoint(Vector3Right), NewVector3(1, 4, 3))
	assertVec3(t, "Right", tr.Right(), Vector3Up)
}

func TestInverseTransformPoint(t *testing.T) {
	tr := NewTransform(NewVector3(-4, 1, 0.5), NewVector3(0.4, -0.3, 2), NewVector3(1.5, 0.5, 2))
	p := NewVector3(2, -3, 7)
	assertVec3(t, "round trip", tr.InverseTransformPoint(tr.TransformPoint(p)), p)
}

func TestTransformRotationOrder(t *testing.T) {
	tr := NewTransform(Vector3Zero, NewVector3(Pi/2, 0, Pi/2), Vector3One)
	// X first: +Y goes to +Z, which Z leaves alone.
	assertVec3(t, "Up", tr.Up(), Vector3Forward)
}
