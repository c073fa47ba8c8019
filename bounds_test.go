package arc

import "testing"

func TestBoundsMinMax(t *testing.T) {
	b := NewBounds(NewVector3(1, 1, 1), NewVector3(2, 4, 6))
	assertVec3(t, "Extents", b.Extents(), NewVector3(1, 2, 3))
	assertVec3(t, "Min", b.Min(), NewVector3(0, -1, -2))
	assertVec3(t, "Max", b.Max(), NewVector3(2, 3, 4))
	assertVec3(t, "Min+Size", b.Min().Add(b.Size), b.Max())

	b.SetMin(Vector3Zero)
	assertVec3(t, "Center after SetMin", b.Center, NewVector3(1, 2, 3))
	b.SetMax(Vector3Zero)
	assertVec3(t, "Center after SetMax", b.Center, NewVector3(-1, -2, -3))

	b.SetExtents(Vector3One)
	assertVec3(t, "Size after SetExtents", b.Size, Splat3(2))
}

func TestBoundsSetMinMax(t *testing.T) {
	var b Bounds
	b.SetMinMax(NewVector3(-1, 0, 2), NewVector3(3, 2, 4))
	assertVec3(t, "Center", b.Center, NewVector3(1, 1, 3))
	assertVec3(t, "Size", b.Size, NewVector3(4, 2, 2))
}

func TestBoundsContainsIntersects(t *testing.T) {
	b := NewBounds(Vector3Zero, Splat3(2))
	if !b.Contains(Vector3One) {
		t.Error("corner should be contained")
	}
	if b.Contains(NewVector3(0, 0, 1.5)) {
		t.Error("point outside z should not be contained")
	}
	if !b.Intersects(NewBounds(NewVector3(2, 0, 0), Splat3(2))) {
		t.Error("touching faces should intersect")
	}
	if b.Intersects(NewBounds(NewVector3(0, 3, 0), Splat3(1))) {
		t.Error("separate boxes should not intersect")
	}
}

func TestBoundsEncapsulate(t *testing.T) {
	b := NewBounds(Vector3Zero, Splat3(2))
	b.Encapsulate(NewVector3(3, 0, 0))
	assertVec3(t, "Min", b.Min(), NewVector3(-1, -1, -1))
	assertVec3(t, "Max", b.Max(), NewVector3(3, 1, 1))

	b.Encapsulate(Vector3Zero)
	assertVec3(t, "Max unchanged", b.Max(), NewVector3(3, 1, 1))
}
