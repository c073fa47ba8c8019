package arc

import "fmt"

// Bounds is an axis-aligned 3D box defined by its center and size.
// Extents, Min and Max are derived, so Min + Size == Max after every setter.
type Bounds struct {
	Center Vector3
	Size   Vector3
}

// NewBounds returns the box centered on center with the given size.
func NewBounds(center, size Vector3) Bounds { return Bounds{Center: center, Size: size} }

// Extents is half the size.
func (b Bounds) Extents() Vector3 { return b.Size.Scale(0.5) }

// SetExtents resizes the box about its center.
func (b *Bounds) SetExtents(e Vector3) { b.Size = e.Scale(2) }

func (b Bounds) Min() Vector3 { return b.Center.Sub(b.Extents()) }
func (b Bounds) Max() Vector3 { return b.Center.Add(b.Extents()) }

// SetMin moves the box so its minimum corner is m; size is unchanged.
func (b *Bounds) SetMin(m Vector3) { b.Center = m.Add(b.Extents()) }

// SetMax moves the box so its maximum corner is m; size is unchanged.
func (b *Bounds) SetMax(m Vector3) { b.Center = m.Sub(b.Extents()) }

// SetMinMax resizes and moves the box to span min to max.
func (b *Bounds) SetMinMax(min, max Vector3) {
	b.Size = max.Sub(min)
	b.Center = min.Add(b.Size.Scale(0.5))
}

// Contains reports whether p lies inside the box, faces included.
func (b Bounds) Contains(p Vector3) bool {
	lo, hi := b.Min(), b.Max()
	return p.X() >= lo.X() && p.X() <= hi.X() &&
		p.Y() >= lo.Y() && p.Y() <= hi.Y() &&
		p.Z() >= lo.Z() && p.Z() <= hi.Z()
}

// Intersects reports whether b and other overlap. Touching faces count.
func (b Bounds) Intersects(other Bounds) bool {
	alo, ahi := b.Min(), b.Max()
	blo, bhi := other.Min(), other.Max()
	return alo.X() <= bhi.X() && ahi.X() >= blo.X() &&
		alo.Y() <= bhi.Y() && ahi.Y() >= blo.Y() &&
		alo.Z() <= bhi.Z() && ahi.Z() >= blo.Z()
}

// Encapsulate grows the box to include p.
func (b *Bounds) Encapsulate(p Vector3) {
	b.SetMinMax(b.Min().Min(p), b.Max().Max(p))
}

func (b Bounds) String() string {
	return fmt.Sprintf("Bounds(center:%v, size:%v)", b.Center, b.Size)
}
