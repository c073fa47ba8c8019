package arc

import "fmt"

// Rect is an axis-aligned 2D rectangle defined by its minimum corner (X, Y)
// and its size. Max is always derived as Min + Size, so every setter below
// keeps the corners consistent.
type Rect struct {
	X, Y, Width, Height float32
}

// NewRect returns the rectangle at (x, y) with the given size.
func NewRect(x, y, width, height float32) Rect { return Rect{x, y, width, height} }

// RectFromVectors returns the rectangle at position with the given size.
func RectFromVectors(position, size Vector2) Rect {
	return Rect{position.X(), position.Y(), size.X(), size.Y()}
}

// RectMinMax returns the rectangle spanning min to max.
func RectMinMax(min, max Vector2) Rect {
	return Rect{min.X(), min.Y(), max.X() - min.X(), max.Y() - min.Y()}
}

func (r Rect) Position() Vector2 { return NewVector2(r.X, r.Y) }

// SetPosition moves the rectangle; size is unchanged.
func (r *Rect) SetPosition(p Vector2) { r.X, r.Y = p.X(), p.Y() }

func (r Rect) Size() Vector2 { return NewVector2(r.Width, r.Height) }

// SetSize resizes the rectangle about its minimum corner.
func (r *Rect) SetSize(s Vector2) { r.Width, r.Height = s.X(), s.Y() }

// Min is the minimum corner; an alias of Position.
func (r Rect) Min() Vector2 { return r.Position() }

// SetMin moves the rectangle so its minimum corner is m.
func (r *Rect) SetMin(m Vector2) { r.SetPosition(m) }

func (r Rect) Max() Vector2 { return NewVector2(r.X+r.Width, r.Y+r.Height) }

// SetMax moves the rectangle so its maximum corner is m; size is unchanged.
func (r *Rect) SetMax(m Vector2) { r.X, r.Y = m.X()-r.Width, m.Y()-r.Height }

func (r Rect) XMax() float32 { return r.X + r.Width }
func (r Rect) YMax() float32 { return r.Y + r.Height }

// SetXMax moves the rectangle horizontally so its right edge is x.
func (r *Rect) SetXMax(x float32) { r.X = x - r.Width }

// SetYMax moves the rectangle vertically so its far edge is y.
func (r *Rect) SetYMax(y float32) { r.Y = y - r.Height }

func (r Rect) Center() Vector2 { return NewVector2(r.X+r.Width*0.5, r.Y+r.Height*0.5) }

// SetCenter moves the rectangle so it is centered on c; size is unchanged.
func (r *Rect) SetCenter(c Vector2) {
	r.X = c.X() - r.Width*0.5
	r.Y = c.Y() - r.Height*0.5
}

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Vector2) bool {
	x, y := p.X(), p.Y()
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(x:%g, y:%g, width:%g, height:%g)", r.X, r.Y, r.Width, r.Height)
}
