package arc

import (
	"math"
	"math/rand"
)

// Random generates random scalars, directions and points for gameplay code.
// A Random is not safe for concurrent use; scripts run on a single thread.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a generator seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Value returns a value in [0, 1).
func (r *Random) Value() float32 { return r.rng.Float32() }

// Sign returns -1 or 1 with equal probability.
func (r *Random) Sign() float32 {
	if r.Value() >= 0.5 {
		return 1
	}
	return -1
}

// Range returns a value in [lo, hi).
func (r *Random) Range(lo, hi float32) float32 { return lo + r.Value()*(hi-lo) }

// RangeInt returns an integer in [lo, hi). It returns lo when hi <= lo.
func (r *Random) RangeInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo)
}

// Angle returns a radian angle in [0, Tau).
func (r *Random) Angle() float32 { return r.Value() * Tau }

// OnUnitCircle returns a uniformly distributed point on the unit circle.
func (r *Random) OnUnitCircle() Vector2 { return AngToDir(r.Angle()) }

// InUnitCircle returns a uniformly distributed point inside the unit disc.
func (r *Random) InUnitCircle() Vector2 {
	return r.OnUnitCircle().Scale(Sqrt(r.Value()))
}

// InUnitSquare returns a point with both coordinates in [0, 1).
func (r *Random) InUnitSquare() Vector2 { return NewVector2(r.Value(), r.Value()) }

// OnUnitSphere returns a uniformly distributed point on the unit sphere.
func (r *Random) OnUnitSphere() Vector3 {
	z := 2*r.Value() - 1
	ring := Sqrt(1 - z*z)
	d := AngToDir(r.Angle())
	return NewVector3(d.X()*ring, d.Y()*ring, z)
}

// InUnitSphere returns a uniformly distributed point inside the unit ball.
func (r *Random) InUnitSphere() Vector3 {
	radius := float32(math.Cbrt(float64(r.Value())))
	return r.OnUnitSphere().Scale(radius)
}

// InUnitCube returns a point with every coordinate in [0, 1).
func (r *Random) InUnitCube() Vector3 { return NewVector3(r.Value(), r.Value(), r.Value()) }
