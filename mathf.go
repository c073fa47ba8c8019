package arc

import "math"

const (
	// Pi is π as a float32.
	Pi float32 = math.Pi
	// Tau is 2π, one full turn in radians.
	Tau float32 = 2 * math.Pi
	// Deg2Rad multiplies degrees into radians.
	Deg2Rad float32 = math.Pi / 180
	// Rad2Deg multiplies radians into degrees.
	Rad2Deg float32 = 180 / math.Pi

	// Epsilon is the tolerance used by Approximately and the ApproxEqual methods.
	Epsilon float32 = 1e-5
)

// Sqrt returns the square root of v.
func Sqrt(v float32) float32 { return float32(math.Sqrt(float64(v))) }

// Abs returns |v|.
func Abs(v float32) float32 { return float32(math.Abs(float64(v))) }

// Sin returns the sine of the radian angle a.
func Sin(a float32) float32 { return float32(math.Sin(float64(a))) }

// Cos returns the cosine of the radian angle a.
func Cos(a float32) float32 { return float32(math.Cos(float64(a))) }

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to [0, 1].
func Clamp01(v float32) float32 { return Clamp(v, 0, 1) }

// Lerp interpolates between a and b with t clamped to [0, 1].
func Lerp(a, b, t float32) float32 { return LerpUnclamped(a, b, Clamp01(t)) }

// LerpUnclamped interpolates between a and b without clamping t.
func LerpUnclamped(a, b, t float32) float32 { return (1-t)*a + t*b }

// InverseLerp returns the t at which Lerp(a, b, t) == v, clamped to [0, 1].
// Returns 0 when a == b.
func InverseLerp(a, b, v float32) float32 {
	if a == b {
		return 0
	}
	return Clamp01((v - a) / (b - a))
}

// Approximately reports whether a and b differ by at most Epsilon scaled by
// their magnitude (and never less than Epsilon).
func Approximately(a, b float32) bool {
	tol := Epsilon * max(1, max(Abs(a), Abs(b)))
	return Abs(a-b) <= tol
}

// RoundToInt rounds half away from zero.
func RoundToInt(v float32) int { return int(math.Round(float64(v))) }

// FloorToInt returns the largest integer <= v.
func FloorToInt(v float32) int { return int(math.Floor(float64(v))) }

// AngToDir returns the unit vector pointing at the radian angle a,
// measured counter-clockwise from +X.
func AngToDir(a float32) Vector2 {
	s, c := math.Sincos(float64(a))
	return NewVector2(float32(c), float32(s))
}

// DirToAng returns the radian angle of v measured counter-clockwise from +X.
func DirToAng(v Vector2) float32 {
	return float32(math.Atan2(float64(v.Y()), float64(v.X())))
}

// norm returns the Euclidean length of v. Squares are summed in float64 so
// that any finite float32 vector has a finite length.
func norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

// normalize scales v to unit length in place. It reports false and leaves v
// untouched when the length is zero or not finite.
func normalize(v []float32) bool {
	n := norm(v)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return false
	}
	for i, x := range v {
		v[i] = float32(float64(x) / n)
	}
	return true
}
