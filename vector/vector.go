package vector

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrZeroVector indicates a zero-length vector where a direction is required.
	ErrZeroVector = errors.New("vector: zero vector")

	// ErrEmpty indicates an empty vector where at least one component is required.
	ErrEmpty = errors.New("vector: empty vector")
)

// Vector is a column of float64 components.
type Vector []float64

func vectorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

func sameLen(op string, a, b []float64) error {
	if len(a) != len(b) {
		return vectorErrorf(op, fmt.Errorf("%d vs %d: %w", len(a), len(b), ErrDimensionMismatch))
	}

	return nil
}

// Dot returns Σ a[i]·b[i].
func Dot(a, b []float64) (float64, error) {
	if err := sameLen("Dot", a, b); err != nil {
		return 0, err
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum, nil
}

// Norm returns the Euclidean length of a. The empty vector has length 0.
func Norm(a []float64) float64 {
	var sum float64
	for _, x := range a {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Angle returns the angle between a and b in radians, in [0, π].
func Angle(a, b []float64) (float64, error) {
	if err := sameLen("Angle", a, b); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, vectorErrorf("Angle", ErrEmpty)
	}
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return 0, vectorErrorf("Angle", ErrZeroVector)
	}
	// 2·atan2(|â-b̂|, |â+b̂|) stays accurate near 0 and π, where acos of
	// the cosine loses about half the significant digits.
	var diff, sum float64
	for i := range a {
		x, y := a[i]/na, b[i]/nb
		diff += (x - y) * (x - y)
		sum += (x + y) * (x + y)
	}

	return 2 * math.Atan2(math.Sqrt(diff), math.Sqrt(sum)), nil
}

// AngleDegrees is Angle converted to degrees.
func AngleDegrees(a, b []float64) (float64, error) {
	rad, err := Angle(a, b)
	if err != nil {
		return 0, err
	}

	return rad * 180 / math.Pi, nil
}

// Add returns a + b.
func Add(a, b []float64) ([]float64, error) {
	if err := sameLen("Add", a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out, nil
}

// Sub returns a - b.
func Sub(a, b []float64) ([]float64, error) {
	if err := sameLen("Sub", a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out, nil
}

// Scale returns alpha·a.
func Scale(a []float64, alpha float64) []float64 {
	out := make([]float64, len(a))
	for i, x := range a {
		out[i] = alpha * x
	}

	return out
}

// Normalize returns a scaled to unit length.
func Normalize(a []float64) ([]float64, error) {
	n := Norm(a)
	if n == 0 {
		return nil, vectorErrorf("Normalize", ErrZeroVector)
	}

	return Scale(a, 1/n), nil
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) (float64, error) { return Dot(v, w) }

// Len returns the Euclidean length of v.
func (v Vector) Len() float64 { return Norm(v) }

// AngleWith returns the angle between v and w in radians.
func (v Vector) AngleWith(w Vector) (float64, error) { return Angle(v, w) }

// Equal reports whether v and w have identical components.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}

	return true
}

// String renders v as "Vector([x y z])".
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}

	return "Vector([" + strings.Join(parts, " ") + "])"
}
