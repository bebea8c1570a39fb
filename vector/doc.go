// Package vector provides basic Euclidean vector algebra on []float64:
// dot product, length, angle, and element-wise arithmetic.
//
// All functions validate their inputs and return sentinel errors instead of
// panicking:
//
//   - ErrDimensionMismatch  operands have different lengths
//   - ErrZeroVector         an angle involves a zero-length vector
//   - ErrEmpty              the operation is undefined on an empty vector
//
// Inputs are never mutated; every result is freshly allocated.
package vector
