// SPDX-License-Identifier: MIT

// Package matrix provides dense, row-major matrices of float64 and the
// classic textbook operations on them: element-wise addition and subtraction,
// matrix multiplication, transpose, scalar scaling, matrix–vector products,
// trace and determinant.
//
// What:
//
//   - Matrix: a minimal interface (Rows, Cols, At, Set, Clone).
//   - Dense:  the concrete row-major implementation backed by one flat slice.
//   - Kernels: Add, Sub, Mul, Transpose, Scale, Hadamard, MatVec, Trace,
//     Determinant, Equal, AllClose.
//
// Why:
//
//   - A flat slice keeps rows contiguous, so every kernel runs a tight loop
//     when both operands are *Dense and falls back to At/Set otherwise.
//   - All kernels validate shapes first and return sentinel errors, never panic.
//
// Complexity:
//
//   - Add/Sub/Scale/Hadamard/Transpose: O(r*c)
//   - Mul:                              O(r*n*c)
//   - MatVec:                           O(r*c)
//   - Determinant:                      O(n³) (Gaussian elimination, partial pivoting)
//
// Errors:
//
//   - ErrBadShape           requested shape is non-positive or rows are empty
//   - ErrRaggedRows         NewFromRows received rows of different lengths
//   - ErrOutOfRange         index outside the matrix
//   - ErrDimensionMismatch  incompatible operand shapes
//   - ErrNonSquare          operation requires a square matrix
//   - ErrNilMatrix          nil operand
//
// Every error is wrapped as "<Op>: <sentinel>" so errors.Is matches.
package matrix
