// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels over any Matrix implementation.
//
// Purpose:
//   - Add, Sub, Mul, Transpose, Scale, Hadamard, MatVec, Trace, Determinant.
//   - Every kernel validates through validators.go and wraps failures with
//     its operation tag via matrixErrorf.
//
// Notes:
//   - Each kernel has a *Dense fast-path and an At/Set fallback with the
//     same loop order, so results are identical on both paths.
//   - Operands are never mutated; results are freshly allocated *Dense.

package matrix

import "math"

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, ok := a.(*Dense); ok {
		if db, ok2 := b.(*Dense); ok2 {
			for k := range res.data {
				res.data[k] = da.data[k] + sign*db.data[k]
			}

			return res, nil
		}
	}

	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add returns a + b. Shapes must match.
func Add(a, b Matrix) (Matrix, error) {
	return addSub(a, b, 1, opAdd)
}

// Sub returns a - b. Shapes must match.
func Sub(a, b Matrix) (Matrix, error) {
	return addSub(a, b, -1, opSub)
}

// Mul returns the matrix product a×b (a.Cols must equal b.Rows).
//
// Implementation:
//   - i-k-j loop order so the inner loop walks contiguous rows of b and res.
//   - Zero entries of a skip their whole inner row.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	if da, ok := a.(*Dense); ok {
		if db, ok2 := b.(*Dense); ok2 {
			var aik float64
			for i := 0; i < rows; i++ {
				resRow := res.data[i*cols : (i+1)*cols]
				for k := 0; k < inner; k++ {
					aik = da.data[i*inner+k]
					if aik == 0 {
						continue
					}
					bRow := db.data[k*cols : (k+1)*cols]
					for j := range resRow {
						resRow[j] += aik * bRow[j]
					}
				}
			}

			return res, nil
		}
	}

	var aik, bkj float64
	for i := 0; i < rows; i++ {
		for k := 0; k < inner; k++ {
			if aik, err = a.At(i, k); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			if aik == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				if bkj, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				res.data[i*cols+j] += aik * bkj
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns alpha·m.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for k, v := range dm.data {
			res.data[k] = alpha * v
		}

		return res, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = alpha * v
		}
	}

	return res, nil
}

// Hadamard returns the elementwise product a∘b. Shapes must match.
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	if da, ok := a.(*Dense); ok {
		if db, ok2 := b.(*Dense); ok2 {
			for k := range res.data {
				res.data[k] = da.data[k] * db.data[k]
			}

			return res, nil
		}
	}

	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			res.data[i*cols+j] = av * bv
		}
	}

	return res, nil
}

// MatVec returns y = m·x, where len(x) must equal m.Cols().
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, rows)
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			row := dm.data[i*cols : (i+1)*cols]
			var sum float64
			for j, v := range row {
				sum += v * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	var (
		v   float64
		err error
	)
	for i := 0; i < rows; i++ {
		var sum float64
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	var (
		sum, v float64
		err    error
	)
	for i := 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// Determinant computes det(m) by Gaussian elimination with partial pivoting.
// A zero pivot column yields 0 (singular matrix), not an error.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	n := m.Rows()
	w := make([]float64, n*n)
	if dm, ok := m.(*Dense); ok {
		copy(w, dm.data)
	} else {
		var (
			v   float64
			err error
		)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return 0, matrixErrorf(opDeterminant, err)
				}
				w[i*n+j] = v
			}
		}
	}

	det := 1.0
	for col := 0; col < n; col++ {
		// pick the largest pivot in this column
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(w[r*n+col]) > math.Abs(w[pivot*n+col]) {
				pivot = r
			}
		}
		if w[pivot*n+col] == 0 {
			return 0, nil
		}
		if pivot != col {
			for j := 0; j < n; j++ {
				w[col*n+j], w[pivot*n+j] = w[pivot*n+j], w[col*n+j]
			}
			det = -det
		}

		p := w[col*n+col]
		det *= p
		for r := col + 1; r < n; r++ {
			f := w[r*n+col] / p
			if f == 0 {
				continue
			}
			for j := col; j < n; j++ {
				w[r*n+j] -= f * w[col*n+j]
			}
		}
	}

	return det, nil
}
