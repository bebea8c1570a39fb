// SPDX-License-Identifier: MIT

package matrix

import "math"

// DefaultTolerance is the absolute tolerance used by Equal.
const DefaultTolerance = 1e-9

// Equal reports whether a and b have the same shape and every element
// differs by at most DefaultTolerance. Nil operands are never equal.
func Equal(a, b Matrix) bool {
	ok, err := AllClose(a, b, DefaultTolerance)

	return err == nil && ok
}

// AllClose reports whether |a(i,j) - b(i,j)| <= tol for every element.
// A NaN element never compares close. Shape mismatch is reported as
// (false, nil); nil operands as ErrNilMatrix; a NaN, infinite or negative
// tol as ErrInvalidTolerance.
func AllClose(a, b Matrix, tol float64) (bool, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return false, matrixErrorf(opAllClose, ErrInvalidTolerance)
	}
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}

	if da, ok := a.(*Dense); ok {
		if db, ok2 := b.(*Dense); ok2 {
			for k, v := range da.data {
				if !within(v, db.data[k], tol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var (
		av, bv float64
		err    error
	)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !within(av, bv, tol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// within is false whenever x or y is NaN.
func within(x, y, tol float64) bool {
	return math.Abs(x-y) <= tol
}
