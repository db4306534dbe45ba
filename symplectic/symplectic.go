// SPDX-License-Identifier: MIT

package symplectic

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for symplectic operations.
var (
	// ErrOddColumns indicates a matrix whose column count is not even.
	ErrOddColumns = errors.New("symplectic: column count must be even")
	// ErrShapeMismatch indicates operands with differing column counts.
	ErrShapeMismatch = errors.New("symplectic: operands must have equal column counts")
	// ErrNotBinary indicates an entry outside {0, 1}.
	ErrNotBinary = errors.New("symplectic: entries must be 0 or 1")
	// ErrEmptyMatrix indicates a matrix with no rows or no columns.
	ErrEmptyMatrix = errors.New("symplectic: matrix must be non-empty")
)

// Validate checks that m is a plausible BSF matrix: non-empty, even column
// count, and every entry exactly 0 or 1.
// Complexity: O(rows·cols).
func Validate(m mat.Matrix) error {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return ErrEmptyMatrix
	}
	if cols%2 != 0 {
		return ErrOddColumns
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := m.At(i, j); v != 0 && v != 1 {
				return ErrNotBinary
			}
		}
	}

	return nil
}

// Product computes the pairwise symplectic products of the rows of a with the
// rows of b over GF(2): P[i][j] = a_x[i]·b_z[j] + a_z[i]·b_x[j] mod 2.
// P[i][j] == 0 means row i of a commutes with row j of b.
// Returns ErrOddColumns or ErrShapeMismatch on malformed operands.
// Complexity: O(r_a·r_b·n) via two dense multiplications.
func Product(a, b mat.Matrix) (*mat.Dense, error) {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ca != cb {
		return nil, ErrShapeMismatch
	}
	if ca%2 != 0 {
		return nil, ErrOddColumns
	}
	n := ca / 2

	ad := mat.DenseCopyOf(a)
	bd := mat.DenseCopyOf(b)
	ax := ad.Slice(0, ra, 0, n)
	az := ad.Slice(0, ra, n, ca)
	bx := bd.Slice(0, rb, 0, n)
	bz := bd.Slice(0, rb, n, cb)

	var xz, zx mat.Dense
	xz.Mul(ax, bz.T())
	zx.Mul(az, bx.T())

	prod := mat.NewDense(ra, rb, nil)
	prod.Add(&xz, &zx)
	prod.Apply(func(_, _ int, v float64) float64 {
		return math.Mod(v, 2)
	}, prod)

	return prod, nil
}

// AllCommute reports whether every pair of rows of m commutes, i.e. the
// symplectic Gram matrix of m is identically zero. Stabilizer matrices of a
// valid code must satisfy this.
// Complexity: O(rows²·n).
func AllCommute(m mat.Matrix) (bool, error) {
	prod, err := Product(m, m)
	if err != nil {
		return false, err
	}
	rows, cols := prod.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if prod.At(i, j) != 0 {
				return false, nil
			}
		}
	}

	return true, nil
}

// Commute reports whether the single-row operators a and b commute.
// Intended for logical-operator checks; both operands must be 1×2n.
// Complexity: O(n).
func Commute(a, b mat.Matrix) (bool, error) {
	prod, err := Product(a, b)
	if err != nil {
		return false, err
	}

	return prod.At(0, 0) == 0, nil
}
