// SPDX-License-Identifier: MIT

// Package symplectic implements the binary symplectic algebra used to check
// stabilizer matrices: pairwise commutation products over GF(2) and structural
// validation of binary-symplectic-form (BSF) matrices.
//
// A BSF matrix has an even number of columns 2n; columns [0,n) hold the X
// half and columns [n,2n) the Z half of each Pauli row. Two rows a and b
// commute exactly when a_x·b_z + a_z·b_x ≡ 0 (mod 2).
//
// Errors:
//
//   - ErrOddColumns: a matrix with an odd column count cannot be split.
//   - ErrShapeMismatch: the two operands disagree on column count.
//   - ErrNotBinary: an entry is not exactly 0 or 1.
//   - ErrEmptyMatrix: a matrix with no rows or no columns.
//
// Complexity: Product is two dense multiplications, O(r_a·r_b·n).
package symplectic
