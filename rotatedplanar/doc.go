// Package rotatedplanar constructs rotated planar surface codes and derives
// their stabilizer generator (parity-check) matrices in binary symplectic form.
//
// What:
//
//   - Code models a d×d lattice of data qubits (d odd, d ≥ 3).
//   - Plaquette enumeration yields the d²−1 stabilizer generators: Z-type and
//     X-type face operators, weight 4 in the bulk and weight 2 on the boundary.
//   - Stabilizers returns the PCM as a (d²−1)×2d² binary matrix: each row is
//     the X half followed by the Z half of one generator.
//   - LogicalXs/LogicalZs return one representative logical operator each.
//
// Conventions:
//
//   - Sites live at (x, y) with 0 ≤ x, y ≤ d−1; flat index = x + y·d.
//   - A plaquette at (x, y) is Z-type when x−y is even, X-type otherwise.
//   - Row order is deterministic: Z plaquettes first, then X, each scanned
//     with y ascending then x ascending.
//
// Errors:
//
//   - ErrInvalidDistance: distance is even or below MinDistance.
//
// Complexity:
//
//   - New: O(1). Stabilizers: O(d²) rows × O(1) support each, O(d⁴) memory
//     for the dense matrix.
package rotatedplanar
