package rotatedplanar

import "gonum.org/v1/gonum/mat"

// Stabilizers derives the parity-check matrix of the code in binary
// symplectic form: one row per stabilizer generator, 2n columns where
// columns [0,n) carry the X half and columns [n,2n) the Z half, n = d².
// Entries are exactly 0 or 1. Row order follows PlaquetteIndices, so two
// calls produce identical matrices; each call allocates a fresh matrix.
// Complexity: O(d⁴) memory for the dense result, O(d²) set operations.
func (c *Code) Stabilizers() *mat.Dense {
	n := c.distance * c.distance
	plaquettes := c.PlaquetteIndices()
	pcm := mat.NewDense(len(plaquettes), 2*n, nil)
	for row, p := range plaquettes {
		offset := 0 // X half
		if c.IsZPlaquette(p) {
			offset = n // Z half
		}
		for _, s := range c.Support(p) {
			pcm.Set(row, offset+c.SiteIndex(s.X, s.Y), 1)
		}
	}

	return pcm
}

// LogicalXs returns a representative logical X operator in binary symplectic
// form (1×2n): X applied to every site of the left column x = 0. It commutes
// with all stabilizers and anticommutes with LogicalZs.
// Complexity: O(d²) memory, O(d) set operations.
func (c *Code) LogicalXs() *mat.Dense {
	n := c.distance * c.distance
	op := mat.NewDense(1, 2*n, nil)
	for y := 0; y < c.distance; y++ {
		op.Set(0, c.SiteIndex(0, y), 1)
	}

	return op
}

// LogicalZs returns a representative logical Z operator in binary symplectic
// form (1×2n): Z applied to every site of the bottom row y = 0.
// Complexity: O(d²) memory, O(d) set operations.
func (c *Code) LogicalZs() *mat.Dense {
	n := c.distance * c.distance
	op := mat.NewDense(1, 2*n, nil)
	for x := 0; x < c.distance; x++ {
		op.Set(0, n+c.SiteIndex(x, 0), 1)
	}

	return op
}
