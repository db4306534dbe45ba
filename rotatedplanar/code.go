package rotatedplanar

import "fmt"

// MinDistance is the smallest supported code distance.
const MinDistance = 3

// Code represents a rotated planar surface code on a d×d site lattice.
// It is immutable once built; all derived matrices are freshly allocated.
type Code struct {
	distance int
}

// New constructs a rotated planar surface code of the given distance.
// Returns ErrInvalidDistance unless distance is odd and ≥ MinDistance.
// Complexity: O(1); all lattice work is deferred to accessor calls.
func New(distance int) (*Code, error) {
	if distance < MinDistance || distance%2 == 0 {
		return nil, fmt.Errorf("rotatedplanar: distance %d: %w", distance, ErrInvalidDistance)
	}

	return &Code{distance: distance}, nil
}

// Distance returns the code distance d.
func (c *Code) Distance() int { return c.distance }

// NKD returns the code parameters: n physical qubits, k logical qubits,
// and the code distance d. For the rotated planar family n = d², k = 1.
func (c *Code) NKD() (n, k, d int) {
	return c.distance * c.distance, 1, c.distance
}

// String implements fmt.Stringer, e.g. "rotated planar 5x5".
func (c *Code) String() string {
	return fmt.Sprintf("rotated planar %dx%d", c.distance, c.distance)
}

// InSiteBounds reports whether (x,y) is a data-qubit site of the lattice.
// Complexity: O(1).
func (c *Code) InSiteBounds(x, y int) bool {
	return x >= 0 && x < c.distance && y >= 0 && y < c.distance
}

// SiteIndex maps a site (x,y) to its row-major flat index x + y·d.
// The caller must ensure (x,y) is in bounds. Complexity: O(1).
func (c *Code) SiteIndex(x, y int) int {
	return x + y*c.distance
}

// SiteCoordinate converts a flat site index back to (x,y).
// Complexity: O(1).
func (c *Code) SiteCoordinate(idx int) (x, y int) {
	return idx % c.distance, idx / c.distance
}
