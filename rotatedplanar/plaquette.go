package rotatedplanar

// Site identifies one data-qubit position on the lattice.
type Site struct {
	X, Y int
}

// Plaquette identifies one face of the lattice by its lower-left corner.
// Boundary plaquettes use coordinates one step outside the site bounds
// (x or y equal to −1 or d−1), which is why they touch only two sites.
type Plaquette struct {
	X, Y int
}

// IsZPlaquette reports whether the plaquette at p measures Z parity.
// Types alternate in a checkerboard: Z when x−y is even, X otherwise.
// Complexity: O(1).
func (c *Code) IsZPlaquette(p Plaquette) bool {
	return (p.X-p.Y)%2 == 0
}

// InPlaquetteBounds reports whether p is a real (in-bounds) plaquette of the
// lattice. Z plaquettes occupy −1 ≤ x ≤ d−1, 0 ≤ y ≤ d−2; X plaquettes occupy
// 0 ≤ x ≤ d−2, −1 ≤ y ≤ d−1. Combined with the checkerboard parity this
// yields exactly d²−1 plaquettes. Complexity: O(1).
func (c *Code) InPlaquetteBounds(p Plaquette) bool {
	maxSite := c.distance - 1
	if c.IsZPlaquette(p) {
		return p.X >= -1 && p.X <= maxSite && p.Y >= 0 && p.Y <= maxSite-1
	}

	return p.X >= 0 && p.X <= maxSite-1 && p.Y >= -1 && p.Y <= maxSite
}

// PlaquetteIndices returns every in-bounds plaquette in stabilizer row order:
// all Z plaquettes first, then all X plaquettes, each group scanned with
// y ascending then x ascending. The order is deterministic and stable.
// Complexity: O(d²) time and memory.
func (c *Code) PlaquetteIndices() []Plaquette {
	n := c.distance * c.distance
	zs := make([]Plaquette, 0, (n-1)/2)
	xs := make([]Plaquette, 0, (n-1)/2)
	for y := -1; y < c.distance; y++ {
		for x := -1; x < c.distance; x++ {
			p := Plaquette{X: x, Y: y}
			if !c.InPlaquetteBounds(p) {
				continue
			}
			if c.IsZPlaquette(p) {
				zs = append(zs, p)
			} else {
				xs = append(xs, p)
			}
		}
	}

	return append(zs, xs...)
}

// Support returns the in-bounds sites acted on by the plaquette operator at p:
// the corners {(x,y), (x+1,y), (x,y+1), (x+1,y+1)} clipped to the lattice.
// Bulk plaquettes touch four sites, boundary plaquettes two.
// Complexity: O(1).
func (c *Code) Support(p Plaquette) []Site {
	corners := [4]Site{
		{p.X, p.Y},
		{p.X + 1, p.Y},
		{p.X, p.Y + 1},
		{p.X + 1, p.Y + 1},
	}
	sites := make([]Site, 0, 4)
	for _, s := range corners {
		if c.InSiteBounds(s.X, s.Y) {
			sites = append(sites, s)
		}
	}

	return sites
}
