package rotatedplanar

import "errors"

// ErrInvalidDistance indicates a code distance that is even, non-positive,
// or below MinDistance. The lattice is only defined for odd d ≥ 3.
var ErrInvalidDistance = errors.New("rotatedplanar: distance must be an odd integer ≥ 3")
