// Package gen defines the construction capability consumed by the Runner
// and the sentinel errors of the driver.
package gen

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/topoqec/pcmgen/rotatedplanar"
)

// Sentinel errors for driver configuration.
var (
	// ErrNoDistances indicates an empty distance set.
	ErrNoDistances = errors.New("gen: at least one distance is required")
	// ErrBadDistances indicates a non-positive, even, or duplicated distance.
	ErrBadDistances = errors.New("gen: distances must be unique positive odd integers")
	// ErrNilBuilder indicates a nil construction capability.
	ErrNilBuilder = errors.New("gen: builder must not be nil")
)

// Code is the handle returned by a Builder: anything that can expose a
// stabilizer generator matrix in binary symplectic form.
type Code interface {
	// Stabilizers returns the parity-check matrix; each call must return a
	// matrix the caller may use without further synchronization.
	Stabilizers() *mat.Dense
}

// Builder constructs a code for one distance. Implementations must be
// deterministic: equal distances yield equal matrices.
type Builder interface {
	Build(distance int) (Code, error)
}

// BuilderFunc adapts a plain function to the Builder interface.
type BuilderFunc func(distance int) (Code, error)

// Build implements Builder.
func (f BuilderFunc) Build(distance int) (Code, error) { return f(distance) }

// DefaultBuilder constructs rotated planar surface codes; this is the
// production wiring of the driver.
var DefaultBuilder Builder = BuilderFunc(func(distance int) (Code, error) {
	code, err := rotatedplanar.New(distance)
	if err != nil {
		return nil, err
	}

	return code, nil
})
