package gen

import (
	"fmt"

	"go.uber.org/zap"
)

// Defaults mirror the reference sweep: seven odd distances written
// sequentially into pcm_matrices/.
const (
	// DefaultOutputDir is the directory PCM files are written into,
	// relative to the working directory unless overridden.
	DefaultOutputDir = "pcm_matrices"

	// DefaultConcurrency of 1 preserves the strictly sequential reference
	// behavior; values above 1 run one goroutine per distance.
	DefaultConcurrency = 1

	// filenamePattern names one output file from its code distance.
	filenamePattern = "distance_%d_surface_code.csv"
)

// DefaultDistances returns the default distance sweep {3,5,7,9,11,13,15}.
// A fresh slice is returned so callers may mutate it freely.
func DefaultDistances() []int {
	return []int{3, 5, 7, 9, 11, 13, 15}
}

// Filename returns the output file name for one code distance,
// e.g. Filename(3) == "distance_3_surface_code.csv".
func Filename(distance int) string {
	return fmt.Sprintf(filenamePattern, distance)
}

// Options holds the effective Runner configuration. Fields are unexported;
// public entry points accept ...Option.
type Options struct {
	distances   []int
	outputDir   string
	builder     Builder
	logger      *zap.Logger
	createDirs  bool
	concurrency int
}

// Option mutates Runner options. Safe to apply repeatedly.
type Option func(*Options)

// defaultOptions returns the reference configuration: default distances and
// output directory, rotated planar builder, nop logger, auto-created
// directories, sequential execution.
func defaultOptions() Options {
	return Options{
		distances:   DefaultDistances(),
		outputDir:   DefaultOutputDir,
		builder:     DefaultBuilder,
		logger:      zap.NewNop(),
		createDirs:  true,
		concurrency: DefaultConcurrency,
	}
}

// WithDistances replaces the distance sweep. The slice is copied; validation
// happens in NewRunner.
func WithDistances(distances ...int) Option {
	return func(o *Options) {
		o.distances = append([]int(nil), distances...)
	}
}

// WithOutputDir sets the directory PCM files are written into.
func WithOutputDir(dir string) Option {
	return func(o *Options) { o.outputDir = dir }
}

// WithBuilder injects the code-construction capability; tests may supply a
// stub returning a fixed matrix.
func WithBuilder(b Builder) Option {
	return func(o *Options) { o.builder = b }
}

// WithLogger sets the structured logger; the default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithCreateDirs toggles auto-creation of the output directory. When false,
// a missing directory surfaces as pcmio.ErrPathNotFound.
func WithCreateDirs(create bool) Option {
	return func(o *Options) { o.createDirs = create }
}

// WithConcurrency sets the number of distances generated in parallel.
// Values below 1 are clamped to sequential execution.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.concurrency = n
	}
}

// validateDistances enforces the distance-set contract shared by Runner and
// Config: non-empty, unique, positive, odd.
func validateDistances(distances []int) error {
	if len(distances) == 0 {
		return ErrNoDistances
	}
	seen := make(map[int]struct{}, len(distances))
	for _, d := range distances {
		if d <= 0 || d%2 == 0 {
			return fmt.Errorf("gen: distance %d: %w", d, ErrBadDistances)
		}
		if _, dup := seen[d]; dup {
			return fmt.Errorf("gen: distance %d duplicated: %w", d, ErrBadDistances)
		}
		seen[d] = struct{}{}
	}

	return nil
}
