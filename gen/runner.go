package gen

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/topoqec/pcmgen/pcmio"
)

// Runner sweeps a set of code distances, writing one parity-check matrix
// file per distance. Construct with NewRunner; a Runner is immutable and
// safe for repeated Run calls.
type Runner struct {
	opts Options
}

// NewRunner builds a Runner from functional options.
// Returns ErrNoDistances/ErrBadDistances for a malformed distance set and
// ErrNilBuilder when the construction capability was explicitly unset.
func NewRunner(opts ...Option) (*Runner, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateDistances(o.distances); err != nil {
		return nil, err
	}
	if o.builder == nil {
		return nil, ErrNilBuilder
	}

	return &Runner{opts: o}, nil
}

// Run executes the sweep. Sequential by default; with concurrency above 1 it
// launches one goroutine per distance and cancels the remainder on the first
// failure. Either way the first error aborts the run and is returned; files
// already written stay in place.
func (r *Runner) Run(ctx context.Context) error {
	log := r.opts.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("output_dir", r.opts.outputDir),
	)
	log.Info("starting PCM sweep",
		zap.Ints("distances", r.opts.distances),
		zap.Int("concurrency", r.opts.concurrency),
	)

	start := time.Now()
	if r.opts.concurrency > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.opts.concurrency)
		for _, d := range r.opts.distances {
			d := d
			g.Go(func() error { return r.generateOne(gctx, log, d) })
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		for _, d := range r.opts.distances {
			if err := r.generateOne(ctx, log, d); err != nil {
				return err
			}
		}
	}
	log.Info("PCM sweep complete",
		zap.Int("files", len(r.opts.distances)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// generateOne runs the full pipeline for a single distance:
// build → extract → serialize. Each invocation owns its code handle; nothing
// is shared across distances.
func (r *Runner) generateOne(ctx context.Context, log *zap.Logger, distance int) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	start := time.Now()
	code, err := r.opts.builder.Build(distance)
	if err != nil {
		return fmt.Errorf("gen: build distance %d: %w", distance, err)
	}
	pcm := code.Stabilizers()
	rows, cols := pcm.Dims()

	path := filepath.Join(r.opts.outputDir, Filename(distance))
	if err = pcmio.WriteCSVFile(path, pcm, pcmio.Options{CreateDirs: r.opts.createDirs}); err != nil {
		return fmt.Errorf("gen: distance %d: %w", distance, err)
	}
	log.Info("wrote parity-check matrix",
		zap.Int("distance", distance),
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.String("path", path),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}
