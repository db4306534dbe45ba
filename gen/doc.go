// Package gen drives batch generation of surface-code parity-check matrices:
// for every configured code distance it builds a code, extracts its stabilizer
// matrix, and writes one CSV file into the output directory.
//
// What:
//
//   - Builder is the injected construction capability: Build(d) returns a
//     handle exposing Stabilizers(). Production runs use DefaultBuilder
//     (rotated planar codes); tests may inject a stub.
//   - Runner sweeps the configured distances, sequentially by default or with
//     one goroutine per distance under WithConcurrency(n > 1).
//   - Config mirrors the runner options as a YAML document.
//
// Failure model:
//
//   - Fail-fast, no retries, no partial-success bookkeeping. The first error
//     aborts the run: sequential sweeps stop before later distances, and
//     concurrent sweeps cancel in-flight siblings. Files already written are
//     not rolled back.
//
// Determinism:
//
//   - Distances are processed in the configured order; each iteration owns a
//     fresh code handle and writes a distinct file, so re-running a sweep
//     produces byte-identical output.
//
// Errors:
//
//   - ErrNoDistances: the configured distance set is empty.
//   - ErrBadDistances: a distance is non-positive, even, or duplicated.
//
// Builder and serialization errors propagate wrapped with the offending
// distance.
package gen
