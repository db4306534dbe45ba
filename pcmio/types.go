// SPDX-License-Identifier: MIT

// Package pcmio: options and sentinel errors for matrix CSV serialization.
package pcmio

import "errors"

// Sentinel errors for pcmio operations.
var (
	// ErrNonIntegral indicates a matrix entry that is not an exact integer.
	ErrNonIntegral = errors.New("pcmio: matrix entries must be exact integers")
	// ErrPathNotFound indicates the target directory does not exist and
	// auto-creation was disabled.
	ErrPathNotFound = errors.New("pcmio: output directory does not exist")
	// ErrEmptyInput indicates a CSV stream with no rows.
	ErrEmptyInput = errors.New("pcmio: input must contain at least one row")
	// ErrRaggedRows indicates CSV rows of differing field counts.
	ErrRaggedRows = errors.New("pcmio: all rows must have the same number of fields")
)

// DefaultCreateDirs controls whether WriteCSVFile creates missing parent
// directories. Auto-creation is the default so a run on a clean checkout
// succeeds without manual setup.
const DefaultCreateDirs = true

// Options contains tunable parameters for file serialization.
type Options struct {
	// CreateDirs creates missing intermediate directories before writing.
	CreateDirs bool
}

// DefaultOptions returns the default serialization options:
// CreateDirs=DefaultCreateDirs.
func DefaultOptions() Options {
	return Options{CreateDirs: DefaultCreateDirs}
}
