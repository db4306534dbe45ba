// SPDX-License-Identifier: MIT

// Package pcmio serializes integer matrices as flat comma-separated text and
// parses that format back, with exact round-trips.
//
// Format:
//
//   - One matrix row per line, fields separated by single commas.
//   - Every field is a base-10 integer with no sign padding, no decimal
//     point, and no scientific notation, regardless of the matrix's
//     underlying float storage.
//   - Every line is newline-terminated; there is no header line.
//
// Options:
//
//   - Options.CreateDirs: create missing parent directories on write
//     (default true). When disabled, a missing directory is reported as
//     ErrPathNotFound instead of being created.
//
// Errors:
//
//   - ErrNonIntegral: a matrix entry is not an exact integer.
//   - ErrPathNotFound: target directory absent and CreateDirs disabled.
//   - ErrEmptyInput: parsing found no rows.
//   - ErrRaggedRows: parsing found rows of differing lengths.
//
// Filesystem faults (permissions, disk full) are wrapped with %w and remain
// matchable against the underlying OS error.
package pcmio
