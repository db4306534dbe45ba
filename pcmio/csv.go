// SPDX-License-Identifier: MIT

package pcmio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// fieldSep is the single delimiter of the flat CSV format.
const fieldSep = ','

// WriteCSV writes m to w as comma-separated base-10 integers, one matrix row
// per newline-terminated line, no header. Entries are formatted as integers
// regardless of the matrix's float storage; an entry that is not an exact
// integer yields ErrNonIntegral and nothing further is written.
// Complexity: O(rows·cols).
func WriteCSV(w io.Writer, m mat.Matrix) error {
	rows, cols := m.Dims()
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 16)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			iv := int64(v)
			if float64(iv) != v {
				return fmt.Errorf("pcmio: entry (%d,%d)=%v: %w", i, j, v, ErrNonIntegral)
			}
			buf = strconv.AppendInt(buf[:0], iv, 10)
			if j > 0 {
				if err := bw.WriteByte(fieldSep); err != nil {
					return fmt.Errorf("pcmio: write: %w", err)
				}
			}
			if _, err := bw.Write(buf); err != nil {
				return fmt.Errorf("pcmio: write: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("pcmio: write: %w", err)
		}
	}

	return bw.Flush()
}

// WriteCSVFile serializes m to path, creating or truncating the file.
// Missing parent directories are created when opts.CreateDirs is set;
// otherwise a missing directory is reported as ErrPathNotFound. Filesystem
// faults are wrapped and surfaced unretried.
// Complexity: O(rows·cols) plus one file create.
func WriteCSVFile(path string, m mat.Matrix, opts Options) error {
	dir := filepath.Dir(path)
	if opts.CreateDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("pcmio: create %s: %w", dir, err)
		}
	} else if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("pcmio: %s: %w", dir, ErrPathNotFound)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pcmio: create %s: %w", path, err)
	}
	if err = WriteCSV(f, m); err != nil {
		_ = f.Close()
		return fmt.Errorf("pcmio: write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("pcmio: close %s: %w", path, err)
	}

	return nil
}

// ReadCSV parses the flat CSV format back into a dense matrix. Rows must be
// non-empty and rectangular; fields must be base-10 integers. The result
// round-trips exactly with WriteCSV.
// Complexity: O(rows·cols).
func ReadCSV(r io.Reader) (*mat.Dense, error) {
	var (
		data []float64
		rows int
		cols = -1
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Split(sc.Text(), string(fieldSep))
		if cols == -1 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("pcmio: row %d has %d fields, want %d: %w",
				rows, len(fields), cols, ErrRaggedRows)
		}
		for _, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("pcmio: row %d: parse %q: %w", rows, field, err)
			}
			data = append(data, float64(v))
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pcmio: read: %w", err)
	}
	if rows == 0 {
		return nil, ErrEmptyInput
	}

	return mat.NewDense(rows, cols, data), nil
}
