package pcmio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/topoqec/pcmgen/pcmio"
)

// TestWriteCSV_Golden pins the exact byte layout: bare integers, single
// commas, newline-terminated rows, no header.
func TestWriteCSV_Golden(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 0, 2, 0, 1, 0})

	var buf bytes.Buffer
	require.NoError(t, pcmio.WriteCSV(&buf, m))
	assert.Equal(t, "1,0,2\n0,1,0\n", buf.String())
}

// TestWriteCSV_NonIntegral verifies fractional entries are rejected before
// any partial row hits the writer's underlying stream.
func TestWriteCSV_NonIntegral(t *testing.T) {
	m := mat.NewDense(1, 2, []float64{1, 0.5})

	var buf bytes.Buffer
	err := pcmio.WriteCSV(&buf, m)
	assert.ErrorIs(t, err, pcmio.ErrNonIntegral)
	assert.Empty(t, buf.String(), "nothing may be flushed on error")
}

// TestRoundTrip verifies WriteCSV→ReadCSV reproduces the matrix exactly.
func TestRoundTrip(t *testing.T) {
	m := mat.NewDense(3, 4, []float64{
		0, 1, 1, 0,
		1, 0, 0, 3,
		0, 0, 2, 1,
	})

	var buf bytes.Buffer
	require.NoError(t, pcmio.WriteCSV(&buf, m))

	got, err := pcmio.ReadCSV(&buf)
	require.NoError(t, err)
	assert.True(t, mat.Equal(m, got), "round-trip must be exact")
}

// TestReadCSV_Errors covers malformed inputs.
func TestReadCSV_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", pcmio.ErrEmptyInput},
		{"Ragged", "1,2\n3\n", pcmio.ErrRaggedRows},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pcmio.ReadCSV(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("BadField", func(t *testing.T) {
		_, err := pcmio.ReadCSV(strings.NewReader("1,x\n"))
		assert.Error(t, err)
	})
}

// TestWriteCSVFile_CreateDirs verifies missing parents are created when
// auto-creation is on (the default).
func TestWriteCSVFile_CreateDirs(t *testing.T) {
	m := mat.NewDense(1, 2, []float64{1, 0})
	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.csv")

	require.NoError(t, pcmio.WriteCSVFile(path, m, pcmio.DefaultOptions()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,0\n", string(raw))
}

// TestWriteCSVFile_MissingDir verifies the strict mode: no auto-creation,
// ErrPathNotFound, and no file left behind.
func TestWriteCSVFile_MissingDir(t *testing.T) {
	m := mat.NewDense(1, 2, []float64{1, 0})
	path := filepath.Join(t.TempDir(), "absent", "out.csv")

	err := pcmio.WriteCSVFile(path, m, pcmio.Options{CreateDirs: false})
	assert.ErrorIs(t, err, pcmio.ErrPathNotFound)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file may be created")
}

// TestWriteCSVFile_Truncates verifies a rerun overwrites rather than appends.
func TestWriteCSVFile_Truncates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	big := mat.NewDense(2, 2, []float64{9, 9, 9, 9})
	small := mat.NewDense(1, 1, []float64{5})
	require.NoError(t, pcmio.WriteCSVFile(path, big, pcmio.DefaultOptions()))
	require.NoError(t, pcmio.WriteCSVFile(path, small, pcmio.DefaultOptions()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5\n", string(raw))
}
