package presenter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NileshArnaiya/statistics-interactive-course/pkg/distribution"
)

func TestSaveSequenceToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.csv")
	seq := distribution.Sequence{{X: 0, Y: 100}, {X: 0.1, Y: 90.48374180359595}}

	require.NoError(t, SaveSequenceToCSV(seq, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"x", "y"},
		{"0", "100"},
		{"0.1", "90.48374180359595"},
	}, records)
}

func TestSaveSequenceToCSVBadPath(t *testing.T) {
	err := SaveSequenceToCSV(nil, filepath.Join(t.TempDir(), "missing", "points.csv"))
	assert.Error(t, err)
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	seq, err := distribution.BinomialPoints(2, 0.5, 100)
	require.NoError(t, err)
	require.NoError(t, PrintTable(&buf, distribution.Binomial, seq))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "1", strings.Fields(lines[2])[0])
	assert.Equal(t, "50.0000", strings.Fields(lines[2])[1])

	buf.Reset()
	seq, err = distribution.ExponentialPoints(1, 0.2, 100)
	require.NoError(t, err)
	require.NoError(t, PrintTable(&buf, distribution.Exponential, seq))
	assert.Contains(t, buf.String(), "0.2")
}

func TestGenerateChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binomial.png")
	seq, err := distribution.BinomialPoints(10, 0.3, 100)
	require.NoError(t, err)

	require.NoError(t, GenerateChart(path, "Binomial", distribution.Binomial, seq))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
