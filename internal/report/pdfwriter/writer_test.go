package pdfwriter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dojoscore/internal/catalog"
	"dojoscore/internal/report"
)

func TestWrite_ProducesPDF(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{OutDir: dir}

	doc := report.Build(catalog.SampleAssessment(), time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC))
	path, err := w.Write(doc, "sample.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sample.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF", "output starts with the PDF magic")

	// The temporary file is renamed away.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestWrite_BadOutDir(t *testing.T) {
	w := &Writer{OutDir: filepath.Join(t.TempDir(), "missing", "nested")}

	doc := report.Build(catalog.SampleAssessment(), time.Now())
	_, err := w.Write(doc, "sample.pdf")
	assert.Error(t, err)
}

func TestHexToRGB(t *testing.T) {
	r, g, b := hexToRGB("#00ACC1")
	assert.Equal(t, [3]int{0x00, 0xAC, 0xC1}, [3]int{r, g, b})

	r, g, b = hexToRGB("not-a-color")
	assert.Equal(t, [3]int{0, 0, 0}, [3]int{r, g, b}, "malformed input falls back to black")

	r, g, b = hexToRGB("")
	assert.Equal(t, [3]int{0, 0, 0}, [3]int{r, g, b})
}
