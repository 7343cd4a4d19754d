package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlainText(t *testing.T) {
	e := NewTextExtractor()

	got, err := e.Extract("notes.txt", []byte("lecture notes on hashing"))
	require.NoError(t, err)
	assert.Equal(t, "lecture notes on hashing", got)
}

func TestExtractMarkdownPassesThrough(t *testing.T) {
	e := NewTextExtractor()

	got, err := e.Extract("readme.md", []byte("# Title\nBody"))
	require.NoError(t, err)
	assert.Equal(t, "# Title\nBody", got)
}

func TestExtractCorruptPdfByExtension(t *testing.T) {
	e := NewTextExtractor()

	_, err := e.Extract("slides.pdf", []byte("this is not a pdf at all"))
	assert.Error(t, err)
}

func TestExtractPdfDetectedByMagicBytes(t *testing.T) {
	e := NewTextExtractor()

	// Wrong extension but PDF magic: must go through the PDF parser, which
	// rejects the truncated body instead of returning binary garbage as text.
	_, err := e.Extract("mislabeled.txt", []byte("%PDF-1.7 truncated"))
	assert.Error(t, err)
}

func TestExtractEmptyTextFile(t *testing.T) {
	e := NewTextExtractor()

	got, err := e.Extract("empty.txt", nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
