package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTextShortInputIsSingleChunk(t *testing.T) {
	chunks := SplitText("short text", 1000, 200)
	require.Len(t, chunks, 1)
	assert.Equal(t, "short text", chunks[0])
}

func TestSplitTextEmptyInput(t *testing.T) {
	assert.Empty(t, SplitText("", 1000, 200))
}

func TestSplitTextOverlappingWindows(t *testing.T) {
	text := "abcdefghijklmnopqrstuvwxy" // 25 runes
	chunks := SplitText(text, 10, 3)

	// step = 7: [0:10] [7:17] [14:24] [21:25]
	require.Len(t, chunks, 4)
	assert.Equal(t, "abcdefghij", chunks[0])
	assert.Equal(t, "hijklmnopq", chunks[1])
	assert.Equal(t, "opqrstuvwx", chunks[2])
	assert.Equal(t, "vwxy", chunks[3])

	// Consecutive chunks share the overlap region.
	assert.Equal(t, chunks[0][7:], chunks[1][:3])
}

func TestSplitTextRuneSafe(t *testing.T) {
	text := strings.Repeat("héllo wörld ", 50)
	chunks := SplitText(text, 100, 20)

	for i, c := range chunks {
		assert.True(t, strings.ToValidUTF8(c, "") == c, "chunk %d split a multi-byte rune", i)
	}
}

func TestSplitTextClampsOverlap(t *testing.T) {
	// overlap >= size would never advance; it must be clamped.
	chunks := SplitText(strings.Repeat("a", 30), 10, 10)
	assert.NotEmpty(t, chunks)
	assert.Less(t, len(chunks), 40, "splitter must terminate")
}
