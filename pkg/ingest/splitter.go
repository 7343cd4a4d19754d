package ingest

// Chunk is one slice of a source document, ordered by SequenceIndex.
type Chunk struct {
	Text          string
	SourceID      string
	SequenceIndex int
}

// SplitText cuts text into fixed-size overlapping windows. Indexing is
// rune-based so multi-byte characters are never split mid-sequence. overlap
// is clamped below size to guarantee forward progress.
func SplitText(text string, size int, overlap int) []string {
	if size <= 0 {
		size = 1000
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size - 1
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= size {
		return []string{text}
	}

	step := size - overlap
	chunks := make([]string, 0, (len(runes)/step)+1)
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}
