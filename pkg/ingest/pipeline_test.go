package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-assist-be/internal/constant"
	"course-assist-be/pkg/docstore"
	"course-assist-be/pkg/embedding"
	"course-assist-be/pkg/vectorstore"
)

// --- test doubles ---

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type memStore struct {
	docs    map[string][]byte
	failIDs map[string]bool
}

func (s *memStore) ListDocuments(ctx context.Context) ([]docstore.Document, error) {
	out := make([]docstore.Document, 0, len(s.docs))
	for id := range s.docs {
		out = append(out, docstore.Document{ID: id, URL: id})
	}
	return out, nil
}

func (s *memStore) Fetch(ctx context.Context, doc docstore.Document) ([]byte, error) {
	if s.failIDs[doc.ID] {
		return nil, errors.New("fetch failed")
	}
	return s.docs[doc.ID], nil
}

type passthroughExtractor struct{}

func (passthroughExtractor) Extract(name string, data []byte) (string, error) {
	return string(data), nil
}

type fixedEmbedder struct {
	calls int
}

func (e *fixedEmbedder) Generate(ctx context.Context, text string, taskType string) (*embedding.EmbeddingResponse, error) {
	e.calls++
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{
			Values: []float32{1, 0, 0},
		},
	}, nil
}

// rejectingEmbedder permanently fails for chunks containing a marker word,
// as a provider rejecting specific content would.
type rejectingEmbedder struct{}

func (rejectingEmbedder) Generate(ctx context.Context, text string, taskType string) (*embedding.EmbeddingResponse, error) {
	if strings.Contains(text, "unembeddable") {
		return nil, errors.New("invalid argument: content rejected")
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{
			Values: []float32{1, 0, 0},
		},
	}, nil
}

type capturingIndex struct {
	records []vectorstore.Record
	err     error
}

func (i *capturingIndex) Upsert(ctx context.Context, records []vectorstore.Record, namespace string) error {
	if i.err != nil {
		return i.err
	}
	i.records = append(i.records, records...)
	return nil
}

func (i *capturingIndex) Query(ctx context.Context, vector []float32, k int, namespace string) ([]vectorstore.Match, error) {
	return nil, nil
}

func (i *capturingIndex) Stats(ctx context.Context, namespace string) (int64, error) {
	return int64(len(i.records)), nil
}

func newTestPipeline(store *memStore, index *capturingIndex) *Pipeline {
	return NewPipeline(
		store,
		passthroughExtractor{},
		&fixedEmbedder{},
		index,
		nopLogger{},
		Options{ChunkSize: 50, ChunkOverlap: 10, BatchSize: 2, MaxAttempts: 1},
	)
}

// --- tests ---

func TestRebuildIndexesAllSources(t *testing.T) {
	store := &memStore{docs: map[string][]byte{
		"syllabus.txt": []byte("Week one covers sorting. Week two covers graphs and shortest paths in detail."),
		"grading.txt":  []byte("Exams are worth sixty percent."),
	}}
	index := &capturingIndex{}
	p := newTestPipeline(store, index)

	summary, err := p.Rebuild(context.Background(), constant.NamespaceCourseMaterials)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.SourcesProcessed)
	assert.Equal(t, len(index.records), summary.ChunksIndexed)
	require.NotEmpty(t, index.records)

	for _, rec := range index.records {
		assert.Equal(t, constant.NamespaceCourseMaterials, rec.Namespace)
		assert.Contains(t, rec.ID, "#", "record ids derive from source and sequence")
	}
}

func TestRebuildIdsAreDeterministic(t *testing.T) {
	store := &memStore{docs: map[string][]byte{
		"syllabus.txt": []byte(strings.Repeat("sorting and graphs ", 10)),
	}}

	first := &capturingIndex{}
	_, err := newTestPipeline(store, first).Rebuild(context.Background(), constant.NamespaceCourseMaterials)
	require.NoError(t, err)

	second := &capturingIndex{}
	_, err = newTestPipeline(store, second).Rebuild(context.Background(), constant.NamespaceCourseMaterials)
	require.NoError(t, err)

	require.Equal(t, len(first.records), len(second.records))
	for i := range first.records {
		assert.Equal(t, first.records[i].ID, second.records[i].ID)
	}
}

func TestRebuildSkipsFailingDocuments(t *testing.T) {
	store := &memStore{
		docs: map[string][]byte{
			"good.txt": []byte("Readable content about recursion."),
			"bad.txt":  []byte("unreachable"),
		},
		failIDs: map[string]bool{"bad.txt": true},
	}
	index := &capturingIndex{}

	summary, err := newTestPipeline(store, index).Rebuild(context.Background(), constant.NamespaceCourseMaterials)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.SourcesProcessed)
	for _, rec := range index.records {
		assert.Equal(t, "good.txt", rec.SourceID)
	}
}

func TestRebuildSkipsFailingBatches(t *testing.T) {
	store := &memStore{docs: map[string][]byte{
		"good.txt": []byte("Readable content about recursion."),
		"bad.txt":  []byte("unembeddable content"),
	}}
	index := &capturingIndex{}
	p := NewPipeline(
		store,
		passthroughExtractor{},
		rejectingEmbedder{},
		index,
		nopLogger{},
		Options{ChunkSize: 50, ChunkOverlap: 10, BatchSize: 1, MaxAttempts: 1},
	)

	summary, err := p.Rebuild(context.Background(), constant.NamespaceCourseMaterials)
	require.NoError(t, err, "a failed batch must not abort the rebuild")

	assert.Equal(t, 1, summary.ChunksIndexed)
	require.Len(t, index.records, 1)
	assert.Equal(t, "good.txt", index.records[0].SourceID)
}

func TestRebuildFailsWhenNothingIndexed(t *testing.T) {
	store := &memStore{docs: map[string][]byte{
		"bad.txt": []byte("unembeddable content"),
	}}
	index := &capturingIndex{}
	p := NewPipeline(
		store,
		passthroughExtractor{},
		rejectingEmbedder{},
		index,
		nopLogger{},
		Options{ChunkSize: 50, ChunkOverlap: 10, BatchSize: 1, MaxAttempts: 1},
	)

	_, err := p.Rebuild(context.Background(), constant.NamespaceCourseMaterials)
	assert.Error(t, err)
	assert.Empty(t, index.records)
}

func TestRebuildSeedsPlaceholderWhenEmpty(t *testing.T) {
	store := &memStore{docs: map[string][]byte{}}
	index := &capturingIndex{}

	summary, err := newTestPipeline(store, index).Rebuild(context.Background(), constant.NamespaceCourseMaterials)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.SourcesProcessed)
	assert.Equal(t, 1, summary.ChunksIndexed)
	require.Len(t, index.records, 1)
	assert.Equal(t, constant.PlaceholderChunk, index.records[0].Text)
	assert.Equal(t, "default", index.records[0].SourceID)
}

func TestAppendIndexesAnsweredPair(t *testing.T) {
	index := &capturingIndex{}
	p := newTestPipeline(&memStore{}, index)

	ok := p.Append(context.Background(), "What is the capital of France?", "Paris", constant.NamespaceHumanAnswered)
	require.True(t, ok)

	require.Len(t, index.records, 1)
	rec := index.records[0]
	assert.True(t, strings.HasPrefix(rec.ID, "qa_"))
	assert.Equal(t, constant.NamespaceHumanAnswered, rec.Namespace)
	assert.Contains(t, rec.Text, "Paris")
	assert.Contains(t, rec.Text, "Question:")
}

func TestAppendIsIdempotentPerQuestion(t *testing.T) {
	index := &capturingIndex{}
	p := newTestPipeline(&memStore{}, index)

	require.True(t, p.Append(context.Background(), "Same question?", "first answer", constant.NamespaceHumanAnswered))
	require.True(t, p.Append(context.Background(), "Same question?", "revised answer", constant.NamespaceHumanAnswered))

	require.Len(t, index.records, 2)
	assert.Equal(t, index.records[0].ID, index.records[1].ID, "same question must produce the same record id")
}

func TestAppendReportsFailureWithoutError(t *testing.T) {
	index := &capturingIndex{err: errors.New("index down")}
	p := newTestPipeline(&memStore{}, index)

	ok := p.Append(context.Background(), "Question?", "Answer", constant.NamespaceHumanAnswered)
	assert.False(t, ok)
}
