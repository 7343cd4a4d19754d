package ingest

import (
	"context"
	"crypto/md5"
	"fmt"
	"time"

	"course-assist-be/internal/constant"
	"course-assist-be/internal/pkg/logger"
	"course-assist-be/pkg/docstore"
	"course-assist-be/pkg/embedding"
	"course-assist-be/pkg/extractor"
	"course-assist-be/pkg/retry"
	"course-assist-be/pkg/vectorstore"
)

// Summary reports what a rebuild actually indexed.
type Summary struct {
	ChunksIndexed    int
	SourcesProcessed int
}

type Options struct {
	ChunkSize    int
	ChunkOverlap int
	BatchSize    int
	MaxAttempts  uint
	BaseDelay    time.Duration
}

func (o *Options) applyDefaults() {
	if o.ChunkSize <= 0 {
		o.ChunkSize = 1000
	}
	if o.ChunkOverlap < 0 {
		o.ChunkOverlap = 0
	}
	if o.ChunkOverlap >= o.ChunkSize {
		o.ChunkOverlap = 200
	}
	if o.BatchSize <= 0 {
		o.BatchSize = 50
	}
	if o.MaxAttempts == 0 {
		o.MaxAttempts = 5
	}
	if o.BaseDelay <= 0 {
		o.BaseDelay = time.Second
	}
}

// Pipeline runs the extract -> chunk -> sanitize -> embed -> upsert sequence.
type Pipeline struct {
	docs     docstore.DocumentStore
	extract  extractor.Extractor
	embedder embedding.EmbeddingProvider
	index    vectorstore.VectorIndex
	log      logger.ILogger
	opts     Options
}

func NewPipeline(
	docs docstore.DocumentStore,
	extract extractor.Extractor,
	embedder embedding.EmbeddingProvider,
	index vectorstore.VectorIndex,
	log logger.ILogger,
	opts Options,
) *Pipeline {
	opts.applyDefaults()
	return &Pipeline{
		docs:     docs,
		extract:  extract,
		embedder: embedder,
		index:    index,
		log:      log,
		opts:     opts,
	}
}

// Rebuild walks every document in the store and indexes it into namespace.
// A document that fails to fetch or extract is logged and skipped; the run
// continues with the remaining sources. Record ids are derived from
// (source id, chunk index), so rebuilding an unchanged corpus overwrites
// in place instead of duplicating.
func (p *Pipeline) Rebuild(ctx context.Context, namespace string) (*Summary, error) {
	docs, err := p.docs.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	summary := &Summary{}
	chunks := make([]Chunk, 0, len(docs)*4)

	for _, doc := range docs {
		data, err := p.docs.Fetch(ctx, doc)
		if err != nil {
			p.log.Warn("Ingest", "Skipping document, fetch failed", map[string]interface{}{
				"document": doc.ID,
				"error":    err.Error(),
			})
			continue
		}

		text, err := p.extract.Extract(doc.ID, data)
		if err != nil {
			p.log.Warn("Ingest", "Skipping document, extraction failed", map[string]interface{}{
				"document": doc.ID,
				"error":    err.Error(),
			})
			continue
		}

		seq := 0
		for _, raw := range SplitText(text, p.opts.ChunkSize, p.opts.ChunkOverlap) {
			cleaned, ok := SanitizeChunk(raw)
			if !ok {
				continue
			}
			chunks = append(chunks, Chunk{
				Text:          cleaned,
				SourceID:      doc.ID,
				SequenceIndex: seq,
			})
			seq++
		}
		if seq > 0 {
			summary.SourcesProcessed++
		}
	}

	// An empty index makes every later query fail; seed a placeholder so the
	// engine always has something to retrieve against.
	if len(chunks) == 0 {
		p.log.Warn("Ingest", "No indexable content found, seeding placeholder", nil)
		chunks = append(chunks, Chunk{
			Text:          constant.PlaceholderChunk,
			SourceID:      "default",
			SequenceIndex: 0,
		})
	}

	// A failed batch is logged and skipped like a failed document; the rebuild
	// only errors when every batch failed and nothing reached the index.
	failedBatches := 0
	for start := 0; start < len(chunks); start += p.opts.BatchSize {
		end := start + p.opts.BatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		if err := p.indexBatch(ctx, chunks[start:end], namespace); err != nil {
			p.log.Error("Ingest", "Skipping batch, indexing failed", map[string]interface{}{
				"first_chunk": fmt.Sprintf("%s#%d", chunks[start].SourceID, chunks[start].SequenceIndex),
				"batch_size":  end - start,
				"error":       err.Error(),
			})
			failedBatches++
			continue
		}
		summary.ChunksIndexed += end - start
	}
	if summary.ChunksIndexed == 0 {
		return nil, fmt.Errorf("rebuild indexed nothing: all %d batches failed", failedBatches)
	}

	p.log.Info("Ingest", "Rebuild complete", map[string]interface{}{
		"namespace": namespace,
		"chunks":    summary.ChunksIndexed,
		"sources":   summary.SourcesProcessed,
	})
	return summary, nil
}

// Append embeds a single question/answer pair and upserts it into namespace.
// The record id hashes the question, so answering the same question again
// replaces the earlier entry. Returns false when the pair could not be
// indexed; the caller decides whether that is fatal.
func (p *Pipeline) Append(ctx context.Context, question, answer, namespace string) bool {
	text, ok := SanitizeChunk(fmt.Sprintf("Question: %s\nAnswer: %s", question, answer))
	if !ok {
		p.log.Warn("Ingest", "Answered pair empty after sanitize, not indexed", nil)
		return false
	}

	vector, err := p.embedChunk(ctx, text)
	if err != nil {
		p.log.Error("Ingest", "Failed to embed answered pair", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}

	record := vectorstore.Record{
		ID:        fmt.Sprintf("qa_%x", md5.Sum([]byte(question))),
		Vector:    vector,
		Text:      text,
		SourceID:  "human_answer",
		Namespace: namespace,
	}
	if err := p.index.Upsert(ctx, []vectorstore.Record{record}, namespace); err != nil {
		p.log.Error("Ingest", "Failed to upsert answered pair", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}
	return true
}

func (p *Pipeline) indexBatch(ctx context.Context, batch []Chunk, namespace string) error {
	records := make([]vectorstore.Record, 0, len(batch))
	for _, c := range batch {
		vector, err := p.embedChunk(ctx, c.Text)
		if err != nil {
			return fmt.Errorf("embed chunk %s#%d: %w", c.SourceID, c.SequenceIndex, err)
		}
		records = append(records, vectorstore.Record{
			ID:            fmt.Sprintf("%s#%d", c.SourceID, c.SequenceIndex),
			Vector:        vector,
			Text:          c.Text,
			SourceID:      c.SourceID,
			SequenceIndex: c.SequenceIndex,
			Namespace:     namespace,
		})
	}
	return p.index.Upsert(ctx, records, namespace)
}

func (p *Pipeline) embedChunk(ctx context.Context, text string) ([]float32, error) {
	res, err := retry.Do(func() (*embedding.EmbeddingResponse, error) {
		return p.embedder.Generate(ctx, text, embedding.TaskTypeDocument)
	}, p.opts.MaxAttempts, p.opts.BaseDelay)
	if err != nil {
		return nil, err
	}
	return res.Embedding.Values, nil
}
