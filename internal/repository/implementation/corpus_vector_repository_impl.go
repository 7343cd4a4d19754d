package implementation

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"course-assist-be/internal/model"
	"course-assist-be/pkg/vectorstore"
)

// CorpusVectorRepositoryImpl backs the vector index with Postgres + pgvector.
// Upserts key on the deterministic record id, so re-indexing the same source
// overwrites rows in place.
type CorpusVectorRepositoryImpl struct {
	db        *gorm.DB
	dimension int
}

func NewCorpusVectorRepository(db *gorm.DB, dimension int) vectorstore.VectorIndex {
	return &CorpusVectorRepositoryImpl{
		db:        db,
		dimension: dimension,
	}
}

func (r *CorpusVectorRepositoryImpl) Upsert(ctx context.Context, records []vectorstore.Record, namespace string) error {
	if len(records) == 0 {
		return nil
	}

	models := make([]*model.CorpusVector, 0, len(records))
	for _, rec := range records {
		if len(rec.Vector) != r.dimension {
			return fmt.Errorf("record %s has %d dimensions, index expects %d: %w",
				rec.ID, len(rec.Vector), r.dimension, vectorstore.ErrDimensionMismatch)
		}
		ns := rec.Namespace
		if ns == "" {
			ns = namespace
		}
		models = append(models, &model.CorpusVector{
			Id:             rec.ID,
			Document:       rec.Text,
			EmbeddingValue: pgvector.NewVector(rec.Vector),
			SourceId:       rec.SourceID,
			ChunkIndex:     rec.SequenceIndex,
			Namespace:      ns,
		})
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "embedding_value", "source_id", "chunk_index", "namespace", "updated_at"}),
		}).
		Create(&models).Error
}

func (r *CorpusVectorRepositoryImpl) Query(ctx context.Context, vector []float32, k int, namespace string) ([]vectorstore.Match, error) {
	if len(vector) != r.dimension {
		return nil, fmt.Errorf("query vector has %d dimensions, index expects %d: %w",
			len(vector), r.dimension, vectorstore.ErrDimensionMismatch)
	}
	if k <= 0 {
		k = 10
	}

	type row struct {
		Document   string
		SourceId   string
		ChunkIndex int
		Similarity float64
	}

	var rows []row
	// pgvector cosine distance: similarity = 1 - (embedding_value <=> query)
	err := r.db.WithContext(ctx).
		Model(&model.CorpusVector{}).
		Select("document, source_id, chunk_index, 1 - (embedding_value <=> ?) AS similarity", pgvector.NewVector(vector)).
		Where("namespace = ?", namespace).
		Order(gorm.Expr("embedding_value <=> ?", pgvector.NewVector(vector))).
		Limit(k).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	matches := make([]vectorstore.Match, len(rows))
	for i, rw := range rows {
		matches[i] = vectorstore.Match{
			Text:          rw.Document,
			SourceID:      rw.SourceId,
			SequenceIndex: rw.ChunkIndex,
			Score:         rw.Similarity,
		}
	}
	return matches, nil
}

func (r *CorpusVectorRepositoryImpl) Stats(ctx context.Context, namespace string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.CorpusVector{}).
		Where("namespace = ?", namespace).
		Count(&count).Error
	return count, err
}
