package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

type CorpusVector struct {
	Id             string          `gorm:"type:text;primaryKey"` // "<source_id>#<sequence_index>"
	Document       string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // Gemini text-embedding-004 uses 768 dimensions
	SourceId       string          `gorm:"type:text;not null;index"`
	ChunkIndex     int             `gorm:"default:0"` // 0-based index for ordering
	Namespace      string          `gorm:"type:text;not null;index"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (CorpusVector) TableName() string {
	return "corpus_vectors"
}
