package dto

import (
	"time"

	"github.com/google/uuid"
)

type EscalatedQueryResponse struct {
	Id             uuid.UUID  `json:"id"`
	Question       string     `json:"question"`
	RequesterId    *uuid.UUID `json:"requester_id,omitempty"`
	RequesterEmail *string    `json:"requester_email,omitempty"`
	Answer         *string    `json:"answer,omitempty"`
	Answered       bool       `json:"answered"`
	CreatedAt      time.Time  `json:"created_at"`
	AnsweredAt     *time.Time `json:"answered_at,omitempty"`
}

type AnswerQueryRequest struct {
	Id     uuid.UUID
	Answer string `json:"answer" validate:"required"`
}

type RebuildResponse struct {
	ChunksIndexed    int `json:"chunks_indexed"`
	SourcesProcessed int `json:"sources_processed"`
}

type IndexStatsResponse struct {
	Namespace   string `json:"namespace"`
	VectorCount int64  `json:"vector_count"`
}

// EscalationAnsweredMessage is published when an admin answers a query, and
// consumed by the re-ingestion worker that folds the pair back into the index.
type EscalationAnsweredMessage struct {
	Id       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
}
