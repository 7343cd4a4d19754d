package vectorstore

import (
	"context"
	"errors"
)

// ErrDimensionMismatch is returned when a record's vector length does not
// match the index's configured dimension. It is fatal to the ingesting
// caller; vectors are never silently truncated or padded.
var ErrDimensionMismatch = errors.New("embedding dimension does not match index dimension")

// Record is one embedded chunk bound for the index. ID is deterministic per
// (source, sequence) so re-upserting an unchanged corpus converges instead of
// growing without bound.
type Record struct {
	ID            string
	Vector        []float32
	Text          string
	SourceID      string
	SequenceIndex int
	Namespace     string
}

// Match is a ranked retrieval hit.
type Match struct {
	Text          string
	SourceID      string
	SequenceIndex int
	Score         float64
}

// VectorIndex is the pluggable vector-search capability. Namespaces partition
// content by origin (ingested corpus vs. human-answered escalations).
type VectorIndex interface {
	Upsert(ctx context.Context, records []Record, namespace string) error
	Query(ctx context.Context, vector []float32, k int, namespace string) ([]Match, error)
	Stats(ctx context.Context, namespace string) (int64, error)
}
