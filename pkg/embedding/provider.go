package embedding

import "context"

// Task types understood by the providers. Some backends ignore them.
const (
	TaskTypeDocument = "RETRIEVAL_DOCUMENT"
	TaskTypeQuery    = "RETRIEVAL_QUERY"
)

// EmbeddingProvider defines the interface for generating text embeddings.
// The returned vector has a fixed, provider-dependent dimension; it must
// match the index store's configured dimension for the target namespace.
type EmbeddingProvider interface {
	Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error)
}
