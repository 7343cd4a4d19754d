package docstore

import "context"

// Document is a reference to one raw source document. URL is whatever the
// owning store needs to fetch the bytes back (a file path, an object URL).
type Document struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// DocumentStore is the collaborator that owns raw source documents. The
// ingestion pipeline must not know whether content originates from local disk
// or a remote bucket; both live behind this interface.
type DocumentStore interface {
	ListDocuments(ctx context.Context) ([]Document, error)
	Fetch(ctx context.Context, doc Document) ([]byte, error)
}
