package docstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore serves documents from a directory on disk.
type LocalStore struct {
	Dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{Dir: dir}
}

// supported source extensions; anything else in the directory is ignored.
var localExtensions = map[string]bool{
	".pdf": true,
	".txt": true,
	".md":  true,
}

func (s *LocalStore) ListDocuments(ctx context.Context) ([]Document, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !localExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		docs = append(docs, Document{
			ID:  e.Name(),
			URL: filepath.Join(s.Dir, e.Name()),
		})
	}
	return docs, nil
}

func (s *LocalStore) Fetch(ctx context.Context, doc Document) ([]byte, error) {
	return os.ReadFile(doc.URL)
}
