package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const listingCacheKey = "documents"

// HTTPStore serves documents from a remote listing endpoint:
// GET {BaseURL}/documents returns a JSON array of {id, url}, and each url is
// fetched directly. Listings are cached briefly so a rebuild that walks the
// store does not hammer the endpoint.
type HTTPStore struct {
	BaseURL string
	Client  *http.Client
	cache   *gocache.Cache
}

func NewHTTPStore(baseURL string, timeout time.Duration, listingTTL time.Duration) *HTTPStore {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if listingTTL <= 0 {
		listingTTL = 5 * time.Minute
	}
	return &HTTPStore{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
		cache:   gocache.New(listingTTL, 10*time.Minute),
	}
}

func (s *HTTPStore) ListDocuments(ctx context.Context) ([]Document, error) {
	if cached, found := s.cache.Get(listingCacheKey); found {
		return cached.([]Document), nil
	}

	endpoint := fmt.Sprintf("%s/documents", s.BaseURL)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("document listing error, code %d, body %s", resp.StatusCode, string(body))
	}

	var docs []Document
	if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
		return nil, err
	}

	s.cache.Set(listingCacheKey, docs, gocache.DefaultExpiration)
	return docs, nil
}

func (s *HTTPStore) Fetch(ctx context.Context, doc Document) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", doc.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("document fetch error for %s, code %d", doc.ID, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
