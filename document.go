package nvdocs

import (
	"context"
	"time"
)

// Document represents a fetched documentation page as stored in the cache.
type Document struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Content   string    `json:"content"` // Markdown
	FetchedAt time.Time `json:"fetchedAt"`

	// FromCache reports whether the document was served from the cache
	// rather than fetched. Set by the document service, never persisted.
	FromCache bool `json:"-"`
}

// Validate returns an error if the document contains invalid fields.
// A document is well-formed when its identity (URL) and fetch time are set;
// title and content may legitimately be empty.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if d.FetchedAt.IsZero() {
		return Errorf(EINVALID, "document fetch time required")
	}
	return nil
}

// DocService represents a service for retrieving and searching documentation.
type DocService interface {
	// Resolve maps a topic and page suffix to a fetchable URL.
	// Returns ENOTFOUND listing the registered topics if topic is unknown.
	Resolve(topic, page string) (string, error)

	// Fetch returns the document at url, serving it from the cache when a
	// fresh record exists. Setting refresh bypasses the cache check; the
	// fetched document always replaces the cached record.
	// Returns EUNAVAILABLE if the page cannot be retrieved or normalized.
	Fetch(ctx context.Context, url string, refresh bool) (*Document, error)

	// Search sweeps the registered pages of the given topics (all topics
	// when empty) and returns the documents containing query, in sweep
	// order. Unknown topics and failed pages are skipped.
	Search(ctx context.Context, query string, topics []string) ([]*Match, error)

	// ClearCache removes every cached document and returns the number removed.
	ClearCache(ctx context.Context) (int, error)
}
