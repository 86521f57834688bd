package nvdocs

import (
	"context"
	"time"
)

// DefaultCacheTTL is how long a cached document stays fresh.
const DefaultCacheTTL = 24 * time.Hour

// DocumentCache persists fetched documents on storage, keyed by URL hash.
// The cache exclusively owns the record format; callers interact with
// records only through this contract. Freshness is a derived property,
// re-evaluated on every Valid call, never stored.
type DocumentCache interface {
	// Key returns the deterministic cache key for a URL. The same URL
	// always yields the same key.
	Key(url string) string

	// Valid reports whether a parseable record younger than the TTL exists
	// for key. Missing, corrupt, and expired records are all invalid;
	// no failure here ever reaches the caller.
	Valid(key string) bool

	// Read returns the stored record verbatim. Callers that care about
	// freshness must check Valid first. Returns ENOTFOUND if no readable
	// record exists; unparseable records count as absent.
	Read(ctx context.Context, key string) (*Document, error)

	// Write atomically replaces the record for key with doc. No partially
	// written record is ever observable.
	Write(ctx context.Context, key string, doc *Document) error

	// Clear removes every record and returns the number removed. This is
	// the only eviction mechanism; it is unconditional and non-selective.
	Clear(ctx context.Context) (int, error)
}
