// Package fs provides file-based storage for cached documentation.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/nvdocs"
)

// Ensure Cache implements nvdocs.DocumentCache at compile time.
var _ nvdocs.DocumentCache = (*Cache)(nil)

// Cache implements nvdocs.DocumentCache as a flat directory of JSON records,
// one file per URL, named by the URL's hash. Records are human-inspectable
// indented JSON. Freshness is derived from the record's fetch time on every
// check; nothing about validity is stored.
type Cache struct {
	dir string
	ttl time.Duration
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets the freshness window for cached records.
// Defaults to nvdocs.DefaultCacheTTL (24h) if not specified.
func WithTTL(d time.Duration) Option {
	return func(c *Cache) {
		c.ttl = d
	}
}

// NewCache creates a Cache rooted at dir. The directory is created lazily
// on the first write.
func NewCache(dir string, opts ...Option) *Cache {
	c := &Cache{
		dir: dir,
		ttl: nvdocs.DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Key returns the cache key for a URL.
func (c *Cache) Key(url string) string {
	return Key(url)
}

// Key computes the cache key for a URL using xxhash.
// The same URL always yields the same key.
func Key(url string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(url))
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

// Valid reports whether a parseable record younger than the TTL exists for
// key. Missing, corrupt, and expired records are all invalid; no failure
// escapes as an error.
func (c *Cache) Valid(key string) bool {
	doc, err := c.readFile(key)
	if err != nil {
		return false
	}
	return time.Since(doc.FetchedAt) < c.ttl
}

// Read returns the stored record verbatim, regardless of age. Missing and
// unparseable records are both reported as ENOTFOUND.
func (c *Cache) Read(ctx context.Context, key string) (*nvdocs.Document, error) {
	doc, err := c.readFile(key)
	if err != nil {
		return nil, nvdocs.Errorf(nvdocs.ENOTFOUND, "no cached document for key %q", key)
	}
	return doc, nil
}

func (c *Cache) readFile(key string) (*nvdocs.Document, error) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, err
	}

	var doc nvdocs.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Write atomically replaces the record for key with doc. The record is
// written to a temporary file in the cache directory and renamed into
// place, so readers never observe a partial record.
func (c *Cache) Write(ctx context.Context, key string, doc *nvdocs.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(c.dir, key+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), c.path(key))
}

// Clear removes every record and returns the exact number removed.
// A missing cache directory counts as empty. Files other than records are
// left alone.
func (c *Cache) Clear(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}
