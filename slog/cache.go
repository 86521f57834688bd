package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/nvdocs"
)

// Ensure LoggingCache implements nvdocs.DocumentCache.
var _ nvdocs.DocumentCache = (*LoggingCache)(nil)

// LoggingCache wraps a DocumentCache with per-operation logging.
// Key and Valid are pure lookups and delegate silently.
type LoggingCache struct {
	next   nvdocs.DocumentCache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next nvdocs.DocumentCache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// Key delegates to the wrapped cache.
func (c *LoggingCache) Key(url string) string {
	return c.next.Key(url)
}

// Valid delegates to the wrapped cache.
func (c *LoggingCache) Valid(key string) bool {
	return c.next.Valid(key)
}

// Read delegates to the wrapped cache and logs the operation.
func (c *LoggingCache) Read(ctx context.Context, key string) (doc *nvdocs.Document, err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache read",
			"key", key,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Read(ctx, key)
}

// Write delegates to the wrapped cache and logs the operation.
func (c *LoggingCache) Write(ctx context.Context, key string, doc *nvdocs.Document) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache write",
			"key", key,
			"bytes", len(doc.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Write(ctx, key, doc)
}

// Clear delegates to the wrapped cache and logs the operation.
func (c *LoggingCache) Clear(ctx context.Context) (count int, err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache clear",
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Clear(ctx)
}
