package mock

import (
	"context"

	"github.com/fwojciec/nvdocs"
)

var _ nvdocs.DocumentCache = (*Cache)(nil)

// Cache is a mock implementation of nvdocs.DocumentCache.
type Cache struct {
	KeyFn   func(url string) string
	ValidFn func(key string) bool
	ReadFn  func(ctx context.Context, key string) (*nvdocs.Document, error)
	WriteFn func(ctx context.Context, key string, doc *nvdocs.Document) error
	ClearFn func(ctx context.Context) (int, error)
}

func (c *Cache) Key(url string) string {
	return c.KeyFn(url)
}

func (c *Cache) Valid(key string) bool {
	return c.ValidFn(key)
}

func (c *Cache) Read(ctx context.Context, key string) (*nvdocs.Document, error) {
	return c.ReadFn(ctx, key)
}

func (c *Cache) Write(ctx context.Context, key string, doc *nvdocs.Document) error {
	return c.WriteFn(ctx, key, doc)
}

func (c *Cache) Clear(ctx context.Context) (int, error) {
	return c.ClearFn(ctx)
}
