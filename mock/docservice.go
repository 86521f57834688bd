package mock

import (
	"context"

	"github.com/fwojciec/nvdocs"
)

var _ nvdocs.DocService = (*DocService)(nil)

// DocService is a mock implementation of nvdocs.DocService.
type DocService struct {
	ResolveFn    func(topic, page string) (string, error)
	FetchFn      func(ctx context.Context, url string, refresh bool) (*nvdocs.Document, error)
	SearchFn     func(ctx context.Context, query string, topics []string) ([]*nvdocs.Match, error)
	ClearCacheFn func(ctx context.Context) (int, error)
}

func (s *DocService) Resolve(topic, page string) (string, error) {
	return s.ResolveFn(topic, page)
}

func (s *DocService) Fetch(ctx context.Context, url string, refresh bool) (*nvdocs.Document, error) {
	return s.FetchFn(ctx, url, refresh)
}

func (s *DocService) Search(ctx context.Context, query string, topics []string) ([]*nvdocs.Match, error) {
	return s.SearchFn(ctx, query, topics)
}

func (s *DocService) ClearCache(ctx context.Context) (int, error) {
	return s.ClearCacheFn(ctx)
}
