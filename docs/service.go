// Package docs provides documentation retrieval orchestration.
// It coordinates source resolution, fetching, extraction, conversion,
// caching, and searching of documentation pages.
package docs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/nvdocs"
)

// Ensure Service implements nvdocs.DocService at compile time.
var _ nvdocs.DocService = (*Service)(nil)

// Service orchestrates retrieval of documentation pages.
type Service struct {
	Registry  *nvdocs.Registry
	Fetcher   nvdocs.Fetcher
	Extractor nvdocs.Extractor
	Converter nvdocs.Converter
	Cache     nvdocs.DocumentCache
}

// Resolve maps a topic and optional page path to a documentation URL.
// The page path is appended to the source's base URL as-is; it does not
// have to appear in the source's page list.
func (s *Service) Resolve(topic, page string) (string, error) {
	src, err := s.Registry.Lookup(topic)
	if err != nil {
		return "", err
	}
	return src.PageURL(page), nil
}

// Fetch returns the documentation page at url as markdown, serving from
// cache when a fresh record exists. Setting refresh bypasses the cache
// check; the result of a live fetch always replaces the cached record.
func (s *Service) Fetch(ctx context.Context, url string, refresh bool) (*nvdocs.Document, error) {
	key := s.Cache.Key(url)

	if !refresh && s.Cache.Valid(key) {
		if doc, err := s.Cache.Read(ctx, key); err == nil {
			doc.FromCache = true
			return doc, nil
		}
		// An unreadable record falls through to a live fetch.
	}

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, unavailable(err)
	}

	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, unavailable(err)
	}

	markdown, err := s.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, unavailable(err)
	}

	title := extracted.Title
	if title == "" {
		title = titleFromURL(url)
	}

	doc := &nvdocs.Document{
		URL:       url,
		Title:     title,
		Content:   nvdocs.CollapseBlankLines(markdown),
		FetchedAt: time.Now().UTC(),
	}

	if err := s.Cache.Write(ctx, key, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// Search scans documentation pages for query and returns matching
// documents with excerpt paragraphs. A document is reported only when
// the query falls inside at least one blank-line paragraph. With no
// topics given, every registered topic is swept. Unknown topics and
// pages that fail to fetch are skipped rather than failing the whole
// search. Pages are processed sequentially, in registry order, reusing
// the cache via Fetch.
func (s *Service) Search(ctx context.Context, query string, topics []string) ([]*nvdocs.Match, error) {
	if len(topics) == 0 {
		topics = s.Registry.Topics()
	}

	queryLower := strings.ToLower(query)

	var matches []*nvdocs.Match
	for _, topic := range topics {
		src, err := s.Registry.Lookup(topic)
		if err != nil {
			continue
		}

		for _, page := range src.Pages {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			url := src.PageURL(page)
			doc, err := s.Fetch(ctx, url, false)
			if err != nil {
				continue
			}

			if !strings.Contains(strings.ToLower(doc.Content), queryLower) {
				continue
			}

			paras := nvdocs.MatchParagraphs(doc.Content, query)
			if len(paras) == 0 {
				continue
			}

			matches = append(matches, &nvdocs.Match{
				Source:     src.Name,
				Title:      doc.Title,
				URL:        url,
				Paragraphs: paras,
			})
		}
	}

	return matches, nil
}

// ClearCache removes every cached document and reports how many were
// removed.
func (s *Service) ClearCache(ctx context.Context) (int, error) {
	return s.Cache.Clear(ctx)
}

// unavailable classifies pipeline failures as EUNAVAILABLE unless they
// already carry an application error code.
func unavailable(err error) error {
	var e *nvdocs.Error
	if errors.As(err, &e) {
		return err
	}
	return nvdocs.Errorf(nvdocs.EUNAVAILABLE, "%v", err)
}

// titleFromURL derives a display title from the last path segment of a
// URL, for pages that carry no <title> of their own.
func titleFromURL(url string) string {
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}
