// Package readability provides an alternative content extractor backed
// by go-readability's Readability.js scoring.
package readability

import (
	"strings"

	"github.com/fwojciec/nvdocs"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements nvdocs.Extractor at compile time.
var _ nvdocs.Extractor = (*Extractor)(nil)

// Extractor isolates the readable portion of a documentation page,
// dropping navigation, banners, and footers.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the readable content of a documentation page as HTML,
// along with the article title. Empty input is EINVALID.
func (e *Extractor) Extract(rawHTML string) (*nvdocs.ExtractResult, error) {
	if rawHTML == "" {
		return nil, nvdocs.Errorf(nvdocs.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &nvdocs.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
