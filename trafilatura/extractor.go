// Package trafilatura provides the default content extractor, backed by
// the go-trafilatura port of the trafilatura scraping library.
package trafilatura

import (
	"bytes"
	"errors"
	"strings"

	"github.com/fwojciec/nvdocs"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements nvdocs.Extractor at compile time.
var _ nvdocs.Extractor = (*Extractor)(nil)

// Extractor isolates the body of a documentation page using
// trafilatura's content heuristics, with fallback scoring enabled.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content region of a documentation page as
// HTML, along with the title found in the page metadata. A page where
// no region survives scoring yields an empty ContentHTML.
func (e *Extractor) Extract(rawHTML string) (*nvdocs.ExtractResult, error) {
	if rawHTML == "" {
		return nil, errors.New("empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &nvdocs.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode serializes the extracted content tree back to HTML for the
// markdown converter to consume.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
