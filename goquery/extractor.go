package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/nvdocs"
)

// chromeSelectors matches the non-content page chrome stripped before
// content selection.
const chromeSelectors = "nav, header, footer, script, style, aside"

// contentSelectors is the fallback chain for locating the primary content
// region, tried in order.
var contentSelectors = []string{"main", "article", ".content", "#content", "body"}

// Ensure Extractor implements nvdocs.Extractor at compile time.
var _ nvdocs.Extractor = (*Extractor)(nil)

// Extractor locates the primary content region of a page using CSS
// selectors. Chrome elements (nav, header, footer, script, style, aside)
// are stripped first; the content region is the first non-empty match of
// main, article, .content, #content, or body.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the primary content region.
// Returns EUNAVAILABLE if every candidate region is empty.
func (e *Extractor) Extract(rawHTML string) (*nvdocs.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, nvdocs.Errorf(nvdocs.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, nvdocs.Errorf(nvdocs.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(chromeSelectors).Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())

	content := firstNonEmpty(doc, contentSelectors...)
	if content == nil {
		return nil, nvdocs.Errorf(nvdocs.EUNAVAILABLE, "no content found")
	}

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, err
	}

	return &nvdocs.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}

// firstNonEmpty returns the first selector match that has at least one
// child node. Regions emptied by chrome stripping fall through to the
// next selector.
func firstNonEmpty(doc *goquery.Document, selectors ...string) *goquery.Selection {
	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 && sel.Contents().Length() > 0 {
			return sel
		}
	}
	return nil
}
