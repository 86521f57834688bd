package nvdocs

import "strings"

// Search result bounds. Collection keeps at most MaxMatchParagraphs
// paragraphs per document; rendering shows at most MaxSearchDocuments
// documents and truncates each paragraph to MaxParagraphRunes runes.
const (
	MaxSearchDocuments = 10
	MaxMatchParagraphs = 2
	MaxParagraphRunes  = 500
)

// Match represents one document matched by a search sweep. Matches are
// transient; they are never persisted.
type Match struct {
	Source     string   // source display name
	Title      string   // document title
	URL        string   // full page URL
	Paragraphs []string // matching paragraphs in document order
}

// SplitParagraphs splits markdown content on blank-line boundaries.
func SplitParagraphs(content string) []string {
	return strings.Split(content, "\n\n")
}

// MatchParagraphs returns up to MaxMatchParagraphs paragraphs of content
// that contain query, compared case-insensitively, in document order.
// Returns nil when nothing matches.
func MatchParagraphs(content, query string) []string {
	queryLower := strings.ToLower(query)
	var matched []string
	for _, para := range SplitParagraphs(content) {
		if !strings.Contains(strings.ToLower(para), queryLower) {
			continue
		}
		matched = append(matched, para)
		if len(matched) == MaxMatchParagraphs {
			break
		}
	}
	return matched
}

// TruncateParagraph bounds a paragraph to max runes for display, appending
// "..." only when content was actually cut. Runes are preserved verbatim up
// to the bound.
func TruncateParagraph(para string, max int) string {
	runes := []rune(para)
	if len(runes) <= max {
		return para
	}
	return string(runes[:max]) + "..."
}
