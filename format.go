package nvdocs

import (
	"fmt"
	"strings"
)

// FormatDocument renders a fetched document as markdown: a title heading,
// the source URL with its cache-freshness tag, and the content body.
func FormatDocument(doc *Document) string {
	status := "fresh"
	if doc.FromCache {
		status = "cached"
	}
	return fmt.Sprintf("# %s\n\nSource: %s (%s)\n\n%s", doc.Title, doc.URL, status, doc.Content)
}

// FormatFetchError renders a retrieval failure as a single error line
// naming the failed URL and the underlying cause.
func FormatFetchError(url string, err error) string {
	return fmt.Sprintf("Error fetching %s: %s", url, ErrorMessage(err))
}

// FormatSearchResults renders matches as a markdown result list: one heading
// block per matched document with its URL and quoted paragraph excerpts.
// At most MaxSearchDocuments documents are shown and each paragraph is
// truncated to MaxParagraphRunes runes. Returns a distinct no-results line
// when matches is empty.
func FormatSearchResults(query string, matches []*Match) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No results found for '%s'", query)
	}
	if len(matches) > MaxSearchDocuments {
		matches = matches[:MaxSearchDocuments]
	}

	out := []string{fmt.Sprintf("# Search Results: '%s'\n", query)}
	for _, m := range matches {
		out = append(out, fmt.Sprintf("## %s - %s", m.Source, m.Title))
		out = append(out, fmt.Sprintf("URL: %s\n", m.URL))
		for _, para := range m.Paragraphs {
			out = append(out, fmt.Sprintf("> %s\n", TruncateParagraph(para, MaxParagraphRunes)))
		}
	}

	return strings.Join(out, "\n")
}

// FormatSources renders the registry listing: every source with its display
// name, topic identifier, base URL, and page count, followed by static
// usage examples.
func FormatSources(sources []Source) string {
	out := []string{"# Available Documentation Sources\n"}

	for _, src := range sources {
		out = append(out, fmt.Sprintf("## %s (`%s`)", src.Name, src.Topic))
		out = append(out, fmt.Sprintf("Base URL: %s", src.BaseURL))
		out = append(out, fmt.Sprintf("Pages: %d", len(src.Pages)))
		out = append(out, "")
	}

	out = append(out,
		"## Usage Examples",
		"```",
		`fetch-doc("connectx7")                      # Main page`,
		`fetch-doc("connectx7", "/Troubleshooting")  # Specific page`,
		`fetch-doc("rdma", "/RDMA+Verbs+API")        # RDMA API`,
		`search-docs("kernel bypass")                # Search all`,
		`search-docs("QP state", ["rdma", "vma"])    # Search specific topics`,
		"```",
	)

	return strings.Join(out, "\n")
}

// FormatCacheCleared renders the cache-clear confirmation line.
func FormatCacheCleared(count int, dir string) string {
	return fmt.Sprintf("Cleared %d cached documentation files from %s", count, dir)
}
