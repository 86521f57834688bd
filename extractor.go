package nvdocs

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page's declared title. May be empty; callers fall back
	// to the URL when it is.
	Title string

	// ContentHTML is the primary content region as clean HTML.
	// Boilerplate chrome (nav, header, footer, script, style, aside)
	// has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the primary content region.
	// Returns EUNAVAILABLE if no content region can be located.
	Extract(html string) (*ExtractResult, error)
}
