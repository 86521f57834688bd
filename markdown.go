package nvdocs

import "regexp"

var blankLineRuns = regexp.MustCompile(`\n{3,}`)

// CollapseBlankLines replaces every run of three or more newlines with
// exactly two, so paragraphs stay separated by a single blank line. The
// operation is cosmetic: it never removes or reorders non-blank content,
// and it is idempotent.
func CollapseBlankLines(s string) string {
	return blankLineRuns.ReplaceAllString(s, "\n\n")
}
