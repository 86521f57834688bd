package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/nvdocs"
)

// Ensure Converter implements nvdocs.Converter at compile time.
var _ nvdocs.Converter = (*Converter)(nil)

// Converter renders an extracted content region as the markdown that is
// cached and returned to callers. Headings, lists, code blocks, and
// tables survive the conversion.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a Converter with the base, commonmark, and table
// plugins enabled.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert renders an HTML content region as markdown. Blank input is
// EINVALID.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nvdocs.Errorf(nvdocs.EINVALID, "empty HTML input")
	}

	return c.conv.ConvertString(html)
}
