package mock

import "github.com/fwojciec/nvdocs"

var _ nvdocs.Converter = (*Converter)(nil)

// Converter is a mock implementation of nvdocs.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
