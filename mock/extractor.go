package mock

import "github.com/fwojciec/nvdocs"

var _ nvdocs.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of nvdocs.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*nvdocs.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*nvdocs.ExtractResult, error) {
	return e.ExtractFn(html)
}
