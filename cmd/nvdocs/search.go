package main

import (
	"fmt"

	"github.com/fwojciec/nvdocs"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	matches, err := deps.Docs.Search(deps.Ctx, c.Query, c.Topics)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nvdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, nvdocs.FormatSearchResults(c.Query, matches))
	return nil
}
