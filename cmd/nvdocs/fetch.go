package main

import (
	"fmt"

	"github.com/fwojciec/nvdocs"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	url, err := deps.Docs.Resolve(c.Topic, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nvdocs.ErrorMessage(err))
		return err
	}

	doc, err := deps.Docs.Fetch(deps.Ctx, url, c.Refresh)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nvdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, nvdocs.FormatDocument(doc))
	return nil
}
