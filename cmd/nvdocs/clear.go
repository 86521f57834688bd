package main

import (
	"fmt"

	"github.com/fwojciec/nvdocs"
)

// Run executes the clear-cache command.
func (c *ClearCacheCmd) Run(deps *Dependencies) error {
	count, err := deps.Docs.ClearCache(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nvdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, nvdocs.FormatCacheCleared(count, deps.CacheDir))
	return nil
}
