package main

import (
	"fmt"

	"github.com/fwojciec/nvdocs"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, nvdocs.FormatSources(deps.Registry.Sources()))
	return nil
}
