package main

import (
	"fmt"

	"github.com/fwojciec/nvdocs"
)

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, nvdocs.OfficialLinks())
	return nil
}
