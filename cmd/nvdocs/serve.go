package main

import (
	"fmt"

	"github.com/fwojciec/nvdocs/mcp"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server, err := mcp.NewServer(&mcp.Config{
		Registry: deps.Registry,
		Docs:     deps.Docs,
		CacheDir: deps.CacheDir,
	})
	if err != nil {
		return err
	}

	if c.Port > 0 {
		addr := fmt.Sprintf(":%d", c.Port)
		fmt.Fprintf(deps.Stdout, "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(deps.Ctx, addr)
	}

	return server.Run(deps.Ctx)
}
