package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/nvdocs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Registry *nvdocs.Registry
	Docs     nvdocs.DocService
	CacheDir string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve      ServeCmd      `cmd:"" help:"Run the MCP server"`
	Fetch      FetchCmd      `cmd:"" help:"Fetch a documentation page as markdown"`
	Search     SearchCmd     `cmd:"" help:"Search across documentation sources"`
	List       ListCmd       `cmd:"" help:"List documentation sources and their pages"`
	ClearCache ClearCacheCmd `cmd:"" name:"clear-cache" help:"Remove all cached documentation"`
	Links      LinksCmd      `cmd:"" help:"Show official documentation links"`

	CacheDir  string        `placeholder:"DIR" help:"Cache directory (default: user cache dir, or NVDOCS_CACHE_DIR)"`
	Timeout   time.Duration `default:"30s" help:"HTTP fetch timeout"`
	Extractor string        `enum:"selector,trafilatura,readability" default:"selector" help:"Content extraction engine"`
	Verbose   bool          `short:"v" help:"Log fetch and cache operations to stderr"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Port int `short:"p" help:"HTTP port to listen on (0 = stdio transport)"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Topic   string `arg:"" help:"Documentation topic"`
	Page    string `arg:"" optional:"" help:"Page path (defaults to the main page)"`
	Refresh bool   `short:"r" help:"Force refresh ignoring the cache"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query  string   `arg:"" help:"Search query"`
	Topics []string `short:"t" name:"topic" help:"Restrict search to a topic (repeatable)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ClearCacheCmd is the "clear-cache" subcommand.
type ClearCacheCmd struct{}

// LinksCmd is the "links" subcommand.
type LinksCmd struct{}
