// Package mcp provides an MCP (Model Context Protocol) server exposing
// NVIDIA networking documentation tools to AI assistants.
package mcp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/nvdocs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Config aggregates the dependencies required by the MCP server.
type Config struct {
	// Registry holds the documentation sources exposed by the server.
	Registry *nvdocs.Registry

	// Docs performs fetching, searching, and cache maintenance.
	Docs nvdocs.DocService

	// CacheDir is reported in cache-clearing output.
	CacheDir string
}

// Validate ensures all required dependencies are set.
func (c *Config) Validate() error {
	if c.Registry == nil {
		return ErrMissingRegistry
	}
	if c.Docs == nil {
		return ErrMissingDocService
	}
	return nil
}

// Server is the MCP server for nvdocs.
type Server struct {
	cfg    *Config
	server *mcp.Server
}

// NewServer creates a new MCP server with the given config.
func NewServer(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "nvdocs",
		Version: Version,
	}

	s := &Server{
		cfg:    cfg,
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
