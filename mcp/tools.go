package mcp

import (
	"context"

	"github.com/fwojciec/nvdocs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FetchInput is the input schema for the fetch-doc tool.
type FetchInput struct {
	Topic        string `json:"topic" jsonschema:"documentation topic, one of: connectx7, doca, vma, rdma, mlnx_ofed, mlx5_kernel, dpdk_mlx5"`
	Page         string `json:"page,omitempty" jsonschema:"specific page path (optional, defaults to the main page)"`
	ForceRefresh bool   `json:"forceRefresh,omitempty" jsonschema:"force refresh ignoring the cache"`
}

// SearchInput is the input schema for the search-docs tool.
type SearchInput struct {
	Query  string   `json:"query" jsonschema:"search text (case-insensitive)"`
	Topics []string `json:"topics,omitempty" jsonschema:"topics to search (default: all)"`
}

// ListInput is the input schema for the list-docs tool.
type ListInput struct{}

// ClearInput is the input schema for the clear-cache tool.
type ClearInput struct{}

// LinksInput is the input schema for the get-links tool.
type LinksInput struct{}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "fetch-doc",
		Description: "Fetch NVIDIA/Mellanox networking documentation for a topic as markdown",
	}, s.handleFetch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search-docs",
		Description: "Search across NVIDIA/Mellanox networking documentation",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list-docs",
		Description: "List all available documentation sources and their pages",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clear-cache",
		Description: "Clear all cached documentation files",
	}, s.handleClear)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get-links",
		Description: "Get official NVIDIA networking documentation links",
	}, s.handleLinks)
}

// handleFetch handles the fetch-doc tool invocation. Unknown topics and
// failed fetches are reported as text so the caller sees the reason
// rather than a protocol error.
func (s *Server) handleFetch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FetchInput,
) (*mcp.CallToolResult, any, error) {
	url, err := s.cfg.Docs.Resolve(input.Topic, input.Page)
	if err != nil {
		return textResult(nvdocs.ErrorMessage(err)), nil, nil
	}

	doc, err := s.cfg.Docs.Fetch(ctx, url, input.ForceRefresh)
	if err != nil {
		return textResult(nvdocs.FormatFetchError(url, err)), nil, nil
	}

	return textResult(nvdocs.FormatDocument(doc)), nil, nil
}

// handleSearch handles the search-docs tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, any, error) {
	matches, err := s.cfg.Docs.Search(ctx, input.Query, input.Topics)
	if err != nil {
		return nil, nil, err
	}

	return textResult(nvdocs.FormatSearchResults(input.Query, matches)), nil, nil
}

// handleList handles the list-docs tool invocation.
func (s *Server) handleList(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListInput,
) (*mcp.CallToolResult, any, error) {
	return textResult(nvdocs.FormatSources(s.cfg.Registry.Sources())), nil, nil
}

// handleClear handles the clear-cache tool invocation.
func (s *Server) handleClear(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ClearInput,
) (*mcp.CallToolResult, any, error) {
	count, err := s.cfg.Docs.ClearCache(ctx)
	if err != nil {
		return nil, nil, err
	}

	return textResult(nvdocs.FormatCacheCleared(count, s.cfg.CacheDir)), nil, nil
}

// handleLinks handles the get-links tool invocation.
func (s *Server) handleLinks(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ LinksInput,
) (*mcp.CallToolResult, any, error) {
	return textResult(nvdocs.OfficialLinks()), nil, nil
}

// textResult wraps a string as a text-only tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
