package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for nvdocs resources.
const uriScheme = "nvdocs://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sources",
		Name:        "sources",
		Description: "Registered documentation sources and their page paths",
		MIMEType:    "application/json",
	}, s.handleSourcesResource)
}

// handleSourcesResource returns the registered sources as JSON.
func (s *Server) handleSourcesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type sourceInfo struct {
		Topic   string   `json:"topic"`
		Name    string   `json:"name"`
		BaseURL string   `json:"baseUrl"`
		Pages   []string `json:"pages"`
	}

	sources := s.cfg.Registry.Sources()
	infos := make([]sourceInfo, len(sources))
	for i, src := range sources {
		infos[i] = sourceInfo{
			Topic:   src.Topic,
			Name:    src.Name,
			BaseURL: src.BaseURL,
			Pages:   src.Pages,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sources: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
