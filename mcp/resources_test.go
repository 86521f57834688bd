package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_handleSourcesResource(t *testing.T) {
	t.Parallel()

	server, err := NewServer(testConfig(t))
	require.NoError(t, err)

	req := &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uriScheme + "sources",
		},
	}

	result, err := server.handleSourcesResource(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, uriScheme+"sources", result.Contents[0].URI)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var infos []struct {
		Topic   string   `json:"topic"`
		Name    string   `json:"name"`
		BaseURL string   `json:"baseUrl"`
		Pages   []string `json:"pages"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "rdma", infos[0].Topic)
	assert.Equal(t, "RDMA Documentation", infos[0].Name)
	assert.Equal(t, "https://example.com/rdma", infos[0].BaseURL)
	assert.Equal(t, []string{"", "/install"}, infos[0].Pages)
}
