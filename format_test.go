package nvdocs_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/nvdocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDocument(t *testing.T) {
	t.Parallel()

	t.Run("fresh document", func(t *testing.T) {
		t.Parallel()

		doc := &nvdocs.Document{
			URL:       "https://docs.nvidia.com/doca/sdk",
			Title:     "DOCA SDK",
			Content:   "Overview of DOCA.",
			FetchedAt: time.Now(),
		}

		got := nvdocs.FormatDocument(doc)

		assert.Equal(t, "# DOCA SDK\n\nSource: https://docs.nvidia.com/doca/sdk (fresh)\n\nOverview of DOCA.", got)
	})

	t.Run("cached document", func(t *testing.T) {
		t.Parallel()

		doc := &nvdocs.Document{
			URL:       "https://docs.nvidia.com/doca/sdk",
			Title:     "DOCA SDK",
			Content:   "Overview of DOCA.",
			FetchedAt: time.Now(),
			FromCache: true,
		}

		got := nvdocs.FormatDocument(doc)

		assert.Contains(t, got, "Source: https://docs.nvidia.com/doca/sdk (cached)")
	})
}

func TestFormatFetchError(t *testing.T) {
	t.Parallel()

	err := nvdocs.Errorf(nvdocs.EUNAVAILABLE, "HTTP 404 for https://example.com/docs")

	got := nvdocs.FormatFetchError("https://example.com/docs", err)

	assert.Equal(t, "Error fetching https://example.com/docs: HTTP 404 for https://example.com/docs", got)
}

func TestFormatSearchResults(t *testing.T) {
	t.Parallel()

	t.Run("no results line when empty", func(t *testing.T) {
		t.Parallel()

		got := nvdocs.FormatSearchResults("kernel bypass", nil)

		assert.Equal(t, "No results found for 'kernel bypass'", got)
	})

	t.Run("renders heading, URL, and quoted paragraphs", func(t *testing.T) {
		t.Parallel()

		matches := []*nvdocs.Match{
			{
				Source:     "RDMA Programming Guide",
				Title:      "RDMA Verbs API",
				URL:        "https://docs.nvidia.com/networking/display/RDMAAwareProgrammingv17/RDMA+Verbs+API",
				Paragraphs: []string{"QP state transitions.", "Verbs overview."},
			},
		}

		got := nvdocs.FormatSearchResults("QP state", matches)

		assert.Contains(t, got, "# Search Results: 'QP state'\n")
		assert.Contains(t, got, "## RDMA Programming Guide - RDMA Verbs API")
		assert.Contains(t, got, "URL: https://docs.nvidia.com/networking/display/RDMAAwareProgrammingv17/RDMA+Verbs+API\n")
		assert.Contains(t, got, "> QP state transitions.\n")
		assert.Contains(t, got, "> Verbs overview.\n")
	})

	t.Run("shows at most ten documents", func(t *testing.T) {
		t.Parallel()

		var matches []*nvdocs.Match
		for i := 0; i < 15; i++ {
			matches = append(matches, &nvdocs.Match{
				Source:     "VMA User Manual",
				Title:      fmt.Sprintf("Page %d", i),
				URL:        fmt.Sprintf("https://example.com/%d", i),
				Paragraphs: []string{"hit"},
			})
		}

		got := nvdocs.FormatSearchResults("hit", matches)

		assert.Equal(t, nvdocs.MaxSearchDocuments, strings.Count(got, "## "))
		assert.Contains(t, got, "Page 9")
		assert.NotContains(t, got, "Page 10")
	})

	t.Run("truncates long paragraphs with a marker", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", nvdocs.MaxParagraphRunes+100)
		matches := []*nvdocs.Match{
			{Source: "DOCA SDK", Title: "Overview", URL: "https://example.com", Paragraphs: []string{long}},
		}

		got := nvdocs.FormatSearchResults("a", matches)

		assert.Contains(t, got, strings.Repeat("a", nvdocs.MaxParagraphRunes)+"...")
		assert.NotContains(t, got, long)
	})
}

func TestFormatSources(t *testing.T) {
	t.Parallel()

	got := nvdocs.FormatSources(nvdocs.DefaultSources())

	require.True(t, strings.HasPrefix(got, "# Available Documentation Sources\n"))
	assert.Contains(t, got, "## ConnectX-7 User Manual (`connectx7`)")
	assert.Contains(t, got, "Base URL: https://docs.nvidia.com/networking/display/ConnectX7VPI")
	assert.Contains(t, got, "Pages: 9")
	assert.Contains(t, got, "## DPDK mlx5 Driver (`dpdk_mlx5`)")
	assert.Contains(t, got, "Pages: 1")
	assert.Contains(t, got, "## Usage Examples")
	assert.Contains(t, got, `fetch-doc("connectx7")`)
	assert.Contains(t, got, `search-docs("QP state", ["rdma", "vma"])`)
}

func TestFormatCacheCleared(t *testing.T) {
	t.Parallel()

	got := nvdocs.FormatCacheCleared(12, "/home/user/.cache/nvdocs")

	assert.Equal(t, "Cleared 12 cached documentation files from /home/user/.cache/nvdocs", got)
}

func TestOfficialLinks(t *testing.T) {
	t.Parallel()

	got := nvdocs.OfficialLinks()

	assert.True(t, strings.HasPrefix(got, "# Official NVIDIA/Mellanox Documentation Links"))
	assert.Contains(t, got, "https://docs.nvidia.com/doca/sdk/")
	assert.Contains(t, got, "https://github.com/linux-rdma/rdma-core")
	assert.Contains(t, got, "drivers/infiniband/hw/mlx5/")
}
