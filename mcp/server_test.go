package mcp

import (
	"testing"

	"github.com/fwojciec/nvdocs"
	"github.com/fwojciec/nvdocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *Config {
	t.Helper()

	reg, err := nvdocs.NewRegistry(
		nvdocs.Source{
			Topic:   "rdma",
			Name:    "RDMA Documentation",
			BaseURL: "https://example.com/rdma",
			Pages:   []string{"", "/install"},
		},
	)
	require.NoError(t, err)

	return &Config{
		Registry: reg,
		Docs:     &mock.DocService{},
		CacheDir: "/tmp/nvdocs-cache",
	}
}

func TestNewServer(t *testing.T) {
	t.Parallel()

	t.Run("nil registry returns error", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig(t)
		cfg.Registry = nil

		server, err := NewServer(cfg)

		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingRegistry)
	})

	t.Run("nil doc service returns error", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig(t)
		cfg.Docs = nil

		server, err := NewServer(cfg)

		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingDocService)
	})

	t.Run("valid config creates server", func(t *testing.T) {
		t.Parallel()

		server, err := NewServer(testConfig(t))

		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("missing registry", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig(t)
		cfg.Registry = nil
		assert.ErrorIs(t, cfg.Validate(), ErrMissingRegistry)
	})

	t.Run("missing doc service", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig(t)
		cfg.Docs = nil
		assert.ErrorIs(t, cfg.Validate(), ErrMissingDocService)
	})

	t.Run("complete config is valid", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, testConfig(t).Validate())
	})
}
