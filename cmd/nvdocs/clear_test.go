package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/nvdocs"
	main "github.com/fwojciec/nvdocs/cmd/nvdocs"
	"github.com/fwojciec/nvdocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearCacheCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports the number of files removed", func(t *testing.T) {
		t.Parallel()

		docSvc := &mock.DocService{
			ClearCacheFn: func(_ context.Context) (int, error) {
				return 4, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Docs:     docSvc,
			CacheDir: "/tmp/nvdocs-cache",
		}

		cmd := &main.ClearCacheCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Cleared 4 cached documentation files from /tmp/nvdocs-cache\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("returns error when clearing fails", func(t *testing.T) {
		t.Parallel()

		docSvc := &mock.DocService{
			ClearCacheFn: func(_ context.Context) (int, error) {
				return 0, nvdocs.Errorf(nvdocs.EINTERNAL, "permission denied")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Docs:   docSvc,
		}

		cmd := &main.ClearCacheCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Empty(t, stdout.String())
	})
}
