package nvdocs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/nvdocs"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := nvdocs.Errorf(nvdocs.ENOTFOUND, "topic %q not found", "foo")

	assert.Equal(t, nvdocs.ENOTFOUND, nvdocs.ErrorCode(err))
	assert.Equal(t, "topic \"foo\" not found", nvdocs.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, nvdocs.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, nvdocs.EINTERNAL, nvdocs.ErrorCode(errors.New("boom")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	inner := nvdocs.Errorf(nvdocs.EUNAVAILABLE, "connection refused")
	wrapped := fmt.Errorf("fetching page: %w", inner)

	assert.Equal(t, nvdocs.EUNAVAILABLE, nvdocs.ErrorCode(wrapped))
	assert.Equal(t, "connection refused", nvdocs.ErrorMessage(wrapped))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, nvdocs.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", nvdocs.ErrorMessage(errors.New("boom")))
}
