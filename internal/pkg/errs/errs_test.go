//go:build unit

package errs_test

import (
	"errors"
	"strings"
	"testing"

	"ticket-monarch/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := errs.Mark(errs.Wrap(cause, "write selection"), errs.ErrStoreOperationFailed)

	assert.ErrorIs(t, err, errs.ErrStoreOperationFailed)
	assert.ErrorIs(t, err, cause)
	assert.True(t, cr.Is(err, errs.ErrStoreOperationFailed))
	assert.False(t, errors.Is(err, errs.ErrBackendUnavailable))
	assert.Equal(t, "write selection: dial tcp: refused", err.Error())

	assert.Equal(t, errs.ErrInvalidOrder, errs.Mark(nil, errs.ErrInvalidOrder))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "x"))
	assert.NoError(t, errs.Wrapf(nil, "x %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Mark(errs.New("boom"), errs.ErrBackendUnavailable)

	lines := errs.ExtractStackLines(err, 3)
	assert.Len(t, lines, 3)
	assert.True(t, strings.Contains(strings.Join(errs.ExtractStackLines(err, 0), "\n"), "boom"))
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
