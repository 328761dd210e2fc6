//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaderSet fails for every name missing from the response headers.
func AssertHeaderSet(t *testing.T, w *httptest.ResponseRecorder, names ...string) {
	t.Helper()
	for _, name := range names {
		assert.NotEmpty(t, w.Header().Get(name), "header %s missing", name)
	}
}
