//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders checks exact header values. An empty expected value asserts absence.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for name, want := range expected {
		got := w.Header().Get(name)
		if want == "" {
			assert.Empty(t, got, "header %s should not be set", name)
			continue
		}
		assert.Equal(t, want, got, "header %s", name)
	}
}

// AssertHeaderLists checks that a comma-separated header such as
// Access-Control-Allow-Headers carries every listed token.
func AssertHeaderLists(t *testing.T, w *httptest.ResponseRecorder, name string, tokens ...string) {
	t.Helper()
	var present []string
	for _, part := range strings.Split(w.Header().Get(name), ",") {
		present = append(present, strings.ToLower(strings.TrimSpace(part)))
	}
	for _, tok := range tokens {
		assert.Contains(t, present, strings.ToLower(tok), "header %s lacks %s", name, tok)
	}
}
