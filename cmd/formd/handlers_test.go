package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Redwolfer/satkit/validate/ruleset"
)

const testRules = `
rules:
  - {field: name, rule: required}
  - {field: name, rule: max_len, max_len: 100}
  - {field: email, rule: required}
  - {field: email, rule: email}
  - {field: age, rule: range, min: 18, max: 99}
`

func newTestHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	rules, err := ruleset.Parse(strings.NewReader(testRules))
	require.NoError(t, err)
	return handleValidate(slog.New(slog.NewTextHandler(io.Discard, nil)), rules)
}

func postForm(handler http.Handler, values url.Values) *httptest.ResponseRecorder {
	r := httptest.NewRequest("POST", "/validate", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func TestHandleValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid form", func(t *testing.T) {
		t.Parallel()

		w := postForm(newTestHandler(t), url.Values{
			"name":  {"Ada"},
			"email": {"ada@example.com"},
			"age":   {"30"},
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp validateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.OK)
		assert.Empty(t, resp.Errors)
	})

	t.Run("invalid form returns every failed field", func(t *testing.T) {
		t.Parallel()

		w := postForm(newTestHandler(t), url.Values{
			"name":  {"Ada"},
			"email": {"nope"},
			"age":   {"17"},
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp validateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.OK)
		assert.Equal(t, "validation failed", resp.Error)
		require.Len(t, resp.Errors, 2)
		assert.Equal(t, "email", resp.Errors[0].Field)
		assert.Equal(t, "age", resp.Errors[1].Field)
	})

	t.Run("empty required field fails despite passing its length cap", func(t *testing.T) {
		t.Parallel()

		w := postForm(newTestHandler(t), url.Values{
			"name":  {""},
			"email": {"ada@example.com"},
			"age":   {"30"},
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp validateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "name", resp.Errors[0].Field)
		assert.Equal(t, "field is required", resp.Errors[0].Message)
	})

	t.Run("form missing a declared field is a bad request", func(t *testing.T) {
		t.Parallel()

		w := postForm(newTestHandler(t), url.Values{"email": {"ada@example.com"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, requestIDFrom(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("generates an ID", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		requestID(inner).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("honors upstream ID", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Request-ID", "upstream-1")
		w := httptest.NewRecorder()
		requestID(inner).ServeHTTP(w, r)
		assert.Equal(t, "upstream-1", w.Header().Get("X-Request-ID"))
	})
}
