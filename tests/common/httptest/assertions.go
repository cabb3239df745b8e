//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorEnvelope is the body every failed request is rendered with.
type ErrorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail struct {
		Remaining *int `json:"remaining"`
	} `json:"detail"`
}

// AssertSuccessResponse checks the status and, for 2xx with a target,
// decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, status int, target any) {
	t.Helper()

	if !assert.Equal(t, status, w.Code, "body: %s", w.Body.String()) {
		return
	}
	if target == nil || status < http.StatusOK || status >= http.StatusMultipleChoices {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error message contains
// msg. An empty msg skips the message check.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) ErrorEnvelope {
	t.Helper()

	assert.Equal(t, status, w.Code, "body: %s", w.Body.String())

	var env ErrorEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	if msg != "" {
		assert.Contains(t, env.Error.Message, msg)
	}
	return env
}

// AssertUnavailable checks a 409 that carries the exact remaining quantity.
func AssertUnavailable(t *testing.T, w *httptest.ResponseRecorder, remaining int) {
	t.Helper()

	env := AssertErrorResponse(t, w, http.StatusConflict, "")
	require.NotNil(t, env.Detail.Remaining, "remaining missing: %s", w.Body.String())
	assert.Equal(t, remaining, *env.Detail.Remaining)
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, want map[string]string) {
	t.Helper()
	for k, v := range want {
		assert.Equal(t, v, w.Header().Get(k), "header %s", k)
	}
}
