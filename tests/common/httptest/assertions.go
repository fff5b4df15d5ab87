//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorBody mirrors the error envelope rendered by httperr.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body: %s", w.Body.String())
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) ErrorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String())

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	if expectedErrorMsg != "" {
		assert.Contains(t, body.Error.Message, expectedErrorMsg)
	}
	return body
}

// AssertFieldError checks that a 400 binding failure names field.
func AssertFieldError(t *testing.T, w *httptest.ResponseRecorder, field string) {
	t.Helper()

	body := AssertErrorResponse(t, w, 400, "Invalid request")
	for _, d := range body.Detail {
		if d.Field == field {
			return
		}
	}
	assert.Failf(t, "missing field error", "field %q not in %+v", field, body.Detail)
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}
