//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ErrorEnvelope mirrors httperr.Response on the wire.
type ErrorEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Code    string         `json:"code"`
	Data    map[string]any `json:"data"`
	Error   string         `json:"error"`
}

type successEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// AssertSuccessResponse checks the status and decodes the envelope's data into targetStruct.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 {
		var env successEnvelope
		if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String())) {
			return
		}
		assert.True(t, env.Success, "success flag must be true")
		if targetStruct != nil && len(env.Data) > 0 {
			assert.NoError(t, json.Unmarshal(env.Data, targetStruct), fmt.Sprintf("Failed to decode data: %s", env.Data))
		}
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) ErrorEnvelope {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var errorResponse ErrorEnvelope
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))
	assert.False(t, errorResponse.Success, "success flag must be false")

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
	return errorResponse
}

// AssertErrorCode checks status and machine code of a failure envelope.
func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) ErrorEnvelope {
	t.Helper()

	env := AssertErrorResponse(t, w, expectedStatus, "")
	assert.Equal(t, expectedCode, env.Code, "error code mismatch")
	return env
}

// AssertSuccessMessage checks the human-readable message of a success envelope.
func AssertSuccessMessage(t *testing.T, w *httptest.ResponseRecorder, expectedMsg string) {
	t.Helper()

	var env successEnvelope
	if assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env)) {
		assert.Equal(t, expectedMsg, env.Message)
	}
}
