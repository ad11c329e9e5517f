package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorWritesEnvelopeWithCannedMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body Failure
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, 404, body.Code)
	assert.Equal(t, "page not found", body.Message)
}

func TestErrorFallsBackToStatusText(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, http.StatusTeapot)

	var body Failure
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusText(http.StatusTeapot), body.Message)
}

func TestJSONWritesPayload(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusOK, map[string]any{"success": true})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}
