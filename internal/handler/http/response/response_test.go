package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccess_WrapsDataInEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "abc", body["data"].(map[string]interface{})["id"])
	assert.NotContains(t, body, "error")
}

func TestSuccessWithMeta_IncludesPagination(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, []string{"a"}, &Meta{Page: 2, Limit: 10, TotalItems: 31, TotalPages: 4})

	body := decodeBody(t, rec)
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, float64(2), meta["page"])
	assert.Equal(t, float64(31), meta["total_items"])
}

func TestValidationError_Returns422WithDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"email": "email is required"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errBody["code"])
	assert.Equal(t, "email is required", errBody["details"].(map[string]interface{})["email"])
}

func TestErrorHelpers_StatusAndCode(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantCode   string
	}{
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "nope", nil) }, http.StatusBadRequest, "BAD_REQUEST"},
		{"unauthorized", func(w http.ResponseWriter) { Unauthorized(w, "nope") }, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", func(w http.ResponseWriter) { Forbidden(w, "nope") }, http.StatusForbidden, "FORBIDDEN"},
		{"not found", func(w http.ResponseWriter) { NotFound(w, "nope") }, http.StatusNotFound, "NOT_FOUND"},
		{"conflict", func(w http.ResponseWriter) { Conflict(w, "nope") }, http.StatusConflict, "CONFLICT"},
		{"internal", func(w http.ResponseWriter) { InternalServerError(w, "nope") }, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantCode, body["error"].(map[string]interface{})["code"])
		})
	}
}

func TestWrite_UnencodableDataFallsBackTo500(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body["error"].(map[string]interface{})["code"])
}
