package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/domain/entity"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusCreated, map[string]string{"id": "a-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "a-1", decodeBody(t, rec)["id"])
}

func TestJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestSafeError_SafeMessagePassesThrough(t *testing.T) {
	rec := httptest.NewRecorder()

	SafeError(rec, http.StatusBadRequest, errors.New("title is required"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "title is required", decodeBody(t, rec)["error"])
}

func TestSafeError_InternalDetailHidden(t *testing.T) {
	rec := httptest.NewRecorder()

	SafeError(rec, http.StatusInternalServerError, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	assert.Equal(t, "internal server error", decodeBody(t, rec)["error"])
}

func TestSafeError_500AlwaysGeneric(t *testing.T) {
	rec := httptest.NewRecorder()

	// Message contains a "safe" fragment but the status forces masking.
	SafeError(rec, http.StatusInternalServerError, errors.New("article not found in cache layer"))

	assert.Equal(t, "internal server error", decodeBody(t, rec)["error"])
}

func TestValidationFailed(t *testing.T) {
	rec := httptest.NewRecorder()

	ValidationFailed(rec, entity.ValidationErrors{
		{Field: "title", Message: "is required"},
		{Field: "body", Message: "is required"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "validation failed", body["error"])
	fields := body["fields"].(map[string]any)
	assert.Equal(t, "is required", fields["title"])
	assert.Equal(t, "is required", fields["body"])
}

func TestFromUsecase_SentinelMapping(t *testing.T) {
	sentinel := errors.New("article not found")
	rec := httptest.NewRecorder()

	FromUsecase(rec, sentinel, map[error]int{sentinel: http.StatusNotFound})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "article not found", decodeBody(t, rec)["error"])
}

func TestFromUsecase_ValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()

	FromUsecase(rec, entity.ValidationErrors{{Field: "email", Message: "is invalid"}}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFromUsecase_UnknownError(t *testing.T) {
	rec := httptest.NewRecorder()

	FromUsecase(rec, errors.New("pq: deadlock detected"), nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeBody(t, rec)["error"])
}
