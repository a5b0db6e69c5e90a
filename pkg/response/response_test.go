package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Created", map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeBody(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Created", resp.Message)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusConflict, "Already exists", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)

	resp := decodeBody(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Already exists", resp.Message)
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"Email": "Email is required"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.NotNil(t, resp.Error)
}

func TestStatusHelpers(t *testing.T) {
	tests := []struct {
		name       string
		fn         func(http.ResponseWriter, string)
		message    string
		wantStatus int
		wantMsg    string
	}{
		{"unauthorized", Unauthorized, "Invalid token", http.StatusUnauthorized, "Invalid token"},
		{"unauthorized default", Unauthorized, "", http.StatusUnauthorized, "Unauthorized"},
		{"not found", NotFound, "Booking not found", http.StatusNotFound, "Booking not found"},
		{"not found default", NotFound, "", http.StatusNotFound, "Resource not found"},
		{"forbidden", Forbidden, "", http.StatusForbidden, "Forbidden"},
		{"internal", InternalServerError, "", http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.fn(rec, tt.message)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeBody(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestSuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, http.StatusOK, "OK", []int{1, 2, 3}, &Meta{PageSize: 10, UpcomingTotal: 2, HistoryTotal: 1})

	resp := decodeBody(t, rec)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 10, resp.Meta.PageSize)
	assert.Equal(t, 2, resp.Meta.UpcomingTotal)
	assert.Equal(t, 1, resp.Meta.HistoryTotal)
	assert.Zero(t, resp.Meta.ExcludedRecords)
}
