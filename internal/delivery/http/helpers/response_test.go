package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"devportal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusAndCodeFor(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid", domain.ErrInvalidEmail, http.StatusBadRequest, ErrCodeBadRequest},
		{"not found wrapped", fmt.Errorf("lookup: %w", domain.ErrNotFound), http.StatusNotFound, ErrCodeNotFound},
		{"conflict", domain.ErrDuplicateEmail, http.StatusConflict, ErrCodeConflict},
		{"unavailable", domain.E(domain.KindUnavailable, "mail down"), http.StatusServiceUnavailable, ErrCodeUnavailable},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, StatusFor(tt.err))
			assert.Equal(t, tt.wantCode, ErrCodeFor(tt.err))
		})
	}
}

func TestMakeErrorResponse(t *testing.T) {
	assert.Equal(t, ErrorResponse{Message: "internal error", Code: ErrCodeInternalError}, MakeErrorResponse(errors.New("pq: connection refused")))
	assert.Equal(t, ErrorResponse{Message: "no pending request for user", Code: ErrCodeNotFound},
		MakeErrorResponse(domain.E(domain.KindNotFound, "no pending request for user")))
}

func TestWriteJSONError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONError(rr, http.StatusConflict, ErrCodeConflict, "email already in use")

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var body APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Nil(t, body.Data)
	require.NotNil(t, body.Error)
	assert.Equal(t, ErrCodeConflict, body.Error.Code)
	assert.Equal(t, "email already in use", body.Error.Message)
}

func TestWriteJSONSuccess(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONSuccess(rr, http.StatusCreated, map[string]string{"identityPoolId": "x"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"data":{"identityPoolId":"x"},"error":null}`, rr.Body.String())
}
