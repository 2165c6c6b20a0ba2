package helpers

import (
	"encoding/json"
	"net/http"

	"devportal/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeUnauthorized  = "unauthorized"
	ErrCodeForbidden     = "forbidden"
	ErrCodeNotFound      = "not_found"
	ErrCodeConflict      = "conflict"
	ErrCodeUnavailable   = "unavailable"
	ErrCodeInternalError = "internal_error"
)

// APIError is the error object in the standardized API response envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the standardized envelope for API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// ErrorResponse is the bare error body of the account request routes.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// WriteJSON writes v as the JSON body with statusCode.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, APIResponse{Data: data, Error: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, APIResponse{
		Data:  nil,
		Error: &APIError{Code: code, Message: message},
	})
}

// MakeErrorResponse derives the bare error body from err. Only the structured detail
// of a domain error is exposed; anything else becomes a generic message.
func MakeErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Message: domain.MessageOf(err),
		Code:    ErrCodeFor(err),
	}
}

// StatusFor maps a domain error kind to an HTTP status.
func StatusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindInvalidArgument:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrCodeFor maps a domain error kind to an API error code.
func ErrCodeFor(err error) string {
	switch domain.KindOf(err) {
	case domain.KindInvalidArgument:
		return ErrCodeBadRequest
	case domain.KindNotFound:
		return ErrCodeNotFound
	case domain.KindConflict:
		return ErrCodeConflict
	case domain.KindUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternalError
	}
}
