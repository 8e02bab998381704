package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/clients"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
)

// ErrorResponse is the common shape of error bodies returned by external
// services. Both the nested and flat variants are supported.
type ErrorResponse struct {
	// Nested format: {"error": {"code": "...", "message": "..."}}
	Error *ErrorDetail `json:"error,omitempty"`

	// Flat format: {"code": "...", "message": "..."}
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`

	// Clerk-style format: {"errors": [{"code": "...", "message": "..."}]}
	Errors []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail holds the code and message of a single external error.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GetCode returns the error code regardless of which format was used.
func (e *ErrorResponse) GetCode() string {
	if e.Error != nil {
		return e.Error.Code
	}
	if len(e.Errors) > 0 {
		return e.Errors[0].Code
	}

	return e.Code
}

// GetMessage returns the error message regardless of which format was used.
func (e *ErrorResponse) GetMessage() string {
	if e.Error != nil {
		return e.Error.Message
	}
	if len(e.Errors) > 0 {
		return e.Errors[0].Message
	}

	return e.Message
}

// ParseErrorResponse attempts to decode an external error body.
// Returns nil if the body cannot be parsed.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err != nil {
		return nil
	}

	return &errResp
}

// MapHTTPError translates an external HTTP failure into a domain error.
// Exactly one of resp or clientErr should be non-nil: clientErr covers
// transport-level failures (timeouts, circuit breaker, retries exhausted),
// resp covers non-2xx responses.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("%s: no response", operation))
	}

	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	errResp := ParseErrorResponse(resp.Body)

	return mapStatusCode(resp.StatusCode, errResp, serviceName, operation)
}

// mapClientError translates transport-level client errors.
func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("%s: circuit breaker open", operation))
	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("%s: max retries exceeded", operation))
	default:
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("%s: %v", operation, err))
	}
}

// mapStatusCode translates HTTP status codes to domain errors.
func mapStatusCode(status int, errResp *ErrorResponse, serviceName, operation string) error {
	message := operation
	if errResp != nil && errResp.GetMessage() != "" {
		message = errResp.GetMessage()
	}

	switch status {
	case http.StatusNotFound:
		return domain.NewNotFoundError(serviceName, operation)

	case http.StatusUnauthorized:
		return domain.NewUnauthenticatedError(message)

	case http.StatusForbidden:
		return domain.NewForbiddenError(operation)

	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		field := operation
		if errResp != nil && errResp.GetCode() != "" {
			field = errResp.GetCode()
		}

		return domain.NewValidationError(field, message)

	case http.StatusTooManyRequests:
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("%s: rate limited", operation))

	default:
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("%s: status %d", operation, status))
	}
}
