package api

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/curatorapp/curator-server/internal/errors"
)

// APIError is a custom error type that implements huma.StatusError. The wire
// shape is a single-key object: {"error": "<message>"}. Codes and details
// stay in the logs; clients only see the message.
type APIError struct { //nolint:revive // API prefix is intentional for clarity
	status  int
	Message string `json:"error" doc:"Human-readable error message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

// RegisterErrorHandler configures huma to use domain errors.
// Call this after creating the huma.API but before registering routes.
func RegisterErrorHandler() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		// Domain errors carry their own status and a message safe to show.
		for _, err := range errs {
			var domainErr *domainerrors.Error
			if errors.As(err, &domainErr) {
				return &APIError{
					status:  domainErr.HTTPStatus(),
					Message: domainErr.Message,
				}
			}
		}

		return &APIError{
			status:  status,
			Message: message,
		}
	}
}
