package errors

import (
	"fmt"
	"net/http"
)

// Message is the public message of every identity provider failure.
const Message = "Backend resources exception occurred"

// BackendResourcesError is the single domain error raised for identity provider failures.
// Message is returned to the caller verbatim, Status is the HTTP status of the response.
type BackendResourcesError struct {
	Message        string
	Status         int
	ProviderStatus int
	cause          error
}

// Wrap turns a transport or provider error into a BackendResourcesError answered with 500.
func Wrap(cause error) *BackendResourcesError {
	return &BackendResourcesError{
		Message: Message,
		Status:  http.StatusInternalServerError,
		cause:   cause,
	}
}

// FromProviderStatus maps a non-2xx provider status. Client and server errors keep their
// status, anything else becomes 500.
func FromProviderStatus(providerStatus int) *BackendResourcesError {
	status := providerStatus
	if providerStatus < http.StatusBadRequest || providerStatus > 599 {
		status = http.StatusInternalServerError
	}

	return &BackendResourcesError{
		Message:        Message,
		Status:         status,
		ProviderStatus: providerStatus,
	}
}

func (e *BackendResourcesError) Error() string {
	switch {
	case e.ProviderStatus != 0:
		return fmt.Sprintf("%s: identity provider responded with status %d", e.Message, e.ProviderStatus)
	case e.cause != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	default:
		return e.Message
	}
}

func (e *BackendResourcesError) Unwrap() error {
	return e.cause
}
