package vendorapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a failed call to the vendor management service.
// It carries the operation name and either the HTTP status the server
// returned or the underlying transport failure.
type APIError struct {
	// Op is the operation that failed (e.g., "create vendor").
	Op string

	// StatusCode is the HTTP status, zero for transport failures.
	StatusCode int

	// Message is the response body, if the server sent one.
	Message string

	// Err is the underlying cause for transport failures.
	Err error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vendor api: %s: %v", e.Op, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("vendor api: %s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("vendor api: %s: status %d", e.Op, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error indicates the record does not exist
// remotely.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsTimeout checks if the error indicates the per-call timeout elapsed.
func IsTimeout(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && errors.Is(apiErr.Err, context.DeadlineExceeded)
}
