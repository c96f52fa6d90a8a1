package api

import (
	"errors"
	"fmt"
)

// TransportError reports a failure where no usable backend response exists:
// the request never completed, or the body could not be parsed as JSON.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("api: transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RequestError reports a backend response with a failure status. Message is
// the backend's "error" field when present, else a generic fallback.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("api: request failed (%d): %s", e.Status, e.Message)
}

// ValidationError marks a client-side precondition failure. No network call
// was made when this error is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UserMessage extracts a short message suitable for rendering in the
// affected page region.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Message
	}
	var transErr *TransportError
	if errors.As(err, &transErr) {
		return "Could not reach the server. Try again."
	}
	return "Something went wrong. Try again."
}
