package opensky

import "fmt"

// TransportError reports a failure before any response was obtained.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("execute request: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a response whose status is outside 200..299.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("states endpoint returned status %d", e.StatusCode)
}

// MalformedResponseError reports a body that is not valid JSON.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
