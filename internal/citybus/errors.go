package citybus

import (
	"fmt"
	"net/http"
)

// NetworkError is a transport-level failure reaching an API endpoint.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StatusError is a non-2xx response from an API endpoint.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	if e.Unauthorized() {
		return fmt.Sprintf("%s returned 401 Unauthorized - token may be expired", e.Endpoint)
	}
	return fmt.Sprintf("%s returned status %d", e.Endpoint, e.Code)
}

// Unauthorized reports the 401 case, which reads as "token expired or
// invalid" rather than a generic server failure.
func (e *StatusError) Unauthorized() bool { return e.Code == http.StatusUnauthorized }

// PayloadError is a 2xx response whose body could not be decoded.
type PayloadError struct {
	Endpoint string
	Err      error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("parsing %s response: %v", e.Endpoint, e.Err)
}

func (e *PayloadError) Unwrap() error { return e.Err }
