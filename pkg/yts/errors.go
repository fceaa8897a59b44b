package yts

import (
	"fmt"
	"strconv"
)

// InvalidRequestError reports bad request parameters, detected before any
// network call is made.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "invalid request: " + e.Reason
}

// NetworkError reports a transport-level failure where no HTTP response was
// obtained (timeout, DNS, connection refused).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError reports a non-2xx response from YouTube.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return "http status " + strconv.Itoa(e.Status)
}

// SearchError is the top-level failure type returned by Client. ResponseCode
// carries the HTTP status when a response was obtained, 0 otherwise. The
// underlying NetworkError or HTTPError remains reachable via errors.As.
type SearchError struct {
	Message      string
	ResponseCode int
	Err          error
}

func (e *SearchError) Error() string {
	if e.ResponseCode != 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.ResponseCode)
	}
	return e.Message
}

func (e *SearchError) Unwrap() error { return e.Err }
