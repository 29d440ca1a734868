package omdb

import "fmt"

// HTTPStatusError reports a non-2xx response from the lookup endpoint.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "omdb: HTTP status error"
	}
	return fmt.Sprintf("omdb returned HTTP %d", e.StatusCode)
}

// DecodeError reports a response body that is not a JSON object.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	if e == nil || e.Err == nil {
		return "omdb: decode response"
	}
	return fmt.Sprintf("omdb: decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
