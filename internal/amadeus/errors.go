package amadeus

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the flight-offers API.
type APIError struct {
	Status int
	Title  string
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("amadeus API error (status %d): %s", e.Status, e.Title)
	}
	return fmt.Sprintf("amadeus API error (status %d): %s: %s", e.Status, e.Title, e.Detail)
}

// Temporary reports whether retrying later may succeed.
func (e *APIError) Temporary() bool {
	return e.Status == http.StatusTooManyRequests || e.Status >= http.StatusInternalServerError
}

// newAPIError builds an APIError from a response body, falling back to the
// HTTP status text when the body is not the documented error shape.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Title: http.StatusText(status)}

	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil && len(resp.Errors) > 0 {
		first := resp.Errors[0]
		if first.Title != "" {
			apiErr.Title = first.Title
		}
		apiErr.Detail = first.Detail
	}
	return apiErr
}
