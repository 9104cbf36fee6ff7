package downstream

import "fmt"

// APIError is the failure signal from the sales-data service. It carries the
// HTTP status and response body the service returned. The gateway treats it
// as opaque: every APIError, regardless of status, is normalized to the same
// external error shape at the dispatch boundary.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("downstream service returned status %d: %s", e.StatusCode, e.Body)
}
