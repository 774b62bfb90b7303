package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers transport failures and timeouts: the request
	// never produced a usable HTTP response.
	ErrUnavailable = errors.New("could not reach server")

	// ErrUnreadableResponse covers bodies that are neither valid JSON nor
	// usable text.
	ErrUnreadableResponse = errors.New("unreadable response from server")
)

// APIError is a non-2xx response from the backend. Message carries the
// server's own error text verbatim; the UI must not replace it with a
// generic one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return e.Message
}
