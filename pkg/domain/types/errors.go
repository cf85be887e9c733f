package types

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption = goerr.New("invalid option")

	// ErrTransport means the resource could not be retrieved at all (DNS,
	// connection refused, reset, ...).
	ErrTransport = goerr.New("transport failure")

	// ErrEmptyContent means the resource was retrieved but only contained
	// whitespace.
	ErrEmptyContent = goerr.New("content is empty")

	// ErrParse means the response body could not be decoded.
	ErrParse = goerr.New("malformed response")
)

// StatusError is returned when a retrieval got a non-2xx response.
type StatusError struct {
	Code int
	Text string

	// Detailed switches the message format to include the status text,
	// as used by the repository listing.
	Detailed bool
}

func (x *StatusError) Error() string {
	if x.Detailed {
		return fmt.Sprintf("HTTP %d: %s", x.Code, x.Text)
	}
	return fmt.Sprintf("HTTP error! status: %d", x.Code)
}
