package feed

import (
	"errors"
	"fmt"
)

// Transport error kinds
var (
	ErrMalformedEndpoint = errors.New("malformed endpoint")
	ErrRequestFailed     = errors.New("request failed")
)

// TransportError describes a failed fetch. Kind is ErrMalformedEndpoint or ErrRequestFailed.
type TransportError struct {
	Kind       error
	URL        string // redacted
	StatusCode int    // set for non-2xx responses
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%v: HTTP %d from %s", e.Kind, e.StatusCode, e.URL)
	case e.Err != nil:
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.URL, e.Err)
	default:
		return fmt.Sprintf("%v: %s", e.Kind, e.URL)
	}
}

// Is matches the error kind so errors.Is(err, ErrRequestFailed) works
func (e *TransportError) Is(target error) bool {
	return target == e.Kind
}

func (e *TransportError) Unwrap() error { return e.Err }
