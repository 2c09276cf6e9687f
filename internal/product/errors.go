package product

import (
	"errors"
	"fmt"
)

// RemoteError is a response received with a non-success status code. The
// body is kept verbatim for diagnostics; callers should treat it as opaque.
type RemoteError struct {
	Method string
	URL    string
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote: %s %s returned %d", e.Method, e.URL, e.Status)
}

// TransportError is a request that produced no response at all (DNS,
// connect, timeout). It wraps the underlying transport error.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AsRemoteError unwraps err into a RemoteError if there is one.
func AsRemoteError(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// IsTransportError reports whether err originated below the HTTP layer.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
