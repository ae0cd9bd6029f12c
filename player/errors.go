package player

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrConnection means the service could not be reached or rejected
	// the handshake.
	ErrConnection = errors.New("connection failed")
	// ErrSubscription means a device is missing or exclusively held.
	ErrSubscription = errors.New("subscription failed")
	// ErrConnectionLost means a read failed on an established connection.
	ErrConnectionLost = errors.New("lost connection to service")
	ErrNoData         = errors.New("no data received for device")
	ErrInvalidPose    = errors.New("invalid pose")
	ErrNotSubscribed  = errors.New("device not subscribed")
	ErrDisconnected   = errors.New("client is disconnected")
)

// StatusError is a non-success status returned by the service.
type StatusError struct {
	Method  string
	Code    int32
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed with code %d: %s", e.Method, e.Code, e.Message)
}

// kindError tags a failure with one of the sentinel errors above while
// keeping the underlying cause in the chain.
type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

func (e *kindError) Unwrap() error {
	return e.cause
}

func WithKind(kind error, cause error, format string, args ...interface{}) error {
	return &kindError{kind: kind, cause: errors.Wrapf(cause, format, args...)}
}
