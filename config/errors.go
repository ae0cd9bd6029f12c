package config

import (
	"github.com/pkg/errors"
)

// ErrHelp is wrapped by the UsageError returned when --help is given.
var ErrHelp = errors.New("help requested")

// UsageError reports malformed startup arguments. Usage holds the help text
// to show alongside it.
type UsageError struct {
	Err   error
	Usage string
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}
