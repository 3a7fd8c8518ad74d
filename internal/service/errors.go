package service

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a request that failed validation or referenced
// data that does not exist at the requested date. Its message is safe to return to clients.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

func invalidInput(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// IsInvalidInput reports whether err (or anything it wraps) is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// ErrGenerationInProgress is returned when another run holds the award's generation lock.
var ErrGenerationInProgress = errors.New("rule generation already in progress for this award")
