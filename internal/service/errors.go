package service

import (
	"errors"
	"fmt"
)

// ErrValidation marks a request rejected before anything was written.
var ErrValidation = errors.New("validation failed")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
