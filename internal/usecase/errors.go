package usecase

import (
	"errors"
	"fmt"
)

// InvalidArgumentError reports a rejected input. Its message is safe to
// show to clients as is.
type InvalidArgumentError struct {
	msg string
}

func (e *InvalidArgumentError) Error() string {
	return e.msg
}

func invalidArgument(format string, args ...any) error {
	return &InvalidArgumentError{msg: fmt.Sprintf(format, args...)}
}

// IsInvalidArgument reports whether err, or anything it wraps, is an
// InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var target *InvalidArgumentError
	return errors.As(err, &target)
}
