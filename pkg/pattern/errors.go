package pattern

import (
	"fmt"
	"reflect"
)

// ErrNoMatch matches any *NoMatchError under errors.Is.
var ErrNoMatch error = &NoMatchError{}

// NoMatchError is returned when a chain that must produce a result had no
// matching clause.
type NoMatchError struct {
	Message string
	Value   any
}

func (e *NoMatchError) Error() string {
	return e.Message
}

func (e *NoMatchError) Is(target error) bool {
	return reflect.TypeOf(e) == reflect.TypeOf(target)
}

// newNoMatchError uses the first non-empty message, or one naming value.
func newNoMatchError(value any, message ...string) *NoMatchError {
	for _, msg := range message {
		if msg != "" {
			return &NoMatchError{Message: msg, Value: value}
		}
	}
	return &NoMatchError{Message: fmt.Sprintf("match for [%v] not found", value), Value: value}
}
