package pricing

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is matched by every TypeMismatchError.
var ErrTypeMismatch = errors.New("type mismatch")

// TypeMismatchError reports an argument that is missing or not numeric.
type TypeMismatchError struct {
	Field string
	Value any
}

func (e *TypeMismatchError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: missing value", e.Field)
	}
	return fmt.Sprintf("%s: unsupported type %T (%v)", e.Field, e.Value, e.Value)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
