package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned for zero or unknown Type descriptors.
	ErrUnsupportedType = errors.New("convert: unsupported type descriptor")
	// ErrNotObject signals that a map or model type received a non-object value.
	ErrNotObject = errors.New("convert: value is not an object")
	// ErrNotArray signals that an array type received a non-list value.
	ErrNotArray = errors.New("convert: value is not an array")
	// ErrUnexpectedResult is used when a converter returns a value whose Go
	// type does not match the requested descriptor.
	ErrUnexpectedResult = errors.New("convert: converter returned unexpected type")
)

// TypeCoercionError reports a value that could not be coerced to the declared
// type. Inspect with errors.As.
type TypeCoercionError struct {
	Type  string
	Value any
	Err   error
}

func (e *TypeCoercionError) Error() string {
	msg := fmt.Sprintf("convert: cannot coerce %T to %s", e.Value, e.Type)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TypeCoercionError) Unwrap() error {
	return e.Err
}

func coercionError(t Type, value any, err error) error {
	return &TypeCoercionError{Type: t.String(), Value: value, Err: err}
}
