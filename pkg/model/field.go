package model

import (
	"fmt"

	"github.com/oapi-codegen/nullable"

	"github.com/goliatone/go-apimodel/pkg/convert"
)

// Field maps one wire key onto a Go struct field.
type Field struct {
	WireKey string
	GoName  string
	Type    convert.Type
}

// FieldError wraps a coercion failure with the model and wire key involved.
type FieldError struct {
	Model   string
	WireKey string
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("model %s: field %q: %v", e.Model, e.WireKey, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func cloneFields(in []Field) []Field {
	if len(in) == 0 {
		return nil
	}
	return append([]Field(nil), in...)
}

// stringField coerces raw through conv and guards the result type so a
// misbehaving converter cannot break the declared field type.
func stringField(conv convert.Converter, raw any) (nullable.Nullable[string], error) {
	coerced, err := conv.ConvertToType(raw, convert.String)
	if err != nil {
		return nil, err
	}
	if coerced == nil {
		return nullable.NewNullNullable[string](), nil
	}
	value, ok := coerced.(string)
	if !ok {
		return nil, &convert.TypeCoercionError{
			Type:  convert.String.String(),
			Value: coerced,
			Err:   convert.ErrUnexpectedResult,
		}
	}
	return nullable.NewNullableWithValue(value), nil
}
