package prompt

import (
	"context"
	"fmt"

	"github.com/goliatone/go-apimodel/pkg/convert"
	"github.com/goliatone/go-apimodel/pkg/model"
)

// Collect asks for every field in the table and returns the untyped object a
// model factory expects. Declined fields stay absent; accepted fields keep
// whatever was typed, including the empty string. Values are collected as
// strings; conv only vets each answer against the field type so a typo is
// re-asked instead of failing hydration later. Nil conv uses convert.Default.
func Collect(ctx context.Context, driver Driver, conv convert.Converter, modelName string, fields []model.Field) (map[string]any, error) {
	if driver == nil {
		return nil, ErrNoDriver
	}
	if conv == nil {
		conv = convert.Default()
	}
	out := make(map[string]any, len(fields))
	for _, field := range fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		set, err := driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Set %s.%s?", modelName, field.WireKey),
			Help:    fmt.Sprintf("Declining leaves %q absent from the payload.", field.WireKey),
		})
		if err != nil {
			return nil, err
		}
		if !set {
			continue
		}
		value, err := driver.Input(ctx, InputConfig{
			Message:   fmt.Sprintf("%s (%s):", field.WireKey, field.Type),
			Validator: fieldValidator(conv, field),
		})
		if err != nil {
			return nil, err
		}
		out[field.WireKey] = value
	}
	return out, nil
}

func fieldValidator(conv convert.Converter, field model.Field) func(string) error {
	return func(answer string) error {
		if _, err := conv.ConvertToType(answer, field.Type); err != nil {
			return fmt.Errorf("%s: %w", field.WireKey, err)
		}
		return nil
	}
}
