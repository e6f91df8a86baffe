package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyPayload is returned when a document holds only whitespace.
	ErrEmptyPayload = errors.New("payload: document is empty")
	// ErrNotObject is returned when a document decodes to something other than
	// an object or null.
	ErrNotObject = errors.New("payload: document is not an object")
)

// Document wraps the raw payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("payload: source is required")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Document{}, ErrEmptyPayload
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Decode turns the payload into the untyped object hydration consumes. JSON
// is tried first, then YAML. A literal null yields a nil map and no error.
func (d Document) Decode() (map[string]any, error) {
	return Decode(d.raw, d.Location())
}

// Decode parses raw as JSON or YAML into an untyped object. location only
// decorates error messages.
func Decode(raw []byte, location string) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrEmptyPayload
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		if yamlErr := yaml.Unmarshal(trimmed, &value); yamlErr != nil {
			return nil, fmt.Errorf("payload: parse %s: invalid JSON or YAML: %w", location, yamlErr)
		}
	}

	switch v := value.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %s decoded to %T", ErrNotObject, location, value)
	}
}
