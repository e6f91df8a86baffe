package model

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/oapi-codegen/nullable"

	"github.com/goliatone/go-apimodel/pkg/convert"
)

// ListModelName is the schema name of List.
const ListModelName = "List"

const listWireKey = "123-list"

// List is the Petstore "List" schema.
type List struct {
	// List123 carries the `123-list` wire key.
	List123 nullable.Nullable[string] `json:"123-list,omitempty"`
}

// ListFields describes the wire keys List recognises.
var ListFields = []Field{
	{WireKey: listWireKey, GoName: "List123", Type: convert.String},
}

// ListType references List from other models' field tables.
var ListType = convert.ModelOf(ListModelName, hydrateList)

// NewList returns a List with every field unset.
func NewList() *List {
	return &List{}
}

// ConstructListFromObject copies the recognised keys of data into obj, or into
// a new List when obj is nil. Nil data returns obj untouched. A nil conv uses
// convert.Default.
func ConstructListFromObject(data map[string]any, obj *List, conv convert.Converter) (*List, error) {
	if data == nil {
		return obj, nil
	}
	if obj == nil {
		obj = NewList()
	}
	if conv == nil {
		conv = convert.Default()
	}

	if raw, ok := data[listWireKey]; ok {
		value, err := stringField(conv, raw)
		if err != nil {
			return nil, &FieldError{Model: ListModelName, WireKey: listWireKey, Err: err}
		}
		obj.List123 = value
	}
	return obj, nil
}

// GetList123 returns the field value and whether a non-null value is set.
func (l *List) GetList123() (string, bool) {
	if l == nil || !l.List123.IsSpecified() || l.List123.IsNull() {
		return "", false
	}
	return l.List123.MustGet(), true
}

// SetList123 assigns a value, replacing null or unset.
func (l *List) SetList123(value string) {
	l.List123.Set(value)
}

// ListSchema returns the wire schema for List.
func ListSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty(listWireKey, openapi3.NewStringSchema().WithNullable())
}

// ListDescriptor bundles List's metadata for registry lookups.
func ListDescriptor() Descriptor {
	return Descriptor{
		Name:    ListModelName,
		Fields:  cloneFields(ListFields),
		Schema:  ListSchema(),
		Hydrate: hydrateList,
	}
}

func hydrateList(data map[string]any, conv convert.Converter) (any, error) {
	list, err := ConstructListFromObject(data, nil, conv)
	if err != nil {
		return nil, err
	}
	return list, nil
}
