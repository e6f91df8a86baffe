package convert

import "strings"

// Kind enumerates the shapes a Type descriptor can take.
type Kind string

const (
	KindPrimitive Kind = "primitive"
	KindArray     Kind = "array"
	KindMap       Kind = "map"
	KindModel     Kind = "model"
)

// HydrateFunc populates a new model instance from an untyped object. The
// converter is forwarded so nested fields are coerced with the same policy.
type HydrateFunc func(data map[string]any, conv Converter) (any, error)

// Type describes the declared type of a model field.
type Type struct {
	kind    Kind
	name    string
	elem    *Type
	hydrate HydrateFunc
}

// Primitive type descriptors. Names follow the generator's type vocabulary.
var (
	String  = primitive("String")
	Boolean = primitive("Boolean")
	Integer = primitive("Integer")
	Number  = primitive("Number")
	Date    = primitive("Date")
	Blob    = primitive("Blob")
	Object  = primitive("Object")
)

func primitive(name string) Type {
	return Type{kind: KindPrimitive, name: name}
}

// ArrayOf describes a list whose elements are converted to elem.
func ArrayOf(elem Type) Type {
	return Type{kind: KindArray, elem: &elem}
}

// MapOf describes a string-keyed object whose values are converted to elem.
func MapOf(elem Type) Type {
	return Type{kind: KindMap, elem: &elem}
}

// ModelOf describes a reference to another generated model.
func ModelOf(name string, hydrate HydrateFunc) Type {
	return Type{kind: KindModel, name: strings.TrimSpace(name), hydrate: hydrate}
}

// Kind reports the descriptor shape. The zero Type reports an empty kind.
func (t Type) Kind() Kind {
	return t.kind
}

// Name returns the primitive or model name; empty for arrays and maps.
func (t Type) Name() string {
	return t.name
}

// Elem returns the element type for arrays and maps.
func (t Type) Elem() (Type, bool) {
	if t.elem == nil {
		return Type{}, false
	}
	return *t.elem, true
}

// IsZero reports whether the descriptor was never initialised.
func (t Type) IsZero() bool {
	return t.kind == ""
}

// String renders the descriptor the way the generator spells it in docs:
// String, [String], {String: Integer}, List.
func (t Type) String() string {
	switch t.kind {
	case KindArray:
		return "[" + t.elem.String() + "]"
	case KindMap:
		return "{String: " + t.elem.String() + "}"
	case KindPrimitive, KindModel:
		return t.name
	default:
		return "<invalid>"
	}
}
