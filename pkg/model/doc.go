// Package model holds the generated data-transfer objects for the Swagger
// Petstore API. Every model follows the same template: a zero-logic
// constructor, a field table mapping wire keys to Go fields, a Construct*
// factory that copies recognised keys out of an untyped decoded object, and a
// kin-openapi schema describing the wire shape.
//
// Wire keys that are not valid Go identifiers (for example `123-list`) only
// appear in struct tags and field tables; the Go field is renamed. Optional
// fields use nullable.Nullable so callers can tell an absent key from an
// explicit null and from an empty value.
//
// Hydration ignores keys the model does not declare and delegates every type
// coercion to the convert.Converter passed in. Nil data is a no-op: the
// target is returned unchanged.
//
// Models are plain values. Hydrating into the same target from several
// goroutines must be serialised by the caller.
package model
