// Package payload exposes the public contracts for turning raw bytes into the
// untyped objects that model hydration consumes. Sources describe where bytes
// come from, Documents carry them, and Decode parses JSON or YAML into a
// map[string]any. Loader implementations live under internal/payload.
package payload
