// Package hydrator wires the loader → decoder → (optional) schema validation →
// model factory sequence behind a single entry point, with every stage open to
// dependency injection.
package hydrator
