// Package convert normalises raw decoded values (the output of encoding/json
// or yaml.v3 decoding into interface values) into the concrete types declared
// by generated models.
//
// Models never reach for a global converter: the Converter is handed to every
// hydration call so tests can swap in a stub via ConverterFunc. Default returns
// the shared best-effort implementation used when callers pass nil.
package convert
