package payload

import (
	"path/filepath"
	"strings"
)

// Source identifies where a payload originated so loaders can operate on
// files, fs.FS entries, or standard input without leaking implementation
// details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile  SourceKind = "file"
	SourceKindFS    SourceKind = "fs"
	SourceKindStdin SourceKind = "stdin"
)

// StdinLocation is the conventional CLI spelling for standard input.
const StdinLocation = "-"

type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type stdinSource struct{}

func (stdinSource) Location() string {
	return StdinLocation
}

func (stdinSource) Kind() SourceKind {
	return SourceKindStdin
}

// SourceFromStdin returns a Source reading the loader's stdin reader.
func SourceFromStdin() Source {
	return stdinSource{}
}

// ParseSource maps a CLI argument onto a Source: "-" is stdin, anything else
// a file path. Blank input returns nil.
func ParseSource(raw string) Source {
	trimmed := strings.TrimSpace(raw)
	switch trimmed {
	case "":
		return nil
	case StdinLocation:
		return SourceFromStdin()
	default:
		return SourceFromFile(trimmed)
	}
}
