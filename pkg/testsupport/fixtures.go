package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgpayload "github.com/goliatone/go-apimodel/pkg/payload"
)

// LoadDocument reads a fixture and builds a payload.Document using a file
// source. Testing helpers fail the test on error to keep contract tests concise.
func LoadDocument(t *testing.T, path string) pkgpayload.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T.
func LoadDocumentFromPath(path string) (pkgpayload.Document, error) {
	if path == "" {
		return pkgpayload.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkgpayload.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkgpayload.NewDocument(pkgpayload.SourceFromFile(path), data)
	if err != nil {
		return pkgpayload.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// MustDecode loads and decodes a payload fixture into an untyped object.
func MustDecode(t *testing.T, path string) map[string]any {
	t.Helper()

	object, err := LoadDocument(t, path).Decode()
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return object
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// CompareJSON returns a diff when want and got differ after decoding both as
// JSON, so formatting differences are ignored.
func CompareJSON(want, got []byte) (string, error) {
	var wantValue, gotValue any
	if err := json.Unmarshal(want, &wantValue); err != nil {
		return "", fmt.Errorf("testsupport: decode want: %w", err)
	}
	if err := json.Unmarshal(got, &gotValue); err != nil {
		return "", fmt.Errorf("testsupport: decode got: %w", err)
	}
	return cmp.Diff(wantValue, gotValue), nil
}
