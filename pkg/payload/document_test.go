package payload

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want map[string]any
	}{
		{
			name: "json object",
			raw:  `{"123-list": "abc", "unrelated": 42}`,
			want: map[string]any{"123-list": "abc", "unrelated": 42.0},
		},
		{
			name: "yaml object",
			raw:  "123-list: abc\nunrelated: 42\n",
			want: map[string]any{"123-list": "abc", "unrelated": 42},
		},
		{
			name: "json null",
			raw:  "null",
			want: nil,
		},
		{
			name: "empty object",
			raw:  "{}",
			want: map[string]any{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode([]byte(tc.raw), "test")
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected object (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := Decode([]byte("  \n"), "blank"); !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("expected ErrEmptyPayload, got %v", err)
	}
	if _, err := Decode([]byte(`["a"]`), "array"); !errors.Is(err, ErrNotObject) {
		t.Fatalf("expected ErrNotObject, got %v", err)
	}
	if _, err := Decode([]byte("{: bad"), "broken"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestNewDocument(t *testing.T) {
	if _, err := NewDocument(nil, []byte("{}")); err == nil {
		t.Fatalf("expected error for nil source")
	}
	if _, err := NewDocument(SourceFromStdin(), nil); !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("expected ErrEmptyPayload, got %v", err)
	}

	raw := []byte(`{"123-list": "x"}`)
	doc := MustNewDocument(SourceFromFile("./fixtures/list.json"), raw)
	raw[0] = '['
	if doc.Raw()[0] != '{' {
		t.Fatalf("document must copy its input")
	}
	if doc.Location() != "fixtures/list.json" {
		t.Fatalf("unexpected location %q", doc.Location())
	}
	if src := doc.Source(); src == nil || src.Kind() != SourceKindFile {
		t.Fatalf("unexpected source %#v", src)
	}

	obj, err := doc.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if obj["123-list"] != "x" {
		t.Fatalf("unexpected decoded object %v", obj)
	}
}

func TestParseSource(t *testing.T) {
	if ParseSource("   ") != nil {
		t.Fatalf("expected nil for blank input")
	}
	if src := ParseSource("-"); src.Kind() != SourceKindStdin || src.Location() != StdinLocation {
		t.Fatalf("unexpected stdin source %#v", src)
	}
	if src := ParseSource(" data/list.yaml "); src.Kind() != SourceKindFile || src.Location() != "data/list.yaml" {
		t.Fatalf("unexpected file source %#v", src)
	}
	if src := SourceFromFS("list.json"); src.Kind() != SourceKindFS {
		t.Fatalf("unexpected fs source kind %q", src.Kind())
	}
}

func TestNewLoaderOptions(t *testing.T) {
	if got := NewLoaderOptions().MaxBytes; got != DefaultMaxBytes {
		t.Fatalf("expected default max bytes, got %d", got)
	}
	if got := NewLoaderOptions(WithMaxBytes(16)).MaxBytes; got != 16 {
		t.Fatalf("expected override, got %d", got)
	}
}
