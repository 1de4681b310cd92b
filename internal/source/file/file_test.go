package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jhalloran/tributary/internal/source"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadArray(t *testing.T) {
	path := writeFile(t, "data.json", `[
		{"timestamp": 500, "message": "a"},
		{"timestamp": "2023-10-15T14:30:45Z", "msg": "b"}
	]`)

	records, err := New(path).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["message"] != "a" {
		t.Fatalf("unexpected first record: %v", records[0])
	}
}

func TestLoadSingleObject(t *testing.T) {
	path := writeFile(t, "data.json", `{"timestamp": 500, "message": "solo"}`)

	records, err := New(path).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected single object as one-element collection, got %d", len(records))
	}
	if records[0]["message"] != "solo" {
		t.Fatalf("unexpected record: %v", records[0])
	}
}

func TestLoadArrayWithLeadingWhitespace(t *testing.T) {
	path := writeFile(t, "data.json", "\n\t [{\"timestamp\": 1}]")

	records, err := New(path).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	_, err := New(path).Load(context.Background())
	if !errors.Is(err, source.ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"truncated array", `[{"timestamp": 1},`},
		{"not json", `hello world`},
		{"array of scalars", `[1, 2, 3]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "bad.json", tc.content)
			_, err := New(path).Load(context.Background())
			if !errors.Is(err, source.ErrDecode) {
				t.Fatalf("expected ErrDecode, got %v", err)
			}
		})
	}
}

func TestRegistered(t *testing.T) {
	ctor, err := source.Get("file")
	if err != nil {
		t.Fatalf("file source not registered: %v", err)
	}
	src := ctor("data-1.json")
	if src.Name() != "data-1.json" {
		t.Fatalf("unexpected source name %q", src.Name())
	}
}
