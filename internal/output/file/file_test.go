package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jhalloran/tributary/internal/model"
)

func testRecords() []model.CanonicalRecord {
	return []model.CanonicalRecord{
		{
			Timestamp: model.Millis(500),
			Message:   "a",
			Value:     1,
			Source:    model.SourceFormat1,
			Metadata:  map[string]any{},
		},
		{
			Timestamp: model.Millis(1697380245123),
			Message:   "b",
			Value:     2,
			Source:    model.SourceFormat2,
			Metadata:  map[string]any{"region": "fra1"},
		},
	}
}

func TestWriteIndentedArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	out := New(path)

	if err := out.Write(context.Background(), testRecords()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 records, got %d", len(decoded))
	}

	text := string(data)
	if !strings.Contains(text, "  \"timestamp\"") {
		t.Fatal("expected two-space indentation")
	}
	// Serialization key order follows the canonical schema.
	if ts, msg := strings.Index(text, `"timestamp"`), strings.Index(text, `"message"`); ts > msg {
		t.Fatal("expected timestamp before message in output")
	}
	if src, md := strings.Index(text, `"source"`), strings.Index(text, `"metadata"`); src > md {
		t.Fatal("expected source before metadata in output")
	}
}

func TestWriteNullTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	records := []model.CanonicalRecord{
		{Message: "no ts", Source: model.SourceFormat1, Metadata: map[string]any{}},
	}

	if err := New(path).Write(context.Background(), records); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"timestamp": null`) {
		t.Fatalf("expected explicit null timestamp, got:\n%s", data)
	}
}

func TestWriteEmptyAndNil(t *testing.T) {
	for _, records := range [][]model.CanonicalRecord{nil, {}} {
		path := filepath.Join(t.TempDir(), "result.json")
		if err := New(path).Write(context.Background(), records); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		data, _ := os.ReadFile(path)
		if strings.TrimSpace(string(data)) != "[]" {
			t.Fatalf("expected empty JSON array, got %q", data)
		}
	}
}

func TestWriteReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.json")
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := New(path).Write(context.Background(), testRecords()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "stale") {
		t.Fatal("expected previous content to be replaced")
	}

	// No temp file debris.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the result file in %s, found %d entries", dir, len(entries))
	}
}

func TestWriteUnwritableDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "result.json")
	if err := New(path).Write(context.Background(), testRecords()); err == nil {
		t.Fatal("expected error for unwritable destination")
	}
}
