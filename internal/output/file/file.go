// Package file implements a JSON file output for unified records.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhalloran/tributary/internal/model"
)

// Output writes the unified collection to a file as a two-space-indented
// JSON array. The write is atomic: content lands in a temp file in the
// destination directory and is renamed into place, so a failed run never
// leaves a truncated result behind.
type Output struct {
	path string
}

// New creates a file output that writes to the given path.
func New(path string) *Output {
	return &Output{path: path}
}

// Write serializes the records and replaces the destination file.
// A nil collection still produces an empty JSON array.
func (o *Output) Write(_ context.Context, records []model.CanonicalRecord) error {
	if records == nil {
		records = []model.CanonicalRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("file output: marshal: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(o.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(o.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("file output: temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("file output: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("file output: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, o.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("file output: rename to %s: %w", o.path, err)
	}
	return nil
}

// Close is a no-op; each Write is self-contained.
func (o *Output) Close() error {
	return nil
}
