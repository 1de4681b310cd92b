// Package file implements a JSON file source of raw records.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jhalloran/tributary/internal/model"
	"github.com/jhalloran/tributary/internal/source"
)

func init() {
	source.Register("file", func(location string) source.Source {
		return New(location)
	})
}

// Source reads raw records from a JSON file. The file may hold either a
// single object (treated as a one-element collection) or an array of objects.
type Source struct {
	path string
}

// New creates a file source for the given path.
func New(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Name() string {
	return s.path
}

// Load reads and decodes the file. A missing file wraps source.ErrMissing;
// malformed JSON wraps source.ErrDecode.
func (s *Source) Load(_ context.Context) ([]model.RawRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", source.ErrMissing, s.path)
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return decode(s.path, data)
}

func decode(path string, data []byte) ([]model.RawRecord, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []model.RawRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", source.ErrDecode, path, err)
		}
		return records, nil
	}

	var rec model.RawRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", source.ErrDecode, path, err)
	}
	return []model.RawRecord{rec}, nil
}
