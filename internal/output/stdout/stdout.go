// Package stdout implements an Output that prints the unified collection.
package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jhalloran/tributary/internal/model"
)

// Output writes the unified collection to stdout as an indented JSON array.
type Output struct {
	enc *json.Encoder
}

// New creates a stdout Output.
func New() *Output {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return &Output{enc: enc}
}

func (o *Output) Write(_ context.Context, records []model.CanonicalRecord) error {
	if records == nil {
		records = []model.CanonicalRecord{}
	}
	if err := o.enc.Encode(records); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
