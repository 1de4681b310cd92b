// Package source defines where raw records come from.
package source

import (
	"context"
	"errors"

	"github.com/jhalloran/tributary/internal/model"
)

// Load failures fall into two kinds; both degrade the source to zero
// contributed records at the pipeline boundary.
var (
	// ErrMissing indicates the source's backing input does not exist.
	ErrMissing = errors.New("source missing")
	// ErrDecode indicates the source's content is not valid JSON.
	ErrDecode = errors.New("source malformed")
)

// Source supplies one collection of raw records.
type Source interface {
	// Name identifies the source in diagnostics (e.g. its file path).
	Name() string

	// Load materializes the source's records. Errors wrap ErrMissing or
	// ErrDecode so callers can distinguish absent input from bad input.
	Load(ctx context.Context) ([]model.RawRecord, error)
}
