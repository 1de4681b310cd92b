// Package output defines where unified record collections go.
package output

import (
	"context"

	"github.com/jhalloran/tributary/internal/model"
)

// Output is a destination for one unified record collection.
type Output interface {
	Write(ctx context.Context, records []model.CanonicalRecord) error
	Close() error
}
