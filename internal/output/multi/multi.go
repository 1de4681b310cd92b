// Package multi fans one unified collection out to several outputs.
package multi

import (
	"context"
	"errors"

	"github.com/jhalloran/tributary/internal/model"
	"github.com/jhalloran/tributary/internal/output"
)

// Output writes to every wrapped output. One destination failing does not
// stop the others; all failures are joined and returned.
type Output struct {
	outputs []output.Output
}

// New creates a multi Output over the given destinations.
func New(outputs ...output.Output) *Output {
	return &Output{outputs: outputs}
}

func (o *Output) Write(ctx context.Context, records []model.CanonicalRecord) error {
	var errs []error
	for _, out := range o.outputs {
		if err := out.Write(ctx, records); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (o *Output) Close() error {
	var errs []error
	for _, out := range o.outputs {
		if err := out.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
