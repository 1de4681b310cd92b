package tributary

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhalloran/tributary/internal/engine"
	"github.com/jhalloran/tributary/internal/model"
	"github.com/jhalloran/tributary/internal/pipeline"
	"github.com/jhalloran/tributary/internal/source"
	"github.com/jhalloran/tributary/internal/source/file"
)

// Tributary unifies heterogeneous event records.
// Safe for concurrent use; holds no cross-call state.
type Tributary struct {
	pipeline *pipeline.Pipeline
	log      zerolog.Logger
}

// New creates a Tributary instance.
func New(opts ...Option) *Tributary {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tributary{
		pipeline: pipeline.New(engine.New(), o.logger),
		log:      o.logger,
	}
}

// Unify classifies and normalizes every record in input order and returns
// the survivors sorted by timestamp ascending. Records that fail
// normalization are skipped and counted in the report; one bad record never
// aborts the call.
func (t *Tributary) Unify(records []map[string]any) ([]Record, Report) {
	raws := make([]model.RawRecord, len(records))
	for i, rec := range records {
		raws[i] = model.RawRecord(rec)
	}

	unified, report := t.pipeline.Unify(raws)

	out := make([]Record, len(unified))
	for i, c := range unified {
		out[i] = recordFromCanonical(c)
	}
	return out, reportFromInternal(report)
}

// UnifyFiles loads two JSON record files, concatenates their contents, and
// unifies the result. A file that is missing or malformed contributes zero
// records; the other file's records still appear in the output.
func (t *Tributary) UnifyFiles(ctx context.Context, first, second string) ([]Record, Report, error) {
	return t.unifySources(ctx, file.New(first), file.New(second))
}

func (t *Tributary) unifySources(ctx context.Context, sources ...source.Source) ([]Record, Report, error) {
	var all []model.RawRecord
	for _, src := range sources {
		records, err := src.Load(ctx)
		if err != nil {
			t.log.Warn().Err(err).Str("source", src.Name()).Msg("source degraded to zero records")
			continue
		}
		all = append(all, records...)
	}

	unified, report := t.pipeline.Unify(all)

	out := make([]Record, len(unified))
	for i, c := range unified {
		out[i] = recordFromCanonical(c)
	}
	if err := ctx.Err(); err != nil {
		return nil, Report{}, err
	}
	return out, reportFromInternal(report), nil
}
