// Package pipeline connects sources, the normalization engine, and an output
// into a unification run.
package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhalloran/tributary/internal/engine"
	"github.com/jhalloran/tributary/internal/model"
	"github.com/jhalloran/tributary/internal/output"
	"github.com/jhalloran/tributary/internal/source"
)

// Pipeline unifies raw records from any number of sources into one
// chronologically sorted canonical collection. It holds no cross-call state;
// concurrent Unify calls on independent inputs are safe.
type Pipeline struct {
	engine *engine.Engine
	log    zerolog.Logger
}

// New creates a Pipeline using the given engine and diagnostics logger.
func New(eng *engine.Engine, log zerolog.Logger) *Pipeline {
	return &Pipeline{engine: eng, log: log}
}

// Unify classifies and normalizes every record in input order, then sorts the
// survivors by timestamp ascending. A record that fails normalization is
// logged and skipped; one bad record never aborts the run. The sort is
// stable: equal timestamps keep the relative order of the successfully
// normalized records, and records without a timestamp sort first.
func (p *Pipeline) Unify(records []model.RawRecord) ([]model.CanonicalRecord, model.Report) {
	report := model.Report{
		RunID:     uuid.NewString(),
		Processed: len(records),
	}

	unified := make([]model.CanonicalRecord, 0, len(records))
	for _, rec := range records {
		canonical, err := p.engine.Process(rec)
		if err != nil {
			report.Skipped++
			p.log.Warn().
				Err(err).
				Interface("record", rec).
				Msg("skipping record")
			continue
		}
		unified = append(unified, canonical)
	}
	report.Unified = len(unified)

	sort.SliceStable(unified, func(i, j int) bool {
		return unified[i].Before(unified[j])
	})
	return unified, report
}

// Run loads every source, unifies the concatenated records, and writes the
// result. A source that cannot be loaded contributes zero records; an output
// that cannot be written is logged. Neither failure aborts the run — the
// returned report always reflects the completed in-memory unification.
func (p *Pipeline) Run(ctx context.Context, sources []source.Source, out output.Output) (model.Report, error) {
	var all []model.RawRecord
	for _, src := range sources {
		records, err := src.Load(ctx)
		if err != nil {
			p.log.Warn().Err(err).Str("source", src.Name()).Msg("source degraded to zero records")
			continue
		}
		p.log.Info().Int("entries", len(records)).Str("source", src.Name()).Msg("loaded source")
		all = append(all, records...)
	}

	unified, report := p.Unify(all)

	if err := out.Write(ctx, unified); err != nil {
		p.log.Error().Err(err).Msg("write failed; unification result discarded")
	} else {
		p.log.Info().
			Str("run_id", report.RunID).
			Int("entries", report.Unified).
			Int("skipped", report.Skipped).
			Msg("unified output written")
		if len(unified) > 0 {
			p.log.Debug().Interface("first", unified[0]).Msg("sample unified record")
		}
	}

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("pipeline run: %w", err)
	}
	return report, nil
}
