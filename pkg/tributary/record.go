package tributary

import "github.com/jhalloran/tributary/internal/model"

// Source tags identifying which shape produced a record.
const (
	SourceFormat1 = model.SourceFormat1
	SourceFormat2 = model.SourceFormat2
)

// Record is the unified, fixed-schema output representation.
type Record struct {
	// Timestamp is epoch milliseconds; nil when the input record carried
	// no usable timestamp.
	Timestamp *int64         `json:"timestamp"`
	Message   string         `json:"message"`
	Value     float64        `json:"value"`
	Source    string         `json:"source"`
	Metadata  map[string]any `json:"metadata"`
}

// Report summarizes one unification run.
type Report struct {
	RunID     string
	Processed int
	Unified   int
	Skipped   int
}

func recordFromCanonical(c model.CanonicalRecord) Record {
	return Record{
		Timestamp: c.Timestamp,
		Message:   c.Message,
		Value:     c.Value,
		Source:    c.Source,
		Metadata:  c.Metadata,
	}
}

func reportFromInternal(r model.Report) Report {
	return Report{
		RunID:     r.RunID,
		Processed: r.Processed,
		Unified:   r.Unified,
		Skipped:   r.Skipped,
	}
}
