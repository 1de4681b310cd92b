package model

// Source tags retained in canonical output for traceability.
const (
	SourceFormat1 = "format_1"
	SourceFormat2 = "format_2"
)

// CanonicalRecord is tributary's output type — a normalized event record.
// Field order is the serialization order.
type CanonicalRecord struct {
	// Timestamp is epoch milliseconds. Nil (serialized null) when a
	// numeric-shape record carried no usable timestamp.
	Timestamp *int64         `json:"timestamp"`
	Message   string         `json:"message"`
	Value     float64        `json:"value"`
	Source    string         `json:"source"`
	Metadata  map[string]any `json:"metadata"`
}

// Millis builds a timestamp pointer from a value.
func Millis(ms int64) *int64 {
	return &ms
}

// Before reports whether r sorts ahead of other chronologically.
// Records without a timestamp sort ahead of every timestamped record.
func (r CanonicalRecord) Before(other CanonicalRecord) bool {
	switch {
	case r.Timestamp == nil:
		return other.Timestamp != nil
	case other.Timestamp == nil:
		return false
	default:
		return *r.Timestamp < *other.Timestamp
	}
}
