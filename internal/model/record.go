package model

// RawRecord is an untyped event record as decoded from a source file.
// Field presence and naming vary by shape; values are arbitrary JSON values.
type RawRecord map[string]any

// First returns the value of the first key present in the record.
// Presence is what matters, not the value — a key holding null still wins.
func (r RawRecord) First(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// Shape identifies which of the two known record layouts a raw record uses,
// inferred from its timestamp encoding.
type Shape int

const (
	// ShapeNumeric marks records whose timestamp is already epoch milliseconds.
	ShapeNumeric Shape = iota
	// ShapeTextual marks records whose timestamp is a textual date-time.
	ShapeTextual
)

func (s Shape) String() string {
	if s == ShapeTextual {
		return "textual"
	}
	return "numeric"
}

// SourceTag returns the provenance marker recorded in canonical output
// for records of this shape.
func (s Shape) SourceTag() string {
	if s == ShapeTextual {
		return SourceFormat2
	}
	return SourceFormat1
}
