// Package classifier decides which of the two known shapes a raw record uses.
package classifier

import (
	"encoding/json"
	"strings"

	"github.com/jhalloran/tributary/internal/model"
)

// Classify inspects a record's timestamp-bearing field and returns its shape.
//
// The field is read from key "timestamp", falling back to "time", defaulting
// to the empty string. A numeric value means the record is already in epoch
// milliseconds (ShapeNumeric). A string containing "T" or "Z" is a textual
// date-time (ShapeTextual). Anything else — ambiguous or unrecognized — is
// assumed already normalized and classified ShapeNumeric.
//
// Classify is total and pure: it never fails, for any record including an
// empty one.
func Classify(rec model.RawRecord) model.Shape {
	v, ok := rec.First("timestamp", "time")
	if !ok {
		return model.ShapeNumeric
	}

	switch t := v.(type) {
	case int, int64, float64, json.Number:
		return model.ShapeNumeric
	case string:
		if strings.ContainsAny(t, "TZ") {
			return model.ShapeTextual
		}
	}
	return model.ShapeNumeric
}
