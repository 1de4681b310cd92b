// Package engine normalizes raw event records into the canonical schema.
package engine

import (
	"encoding/json"

	"github.com/jhalloran/tributary/internal/engine/classifier"
	"github.com/jhalloran/tributary/internal/engine/timestamp"
	"github.com/jhalloran/tributary/internal/model"
)

// Engine orchestrates the classify → normalize pipeline for single records.
type Engine struct{}

// New creates an Engine.
func New() *Engine {
	return &Engine{}
}

// Process classifies a raw record and normalizes it into a canonical record.
func (e *Engine) Process(rec model.RawRecord) (model.CanonicalRecord, error) {
	return e.Normalize(rec, classifier.Classify(rec))
}

// Normalize converts a raw record of the given shape into a canonical record.
// The input record is never mutated. A textual-shape record whose timestamp
// fails the date-time grammar returns a timestamp.ParseError.
func (e *Engine) Normalize(rec model.RawRecord, shape model.Shape) (model.CanonicalRecord, error) {
	if shape == model.ShapeTextual {
		return e.normalizeTextual(rec)
	}
	return e.normalizeNumeric(rec), nil
}

// normalizeNumeric handles records whose timestamp is already epoch millis.
// The timestamp passes through verbatim when numeric; anything else (absent,
// null, or an unrecognizable string) yields a nil timestamp rather than an
// error — such records are assumed already normalized elsewhere.
func (e *Engine) normalizeNumeric(rec model.RawRecord) model.CanonicalRecord {
	var ts *int64
	if v, ok := rec["timestamp"]; ok {
		if ms, err := asMillis(v); err == nil {
			ts = model.Millis(ms)
		}
	}
	return model.CanonicalRecord{
		Timestamp: ts,
		Message:   firstString(rec, "message"),
		Value:     firstNumber(rec, "value"),
		Source:    model.SourceFormat1,
		Metadata:  firstMap(rec, "metadata"),
	}
}

// normalizeTextual handles records with a textual date-time timestamp and
// per-shape field aliases.
func (e *Engine) normalizeTextual(rec model.RawRecord) (model.CanonicalRecord, error) {
	raw, _ := rec.First("timestamp", "time")
	if raw == nil {
		raw = ""
	}
	ms, err := timestamp.ToEpochMillis(raw)
	if err != nil {
		return model.CanonicalRecord{}, err
	}
	return model.CanonicalRecord{
		Timestamp: model.Millis(ms),
		Message:   firstString(rec, "message", "msg"),
		Value:     firstNumber(rec, "value", "val"),
		Source:    model.SourceFormat2,
		Metadata:  firstMap(rec, "metadata", "meta"),
	}, nil
}

// asMillis accepts only genuinely numeric JSON values. Unlike
// timestamp.ToEpochMillis it rejects strings — numeric-shape timestamps are
// passed through, never parsed.
func asMillis(v any) (int64, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	case float64:
		return int64(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, err
		}
		return int64(f), nil
	default:
		return 0, &timestamp.ParseError{Input: v}
	}
}

// The first* helpers try an ordered list of candidate keys and apply a typed
// default when no key holds a usable value. Defaults are applied explicitly
// so legitimate zero/empty values are never treated as missing.

func firstString(rec model.RawRecord, keys ...string) string {
	v, ok := rec.First(keys...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func firstNumber(rec model.RawRecord, keys ...string) float64 {
	v, ok := rec.First(keys...)
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, _ := t.Float64()
		return f
	default:
		return 0
	}
}

func firstMap(rec model.RawRecord, keys ...string) map[string]any {
	if v, ok := rec.First(keys...); ok {
		if m, ok := v.(map[string]any); ok {
			return m
		}
	}
	return map[string]any{}
}
