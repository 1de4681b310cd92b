// Package timestamp converts heterogeneous timestamp encodings to a single
// millisecond-epoch integer representation.
package timestamp

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrParse is the sentinel matched by errors.Is for any timestamp parse failure.
var ErrParse = errors.New("unparsable timestamp")

// ParseError reports a timestamp value that does not conform to the
// recognized date-time grammar. It carries the offending literal.
type ParseError struct {
	Input any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse timestamp %#v: not a recognized date-time", e.Input)
}

// Is makes errors.Is(err, ErrParse) match.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Accepted textual layouts: date, "T" separator, time, optional fractional
// seconds, optional explicit ±hh:mm offset. A single trailing "Z" is stripped
// before matching, so "Z07:00" never appears here.
var layouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04-07:00",
	"2006-01-02T15:04",
}

// ToEpochMillis converts one timestamp value to epoch milliseconds.
//
// Numeric inputs are interpreted as epoch milliseconds and returned without
// scaling (floats truncated toward zero). Textual inputs are parsed per the
// grammar above; sub-millisecond digits are truncated, never rounded.
//
// Offset-less textual inputs are interpreted as UTC. The behavior they
// replace depended on the host timezone, which made output machine-dependent;
// an explicit fixed zone keeps runs reproducible.
func ToEpochMillis(v any) (int64, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	case float64:
		return int64(t), nil
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return int64(f), nil
		}
		return 0, &ParseError{Input: v}
	case string:
		return parseText(t)
	default:
		return 0, &ParseError{Input: v}
	}
}

func parseText(raw string) (int64, error) {
	s := strings.TrimSuffix(raw, "Z")
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UnixMilli(), nil
		}
	}
	return 0, &ParseError{Input: raw}
}
