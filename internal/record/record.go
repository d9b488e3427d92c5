// Package record models the loosely-typed rows handed over by the input
// collaborators (CSV, JSON Lines, JSON arrays, Parquet). Coercions return
// an explicit ok flag instead of panicking, so "drop on parse failure" and
// "treat as missing" are visible branches in the callers.
package record

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is one field-keyed input row with string/number/null values.
type Record map[string]any

// timestampLayouts are tried in order when coercing instants.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// dateLayouts are tried in order when coercing calendar dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
}

// String returns the trimmed string value of key. Absent keys, nulls and
// blank strings report ok=false.
func (r Record) String(key string) (string, bool) {
	v, present := r[key]
	if !present || v == nil {
		return "", false
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	default:
		s = fmt.Sprint(t)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// Float coerces the value of key to float64. Numeric-looking strings are
// accepted; everything else reports ok=false.
func (r Record) Float(key string) (float64, bool) {
	v, present := r[key]
	if !present || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) {
			return 0, false
		}
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Int coerces the value of key to an int by truncating a successful Float
// coercion.
func (r Record) Int(key string) (int, bool) {
	f, ok := r.Float(key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Time coerces the value of key to a UTC instant, trying the supported
// timestamp layouts in order.
func (r Record) Time(key string) (time.Time, bool) {
	s, ok := r.String(key)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseDate coerces a calendar-date string, accepting dashed and slashed
// forms. Returns the date normalized to UTC midnight.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.UTC(), true
		}
	}
	return time.Time{}, false
}
