// Package meta reads typed values out of the loose metadata maps carried by
// domain records. Records arrive with wildly inconsistent keys and value
// types; everything downstream goes through these accessors instead of
// touching the raw map. Every function here is total: malformed input
// resolves to a zero value, never a panic or an error.
package meta

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lifeboardhq/lifeboard/internal/domain"
)

// Unwrap returns the canonical metadata map for a record. Some legacy
// records double-wrap their metadata (metadata.metadata); that nesting is
// resolved here once so calculators never special-case it.
func Unwrap(r domain.Record) map[string]any {
	if r.Metadata == nil {
		return map[string]any{}
	}
	if inner, ok := r.Metadata["metadata"].(map[string]any); ok {
		return inner
	}
	return r.Metadata
}

// PickString returns the first candidate key whose value is a non-empty
// string after trimming, or "" when none match.
func PickString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// PickStringTokens returns the lower-cased trimmed values of every matching
// key, skipping empty strings. Used to gather classification evidence.
func PickStringTokens(m map[string]any, keys ...string) []string {
	var tokens []string
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				tokens = append(tokens, strings.ToLower(trimmed))
			}
		}
	}
	return tokens
}

// HasTruthy reports whether any candidate key holds a truthy value: a
// non-empty string, a non-zero number, true, or a non-empty slice or map.
func HasTruthy(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return true
			}
		case bool:
			if v {
				return true
			}
		case float64:
			if v != 0 {
				return true
			}
		case int:
			if v != 0 {
				return true
			}
		case []any:
			if len(v) > 0 {
				return true
			}
		case map[string]any:
			if len(v) > 0 {
				return true
			}
		}
	}
	return false
}

// ParseNumeric coerces an arbitrary metadata value to a finite float64.
// Strings may carry currency symbols, commas, and whitespace ("$1,200.50").
// Anything unparseable, NaN, or infinite resolves to 0.
func ParseNumeric(v any) float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case float32:
		return ParseNumeric(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		cleaned := strings.TrimSpace(n)
		cleaned = strings.NewReplacer("$", "", ",", "", "€", "", "£", "").Replace(cleaned)
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	}
	return 0
}

// PickNumber is ParseNumeric applied to the first candidate key that yields
// a non-zero value. A key explicitly set to zero still loses to a later key
// carrying a real value; loose sources routinely write 0 for "unknown".
func PickNumber(m map[string]any, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if n := ParseNumeric(v); n != 0 {
				return n
			}
		}
	}
	return 0
}

// dateLayouts are tried in order after RFC 3339.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate parses an arbitrary metadata value as a date. Numbers are
// treated as epoch seconds (or milliseconds when large enough). Returns the
// zero time and false when nothing parses.
func ParseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return d, true
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, false
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, true
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case float64:
		return epochDate(int64(d))
	case int:
		return epochDate(int64(d))
	case int64:
		return epochDate(d)
	}
	return time.Time{}, false
}

func epochDate(n int64) (time.Time, bool) {
	if n <= 0 {
		return time.Time{}, false
	}
	// Values past the year ~33658 in seconds are epoch millis.
	if n > 1e12 {
		return time.UnixMilli(n).UTC(), true
	}
	return time.Unix(n, 0).UTC(), true
}

// PickFirstDate tries each candidate key in order and returns the first
// value that parses as a date. First match wins even when a later key holds
// an earlier date.
func PickFirstDate(m map[string]any, keys ...string) (time.Time, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if t, parsed := ParseDate(v); parsed {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
