package meta

import (
	"math"
	"testing"
	"time"

	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestUnwrap_DoubleWrapped(t *testing.T) {
	r := domain.Record{Metadata: map[string]any{
		"metadata": map[string]any{"balance": 100.0},
		"ignored":  true,
	}}
	m := Unwrap(r)
	assert.Equal(t, 100.0, m["balance"])
}

func TestUnwrap_Flat(t *testing.T) {
	r := domain.Record{Metadata: map[string]any{"balance": 5.0}}
	assert.Equal(t, 5.0, Unwrap(r)["balance"])
}

func TestUnwrap_NilMetadata(t *testing.T) {
	m := Unwrap(domain.Record{})
	if m == nil {
		t.Fatal("expected non-nil map for missing metadata")
	}
	assert.Empty(t, m)
}

func TestPickString(t *testing.T) {
	m := map[string]any{"a": "  ", "b": 42.0, "c": " hello "}
	assert.Equal(t, "hello", PickString(m, "a", "b", "c"))
	assert.Equal(t, "", PickString(m, "a", "b", "missing"))
}

func TestPickStringTokens(t *testing.T) {
	m := map[string]any{"type": " Credit Card ", "category": "", "note": "LOAN"}
	tokens := PickStringTokens(m, "type", "category", "note")
	assert.Equal(t, []string{"credit card", "loan"}, tokens)
}

func TestHasTruthy(t *testing.T) {
	cases := []struct {
		name string
		m    map[string]any
		keys []string
		want bool
	}{
		{"non-empty string", map[string]any{"x": "yes"}, []string{"x"}, true},
		{"blank string", map[string]any{"x": "  "}, []string{"x"}, false},
		{"zero number", map[string]any{"x": 0.0}, []string{"x"}, false},
		{"non-zero number", map[string]any{"x": 3.0}, []string{"x"}, true},
		{"true bool", map[string]any{"x": true}, []string{"x"}, true},
		{"false bool", map[string]any{"x": false}, []string{"x"}, false},
		{"non-empty slice", map[string]any{"x": []any{1}}, []string{"x"}, true},
		{"empty map", map[string]any{"x": map[string]any{}}, []string{"x"}, false},
		{"second key wins", map[string]any{"a": "", "b": true}, []string{"a", "b"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HasTruthy(tc.m, tc.keys...))
		})
	}
}

func TestParseNumeric_Total(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"garbage string", "abc", 0},
		{"plain string", "42.5", 42.5},
		{"currency string", "$1,200.50", 1200.5},
		{"negative string", "-30", -30},
		{"float", 7.25, 7.25},
		{"int", 12, 12},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
		{"bool", true, 0},
		{"empty string", "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseNumeric(tc.in))
		})
	}
}

func TestPickNumber_SkipsZeroValues(t *testing.T) {
	m := map[string]any{"value": 0.0, "estimated_value": "2500"}
	assert.Equal(t, 2500.0, PickNumber(m, "value", "estimated_value"))
}

func TestParseDate_Layouts(t *testing.T) {
	for _, s := range []string{
		"2026-03-15",
		"2026-03-15T10:30:00Z",
		"03/15/2026",
		"Mar 15, 2026",
	} {
		tm, ok := ParseDate(s)
		if !ok {
			t.Fatalf("expected %q to parse", s)
		}
		assert.Equal(t, 2026, tm.Year())
		assert.Equal(t, time.March, tm.Month())
		assert.Equal(t, 15, tm.Day())
	}
}

func TestParseDate_Epoch(t *testing.T) {
	tm, ok := ParseDate(float64(1767225600)) // 2026-01-01T00:00:00Z
	if !ok {
		t.Fatal("expected epoch seconds to parse")
	}
	assert.Equal(t, 2026, tm.Year())

	tm, ok = ParseDate(float64(1767225600000))
	if !ok {
		t.Fatal("expected epoch millis to parse")
	}
	assert.Equal(t, 2026, tm.Year())
}

func TestParseDate_Invalid(t *testing.T) {
	for _, v := range []any{"not a date", "", nil, false, float64(0), float64(-5)} {
		if _, ok := ParseDate(v); ok {
			t.Fatalf("expected %v not to parse", v)
		}
	}
}

func TestPickFirstDate_FirstMatchWins(t *testing.T) {
	m := map[string]any{
		"a": "2026-06-01",
		"b": "2025-01-01", // earlier, but second in candidate order
	}
	tm, ok := PickFirstDate(m, "a", "b")
	if !ok {
		t.Fatal("expected a date")
	}
	assert.Equal(t, time.June, tm.Month())
}

func TestPickFirstDate_FallsThroughInvalid(t *testing.T) {
	m := map[string]any{"a": "soon", "b": "2026-06-01"}
	tm, ok := PickFirstDate(m, "a", "b")
	if !ok {
		t.Fatal("expected fallback key to parse")
	}
	assert.Equal(t, 2026, tm.Year())

	_, ok = PickFirstDate(m, "a", "missing")
	assert.False(t, ok)
}
