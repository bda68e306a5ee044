package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum_NoFloatArtifacts(t *testing.T) {
	assert.Equal(t, 0.3, Sum(0.1, 0.2))
	assert.Equal(t, 0.0, Sum())
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{-42.5, "-$42.50"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(tc.in))
	}
}

func TestFormatCompact(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1K"},
		{3800, "$4K"},
		{125000, "$125K"},
		{-500, "-$500"},
		{-2500, "-$3K"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCompact(tc.in))
	}
}
