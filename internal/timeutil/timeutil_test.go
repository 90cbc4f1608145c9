package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"90", 90},
		{"1:30", 90},
		{"01:30", 90},
		{"01:30:00", 5400},
		{"2:00", 120},
		{"1:00:00", 3600},
		{" 45 ", 45},
	}

	for _, tc := range cases {
		got, err := ParseTimestamp(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseTimestampRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"abc",
		"1:abc",
		"1:2:3:4",
		"-5",
		"1:-30",
		"1.5",
		":",
		"1:",
	}

	for _, in := range bad {
		_, err := ParseTimestamp(in)
		assert.ErrorIs(t, err, ErrBadTimestamp, "input %q", in)
	}
}
