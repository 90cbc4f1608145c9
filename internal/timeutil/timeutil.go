// Package timeutil parses human-entered playback timestamps.
package timeutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrBadTimestamp is returned for input that does not look like "ss",
// "mm:ss" or "hh:mm:ss".
var ErrBadTimestamp = errors.New("invalid timestamp")

// ParseTimestamp converts "90", "1:30" or "01:30:00" into total whole
// seconds. The rightmost segment is seconds, then minutes, then hours.
func ParseTimestamp(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) > 3 {
		return 0, ErrBadTimestamp
	}

	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, ErrBadTimestamp
		}
		total = total*60 + n
	}
	return total, nil
}
