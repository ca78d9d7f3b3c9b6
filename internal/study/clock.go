package study

import (
	"fmt"
	"strconv"
	"strings"
)

const dateLayout = "2006-01-02"

// parseClock converts a 24h "HH:MM" string to minutes since midnight.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}
	return h*60 + m, nil
}

// formatClock renders minutes since midnight as "HH:MM".
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// SessionHours returns the length of a session in fractional hours.
// Unparseable or inverted times count as zero rather than erroring,
// matching the lenient-default policy used everywhere else.
func SessionHours(start, end string) float64 {
	s, err := parseClock(start)
	if err != nil {
		return 0
	}
	e, err := parseClock(end)
	if err != nil {
		return 0
	}
	if e < s {
		return 0
	}
	return float64(e-s) / 60
}
