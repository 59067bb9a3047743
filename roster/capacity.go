package roster

import (
	"strconv"
	"strings"
)

// openRangeSpan is how far "N+" extends above N.
const openRangeSpan = 3

// ParseRange parses a capacity string.
//
// Accepted forms:
//   - "3"      → (3,3)
//   - "2-4"    → (2,4)
//   - "1,3,2"  → (1,3), the extremes of the list
//   - "5+"     → (5,8)
//
// Anything else (empty, negative, min > max, garbage) yields fallback and false.
func ParseRange(s string, fallback Range) (Range, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, false
	}

	switch {
	case strings.HasSuffix(s, "+"):
		n, ok := parseCount(strings.TrimSuffix(s, "+"))
		if !ok {
			return fallback, false
		}
		return Range{Min: n, Max: n + openRangeSpan}, true

	case strings.Contains(s, ","):
		var r Range
		for i, part := range strings.Split(s, ",") {
			n, ok := parseCount(part)
			if !ok {
				return fallback, false
			}
			if i == 0 || n < r.Min {
				r.Min = n
			}
			if i == 0 || n > r.Max {
				r.Max = n
			}
		}
		return r, true

	case strings.Contains(s, "-"):
		lo, hi, found := strings.Cut(s, "-")
		if !found {
			return fallback, false
		}
		low, ok1 := parseCount(lo)
		high, ok2 := parseCount(hi)
		if !ok1 || !ok2 || low > high {
			return fallback, false
		}
		return Range{Min: low, Max: high}, true
	}

	n, ok := parseCount(s)
	if !ok {
		return fallback, false
	}

	return Range{Min: n, Max: n}, true
}

// parseCount accepts a non-negative decimal integer, optionally padded.
func parseCount(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}
