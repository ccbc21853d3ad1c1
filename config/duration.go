package config

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	str2duration "github.com/xhit/go-str2duration/v2"
)

// durationTermRe matches one "<integer><unit>" term at the start of the
// input, e.g. "10min" or "2 h".
var durationTermRe = regexp.MustCompile(`^(\d+)\s*([a-zA-Zµμ]+)\s*`)

// durationUnits maps the accepted unit spellings onto the units
// understood by str2duration.
var durationUnits = map[string]string{ //nolint:gochecknoglobals
	"nsec": "ns", "ns": "ns",
	"usec": "us", "us": "us", "µs": "µs", "μs": "μs",
	"msec": "ms", "ms": "ms",
	"seconds": "s", "second": "s", "secs": "s", "sec": "s", "s": "s",
	"minutes": "m", "minute": "m", "mins": "m", "min": "m", "m": "m",
	"hours": "h", "hour": "h", "hrs": "h", "hr": "h", "h": "h",
	"days": "d", "day": "d", "d": "d",
	"weeks": "w", "week": "w", "wk": "w", "w": "w",
}

// Calendar units have no fixed length; these are the average lengths
// in seconds.
var calendarUnits = map[string]int64{ //nolint:gochecknoglobals
	"months": 2_630_016, "month": 2_630_016, "M": 2_630_016,
	"years": 31_557_600, "year": 31_557_600, "y": 31_557_600,
}

// ParseDuration parses a human-readable duration such as "2h10min",
// "90s" or "1h 30m".  Every term needs an integer and a unit; terms may
// be separated by spaces.
func ParseDuration(s string) (time.Duration, error) {
	rest := strings.TrimSpace(s)
	if rest == "" {
		return 0, fmt.Errorf("empty duration, expected e.g. 2h10min")
	}

	var canon strings.Builder
	for rest != "" {
		m := durationTermRe.FindStringSubmatch(rest)
		if m == nil {
			return 0, fmt.Errorf("invalid duration %q, expected e.g. 2h10min", s)
		}
		num, unit := m[1], m[2]

		if short, ok := durationUnits[unit]; ok {
			canon.WriteString(num + short)
		} else if secs, ok := calendarUnits[unit]; ok {
			n, err := strconv.ParseInt(num, 10, 64)
			if err != nil || n > math.MaxInt64/secs {
				return 0, fmt.Errorf("duration %q is too large", s)
			}
			canon.WriteString(strconv.FormatInt(n*secs, 10) + "s")
		} else {
			return 0, fmt.Errorf("unknown time unit %q in %q", unit, s)
		}
		rest = rest[len(m[0]):]
	}

	d, err := str2duration.ParseDuration(canon.String())
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return d, nil
}

// FormatDuration renders d in the compact form used by usage output,
// e.g. "2h10m0s" becomes "2h10m".
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	return str2duration.String(d)
}
