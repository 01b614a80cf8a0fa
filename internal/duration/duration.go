// Package duration parses human time text into seconds and formats seconds
// back into human text. Accepted input is either a bare (possibly fractional)
// number of seconds or up to three colon-separated fields ([[hh:]mm:]ss[.ms]).
package duration

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tempocut/tempocut/internal/errs"
)

// Tolerance is the shared comparison epsilon for second-valued quantities.
// Durations and tempo stages within Tolerance of each other are considered
// equal throughout the planner.
const Tolerance = 1e-3

// Parse converts value into seconds. A value that parses directly as a float
// is taken as seconds; otherwise it is split on ":" into at most three fields
// (hours, minutes, seconds) where only the last field may carry a decimal
// point. Negative results are rejected, and zero is rejected unless allowZero
// is set.
func Parse(value string, allowZero bool) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errs.Validationf("duration value cannot be empty")
	}

	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil {
		seconds, err = parseClock(value)
		if err != nil {
			return 0, err
		}
	}

	if seconds < 0 {
		return 0, errs.Validationf("duration must be non-negative: %s", value)
	}
	if !allowZero && seconds == 0 {
		return 0, errs.Validationf("duration must be positive: %s", value)
	}
	return seconds, nil
}

// ParseOptional behaves like Parse but maps empty or blank text to "absent",
// returning a nil pointer without error.
func ParseOptional(value string, allowZero bool) (*float64, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	seconds, err := Parse(value, allowZero)
	if err != nil {
		return nil, err
	}
	return &seconds, nil
}

// parseClock handles the colon-separated form. Fields accumulate with
// base-60 positional weight from the right.
func parseClock(value string) (float64, error) {
	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		return 0, errs.Validationf("invalid duration format: %s", value)
	}

	parsed := make([]float64, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return 0, errs.Validationf("invalid duration segment: %s", value)
		}
		if i == len(parts)-1 {
			f, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return 0, errs.Validationf("invalid duration format: %s", value)
			}
			parsed = append(parsed, f)
			continue
		}
		if strings.Contains(part, ".") {
			return 0, errs.Validationf("only the seconds segment may contain decimals: %s", value)
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, errs.Validationf("invalid duration segment: %s", value)
		}
		parsed = append(parsed, float64(n))
	}

	seconds := 0.0
	multiplier := 1.0
	for i := len(parsed) - 1; i >= 0; i-- {
		seconds += parsed[i] * multiplier
		multiplier *= 60.0
	}
	return seconds, nil
}

// Format renders seconds as a human readable clock string: H:MM:SS when an
// hour field is present, M:SS otherwise, with a ".mmm" millisecond suffix
// only when the fractional part is at least one millisecond. Negative input
// is clamped to zero.
func Format(seconds float64) string {
	seconds = math.Max(seconds, 0.0)
	whole := int64(seconds)
	fractional := seconds - float64(whole)

	hours := whole / 3600
	remainder := whole % 3600
	minutes := remainder / 60
	secs := remainder % 60

	var base string
	if hours > 0 {
		base = fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	} else {
		base = fmt.Sprintf("%d:%02d", minutes, secs)
	}
	if fractional >= 1e-3 {
		base += fmt.Sprintf(".%03d", int64(math.Round(fractional*1000)))
	}
	return base
}
