// Package segment defines keep-range values and their validation. A Spec is
// the raw caller-requested range; Normalize clamps specs against the probed
// input duration and rejects ranges that collapse. Input order is preserved
// exactly: segments concatenate in the order given, so overlapping or
// out-of-order ranges are legal and intentional (reordering, looping).
package segment

import (
	"strings"

	"github.com/tempocut/tempocut/internal/duration"
	"github.com/tempocut/tempocut/internal/errs"
)

// Spec is a raw keep-range in seconds. It may still be invalid (end beyond
// the input, negative start) before Normalize runs.
type Spec struct {
	Start float64
	End   float64
}

// Segment is a normalized, clamped keep-range with strictly positive
// duration.
type Segment struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"`
}

// ParseSpec parses "START-END" or "START+LENGTH" into a Spec. With "+" the
// length must be positive; with "-" both bounds may be zero. A spec whose
// end does not exceed its start is rejected.
func ParseSpec(text string) (Spec, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Spec{}, errs.Validationf("segment value cannot be empty")
	}

	var start, end float64
	switch {
	case strings.Contains(text, "+"):
		startText, lengthText, _ := strings.Cut(text, "+")
		var err error
		start, err = duration.Parse(startText, true)
		if err != nil {
			return Spec{}, err
		}
		length, err := duration.Parse(lengthText, false)
		if err != nil {
			return Spec{}, err
		}
		end = start + length
	case strings.Contains(text, "-"):
		startText, endText, _ := strings.Cut(text, "-")
		var err error
		start, err = duration.Parse(startText, true)
		if err != nil {
			return Spec{}, err
		}
		end, err = duration.Parse(endText, true)
		if err != nil {
			return Spec{}, err
		}
	default:
		return Spec{}, errs.Validationf("segment must be formatted as START-END or START+LENGTH: %s", text)
	}

	if end <= start {
		return Spec{}, errs.Validationf("segment end must be greater than start: %s", text)
	}
	return Spec{Start: start, End: end}, nil
}

// Normalize clamps each spec against [0, total] and validates that it keeps
// a positive duration. The result preserves input order; nothing is sorted
// or merged.
func Normalize(specs []Spec, total float64) ([]Segment, error) {
	if len(specs) == 0 {
		return nil, errs.Validationf("at least one segment must be provided")
	}

	results := make([]Segment, 0, len(specs))
	for _, spec := range specs {
		start := spec.Start
		if start < 0 {
			start = 0
		}
		end := spec.End
		if end > total {
			end = total
		}
		if end < start {
			end = start
		}
		if end-start <= duration.Tolerance {
			return nil, errs.Validationf(
				"segment %s-%s collapses after clamping to the input duration",
				duration.Format(spec.Start), duration.Format(spec.End))
		}
		results = append(results, Segment{Start: start, End: end, Duration: end - start})
	}
	return results, nil
}

// TotalDuration sums the kept durations of segs.
func TotalDuration(segs []Segment) float64 {
	total := 0.0
	for _, s := range segs {
		total += s.Duration
	}
	return total
}
