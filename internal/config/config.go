// Package config holds the runtime request: paths, trim/segment selection,
// retiming target, external tool identifiers, and display settings. A Config
// is populated by Default and CLI flag binding, validated once, and then
// passed (by pointer) to the packages that need it.
package config

import (
	"github.com/tempocut/tempocut/internal/duration"
	"github.com/tempocut/tempocut/internal/errs"
	"github.com/tempocut/tempocut/internal/segment"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings for one invocation.
type Config struct {
	// Paths (set from positional args).
	InputPath  string
	OutputPath string

	// Selection: either repeated segment expressions or the trim shorthand.
	// The two groups are mutually exclusive; Validate enforces that.
	Segments   []string // "START-END" or "START+LENGTH" expressions, kept in order.
	TrimStart  string   // Optional start position (defaults to 0).
	TrimEnd    string   // Optional end position.
	TrimLength string   // Optional length from TrimStart.

	// Retiming.
	TargetDuration string // Optional target duration text.

	// Behavior flags.
	Overwrite bool
	DryRun    bool

	// External tools. Accepted as a literal file path or a name looked up
	// on the search path.
	FFmpeg  string // Default: "ffmpeg".
	FFprobe string // Default: "ffprobe".

	// Output encoding.
	AudioCodec string // Default: "libmp3lame".

	// Display and logging.
	Verbose   bool
	JSON      bool // Emit the result as JSON instead of the text report.
	ColorMode ColorMode
	LogFile   string // Optional log file path.
	CheckOnly bool   // Run --check diagnostics and exit.

	// Parsed selection values, populated by Validate.
	ParsedSegments  []segment.Spec
	ParsedTarget    *float64
	ParsedTrimStart float64
	ParsedTrimEnd   *float64
	ParsedTrimLen   *float64
}

// Default returns a Config with all defaults applied. Used as the base
// before flag binding overrides individual fields.
func Default() Config {
	return Config{
		FFmpeg:     "ffmpeg",
		FFprobe:    "ffprobe",
		AudioCodec: "libmp3lame",
		ColorMode:  ColorAuto,
	}
}

// Validate checks enum fields, parses every duration- and segment-valued
// flag, and enforces the caller-level rules: segments and trim shorthand are
// mutually exclusive, and the request must actually do something (trim,
// select segments, or retime). It runs before any external process is
// invoked, so every malformed expression is rejected here rather than after
// the input has been probed.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errs.Validationf("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if c.AudioCodec == "" {
		return errs.Validationf("audio codec must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputPath == "" || c.OutputPath == "" {
		return errs.Validationf("need exactly input and output paths")
	}

	if len(c.Segments) > 0 && (c.TrimStart != "" || c.TrimEnd != "" || c.TrimLength != "") {
		return errs.Validationf("do not combine --segment with --trim-start/--trim-end/--trim-length")
	}

	c.ParsedSegments = nil
	for _, raw := range c.Segments {
		spec, err := segment.ParseSpec(raw)
		if err != nil {
			return errs.Validationf("invalid --segment value %q: %v", raw, err)
		}
		c.ParsedSegments = append(c.ParsedSegments, spec)
	}

	var err error
	if c.ParsedTarget, err = duration.ParseOptional(c.TargetDuration, false); err != nil {
		return errs.Validationf("invalid --target-duration value: %v", err)
	}

	start, err := duration.ParseOptional(c.TrimStart, true)
	if err != nil {
		return errs.Validationf("invalid --trim-start value: %v", err)
	}
	if start != nil {
		c.ParsedTrimStart = *start
	}
	if c.ParsedTrimEnd, err = duration.ParseOptional(c.TrimEnd, true); err != nil {
		return errs.Validationf("invalid --trim-end value: %v", err)
	}
	if c.ParsedTrimLen, err = duration.ParseOptional(c.TrimLength, false); err != nil {
		return errs.Validationf("invalid --trim-length value: %v", err)
	}

	willTrim := len(c.Segments) > 0 ||
		c.ParsedTrimStart > duration.Tolerance ||
		c.ParsedTrimEnd != nil ||
		c.ParsedTrimLen != nil
	if c.ParsedTarget == nil && !willTrim {
		return errs.Validationf("nothing to do: specify --target-duration and/or trimming options")
	}
	return nil
}
