// Package probe reports a media file's container-level duration via ffprobe.
package probe

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/tempocut/tempocut/internal/errs"
)

// Duration runs ffprobe against path and returns the container duration in
// seconds. The probe requests only the format-level duration as a bare
// numeric string; any non-numeric output, non-zero exit, or missing binary
// is an ExecutionError.
func Duration(ctx context.Context, ffprobePath, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return 0, errs.Executionf(err, "ffprobe failed: %s", strings.TrimSpace(string(ee.Stderr)))
		}
		return 0, errs.Executionf(err, "ffprobe failed for %q", path)
	}

	return ParseOutput(string(out))
}

// ParseOutput converts raw ffprobe stdout into a duration in seconds.
// Exported for testing without a real ffprobe binary.
func ParseOutput(out string) (float64, error) {
	trimmed := strings.TrimSpace(out)
	seconds, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, errs.Executionf(nil, "unable to parse duration from ffprobe output: %q", trimmed)
	}
	return seconds, nil
}
