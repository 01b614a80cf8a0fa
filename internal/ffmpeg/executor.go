package ffmpeg

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/tempocut/tempocut/internal/errs"
)

// Execute runs the prepared engine command. When verbose is set, stderr is
// tee'd to os.Stderr in real time; otherwise it is captured silently and
// attached to the error on failure. A non-zero exit or an unlaunchable
// binary becomes an ExecutionError; there is no retry.
func Execute(ctx context.Context, args []string, verbose bool) error {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderrBuf.String())
		if detail != "" {
			return errs.Executionf(err, "ffmpeg failed: %s", lastLine(detail))
		}
		return errs.Executionf(err, "ffmpeg failed")
	}
	return nil
}

// lastLine returns the final non-empty line of s; ffmpeg usually prints the
// fatal message last.
func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return s
}
