// Package check provides --check diagnostics: resolution and version
// reporting for the configured ffmpeg and ffprobe tools.
package check

import (
	"os/exec"
	"strings"

	"github.com/tempocut/tempocut/internal/config"
	"github.com/tempocut/tempocut/internal/ffmpeg"
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check stays
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck reports whether the configured external tools resolve and what
// versions they are. Informational only; it does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== Tool Check ===")
	checkTool(log, "ffmpeg", cfg.FFmpeg)
	checkTool(log, "ffprobe", cfg.FFprobe)
}

// checkTool resolves one tool and logs its version banner line.
func checkTool(log Logger, name, candidate string) {
	resolved, err := ffmpeg.ResolveTool(candidate)
	if err != nil {
		log.Error("%s: %v", name, err)
		return
	}

	cmd := exec.Command(resolved, "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("%s found at %s but -version failed: %v", name, resolved, err)
		return
	}
	log.Success("%s: %s", name, firstLine(string(out)))
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		s = s[:idx]
	}
	return s
}
