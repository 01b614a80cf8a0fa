package ffmpeg

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/tempocut/tempocut/internal/errs"
)

// ResolveTool turns an external tool identifier into an absolute executable
// path. A candidate naming an existing file (with "~" expanded) is accepted
// directly; otherwise the runtime search path is consulted. An unresolvable
// candidate is a NotFoundError.
func ResolveTool(candidate string) (string, error) {
	expanded := expandHome(candidate)
	if fi, err := os.Stat(expanded); err == nil && fi.Mode().IsRegular() {
		abs, err := filepath.Abs(expanded)
		if err == nil {
			return abs, nil
		}
		return expanded, nil
	}

	if resolved, err := exec.LookPath(candidate); err == nil {
		return resolved, nil
	}
	return "", errs.NotFoundf("unable to locate executable: %s", candidate)
}

// expandHome replaces a leading "~" with the current user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
