// Package pipeline orchestrates a single edit request: path and tool
// validation, the input duration probe, plan compilation, optional engine
// execution, and the output re-probe for reporting.
package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/tempocut/tempocut/internal/config"
	"github.com/tempocut/tempocut/internal/errs"
	"github.com/tempocut/tempocut/internal/ffmpeg"
	"github.com/tempocut/tempocut/internal/logging"
	"github.com/tempocut/tempocut/internal/planner"
	"github.com/tempocut/tempocut/internal/probe"
)

// Result is the full summary of one request: the compiled plan plus the
// probed input duration, the measured output duration (nil when the
// post-run probe failed or in dry-run), and the dry-run flag.
type Result struct {
	RequestID          string        `json:"request_id"`
	InputPath          string        `json:"input_path"`
	OutputPath         string        `json:"output_path"`
	TotalInputDuration float64       `json:"total_input_duration"`
	Plan               *planner.Plan `json:"plan"`
	NewDuration        *float64      `json:"new_duration,omitempty"`
	DryRun             bool          `json:"dry_run"`
}

// Run validates the request, probes the input, compiles the plan, and
// (unless dry-run) invokes the engine and re-probes the output.
//
// Validation order: input must exist; input and output must differ when both
// resolve; an existing output without overwrite is a conflict; a missing
// output parent directory is an error during dry-run and is created
// otherwise. Both external tools are resolved before the probe runs, so
// every ValidationError/NotFoundError/ConflictError surfaces before any
// external process starts.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (*Result, error) {
	id := uuid.NewString()
	log.Debug("request %s: %s -> %s", id, cfg.InputPath, cfg.OutputPath)

	if _, err := os.Stat(cfg.InputPath); err != nil {
		return nil, errs.NotFoundf("input file does not exist: %s", cfg.InputPath)
	}
	if samePath(cfg.InputPath, cfg.OutputPath) {
		return nil, errs.Validationf("input and output paths must be different")
	}
	if _, err := os.Stat(cfg.OutputPath); err == nil && !cfg.Overwrite {
		return nil, errs.Conflictf(
			"output file already exists: %s (use --overwrite to replace it)", cfg.OutputPath)
	}

	parentDir := filepath.Dir(cfg.OutputPath)
	if _, err := os.Stat(parentDir); err != nil {
		if cfg.DryRun {
			return nil, errs.NotFoundf("output directory does not exist: %s", parentDir)
		}
		if err := os.MkdirAll(parentDir, 0755); err != nil {
			return nil, errs.NotFoundf("cannot create output directory %s: %v", parentDir, err)
		}
	}

	ffmpegPath, err := ffmpeg.ResolveTool(cfg.FFmpeg)
	if err != nil {
		return nil, err
	}
	ffprobePath, err := ffmpeg.ResolveTool(cfg.FFprobe)
	if err != nil {
		return nil, err
	}
	log.Debug("request %s: tools %s, %s", id, ffmpegPath, ffprobePath)

	totalDuration, err := probe.Duration(ctx, ffprobePath, cfg.InputPath)
	if err != nil {
		return nil, err
	}

	plan, err := planner.Build(cfg, ffmpegPath, totalDuration)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RequestID:          id,
		InputPath:          cfg.InputPath,
		OutputPath:         cfg.OutputPath,
		TotalInputDuration: totalDuration,
		Plan:               plan,
		DryRun:             cfg.DryRun,
	}

	if cfg.DryRun {
		return result, nil
	}

	if err := ffmpeg.Execute(ctx, plan.Command, cfg.Verbose); err != nil {
		return nil, err
	}

	// The edit itself succeeded; a failed re-probe only costs the report's
	// measured duration.
	newDuration, err := probe.Duration(ctx, ffprobePath, cfg.OutputPath)
	if err != nil {
		log.Warn("could not measure output duration: %v", err)
	} else {
		result.NewDuration = &newDuration
	}
	return result, nil
}

// samePath reports whether a and b refer to the same file. Symlinks are
// resolved when possible; a not-yet-existing output resolves no further
// than its absolute form.
func samePath(a, b string) bool {
	ra := canonical(a)
	rb := canonical(b)
	return ra != "" && ra == rb
}

func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
