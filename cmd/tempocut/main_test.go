package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempocut/tempocut/internal/config"
	"github.com/tempocut/tempocut/internal/errs"
)

// toolStub writes an executable script standing in for an external tool,
// recording in markerFile that it actually ran.
func toolStub(t *testing.T, dir, name, stdout, markerFile string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\ntouch " + markerFile + "\nprintf '%s\\n' '" + stdout + "'\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func stubbedCfg(t *testing.T) (*config.Config, string, string) {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "in.mp3")
	require.NoError(t, os.WriteFile(input, []byte("not really audio"), 0644))

	probeMarker := filepath.Join(dir, "probe-ran")
	engineMarker := filepath.Join(dir, "engine-ran")

	cfg := config.Default()
	cfg.InputPath = input
	cfg.OutputPath = filepath.Join(dir, "out.mp3")
	cfg.ColorMode = config.ColorNever
	cfg.DryRun = true
	cfg.FFprobe = toolStub(t, dir, "ffprobe", "120.000000", probeMarker)
	cfg.FFmpeg = toolStub(t, dir, "ffmpeg", "", engineMarker)
	return &cfg, probeMarker, engineMarker
}

func TestRunRejectsBadSegmentBeforeAnyExternalProcess(t *testing.T) {
	cfg, probeMarker, engineMarker := stubbedCfg(t)
	cfg.Segments = []string{"nonsense"}

	err := run(cfg)
	require.Error(t, err)
	var verr *errs.ValidationError
	assert.ErrorAs(t, err, &verr)

	// Neither tool ran: the malformed expression was rejected up front.
	assert.NoFileExists(t, probeMarker)
	assert.NoFileExists(t, engineMarker)
}

func TestRunRejectsNothingToDoBeforeAnyExternalProcess(t *testing.T) {
	cfg, probeMarker, engineMarker := stubbedCfg(t)

	err := run(cfg)
	require.Error(t, err)
	var verr *errs.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.NoFileExists(t, probeMarker)
	assert.NoFileExists(t, engineMarker)
}

func TestRunDryRunProbesOnly(t *testing.T) {
	cfg, probeMarker, engineMarker := stubbedCfg(t)
	cfg.Segments = []string{"10-40"}
	cfg.TargetDuration = "15"

	require.NoError(t, run(cfg))
	assert.FileExists(t, probeMarker)
	assert.NoFileExists(t, engineMarker)
	assert.NoFileExists(t, cfg.OutputPath)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(errs.Executionf(nil, "engine failed")))
	assert.Equal(t, 2, exitCode(errs.Validationf("bad value")))
	assert.Equal(t, 2, exitCode(errs.NotFoundf("missing")))
	assert.Equal(t, 2, exitCode(errs.Conflictf("exists")))
}
