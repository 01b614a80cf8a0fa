// Command tempocut trims one or more segments from an audio file,
// concatenates them, and optionally stretches the result to a target
// duration by compiling the request into an ffmpeg filter-graph command.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tempocut/tempocut/internal/check"
	"github.com/tempocut/tempocut/internal/config"
	"github.com/tempocut/tempocut/internal/display"
	"github.com/tempocut/tempocut/internal/errs"
	"github.com/tempocut/tempocut/internal/logging"
	"github.com/tempocut/tempocut/internal/pipeline"
)

// version is set at build time via -ldflags.
var version = "1.0.0-dev"

func main() {
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:   "tempocut <input> <output>",
		Short: "Trim, concatenate, and retime audio with ffmpeg",
		Long: `Tempocut keeps one or more time ranges from an audio file, concatenates
them in the order given, and optionally stretches the result to a target
duration. It compiles the request into an exact ffmpeg command; use
--dry-run to print the command without running it.

Times accept seconds or [[hh:]mm:]ss[.ms].`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if cfg.CheckOnly {
				return cobra.MaximumNArgs(0)(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				cfg.InputPath = args[0]
				cfg.OutputPath = args[1]
			}
			return run(&cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&cfg.TargetDuration, "target-duration", "t", "",
		"target duration for the output (optional)")
	flags.StringVar(&cfg.TrimStart, "trim-start", "",
		"start position for trimming (defaults to 0)")
	flags.StringVar(&cfg.TrimEnd, "trim-end", "",
		"end position for trimming")
	flags.StringVar(&cfg.TrimLength, "trim-length", "",
		"length of the trimmed segment starting at --trim-start")
	flags.StringArrayVar(&cfg.Segments, "segment", nil,
		"keep a segment (START-END or START+LENGTH); repeat for multiple segments")
	flags.BoolVar(&cfg.Overwrite, "overwrite", false,
		"overwrite the output file if it already exists")
	flags.BoolVar(&cfg.DryRun, "dry-run", false,
		"print the ffmpeg command without executing it")
	flags.StringVar(&cfg.FFmpeg, "ffmpeg", cfg.FFmpeg,
		"name or path of the ffmpeg executable")
	flags.StringVar(&cfg.FFprobe, "ffprobe", cfg.FFprobe,
		"name or path of the ffprobe executable")
	flags.StringVar(&cfg.AudioCodec, "audio-codec", cfg.AudioCodec,
		"audio codec for the output")
	flags.BoolVar(&cfg.JSON, "json", false,
		"emit the result as JSON")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false,
		"verbose logging, including engine output")
	flags.StringVar((*string)(&cfg.ColorMode), "color", string(cfg.ColorMode),
		"colorize output: auto, always, or never")
	flags.StringVar(&cfg.LogFile, "log-file", "",
		"append log lines to this file")
	flags.BoolVar(&cfg.CheckOnly, "check", false,
		"report external tool availability and exit")

	rootCmd.MarkFlagsMutuallyExclusive("segment", "trim-start")
	rootCmd.MarkFlagsMutuallyExclusive("segment", "trim-end")
	rootCmd.MarkFlagsMutuallyExclusive("segment", "trim-length")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tempocut: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// run validates the request and drives the pipeline.
func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	if cfg.CheckOnly {
		check.RunCheck(cfg, log)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := pipeline.Run(ctx, cfg, log)
	if err != nil {
		return err
	}

	if cfg.JSON {
		return display.PrintJSON(result)
	}
	if result.DryRun {
		fmt.Println(display.FormatCommand(result.Plan.Command))
		return nil
	}
	display.PrintResult(result)
	return nil
}

// exitCode maps the error taxonomy onto process exit status: execution-time
// failures exit 1, everything caught before an external process runs
// (validation, not-found, conflict, flag errors) exits 2.
func exitCode(err error) int {
	var eerr *errs.ExecutionError
	if errors.As(err, &eerr) {
		return 1
	}
	return 2
}
