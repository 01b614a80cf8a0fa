// Package planner compiles a validated request plus the probed input
// duration into a complete edit plan: normalized segments, tempo decision,
// filter graph, and the full engine command. Build is pure; it touches
// neither the filesystem nor any external process.
package planner

import (
	"github.com/tempocut/tempocut/internal/config"
	"github.com/tempocut/tempocut/internal/duration"
	"github.com/tempocut/tempocut/internal/errs"
	"github.com/tempocut/tempocut/internal/ffmpeg"
	"github.com/tempocut/tempocut/internal/segment"
	"github.com/tempocut/tempocut/internal/tempo"
)

// Plan holds every decision for one edit. It is produced by Build and
// consumed by the pipeline for execution and by display for reporting.
type Plan struct {
	Segments    []segment.Segment `json:"segments"`
	TotalKept   float64           `json:"total_kept"`
	Target      *float64          `json:"target,omitempty"`
	Tempo       tempo.Plan        `json:"tempo"`
	FilterGraph string            `json:"filter_graph"`
	Command     []string          `json:"command"`
}

// Build produces the Plan for cfg against the probed total input duration.
// ffmpegPath must already be resolved to an executable; it only flows into
// the command argument vector.
//
// Flow:
//  1. Derive segment specs (explicit list verbatim, else trim shorthand)
//  2. Normalize and clamp against the input duration
//  3. Compute the tempo factor and stage chain
//  4. Assemble the filter graph and full command
func Build(cfg *config.Config, ffmpegPath string, totalDuration float64) (*Plan, error) {
	specs, err := deriveSpecs(cfg, totalDuration)
	if err != nil {
		return nil, err
	}

	segments, err := segment.Normalize(specs, totalDuration)
	if err != nil {
		return nil, err
	}

	totalKept := segment.TotalDuration(segments)
	if totalKept <= duration.Tolerance {
		return nil, errs.Validationf("total segment duration must be positive")
	}

	tp, err := tempo.Build(totalKept, cfg.ParsedTarget)
	if err != nil {
		return nil, err
	}

	graph := ffmpeg.BuildFilterGraph(segments, tp.Chain, tp.Apply)
	command := ffmpeg.BuildArgs(ffmpegPath, cfg.InputPath, cfg.OutputPath, graph, cfg.AudioCodec)

	return &Plan{
		Segments:    segments,
		TotalKept:   totalKept,
		Target:      cfg.ParsedTarget,
		Tempo:       tp,
		FilterGraph: graph,
		Command:     command,
	}, nil
}

// deriveSpecs turns the request's selection into an ordered spec list.
// Explicit segments, already parsed by config.Validate before any external
// process ran, are used verbatim; otherwise exactly one segment comes from
// the trim shorthand: start defaults to 0, end is start+length when a
// length is given, else the given end, else the full input duration.
func deriveSpecs(cfg *config.Config, totalDuration float64) ([]segment.Spec, error) {
	if len(cfg.ParsedSegments) > 0 {
		return cfg.ParsedSegments, nil
	}

	start := cfg.ParsedTrimStart
	if start < 0 {
		start = 0
	}
	var end float64
	switch {
	case cfg.ParsedTrimLen != nil:
		if *cfg.ParsedTrimLen <= 0 {
			return nil, errs.Validationf("trim length must be positive")
		}
		end = start + *cfg.ParsedTrimLen
	case cfg.ParsedTrimEnd != nil:
		end = *cfg.ParsedTrimEnd
		if end < start {
			end = start
		}
	default:
		end = totalDuration
	}
	return []segment.Spec{{Start: start, End: end}}, nil
}
