// Package tempo computes the retiming factor for a planned edit and
// decomposes it into per-stage multipliers the engine accepts. ffmpeg's
// atempo filter only takes factors in [0.5, 2.0], so larger or smaller
// factors are expressed as a chain of stages whose product equals the
// overall factor.
package tempo

import (
	"math"

	"github.com/tempocut/tempocut/internal/duration"
	"github.com/tempocut/tempocut/internal/errs"
)

// Plan is the retiming decision for an edit: the overall factor, its
// engine-legal stage chain, and whether any atempo stage is needed at all.
type Plan struct {
	Factor float64   `json:"factor"`
	Chain  []float64 `json:"chain"`
	Apply  bool      `json:"apply"`
}

// Build computes the tempo plan for keptDuration stretched to target. A nil
// target means no retiming: factor 1.0 and no applied stage. A factor that
// lands within tolerance of 1.0 also applies no stage, so a target equal to
// the kept duration leaves the audio untouched.
func Build(keptDuration float64, target *float64) (Plan, error) {
	if target == nil {
		return Plan{Factor: 1.0, Chain: []float64{1.0}, Apply: false}, nil
	}
	if *target <= 0 {
		return Plan{}, errs.Validationf("target duration must be positive")
	}

	factor := keptDuration / *target
	if factor <= 0 {
		return Plan{}, errs.Validationf("computed tempo factor is invalid")
	}

	chain := Decompose(factor)
	apply := len(chain) > 1 || math.Abs(chain[0]-1.0) > duration.Tolerance
	return Plan{Factor: factor, Chain: chain, Apply: apply}, nil
}

// Decompose splits factor into stages within the engine's [0.5, 2.0] limit.
// Factors above the limit emit 2.0 stages, factors below emit 0.5 stages,
// and any leftover remainder becomes one final stage. A factor within
// tolerance of 1.0 yields the single stage [1.0].
func Decompose(factor float64) []float64 {
	if math.Abs(factor-1.0) <= duration.Tolerance {
		return []float64{1.0}
	}

	var stages []float64
	remaining := factor
	for remaining > 2.0+duration.Tolerance {
		stages = append(stages, 2.0)
		remaining /= 2.0
	}
	for remaining < 0.5-duration.Tolerance {
		stages = append(stages, 0.5)
		remaining /= 0.5
	}
	if math.Abs(remaining-1.0) > duration.Tolerance {
		stages = append(stages, remaining)
	}
	if len(stages) == 0 {
		return []float64{1.0}
	}
	return stages
}
