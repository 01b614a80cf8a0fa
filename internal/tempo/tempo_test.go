package tempo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempocut/tempocut/internal/errs"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		want   []float64
	}{
		{"identity", 1.0, []float64{1.0}},
		{"within tolerance of identity", 1.0005, []float64{1.0}},
		{"in range", 1.5, []float64{1.5}},
		{"exact double", 2.0, []float64{2.0}},
		{"quadruple", 4.0, []float64{2.0, 2.0}},
		{"quarter", 0.25, []float64{0.5, 0.5}},
		{"exact half", 0.5, []float64{0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decompose(tt.factor)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestDecomposeProductMatchesFactor(t *testing.T) {
	for _, factor := range []float64{3.0, 0.3, 7.25, 0.07, 1.999, 2.001} {
		stages := Decompose(factor)
		product := 1.0
		for _, s := range stages {
			product *= s
			if s != stages[len(stages)-1] {
				assert.True(t, s == 2.0 || s == 0.5, "non-final stage %v for factor %v", s, factor)
			}
			assert.GreaterOrEqual(t, s, 0.5-1e-9, "stage below limit for factor %v", factor)
		}
		assert.InDelta(t, factor, product, 1e-3, "product of %v for factor %v", stages, factor)
	}
}

func TestBuildWithoutTarget(t *testing.T) {
	plan, err := Build(30, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, plan.Factor)
	assert.Equal(t, []float64{1.0}, plan.Chain)
	assert.False(t, plan.Apply)
}

func TestBuildSpeedUp(t *testing.T) {
	target := 15.0
	plan, err := Build(30, &target)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, plan.Factor, 1e-9)
	assert.Equal(t, []float64{2.0}, plan.Chain)
	assert.True(t, plan.Apply)
}

func TestBuildTargetEqualsKept(t *testing.T) {
	// A target numerically equal to the kept duration produces no stage.
	target := 30.0
	plan, err := Build(30, &target)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, plan.Factor, 1e-9)
	assert.False(t, plan.Apply)
}

func TestBuildRejectsNonPositiveTarget(t *testing.T) {
	for _, target := range []float64{0, -10} {
		tt := target
		_, err := Build(30, &tt)
		require.Error(t, err)
		var verr *errs.ValidationError
		assert.ErrorAs(t, err, &verr)
	}
}
