package optimization

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

func TestRecommend_DefaultScenario(t *testing.T) {
	result := defaultResult(t)
	recs := result.Recommendations
	require.Len(t, recs, 5)

	thickness := recs[0]
	assert.Equal(t, entities.RecommendThickness, thickness.Kind)
	assert.True(t, thickness.Rounded)
	assert.Equal(t, 15.0, thickness.Thickness)
	assert.Equal(t, 14.5, thickness.RoundedFrom)
	assert.Contains(t, thickness.String(), "15 cm")

	assert.Equal(t, entities.RecommendPayback, recs[1].Kind)
	assert.Equal(t, entities.PaybackAcceptable, recs[1].PaybackBand)

	assert.Equal(t, entities.RecommendUValue, recs[2].Kind)
	assert.Equal(t, entities.UValueLowEnergy, recs[2].UValueBand)
	assert.False(t, recs[2].Warning)

	assert.InDelta(t, 113.205, recs[3].Value, 1e-3)

	lifetime := recs[4]
	assert.Equal(t, 20, lifetime.Years)
	assert.False(t, lifetime.IncludesInflation)
	assert.InDelta(t, 774.096, lifetime.Value, 1e-3)
	assert.False(t, strings.Contains(lifetime.String(), "inflation"))
}

func TestRecommend_InflationStatement(t *testing.T) {
	input := entities.DefaultOptimizationInput()
	input.UseInflation = true

	result, err := NewOptimizerService().Optimize(input)
	require.NoError(t, err)

	lifetime := result.Recommendations[4]
	assert.True(t, lifetime.IncludesInflation)
	assert.Contains(t, lifetime.String(), "2.0% inflation")
}

func TestRecommend_NonCompliantWarning(t *testing.T) {
	result := &entities.InsulationOptimizationResult{
		Input:   entities.DefaultOptimizationInput(),
		Optimal: entities.OptimizationDataPoint{Thickness: 3, UValue: 0.45, PaybackPeriod: math.Inf(1)},
		DataPoints: []entities.OptimizationDataPoint{
			{Thickness: 3},
		},
	}

	recs := Recommend(result)
	assert.False(t, recs[0].Rounded, "no swept point at 5 cm")
	assert.Equal(t, 3.0, recs[0].Thickness)
	assert.Equal(t, entities.PaybackLong, recs[1].PaybackBand)
	assert.True(t, recs[2].Warning)
	assert.Contains(t, recs[2].String(), "Warning")
}

func TestPracticalThickness(t *testing.T) {
	result := defaultResult(t)

	testCases := []struct {
		optimal  float64
		expected float64
	}{
		{14.5, 15},
		{12.5, 10}, // halves round to even
		{17.5, 20},
		{20, 20},
		{1, 1}, // rounds to 0 cm which is not swept
	}

	for _, tc := range testCases {
		result.Optimal, _ = result.DataPointForThickness(tc.optimal)
		got, _ := PracticalThickness(result)
		assert.Equal(t, tc.expected, got, "optimum %.1f", tc.optimal)
	}
}

func TestPresets(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 5)

	pur, err := FindPreset("pur board")
	require.NoError(t, err)
	assert.Equal(t, 0.023, pur.Lambda)

	input := pur.Apply(entities.DefaultOptimizationInput())
	assert.Equal(t, "PUR board", input.MaterialName)
	assert.Equal(t, 30.0, input.InsulationCostPerCm)
	assert.Equal(t, 1200.0, input.FixedCost)

	_, err = FindPreset("aerogel")
	assert.Error(t, err)

	presets[0].Lambda = 1
	assert.Equal(t, 0.035, Presets()[0].Lambda, "callers get a copy")
}
