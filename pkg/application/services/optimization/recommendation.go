package optimization

import (
	"math"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

// stockStep is the thickness increment insulation boards are commonly sold in
const stockStep = 5.0 // cm

// PracticalThickness rounds the optimum to the nearest stock size. The second
// return value is false when no swept point exists at the rounded size, in
// which case the optimum itself is returned.
func PracticalThickness(result *entities.InsulationOptimizationResult) (float64, bool) {
	optimal := result.Optimal.Thickness
	rounded := math.RoundToEven(optimal/stockStep) * stockStep
	if rounded == optimal {
		return optimal, true
	}
	if _, ok := result.DataPointForThickness(rounded); !ok {
		return optimal, false
	}
	return rounded, true
}

// Recommend builds the structured statements describing an optimization result
func Recommend(result *entities.InsulationOptimizationResult) []entities.Recommendation {
	optimal := result.Optimal
	input := result.Input

	thickness := entities.Recommendation{Kind: entities.RecommendThickness, Thickness: optimal.Thickness}
	if practical, ok := PracticalThickness(result); ok && practical != optimal.Thickness {
		thickness.Thickness = practical
		thickness.RoundedFrom = optimal.Thickness
		thickness.Rounded = true
	}

	uBand := entities.ClassifyUValue(optimal.UValue)

	return []entities.Recommendation{
		thickness,
		{
			Kind:        entities.RecommendPayback,
			PaybackBand: entities.ClassifyPayback(optimal.PaybackPeriod),
			Value:       optimal.PaybackPeriod,
		},
		{
			Kind:       entities.RecommendUValue,
			UValueBand: uBand,
			Warning:    uBand == entities.UValueNonCompliant,
			Value:      optimal.UValue,
		},
		{
			Kind:  entities.RecommendAnnualSavings,
			Value: optimal.AnnualSavings,
		},
		{
			Kind:              entities.RecommendLifetimeProfit,
			Value:             optimal.NetProfit,
			Years:             input.LifetimeYears,
			InflationRate:     input.AnnualInflationRate,
			IncludesInflation: input.InflationApplied(),
		},
	}
}
