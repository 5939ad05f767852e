package entities

import (
	"fmt"
	"math"
)

// OptimizationInput holds the economic and climatic parameters of an insulation sweep
type OptimizationInput struct {
	MaterialName          string
	Lambda                float64 // W/(m·K)
	EnergyCost            float64 // currency per kWh
	InsulationCostPerCm   float64 // currency per cm per m²
	FixedCost             float64 // currency per m², thickness independent
	TemperatureDifference float64 // K
	HeatingDays           int
	LifetimeYears         int
	Area                  float64 // m²

	UseInflation        bool
	AnnualInflationRate float64 // %
	UseDiscounting      bool
	DiscountRate        float64 // %
}

// DefaultOptimizationInput returns an EPS facade insulation scenario
func DefaultOptimizationInput() OptimizationInput {
	return OptimizationInput{
		MaterialName:          "EPS",
		Lambda:                0.035,
		EnergyCost:            1.2,
		InsulationCostPerCm:   20.0,
		FixedCost:             1200.0,
		TemperatureDifference: 18.0,
		HeatingDays:           150,
		LifetimeYears:         20,
		Area:                  1.0,
		AnnualInflationRate:   2.0,
		DiscountRate:          3.0,
	}
}

// NewOptimizationInput validates and returns a copy of the given input
func NewOptimizationInput(input OptimizationInput) (*OptimizationInput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return &input, nil
}

// Validate rejects inputs that cannot produce a meaningful sweep
func (in OptimizationInput) Validate() error {
	if !(in.Lambda > 0) {
		return fmt.Errorf("insulation lambda: %w, got %g", ErrInvalidConductivity, in.Lambda)
	}
	if in.EnergyCost < 0 {
		return fmt.Errorf("energy cost cannot be negative, got %g", in.EnergyCost)
	}
	if in.InsulationCostPerCm < 0 {
		return fmt.Errorf("insulation cost per cm cannot be negative, got %g", in.InsulationCostPerCm)
	}
	if in.FixedCost < 0 {
		return fmt.Errorf("fixed cost cannot be negative, got %g", in.FixedCost)
	}
	if in.HeatingDays < 0 || in.HeatingDays > 366 {
		return fmt.Errorf("heating days must be within 0-366, got %d", in.HeatingDays)
	}
	if in.LifetimeYears <= 0 {
		return fmt.Errorf("lifetime must be positive, got %d", in.LifetimeYears)
	}
	if !(in.Area > 0) {
		return fmt.Errorf("area must be positive, got %g", in.Area)
	}
	if in.UseInflation && in.AnnualInflationRate < 0 {
		return fmt.Errorf("inflation rate cannot be negative, got %g", in.AnnualInflationRate)
	}
	if in.UseDiscounting && in.DiscountRate < 0 {
		return fmt.Errorf("discount rate cannot be negative, got %g", in.DiscountRate)
	}
	return nil
}

// InflationApplied reports whether energy prices escalate during the lifetime
func (in OptimizationInput) InflationApplied() bool {
	return in.UseInflation && in.AnnualInflationRate > 0
}

// DiscountingApplied reports whether savings are discounted to present value
func (in OptimizationInput) DiscountingApplied() bool {
	return in.UseDiscounting && in.DiscountRate > 0
}

// OptimizationDataPoint is the economic evaluation of one insulation thickness.
// Infinite payback values mean the investment is never recovered.
type OptimizationDataPoint struct {
	Thickness          float64 // cm
	RValue             float64 // m²K/W
	UValue             float64 // W/(m²K)
	AnnualHeatLoss     float64 // kWh/yr
	AnnualHeatingCost  float64
	AnnualSavings      float64
	InvestmentCost     float64
	CumulativeSavings  float64
	NetProfit          float64
	PaybackPeriod      float64 // years
	IncrementalPayback float64 // years

	DiscountedCumulativeSavings float64
	NetPresentValue             float64
	DiscountedPaybackPeriod     float64 // years
}

// InsulationOptimizationResult is the immutable outcome of one optimization call
type InsulationOptimizationResult struct {
	Input               OptimizationInput
	DataPoints          []OptimizationDataPoint
	Optimal             OptimizationDataPoint
	BaselineResistance  float64
	BaselineHeatLoss    float64
	BaselineHeatingCost float64
	Recommendations     []Recommendation
}

// DataPointForThickness returns the swept point within 0.1 cm of the given thickness
func (r *InsulationOptimizationResult) DataPointForThickness(thickness float64) (OptimizationDataPoint, bool) {
	for _, p := range r.DataPoints {
		if math.Abs(p.Thickness-thickness) < 0.1 {
			return p, true
		}
	}
	return OptimizationDataPoint{}, false
}
