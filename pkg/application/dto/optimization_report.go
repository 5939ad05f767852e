package dto

import (
	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

// DataPointResult is one swept thickness. Paybacks are null when never recovered.
type DataPointResult struct {
	Thickness                   float64 `json:"thickness"`
	RValue                      float64 `json:"r_value"`
	UValue                      float64 `json:"u_value"`
	AnnualHeatLoss              float64 `json:"annual_heat_loss"`
	AnnualHeatingCost           float64 `json:"annual_heating_cost"`
	AnnualSavings               float64 `json:"annual_savings"`
	InvestmentCost              float64 `json:"investment_cost"`
	CumulativeSavings           float64 `json:"cumulative_savings"`
	NetProfit                   float64 `json:"net_profit"`
	PaybackPeriod               Number  `json:"payback_period"`
	IncrementalPayback          Number  `json:"incremental_payback"`
	DiscountedCumulativeSavings float64 `json:"discounted_cumulative_savings"`
	NetPresentValue             float64 `json:"net_present_value"`
	DiscountedPaybackPeriod     Number  `json:"discounted_payback_period"`
}

// RecommendationResult is one recommendation statement
type RecommendationResult struct {
	Kind    string `json:"kind"`
	Text    string `json:"text"`
	Warning bool   `json:"warning,omitempty"`
}

// BaselineResult describes the uninsulated reference wall
type BaselineResult struct {
	Resistance  float64 `json:"resistance"`
	HeatLoss    float64 `json:"heat_loss"`
	HeatingCost float64 `json:"heating_cost"`
}

// OptimizationReport contains the complete output of an insulation sweep
type OptimizationReport struct {
	Input              OptimizationRequest    `json:"input"`
	Baseline           BaselineResult         `json:"baseline"`
	Optimal            DataPointResult        `json:"optimal"`
	PracticalThickness *float64               `json:"practical_thickness,omitempty"`
	Comparison         []DataPointResult      `json:"comparison"`
	Recommendations    []RecommendationResult `json:"recommendations"`
	DataPoints         []DataPointResult      `json:"data_points"`
}

// NewOptimizationReport converts an optimizer result. practical is the stock
// thickness the optimum rounds to, or nil when that thickness was not swept.
func NewOptimizationReport(
	result *entities.InsulationOptimizationResult,
	comparison []entities.OptimizationDataPoint,
	practical *float64,
) *OptimizationReport {
	report := &OptimizationReport{
		Input: requestFromInput(result.Input),
		Baseline: BaselineResult{
			Resistance:  result.BaselineResistance,
			HeatLoss:    result.BaselineHeatLoss,
			HeatingCost: result.BaselineHeatingCost,
		},
		Optimal:            dataPointResult(result.Optimal),
		PracticalThickness: practical,
		Comparison:         make([]DataPointResult, len(comparison)),
		Recommendations:    make([]RecommendationResult, len(result.Recommendations)),
		DataPoints:         make([]DataPointResult, len(result.DataPoints)),
	}
	for i, p := range comparison {
		report.Comparison[i] = dataPointResult(p)
	}
	for i, r := range result.Recommendations {
		report.Recommendations[i] = RecommendationResult{
			Kind:    r.Kind.String(),
			Text:    r.String(),
			Warning: r.Warning,
		}
	}
	for i, p := range result.DataPoints {
		report.DataPoints[i] = dataPointResult(p)
	}
	return report
}

func dataPointResult(p entities.OptimizationDataPoint) DataPointResult {
	return DataPointResult{
		Thickness:                   p.Thickness,
		RValue:                      p.RValue,
		UValue:                      p.UValue,
		AnnualHeatLoss:              p.AnnualHeatLoss,
		AnnualHeatingCost:           p.AnnualHeatingCost,
		AnnualSavings:               p.AnnualSavings,
		InvestmentCost:              p.InvestmentCost,
		CumulativeSavings:           p.CumulativeSavings,
		NetProfit:                   p.NetProfit,
		PaybackPeriod:               Number(p.PaybackPeriod),
		IncrementalPayback:          Number(p.IncrementalPayback),
		DiscountedCumulativeSavings: p.DiscountedCumulativeSavings,
		NetPresentValue:             p.NetPresentValue,
		DiscountedPaybackPeriod:     Number(p.DiscountedPaybackPeriod),
	}
}

func requestFromInput(in entities.OptimizationInput) OptimizationRequest {
	return OptimizationRequest{
		MaterialName:          in.MaterialName,
		Lambda:                in.Lambda,
		EnergyCost:            in.EnergyCost,
		InsulationCostPerCm:   in.InsulationCostPerCm,
		FixedCost:             in.FixedCost,
		TemperatureDifference: in.TemperatureDifference,
		HeatingDays:           in.HeatingDays,
		LifetimeYears:         in.LifetimeYears,
		Area:                  in.Area,
		UseInflation:          in.UseInflation,
		AnnualInflationRate:   in.AnnualInflationRate,
		UseDiscounting:        in.UseDiscounting,
		DiscountRate:          in.DiscountRate,
	}
}
