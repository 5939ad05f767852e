package optimization

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

// Sweep bounds and the reference wall are fixed properties of the engine
const (
	MinThickness       = 1.0  // cm
	MaxThickness       = 50.0 // cm
	ThicknessStep      = 0.5  // cm
	BaselineResistance = 0.6  // m²K/W, uninsulated 300 mm masonry

	// SweepPoints is the number of thicknesses evaluated per run
	SweepPoints = int((MaxThickness-MinThickness)/ThicknessStep) + 1

	maxPaybackYears = 100
)

// OptimizerService sweeps insulation thickness and selects the economic optimum
type OptimizerService struct{}

// NewOptimizerService creates a new optimizer
func NewOptimizerService() *OptimizerService {
	return &OptimizerService{}
}

// Optimize evaluates every swept thickness and selects the optimum with the
// incremental lifetime savings rule
func (s *OptimizerService) Optimize(input entities.OptimizationInput) (*entities.InsulationOptimizationResult, error) {
	validated, err := entities.NewOptimizationInput(input)
	if err != nil {
		return nil, fmt.Errorf("invalid optimization input: %w", err)
	}
	input = *validated

	result := &entities.InsulationOptimizationResult{
		Input:              input,
		BaselineResistance: BaselineResistance,
		BaselineHeatLoss:   annualHeatLoss(1.0/BaselineResistance, input),
	}
	result.BaselineHeatingCost = result.BaselineHeatLoss * input.EnergyCost

	thicknesses := floats.Span(make([]float64, SweepPoints), MinThickness, MaxThickness)
	result.DataPoints = make([]entities.OptimizationDataPoint, 0, len(thicknesses))

	for i, thickness := range thicknesses {
		point := dataPoint(thickness, input, result.BaselineHeatingCost)
		if i == 0 {
			point.IncrementalPayback = point.PaybackPeriod
		} else {
			point.IncrementalPayback = incrementalPayback(result.DataPoints[i-1], point)
		}
		result.DataPoints = append(result.DataPoints, point)
	}

	result.Optimal = result.DataPoints[selectOptimum(result.DataPoints)]
	result.Recommendations = Recommend(result)

	return result, nil
}

// selectOptimum walks the sweep in order and returns the index of the point
// before the first step whose lifetime savings gain is smaller than its extra
// investment. Returns the last index when every step pays off.
func selectOptimum(points []entities.OptimizationDataPoint) int {
	if len(points) == 0 {
		return -1
	}
	for i := 1; i < len(points); i++ {
		extraCost := points[i].InvestmentCost - points[i-1].InvestmentCost
		extraSavings := points[i].CumulativeSavings - points[i-1].CumulativeSavings
		if extraSavings < extraCost {
			return i - 1
		}
	}
	return len(points) - 1
}

func incrementalPayback(previous, current entities.OptimizationDataPoint) float64 {
	extraCost := current.InvestmentCost - previous.InvestmentCost
	extraSavings := current.CumulativeSavings - previous.CumulativeSavings
	if extraSavings <= 0 {
		return math.Inf(1)
	}
	return extraCost / extraSavings
}

func dataPoint(thickness float64, input entities.OptimizationInput, baselineCost float64) entities.OptimizationDataPoint {
	r := BaselineResistance + (thickness/100.0)/input.Lambda
	p := entities.OptimizationDataPoint{
		Thickness: thickness,
		RValue:    r,
		UValue:    1.0 / r,
	}
	p.AnnualHeatLoss = annualHeatLoss(p.UValue, input)
	p.AnnualHeatingCost = p.AnnualHeatLoss * input.EnergyCost
	p.AnnualSavings = baselineCost - p.AnnualHeatingCost
	p.InvestmentCost = (input.FixedCost + input.InsulationCostPerCm*thickness) * input.Area

	if input.InflationApplied() {
		for year := 1; year <= input.LifetimeYears; year++ {
			p.CumulativeSavings += p.AnnualSavings * inflationFactor(input, year)
		}
	} else {
		p.CumulativeSavings = p.AnnualSavings * float64(input.LifetimeYears)
	}

	p.NetProfit = p.CumulativeSavings - p.InvestmentCost
	p.PaybackPeriod = paybackPeriod(p, input)

	if input.DiscountingApplied() {
		p.DiscountedCumulativeSavings, p.DiscountedPaybackPeriod = discountedSavings(p, input)
		p.NetPresentValue = p.DiscountedCumulativeSavings - p.InvestmentCost
	} else {
		p.DiscountedCumulativeSavings = p.CumulativeSavings
		p.NetPresentValue = p.NetProfit
		p.DiscountedPaybackPeriod = p.PaybackPeriod
	}

	return p
}

// annualHeatLoss returns kWh per year through the given area
func annualHeatLoss(u float64, input entities.OptimizationInput) float64 {
	return u * input.TemperatureDifference * input.Area * 24 * float64(input.HeatingDays) / 1000.0
}

func inflationFactor(input entities.OptimizationInput, year int) float64 {
	if !input.InflationApplied() {
		return 1.0
	}
	return math.Pow(1+input.AnnualInflationRate/100.0, float64(year))
}

func paybackPeriod(p entities.OptimizationDataPoint, input entities.OptimizationInput) float64 {
	if p.AnnualSavings <= 0 {
		return math.Inf(1)
	}
	if !input.InflationApplied() {
		return p.InvestmentCost / p.AnnualSavings
	}

	cumulative := 0.0
	year := 0
	for cumulative < p.InvestmentCost && year < maxPaybackYears {
		year++
		cumulative += p.AnnualSavings * inflationFactor(input, year)
	}
	if year >= maxPaybackYears {
		return math.Inf(1)
	}
	return float64(year)
}

// discountedSavings returns the present value of lifetime savings and the
// first year it covers the investment (+Inf if never)
func discountedSavings(p entities.OptimizationDataPoint, input entities.OptimizationInput) (float64, float64) {
	total := 0.0
	payback := math.Inf(1)
	for year := 1; year <= input.LifetimeYears; year++ {
		discount := math.Pow(1+input.DiscountRate/100.0, float64(year))
		total += p.AnnualSavings * inflationFactor(input, year) / discount
		if math.IsInf(payback, 1) && total >= p.InvestmentCost {
			payback = float64(year)
		}
	}
	return total, payback
}

// ComparisonData returns the swept points matching the common stock
// thicknesses and the optimum, ordered by thickness without duplicates
func ComparisonData(result *entities.InsulationOptimizationResult) []entities.OptimizationDataPoint {
	targets := []float64{10, 15, 20, result.Optimal.Thickness}
	sort.Float64s(targets)

	points := make([]entities.OptimizationDataPoint, 0, len(targets))
	seen := make(map[float64]bool, len(targets))
	for _, target := range targets {
		for _, p := range result.DataPoints {
			if math.Abs(p.Thickness-target) < ThicknessStep {
				if !seen[p.Thickness] {
					seen[p.Thickness] = true
					points = append(points, p)
				}
				break
			}
		}
	}
	return points
}
