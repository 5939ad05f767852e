package entities

import "fmt"

// RecommendationKind identifies a recommendation statement
type RecommendationKind int

const (
	RecommendThickness RecommendationKind = iota
	RecommendPayback
	RecommendUValue
	RecommendAnnualSavings
	RecommendLifetimeProfit
)

// String method for RecommendationKind enum
func (k RecommendationKind) String() string {
	switch k {
	case RecommendThickness:
		return "Thickness"
	case RecommendPayback:
		return "Payback"
	case RecommendUValue:
		return "UValue"
	case RecommendAnnualSavings:
		return "AnnualSavings"
	case RecommendLifetimeProfit:
		return "LifetimeProfit"
	default:
		return "Unknown"
	}
}

// PaybackBand classifies how quickly an investment is recovered
type PaybackBand int

const (
	PaybackExcellent PaybackBand = iota // < 5 years
	PaybackGood                         // < 10 years
	PaybackAcceptable                   // < 15 years
	PaybackLong
)

// String method for PaybackBand enum
func (b PaybackBand) String() string {
	switch b {
	case PaybackExcellent:
		return "Excellent"
	case PaybackGood:
		return "Good"
	case PaybackAcceptable:
		return "Acceptable"
	case PaybackLong:
		return "Long"
	default:
		return "Unknown"
	}
}

// ClassifyPayback maps a payback period in years to its band
func ClassifyPayback(years float64) PaybackBand {
	switch {
	case years < 5:
		return PaybackExcellent
	case years < 10:
		return PaybackGood
	case years < 15:
		return PaybackAcceptable
	default:
		return PaybackLong
	}
}

// UValueBand classifies a U-value against the national building code
type UValueBand int

const (
	UValuePassive UValueBand = iota // ≤ 0.15
	UValueLowEnergy                 // ≤ 0.22
	UValueCompliant                 // ≤ 0.30
	UValueNonCompliant
)

// String method for UValueBand enum
func (b UValueBand) String() string {
	switch b {
	case UValuePassive:
		return "Passive"
	case UValueLowEnergy:
		return "LowEnergy"
	case UValueCompliant:
		return "Compliant"
	case UValueNonCompliant:
		return "NonCompliant"
	default:
		return "Unknown"
	}
}

// ClassifyUValue maps a U-value in W/(m²K) to its code band
func ClassifyUValue(u float64) UValueBand {
	switch {
	case u <= 0.15:
		return UValuePassive
	case u <= 0.22:
		return UValueLowEnergy
	case u <= 0.30:
		return UValueCompliant
	default:
		return UValueNonCompliant
	}
}

// Recommendation is one structured statement about an optimization result.
// Only the fields relevant to Kind are set.
type Recommendation struct {
	Kind RecommendationKind

	Thickness   float64 // cm
	RoundedFrom float64 // cm, set when Thickness was rounded to a stock size
	Rounded     bool

	PaybackBand PaybackBand
	UValueBand  UValueBand
	Warning     bool

	Value             float64 // years, U-value or currency depending on Kind
	Years             int
	InflationRate     float64
	IncludesInflation bool
}

// String renders the statement as English text
func (r Recommendation) String() string {
	switch r.Kind {
	case RecommendThickness:
		if r.Rounded {
			return fmt.Sprintf("Recommended thickness: %.0f cm (rounded from %.1f cm to a commonly available size)", r.Thickness, r.RoundedFrom)
		}
		return fmt.Sprintf("Recommended thickness: %.1f cm", r.Thickness)
	case RecommendPayback:
		switch r.PaybackBand {
		case PaybackExcellent:
			return "Excellent payback - highly recommended."
		case PaybackGood:
			return "Good payback - recommended."
		case PaybackAcceptable:
			return "Acceptable payback."
		default:
			return "Long payback - consider other options or materials."
		}
	case RecommendUValue:
		switch r.UValueBand {
		case UValuePassive:
			return "Excellent insulation performance (passive house)."
		case UValueLowEnergy:
			return "Very good insulation performance (low-energy house)."
		case UValueCompliant:
			return "Meets the recommended building code values."
		default:
			return "Warning: the optimal thickness does not meet the recommended code value (U ≤ 0.30 W/m²K). Consider a cheaper material or a thicker layer."
		}
	case RecommendAnnualSavings:
		return fmt.Sprintf("Annual savings: %.0f per m²", r.Value)
	case RecommendLifetimeProfit:
		if r.IncludesInflation {
			return fmt.Sprintf("Savings over %d years: %.0f per m² (after investment, including %.1f%% inflation)", r.Years, r.Value, r.InflationRate)
		}
		return fmt.Sprintf("Savings over %d years: %.0f per m² (after investment)", r.Years, r.Value)
	default:
		return ""
	}
}
