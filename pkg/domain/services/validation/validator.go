package validation

import (
	"fmt"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/domain/services/thermal"
)

// Limits holds the code thresholds and physical limits the rules check against
type Limits struct {
	RequiredU              float64 // W/(m²K)
	RecommendedU           float64
	PassiveHouseU          float64
	OverInsulationU        float64
	MinLayerThickness      float64 // mm
	MaxLayerThickness      float64
	MinInsulationThickness float64
	VaporBarrierMu         float64
	MaxDiffusionResistance float64 // m
}

// DefaultLimits returns the national code values for external walls
func DefaultLimits() Limits {
	return Limits{
		RequiredU:              0.30,
		RecommendedU:           0.25,
		PassiveHouseU:          0.15,
		OverInsulationU:        0.10,
		MinLayerThickness:      1,
		MaxLayerThickness:      1000,
		MinInsulationThickness: 20,
		VaporBarrierMu:         100,
		MaxDiffusionResistance: 20,
	}
}

// AssemblyValidator runs the rule set over wall assemblies
type AssemblyValidator struct {
	limits Limits
}

// NewAssemblyValidator creates a validator with the default limits
func NewAssemblyValidator() *AssemblyValidator {
	return &AssemblyValidator{limits: DefaultLimits()}
}

// NewAssemblyValidatorWithLimits creates a validator with custom limits
func NewAssemblyValidatorWithLimits(limits Limits) *AssemblyValidator {
	return &AssemblyValidator{limits: limits}
}

// ValidationResult contains the findings of one validation run in rule order
type ValidationResult struct {
	Findings []entities.Finding
}

// IsValid reports whether no finding is an error or worse
func (r *ValidationResult) IsValid() bool {
	return !entities.HasBlockingFindings(r.Findings)
}

// Count returns the number of findings with the given severity
func (r *ValidationResult) Count(severity entities.Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == severity {
			n++
		}
	}
	return n
}

// Validate evaluates every rule in fixed order: U-value, layers, combinations,
// diffusion, economics. An empty assembly yields a single warning.
// Configuration errors that prevent computing U are returned as errors.
func (v *AssemblyValidator) Validate(a *entities.WallAssembly) (*ValidationResult, error) {
	result := &ValidationResult{Findings: make([]entities.Finding, 0)}

	if len(a.Layers) == 0 {
		result.Findings = append(result.Findings, entities.Finding{
			Code:     "EMPTY_ASSEMBLY",
			Severity: entities.SeverityWarning,
			Category: entities.CategoryGeneral,
			Message:  "The assembly contains no layers",
		})
		return result, nil
	}

	u, err := thermal.ThermalTransmittance(a)
	if err != nil {
		return nil, fmt.Errorf("failed to compute U-value: %w", err)
	}

	result.Findings = append(result.Findings, v.validateUValue(u)...)
	for _, layer := range a.Layers {
		result.Findings = append(result.Findings, v.validateLayerThickness(layer)...)
	}
	result.Findings = append(result.Findings, v.validateMaterialCombinations(a.Layers)...)
	result.Findings = append(result.Findings, v.validateDiffusion(a)...)
	result.Findings = append(result.Findings, v.validateEconomics(a, u)...)

	return result, nil
}

func (v *AssemblyValidator) validateUValue(u float64) []entities.Finding {
	switch {
	case u > v.limits.RequiredU:
		return []entities.Finding{{
			Code:       "U_VALUE_EXCEEDS_REQUIRED",
			Severity:   entities.SeverityError,
			Category:   entities.CategoryBuildingCode,
			Message:    "The assembly does not meet the required U-value",
			Details:    fmt.Sprintf("U = %.3f W/(m²·K) > %.2f W/(m²·K)", u, v.limits.RequiredU),
			Suggestion: "Increase the insulation thickness or use a material with lower conductivity",
		}}
	case u > v.limits.RecommendedU:
		return []entities.Finding{{
			Code:       "U_VALUE_ABOVE_RECOMMENDED",
			Severity:   entities.SeverityWarning,
			Category:   entities.CategoryBuildingCode,
			Message:    "The assembly meets the requirement but not the recommended U-value",
			Details:    fmt.Sprintf("U = %.3f W/(m²·K) > %.2f W/(m²·K)", u, v.limits.RecommendedU),
			Suggestion: "Consider more insulation for better energy efficiency",
		}}
	case u <= v.limits.PassiveHouseU:
		return []entities.Finding{{
			Code:     "U_VALUE_PASSIVE",
			Severity: entities.SeverityInfo,
			Category: entities.CategoryBuildingCode,
			Message:  "The assembly meets the passive house standard",
			Details:  fmt.Sprintf("U = %.3f W/(m²·K) ≤ %.2f W/(m²·K)", u, v.limits.PassiveHouseU),
		}}
	default:
		return nil
	}
}

func (v *AssemblyValidator) validateLayerThickness(layer entities.WallLayer) []entities.Finding {
	var findings []entities.Finding
	name := layer.Material.Name

	if layer.Thickness < v.limits.MinLayerThickness {
		findings = append(findings, entities.Finding{
			Code:     "LAYER_TOO_THIN",
			Severity: entities.SeverityError,
			Category: entities.CategoryPhysicalLimits,
			Message:  fmt.Sprintf("Layer '%s' is too thin", name),
			Details:  fmt.Sprintf("Thickness %g mm < minimum %g mm", layer.Thickness, v.limits.MinLayerThickness),
		})
	} else if layer.Thickness > v.limits.MaxLayerThickness {
		findings = append(findings, entities.Finding{
			Code:     "LAYER_TOO_THICK",
			Severity: entities.SeverityError,
			Category: entities.CategoryPhysicalLimits,
			Message:  fmt.Sprintf("Layer '%s' is too thick", name),
			Details:  fmt.Sprintf("Thickness %g mm > maximum %g mm", layer.Thickness, v.limits.MaxLayerThickness),
		})
	}

	if layer.Material.IsInsulation() && layer.Thickness < v.limits.MinInsulationThickness {
		findings = append(findings, entities.Finding{
			Code:       "THIN_INSULATION",
			Severity:   entities.SeverityWarning,
			Category:   entities.CategoryPhysicalLimits,
			Message:    fmt.Sprintf("Thin insulation layer '%s'", name),
			Details:    fmt.Sprintf("Thickness %g mm < recommended minimum %g mm", layer.Thickness, v.limits.MinInsulationThickness),
			Suggestion: "Consider a thicker insulation layer",
		})
	}

	return findings
}

func (v *AssemblyValidator) validateMaterialCombinations(layers []entities.WallLayer) []entities.Finding {
	var findings []entities.Finding

	barriers := 0
	insulation := 0
	for _, layer := range layers {
		if layer.Material.DiffusionResistanceFactor > v.limits.VaporBarrierMu {
			barriers++
		}
		if layer.Material.IsInsulation() {
			insulation++
		}
	}

	if barriers > 1 {
		findings = append(findings, entities.Finding{
			Code:       "MULTIPLE_VAPOR_BARRIERS",
			Severity:   entities.SeverityWarning,
			Category:   entities.CategoryMaterialCombination,
			Message:    "Multiple vapor barriers in the assembly",
			Details:    fmt.Sprintf("%d layers with μ > %g can trap moisture between them", barriers, v.limits.VaporBarrierMu),
			Suggestion: "Use a single vapor barrier on the interior side",
		})
	}
	if insulation == 0 {
		findings = append(findings, entities.Finding{
			Code:       "NO_INSULATION",
			Severity:   entities.SeverityError,
			Category:   entities.CategoryMaterialCombination,
			Message:    "The assembly contains no thermal insulation",
			Suggestion: "Add a thermal insulation layer",
		})
	}

	return findings
}

func (v *AssemblyValidator) validateDiffusion(a *entities.WallAssembly) []entities.Finding {
	total := a.TotalDiffusionResistance()
	if total <= v.limits.MaxDiffusionResistance {
		return nil
	}
	return []entities.Finding{{
		Code:       "HIGH_DIFFUSION_RESISTANCE",
		Severity:   entities.SeverityWarning,
		Category:   entities.CategoryCondensation,
		Message:    "High total diffusion resistance",
		Details:    fmt.Sprintf("μd = %.1f m > %.0f m", total, v.limits.MaxDiffusionResistance),
		Suggestion: "Consider more vapor-open materials",
	}}
}

func (v *AssemblyValidator) validateEconomics(a *entities.WallAssembly, u float64) []entities.Finding {
	if u >= v.limits.OverInsulationU {
		return nil
	}
	return []entities.Finding{{
		Code:       "POSSIBLE_OVER_INSULATION",
		Severity:   entities.SeverityInfo,
		Category:   entities.CategoryEconomic,
		Message:    "Possibly over-dimensioned insulation",
		Details:    fmt.Sprintf("U = %.3f W/(m²·K), material cost %s per m²", u, a.TotalCost().StringFixed(0)),
		Suggestion: "Balance the material cost against the energy savings",
	}}
}
