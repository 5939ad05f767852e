package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/domain/services/thermal"
)

// LayerResult is the per-layer part of an assembly report
type LayerResult struct {
	Material            string          `json:"material"`
	Category            string          `json:"category"`
	Thickness           float64         `json:"thickness"`
	Lambda              float64         `json:"lambda"`
	Resistance          float64         `json:"resistance"`
	DiffusionResistance float64         `json:"diffusion_resistance"`
	HeatCapacity        float64         `json:"heat_capacity"`
	Cost                decimal.Decimal `json:"cost"`
}

// SteadyStateResult holds the stationary aggregates
type SteadyStateResult struct {
	TotalThermalResistance float64 `json:"total_thermal_resistance"`
	ThermalTransmittance   float64 `json:"u_value"`
	ThermalCapacity        float64 `json:"thermal_capacity"`
	PhaseShift             Number  `json:"phase_shift"`
}

// DynamicResult holds the 24 h admittance results
type DynamicResult struct {
	TotalAdmittance    float64 `json:"total_admittance"`
	TotalPhase         float64 `json:"total_phase"`
	TemperatureDamping float64 `json:"temperature_damping"`
	PhaseShift         float64 `json:"phase_shift"`
	PenetrationDepth   float64 `json:"penetration_depth"`
	AmplitudeDecrement float64 `json:"amplitude_decrement"`
	ThermalInertia     string  `json:"thermal_inertia"`
	SummerComfort      string  `json:"summer_comfort"`
}

// ProfilePoint is one depth/value pair
type ProfilePoint struct {
	Depth float64 `json:"depth"`
	Value Number  `json:"value"`
}

// DewPointLayerResult compares temperature and dew point at both faces of a layer
type DewPointLayerResult struct {
	Material           string  `json:"material"`
	StartDepth         float64 `json:"start_depth"`
	EndDepth           float64 `json:"end_depth"`
	StartTemperature   float64 `json:"start_temperature"`
	EndTemperature     float64 `json:"end_temperature"`
	StartVaporPressure float64 `json:"start_vapor_pressure"`
	EndVaporPressure   float64 `json:"end_vapor_pressure"`
	StartDewPoint      Number  `json:"start_dew_point"`
	EndDewPoint        Number  `json:"end_dew_point"`
	HasCondensation    bool    `json:"has_condensation"`
}

// ZoneResult is one condensation zone
type ZoneResult struct {
	LayerIndex       int     `json:"layer_index"`
	Material         string  `json:"material"`
	StartDepth       float64 `json:"start_depth"`
	EndDepth         float64 `json:"end_depth"`
	AnnualCondensate float64 `json:"annual_condensate"`
	Severity         string  `json:"severity"`
}

// DewPointResult is the interstitial condensation section of a report
type DewPointResult struct {
	Layers                []DewPointLayerResult `json:"layers"`
	Zones                 []ZoneResult          `json:"zones"`
	HasCondensation       bool                  `json:"has_condensation"`
	TotalAnnualCondensate float64               `json:"total_annual_condensate"`
}

// BridgeResult is one thermal bridge of the correction
type BridgeResult struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Psi      float64 `json:"psi"`
	Length   float64 `json:"length"`
	HeatLoss float64 `json:"heat_loss"`
	Enabled  bool    `json:"enabled"`
}

// BridgeSummary is the thermal bridge correction of a report
type BridgeSummary struct {
	Configuration    string         `json:"configuration"`
	Bridges          []BridgeResult `json:"bridges"`
	TotalHeatLoss    float64        `json:"total_heat_loss"`
	Correction       float64        `json:"correction"`
	BaseU            float64        `json:"base_u"`
	CorrectedU       float64        `json:"corrected_u"`
	RelativeIncrease float64        `json:"relative_increase"`
	Criticality      string         `json:"criticality"`
}

// FindingResult is one validation finding
type FindingResult struct {
	Code       string `json:"code"`
	Severity   string `json:"severity"`
	Category   string `json:"category"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// AssemblyReport contains the complete output of an assembly analysis
type AssemblyReport struct {
	Name                     string            `json:"name"`
	Climate                  entities.Climate  `json:"climate"`
	Layers                   []LayerResult     `json:"layers"`
	TotalThickness           float64           `json:"total_thickness"`
	TotalDiffusionResistance float64           `json:"total_diffusion_resistance"`
	TotalCost                decimal.Decimal   `json:"total_cost"`
	SteadyState              SteadyStateResult `json:"steady_state"`
	Dynamic                  DynamicResult     `json:"dynamic"`
	TemperatureProfile       []ProfilePoint    `json:"temperature_profile"`
	VaporPressureProfile     []ProfilePoint    `json:"vapor_pressure_profile"`
	DewPoint                 DewPointResult    `json:"dew_point"`
	Bridges                  *BridgeSummary    `json:"bridges,omitempty"`
	Findings                 []FindingResult   `json:"findings"`
	Valid                    bool              `json:"valid"`
	SkippedMaterials         []string          `json:"skipped_materials,omitempty"`
}

// NewAssemblyReport assembles engine outputs into a report.
// bridges and impact may be nil when no correction was requested.
func NewAssemblyReport(
	a *entities.WallAssembly,
	analysis *thermal.Analysis,
	bridges *entities.ThermalBridgeCollection,
	impact *entities.BridgeImpact,
	findings []entities.Finding,
) *AssemblyReport {
	report := &AssemblyReport{
		Name:                     a.Name,
		Climate:                  a.Climate,
		Layers:                   make([]LayerResult, len(a.Layers)),
		TotalThickness:           a.TotalThickness(),
		TotalDiffusionResistance: a.TotalDiffusionResistance(),
		TotalCost:                a.TotalCost(),
		SteadyState: SteadyStateResult{
			TotalThermalResistance: analysis.SteadyState.TotalThermalResistance,
			ThermalTransmittance:   analysis.SteadyState.ThermalTransmittance,
			ThermalCapacity:        analysis.SteadyState.ThermalCapacity,
			PhaseShift:             Number(analysis.SteadyState.PhaseShift),
		},
		Dynamic: DynamicResult{
			TotalAdmittance:    analysis.Dynamic.TotalAdmittance,
			TotalPhase:         analysis.Dynamic.TotalPhase,
			TemperatureDamping: analysis.Dynamic.TemperatureDamping,
			PhaseShift:         analysis.Dynamic.PhaseShift,
			PenetrationDepth:   analysis.Dynamic.PenetrationDepth,
			AmplitudeDecrement: analysis.Dynamic.AmplitudeDecrement,
			ThermalInertia:     analysis.Dynamic.ThermalInertia.String(),
			SummerComfort:      analysis.Dynamic.SummerComfort.String(),
		},
		TemperatureProfile:   profilePoints(analysis.TemperatureProfile),
		VaporPressureProfile: profilePoints(analysis.VaporPressureProfile),
		DewPoint:             dewPointResult(analysis.DewPoint),
		Findings:             make([]FindingResult, len(findings)),
		Valid:                !entities.HasBlockingFindings(findings),
	}

	for i, layer := range a.Layers {
		report.Layers[i] = LayerResult{
			Material:            layer.Material.Name,
			Category:            layer.Material.Category.String(),
			Thickness:           layer.Thickness,
			Lambda:              layer.Material.ThermalConductivity,
			Resistance:          layer.ThermalResistance(),
			DiffusionResistance: layer.DiffusionResistance(),
			HeatCapacity:        layer.HeatCapacity(),
			Cost:                layer.Cost().Round(2),
		}
	}

	for i, f := range findings {
		report.Findings[i] = FindingResult{
			Code:       f.Code,
			Severity:   f.Severity.String(),
			Category:   f.Category.String(),
			Message:    f.Message,
			Details:    f.Details,
			Suggestion: f.Suggestion,
		}
	}

	if bridges != nil && impact != nil {
		report.Bridges = bridgeSummary(bridges, impact)
	}

	return report
}

// UWithBridges returns the corrected U when bridges were evaluated, else the plain U
func (r *AssemblyReport) UWithBridges() float64 {
	if r.Bridges != nil {
		return r.Bridges.CorrectedU
	}
	return r.SteadyState.ThermalTransmittance
}

func profilePoints(points []entities.ProfilePoint) []ProfilePoint {
	result := make([]ProfilePoint, len(points))
	for i, p := range points {
		result[i] = ProfilePoint{Depth: p.Depth, Value: Number(p.Value)}
	}
	return result
}

func dewPointResult(d entities.DewPointAnalysis) DewPointResult {
	result := DewPointResult{
		Layers:                make([]DewPointLayerResult, len(d.Layers)),
		Zones:                 make([]ZoneResult, len(d.Zones)),
		HasCondensation:       d.HasCondensation,
		TotalAnnualCondensate: d.TotalAnnualCondensate(),
	}
	for i, l := range d.Layers {
		result.Layers[i] = DewPointLayerResult{
			Material:           l.MaterialName,
			StartDepth:         l.StartDepth,
			EndDepth:           l.EndDepth,
			StartTemperature:   l.StartTemperature,
			EndTemperature:     l.EndTemperature,
			StartVaporPressure: l.StartVaporPressure,
			EndVaporPressure:   l.EndVaporPressure,
			StartDewPoint:      Number(l.StartDewPoint),
			EndDewPoint:        Number(l.EndDewPoint),
			HasCondensation:    l.HasCondensation,
		}
	}
	for i, z := range d.Zones {
		result.Zones[i] = ZoneResult{
			LayerIndex:       z.LayerIndex,
			Material:         z.MaterialName,
			StartDepth:       z.StartDepth,
			EndDepth:         z.EndDepth,
			AnnualCondensate: z.AnnualCondensate,
			Severity:         z.Severity.String(),
		}
	}
	return result
}

func bridgeSummary(c *entities.ThermalBridgeCollection, impact *entities.BridgeImpact) *BridgeSummary {
	summary := &BridgeSummary{
		Configuration:    impact.Configuration.String(),
		Bridges:          make([]BridgeResult, len(c.Bridges)),
		TotalHeatLoss:    c.TotalHeatLoss(),
		Correction:       impact.Correction,
		BaseU:            impact.BaseU,
		CorrectedU:       impact.CorrectedU,
		RelativeIncrease: impact.RelativeIncrease,
		Criticality:      impact.Criticality.String(),
	}
	for i, b := range c.Bridges {
		summary.Bridges[i] = BridgeResult{
			Type:     b.Type.String(),
			Name:     b.Name,
			Psi:      b.Psi,
			Length:   b.Length,
			HeatLoss: b.HeatLoss(),
			Enabled:  b.Enabled,
		}
	}
	return summary
}
