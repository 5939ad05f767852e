package dto

import (
	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

// LayerRequest names a catalog material and its thickness in mm
type LayerRequest struct {
	Material  string  `json:"material" yaml:"material"`
	Thickness float64 `json:"thickness" yaml:"thickness"`
}

// TemplateOverride adjusts one template layer by index
type TemplateOverride struct {
	Index     int     `json:"index" yaml:"index"`
	Thickness float64 `json:"thickness" yaml:"thickness"`
	Disabled  bool    `json:"disabled" yaml:"disabled"`
}

// CustomBridgeRequest describes a user-defined linear thermal bridge
type CustomBridgeRequest struct {
	Type   string  `json:"type" yaml:"type"`
	Name   string  `json:"name" yaml:"name"`
	Psi    float64 `json:"psi" yaml:"psi"`
	Length float64 `json:"length" yaml:"length"`
}

// BridgeOptions controls the thermal bridge correction of an analysis
type BridgeOptions struct {
	Enabled   bool                  `json:"enabled" yaml:"enabled"`
	Perimeter float64               `json:"perimeter" yaml:"perimeter"`
	FloorArea float64               `json:"floor_area" yaml:"floor_area"`
	Disabled  []string              `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Custom    []CustomBridgeRequest `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// AssemblyRequest describes a wall either layer by layer or from a template.
// When Template is set, Layers is ignored.
type AssemblyRequest struct {
	Name                      string             `json:"name" yaml:"name"`
	Template                  string             `json:"template,omitempty" yaml:"template,omitempty"`
	TemplateOverrides         []TemplateOverride `json:"template_overrides,omitempty" yaml:"template_overrides,omitempty"`
	Layers                    []LayerRequest     `json:"layers" yaml:"layers"`
	InteriorSurfaceResistance float64            `json:"rsi" yaml:"rsi"`
	ExteriorSurfaceResistance float64            `json:"rse" yaml:"rse"`
	Climate                   entities.Climate   `json:"climate" yaml:"climate"`
	Bridges                   BridgeOptions      `json:"bridges" yaml:"bridges"`
}

// NewAssemblyRequest returns a request prefilled with the given boundary conditions
// and the typical bridges of a default building. Decoders fill it in place.
func NewAssemblyRequest(climate entities.Climate, rsi, rse float64) AssemblyRequest {
	return AssemblyRequest{
		InteriorSurfaceResistance: rsi,
		ExteriorSurfaceResistance: rse,
		Climate:                   climate,
		Bridges: BridgeOptions{
			Enabled:   true,
			Perimeter: entities.DefaultBuildingPerimeter,
			FloorArea: entities.DefaultFloorArea,
		},
	}
}

// Selections converts the template overrides into entity layer selections
func (r AssemblyRequest) Selections() map[int]entities.LayerSelection {
	selections := make(map[int]entities.LayerSelection, len(r.TemplateOverrides))
	for _, o := range r.TemplateOverrides {
		selections[o.Index] = entities.LayerSelection{Thickness: o.Thickness, Disabled: o.Disabled}
	}
	return selections
}

// OptimizationRequest carries the economic scenario of an insulation sweep.
// Preset, when set, overrides Lambda, InsulationCostPerCm and MaterialName.
type OptimizationRequest struct {
	Preset                string  `json:"preset,omitempty" yaml:"preset,omitempty"`
	MaterialName          string  `json:"material_name" yaml:"material_name"`
	Lambda                float64 `json:"lambda" yaml:"lambda"`
	EnergyCost            float64 `json:"energy_cost" yaml:"energy_cost"`
	InsulationCostPerCm   float64 `json:"insulation_cost_per_cm" yaml:"insulation_cost_per_cm"`
	FixedCost             float64 `json:"fixed_cost" yaml:"fixed_cost"`
	TemperatureDifference float64 `json:"temperature_difference" yaml:"temperature_difference"`
	HeatingDays           int     `json:"heating_days" yaml:"heating_days"`
	LifetimeYears         int     `json:"lifetime_years" yaml:"lifetime_years"`
	Area                  float64 `json:"area" yaml:"area"`
	UseInflation          bool    `json:"use_inflation" yaml:"use_inflation"`
	AnnualInflationRate   float64 `json:"annual_inflation_rate" yaml:"annual_inflation_rate"`
	UseDiscounting        bool    `json:"use_discounting" yaml:"use_discounting"`
	DiscountRate          float64 `json:"discount_rate" yaml:"discount_rate"`
}

// NewOptimizationRequest returns a request prefilled with the default scenario
func NewOptimizationRequest() OptimizationRequest {
	in := entities.DefaultOptimizationInput()
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

// Input converts the request into optimizer input
func (r OptimizationRequest) Input() entities.OptimizationInput {
	return entities.OptimizationInput{
		MaterialName:          r.MaterialName,
		Lambda:                r.Lambda,
		EnergyCost:            r.EnergyCost,
		InsulationCostPerCm:   r.InsulationCostPerCm,
		FixedCost:             r.FixedCost,
		TemperatureDifference: r.TemperatureDifference,
		HeatingDays:           r.HeatingDays,
		LifetimeYears:         r.LifetimeYears,
		Area:                  r.Area,
		UseInflation:          r.UseInflation,
		AnnualInflationRate:   r.AnnualInflationRate,
		UseDiscounting:        r.UseDiscounting,
		DiscountRate:          r.DiscountRate,
	}
}
