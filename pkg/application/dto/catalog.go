package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

// MaterialResult is a catalog material
type MaterialResult struct {
	Name                      string          `json:"name"`
	Category                  string          `json:"category"`
	ThermalConductivity       float64         `json:"lambda"`
	Density                   float64         `json:"density"`
	SpecificHeatCapacity      float64         `json:"specific_heat"`
	DiffusionResistanceFactor float64         `json:"mu"`
	PricePerM3                decimal.Decimal `json:"price_per_m3"`
	Manufacturer              string          `json:"manufacturer,omitempty"`
	AirGap                    bool            `json:"air_gap,omitempty"`
	FixedResistance           float64         `json:"fixed_resistance,omitempty"`
}

// NewMaterialResults converts catalog materials
func NewMaterialResults(materials []*entities.Material) []MaterialResult {
	results := make([]MaterialResult, len(materials))
	for i, m := range materials {
		results[i] = MaterialResult{
			Name:                      m.Name,
			Category:                  m.Category.String(),
			ThermalConductivity:       m.ThermalConductivity,
			Density:                   m.Density,
			SpecificHeatCapacity:      m.SpecificHeatCapacity,
			DiffusionResistanceFactor: m.DiffusionResistanceFactor,
			PricePerM3:                m.PricePerM3,
			Manufacturer:              m.Manufacturer,
			AirGap:                    m.AirGap,
			FixedResistance:           m.FixedResistance,
		}
	}
	return results
}

// TemplateLayerResult is one template layer, thicknesses in mm
type TemplateLayerResult struct {
	Material         string  `json:"material"`
	DefaultThickness float64 `json:"default_thickness"`
	MinThickness     float64 `json:"min_thickness,omitempty"`
	MaxThickness     float64 `json:"max_thickness,omitempty"`
	Adjustable       bool    `json:"adjustable"`
	Description      string  `json:"description,omitempty"`
}

// TemplateResult is a standard wall composition
type TemplateResult struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Popular     bool                  `json:"popular"`
	Layers      []TemplateLayerResult `json:"layers"`
}

// NewTemplateResults converts wall templates
func NewTemplateResults(templates []*entities.WallTemplate) []TemplateResult {
	results := make([]TemplateResult, len(templates))
	for i, t := range templates {
		results[i] = TemplateResult{
			Name:        t.Name,
			Description: t.Description,
			Category:    t.Category.String(),
			Popular:     t.Popular,
			Layers:      make([]TemplateLayerResult, len(t.Layers)),
		}
		for j, l := range t.Layers {
			results[i].Layers[j] = TemplateLayerResult{
				Material:         l.MaterialName,
				DefaultThickness: l.DefaultThickness,
				MinThickness:     l.MinThickness,
				MaxThickness:     l.MaxThickness,
				Adjustable:       l.Adjustable,
				Description:      l.Description,
			}
		}
	}
	return results
}

// AssemblySummary lists a saved assembly without its climate
type AssemblySummary struct {
	Name           string    `json:"name"`
	Layers         int       `json:"layers"`
	TotalThickness float64   `json:"total_thickness"`
	SavedAt        time.Time `json:"saved_at"`
}

// NewAssemblySummaries converts saved assemblies
func NewAssemblySummaries(assemblies []*entities.SavedAssembly) []AssemblySummary {
	results := make([]AssemblySummary, len(assemblies))
	for i, a := range assemblies {
		total := 0.0
		for _, l := range a.Layers {
			total += l.Thickness
		}
		results[i] = AssemblySummary{
			Name:           a.Name,
			Layers:         len(a.Layers),
			TotalThickness: total,
			SavedAt:        a.SavedAt,
		}
	}
	return results
}
