package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaterialCategory groups materials for catalog browsing, rules and rendering
type MaterialCategory int

const (
	CategoryOther MaterialCategory = iota
	CategoryMasonry
	CategoryConcrete
	CategoryWood
	CategoryInsulation
	CategoryPlaster
	CategoryMembrane
	CategoryAirGap
)

// String method for MaterialCategory enum
func (c MaterialCategory) String() string {
	switch c {
	case CategoryOther:
		return "Other"
	case CategoryMasonry:
		return "Masonry"
	case CategoryConcrete:
		return "Concrete"
	case CategoryWood:
		return "Wood"
	case CategoryInsulation:
		return "Insulation"
	case CategoryPlaster:
		return "Plaster"
	case CategoryMembrane:
		return "Membrane"
	case CategoryAirGap:
		return "AirGap"
	default:
		return "Unknown"
	}
}

// ParseMaterialCategory converts a category name into a MaterialCategory
func ParseMaterialCategory(s string) (MaterialCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "other", "":
		return CategoryOther, nil
	case "masonry":
		return CategoryMasonry, nil
	case "concrete":
		return CategoryConcrete, nil
	case "wood":
		return CategoryWood, nil
	case "insulation":
		return CategoryInsulation, nil
	case "plaster":
		return CategoryPlaster, nil
	case "membrane":
		return CategoryMembrane, nil
	case "airgap", "air gap", "air_gap":
		return CategoryAirGap, nil
	default:
		return CategoryOther, fmt.Errorf("unknown material category: %s", s)
	}
}

// Physical properties of still air used for unventilated cavities
const (
	AirConductivity = 0.024
	AirDensity      = 1.2
	AirSpecificHeat = 1005.0
	AirDiffusionMu  = 1.0
)

// Material is immutable physical reference data looked up by name
type Material struct {
	Name                      string
	Category                  MaterialCategory
	ThermalConductivity       float64 // λ, W/(m·K)
	Density                   float64 // ρ, kg/m³
	SpecificHeatCapacity      float64 // c, J/(kg·K)
	DiffusionResistanceFactor float64 // μ
	PricePerM3                decimal.Decimal
	Manufacturer              string
	ProductCode               string

	// AirGap materials use FixedResistance instead of thickness/λ
	AirGap          bool
	FixedResistance float64 // m²K/W
}

// NewMaterial creates a new material with validation
func NewMaterial(
	name string,
	category MaterialCategory,
	conductivity, density, specificHeat, diffusionFactor float64,
	pricePerM3 decimal.Decimal,
) (*Material, error) {
	m := &Material{
		Name:                      name,
		Category:                  category,
		ThermalConductivity:       conductivity,
		Density:                   density,
		SpecificHeatCapacity:      specificHeat,
		DiffusionResistanceFactor: diffusionFactor,
		PricePerM3:                pricePerM3,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewAirGap creates an unventilated air layer with a fixed thermal resistance
func NewAirGap(name string, fixedResistance float64) (*Material, error) {
	m := &Material{
		Name:                      name,
		Category:                  CategoryAirGap,
		ThermalConductivity:       AirConductivity,
		Density:                   AirDensity,
		SpecificHeatCapacity:      AirSpecificHeat,
		DiffusionResistanceFactor: AirDiffusionMu,
		PricePerM3:                decimal.Zero,
		AirGap:                    true,
		FixedResistance:           fixedResistance,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the material properties needed by the calculation engines
func (m Material) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("material name cannot be empty")
	}
	if m.AirGap && m.FixedResistance < 0 {
		return fmt.Errorf("material %s: fixed resistance cannot be negative, got %g", m.Name, m.FixedResistance)
	}
	// air gaps still need λ for the admittance of the dynamic analysis
	if !(m.ThermalConductivity > 0) {
		return fmt.Errorf("material %s: %w, got %g", m.Name, ErrInvalidConductivity, m.ThermalConductivity)
	}
	if !(m.Density > 0) || !(m.SpecificHeatCapacity > 0) {
		return fmt.Errorf("material %s: %w, got ρ=%g c=%g", m.Name, ErrInvalidHeatCapacity, m.Density, m.SpecificHeatCapacity)
	}
	if m.DiffusionResistanceFactor < 0 {
		return fmt.Errorf("material %s: %w, got %g", m.Name, ErrInvalidDiffusionFactor, m.DiffusionResistanceFactor)
	}
	if m.PricePerM3.IsNegative() {
		return fmt.Errorf("material %s: price cannot be negative, got %s", m.Name, m.PricePerM3)
	}
	return nil
}

// IsInsulation reports whether the material counts as thermal insulation
func (m Material) IsInsulation() bool {
	return m.Category == CategoryInsulation
}

// IsVaporBarrier reports whether the material behaves like a vapor barrier (μ > 100)
func (m Material) IsVaporBarrier() bool {
	return m.DiffusionResistanceFactor > 100
}
