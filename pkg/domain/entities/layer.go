package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WallLayer is one material slab of an assembly, thickness in millimetres
type WallLayer struct {
	Material  Material
	Thickness float64 // mm
}

// NewWallLayer creates a new layer with validation
func NewWallLayer(material Material, thickness float64) (*WallLayer, error) {
	l := &WallLayer{Material: material, Thickness: thickness}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate checks the layer and its material
func (l WallLayer) Validate() error {
	if err := l.Material.Validate(); err != nil {
		return err
	}
	if l.Thickness < 0 {
		return fmt.Errorf("layer %s: %w, got %g", l.Material.Name, ErrInvalidThickness, l.Thickness)
	}
	return nil
}

// ThicknessMeters returns the layer thickness in metres
func (l WallLayer) ThicknessMeters() float64 {
	return l.Thickness / 1000.0
}

// ThermalResistance returns R in m²K/W. Air gaps report their fixed resistance.
func (l WallLayer) ThermalResistance() float64 {
	if l.Material.AirGap {
		return l.Material.FixedResistance
	}
	return l.ThicknessMeters() / l.Material.ThermalConductivity
}

// DiffusionResistance returns the equivalent air layer thickness sd = d × μ in metres
func (l WallLayer) DiffusionResistance() float64 {
	return l.ThicknessMeters() * l.Material.DiffusionResistanceFactor
}

// HeatCapacity returns the areal heat capacity d × ρ × c in J/(m²K)
func (l WallLayer) HeatCapacity() float64 {
	return l.ThicknessMeters() * l.Material.Density * l.Material.SpecificHeatCapacity
}

// Cost returns the material cost per m² of wall
func (l WallLayer) Cost() decimal.Decimal {
	return l.Material.PricePerM3.Mul(decimal.NewFromFloat(l.ThicknessMeters()))
}
