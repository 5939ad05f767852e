package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Default boundary conditions for a heating-season design calculation
const (
	DefaultInteriorSurfaceResistance = 0.13
	DefaultExteriorSurfaceResistance = 0.04
	DefaultInteriorTemperature       = 20.0
	DefaultExteriorTemperature       = -15.0
	DefaultInteriorHumidity          = 50.0
	DefaultExteriorHumidity          = 80.0
)

// Climate holds the four boundary climate parameters of an assembly
type Climate struct {
	InteriorTemperature float64 `json:"interior_temperature" yaml:"interior_temperature"` // °C
	ExteriorTemperature float64 `json:"exterior_temperature" yaml:"exterior_temperature"` // °C
	InteriorHumidity    float64 `json:"interior_humidity" yaml:"interior_humidity"`       // %
	ExteriorHumidity    float64 `json:"exterior_humidity" yaml:"exterior_humidity"`       // %
}

// DefaultClimate returns the standard winter design climate
func DefaultClimate() Climate {
	return Climate{
		InteriorTemperature: DefaultInteriorTemperature,
		ExteriorTemperature: DefaultExteriorTemperature,
		InteriorHumidity:    DefaultInteriorHumidity,
		ExteriorHumidity:    DefaultExteriorHumidity,
	}
}

// Validate checks that humidities are percentages
func (c Climate) Validate() error {
	if c.InteriorHumidity < 0 || c.InteriorHumidity > 100 {
		return fmt.Errorf("%w: interior humidity must be within 0-100%%, got %g", ErrInvalidClimate, c.InteriorHumidity)
	}
	if c.ExteriorHumidity < 0 || c.ExteriorHumidity > 100 {
		return fmt.Errorf("%w: exterior humidity must be within 0-100%%, got %g", ErrInvalidClimate, c.ExteriorHumidity)
	}
	return nil
}

// WallAssembly is an ordered layer sequence from interior to exterior.
// Derived properties are computed by the thermal engine on every call.
type WallAssembly struct {
	Name                      string
	Layers                    []WallLayer
	InteriorSurfaceResistance float64 // Rsi, m²K/W
	ExteriorSurfaceResistance float64 // Rse, m²K/W
	Climate                   Climate
}

// NewWallAssembly creates an assembly with default surface resistances and climate
func NewWallAssembly(name string, layers ...WallLayer) (*WallAssembly, error) {
	a := &WallAssembly{
		Name:                      name,
		InteriorSurfaceResistance: DefaultInteriorSurfaceResistance,
		ExteriorSurfaceResistance: DefaultExteriorSurfaceResistance,
		Climate:                   DefaultClimate(),
	}
	for _, layer := range layers {
		if err := a.AddLayer(layer); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// AddLayer appends a layer on the exterior side
func (a *WallAssembly) AddLayer(layer WallLayer) error {
	if err := layer.Validate(); err != nil {
		return err
	}
	a.Layers = append(a.Layers, layer)
	return nil
}

// InsertLayer inserts a layer at the given position
func (a *WallAssembly) InsertLayer(index int, layer WallLayer) error {
	if index < 0 || index > len(a.Layers) {
		return fmt.Errorf("layer index %d out of range [0,%d]", index, len(a.Layers))
	}
	if err := layer.Validate(); err != nil {
		return err
	}
	a.Layers = append(a.Layers, WallLayer{})
	copy(a.Layers[index+1:], a.Layers[index:])
	a.Layers[index] = layer
	return nil
}

// RemoveLayer removes the layer at the given position
func (a *WallAssembly) RemoveLayer(index int) error {
	if index < 0 || index >= len(a.Layers) {
		return fmt.Errorf("layer index %d out of range [0,%d)", index, len(a.Layers))
	}
	a.Layers = append(a.Layers[:index], a.Layers[index+1:]...)
	return nil
}

// MoveLayer moves a layer from one position to another
func (a *WallAssembly) MoveLayer(from, to int) error {
	if from < 0 || from >= len(a.Layers) {
		return fmt.Errorf("layer index %d out of range [0,%d)", from, len(a.Layers))
	}
	if to < 0 || to >= len(a.Layers) {
		return fmt.Errorf("layer index %d out of range [0,%d)", to, len(a.Layers))
	}
	layer := a.Layers[from]
	a.Layers = append(a.Layers[:from], a.Layers[from+1:]...)
	a.Layers = append(a.Layers, WallLayer{})
	copy(a.Layers[to+1:], a.Layers[to:])
	a.Layers[to] = layer
	return nil
}

// Clone returns a deep copy of the assembly
func (a *WallAssembly) Clone() *WallAssembly {
	c := *a
	c.Layers = make([]WallLayer, len(a.Layers))
	copy(c.Layers, a.Layers)
	return &c
}

// Validate checks everything the calculation engines rely on
func (a *WallAssembly) Validate() error {
	if len(a.Layers) == 0 {
		return ErrNoLayers
	}
	for i, layer := range a.Layers {
		if err := layer.Validate(); err != nil {
			return fmt.Errorf("layer %d: %w", i+1, err)
		}
	}
	if a.InteriorSurfaceResistance < 0 || a.ExteriorSurfaceResistance < 0 {
		return fmt.Errorf("surface resistances cannot be negative, got Rsi=%g Rse=%g",
			a.InteriorSurfaceResistance, a.ExteriorSurfaceResistance)
	}
	return a.Climate.Validate()
}

// TotalThickness returns the sum of layer thicknesses in mm
func (a *WallAssembly) TotalThickness() float64 {
	total := 0.0
	for _, layer := range a.Layers {
		total += layer.Thickness
	}
	return total
}

// TotalDiffusionResistance returns Σ sd in metres
func (a *WallAssembly) TotalDiffusionResistance() float64 {
	total := 0.0
	for _, layer := range a.Layers {
		total += layer.DiffusionResistance()
	}
	return total
}

// TotalCost returns the material cost per m² of wall
func (a *WallAssembly) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, layer := range a.Layers {
		total = total.Add(layer.Cost())
	}
	return total.Round(2)
}

// InsulationLayers returns the layers whose material is insulation
func (a *WallAssembly) InsulationLayers() []WallLayer {
	var layers []WallLayer
	for _, layer := range a.Layers {
		if layer.Material.IsInsulation() {
			layers = append(layers, layer)
		}
	}
	return layers
}

// MaxInsulationThickness returns the thickest insulation layer in mm, and false when there is none
func (a *WallAssembly) MaxInsulationThickness() (float64, bool) {
	found := false
	maxThickness := 0.0
	for _, layer := range a.InsulationLayers() {
		if !found || layer.Thickness > maxThickness {
			maxThickness = layer.Thickness
		}
		found = true
	}
	return maxThickness, found
}
