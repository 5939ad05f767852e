package bridges

import (
	"fmt"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/domain/services/thermal"
)

// Insulation thickness limits in mm between configurations
const (
	standardInsulationThreshold = 80.0
	thickInsulationThreshold    = 150.0
)

// Fixed balcony length in m
const balconyLength = 10.0

// DetermineConfiguration classifies the wall by its thickest insulation layer
func DetermineConfiguration(a *entities.WallAssembly) entities.WallConfiguration {
	thickness, ok := a.MaxInsulationThickness()
	switch {
	case !ok:
		return entities.ConfigurationUninsulated
	case thickness >= thickInsulationThreshold:
		return entities.ConfigurationThickInsulation
	case thickness >= standardInsulationThreshold:
		return entities.ConfigurationStandardInsulation
	default:
		return entities.ConfigurationThinInsulation
	}
}

// TypicalLength returns the default bridge length in m for a building perimeter
func TypicalLength(bridgeType entities.BridgeType, perimeter float64) float64 {
	switch bridgeType {
	case entities.BridgeExternalCorner:
		return 0.1 * perimeter
	case entities.BridgeFoundation, entities.BridgeRoofConnection:
		return perimeter
	case entities.BridgeWindowSill, entities.BridgeWindowLintel:
		return 0.3 * perimeter
	case entities.BridgeBalcony:
		return balconyLength
	default:
		return 1.0
	}
}

// NewBridge builds an enabled bridge from the catalog with its typical length
func NewBridge(bridgeType entities.BridgeType, configuration entities.WallConfiguration, perimeter float64) (entities.LinearThermalBridge, bool) {
	data, ok := Lookup(bridgeType, configuration)
	if !ok {
		return entities.LinearThermalBridge{}, false
	}
	return entities.LinearThermalBridge{
		Type:        bridgeType,
		Name:        data.Name,
		Psi:         data.Psi,
		Length:      TypicalLength(bridgeType, perimeter),
		Enabled:     true,
		Description: data.Description,
	}, true
}

// TypicalBridges returns a collection with the corner, foundation and roof bridges of a wall
func TypicalBridges(a *entities.WallAssembly, perimeter, floorArea float64) (*entities.ThermalBridgeCollection, error) {
	if !(floorArea > 0) {
		return nil, fmt.Errorf("%w, got %g", entities.ErrInvalidFloorArea, floorArea)
	}
	if perimeter < 0 {
		return nil, fmt.Errorf("building perimeter cannot be negative, got %g", perimeter)
	}

	collection := &entities.ThermalBridgeCollection{
		BuildingPerimeter: perimeter,
		FloorArea:         floorArea,
	}
	configuration := DetermineConfiguration(a)
	for _, bridgeType := range []entities.BridgeType{
		entities.BridgeExternalCorner,
		entities.BridgeFoundation,
		entities.BridgeRoofConnection,
	} {
		if bridge, ok := NewBridge(bridgeType, configuration, perimeter); ok {
			collection.Bridges = append(collection.Bridges, bridge)
		}
	}
	return collection, nil
}

// Correction returns Σ ψ·L of enabled bridges divided by the floor area
func Correction(c *entities.ThermalBridgeCollection) (float64, error) {
	if !(c.FloorArea > 0) {
		return 0, fmt.Errorf("%w, got %g", entities.ErrInvalidFloorArea, c.FloorArea)
	}
	return c.TotalHeatLoss() / c.FloorArea, nil
}

// ClassifyCriticality rates a relative U increase in percent
func ClassifyCriticality(relativeIncrease float64) entities.BridgeCriticality {
	switch {
	case relativeIncrease > 50:
		return entities.CriticalityCritical
	case relativeIncrease > 30:
		return entities.CriticalityHigh
	case relativeIncrease > 15:
		return entities.CriticalityMedium
	case relativeIncrease > 5:
		return entities.CriticalityLow
	default:
		return entities.CriticalityNegligible
	}
}

// Impact adds the bridge correction to the steady-state U of the assembly
func Impact(a *entities.WallAssembly, c *entities.ThermalBridgeCollection) (entities.BridgeImpact, error) {
	u, err := thermal.ThermalTransmittance(a)
	if err != nil {
		return entities.BridgeImpact{}, err
	}
	correction, err := Correction(c)
	if err != nil {
		return entities.BridgeImpact{}, err
	}

	relative := correction / u * 100
	return entities.BridgeImpact{
		Configuration:    DetermineConfiguration(a),
		BaseU:            u,
		Correction:       correction,
		CorrectedU:       u + correction,
		RelativeIncrease: relative,
		Criticality:      ClassifyCriticality(relative),
	}, nil
}
