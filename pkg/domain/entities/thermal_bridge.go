package entities

import "fmt"

// BridgeType identifies a kind of linear thermal bridge
type BridgeType int

const (
	BridgeExternalCorner BridgeType = iota
	BridgeInternalCorner
	BridgeFoundation
	BridgeRoofConnection
	BridgeWindowSill
	BridgeWindowLintel
	BridgeBalcony
	BridgeFloorSlab
	BridgePillar
	BridgeBeam
	BridgeOther
)

// String method for BridgeType enum
func (t BridgeType) String() string {
	switch t {
	case BridgeExternalCorner:
		return "ExternalCorner"
	case BridgeInternalCorner:
		return "InternalCorner"
	case BridgeFoundation:
		return "Foundation"
	case BridgeRoofConnection:
		return "RoofConnection"
	case BridgeWindowSill:
		return "WindowSill"
	case BridgeWindowLintel:
		return "WindowLintel"
	case BridgeBalcony:
		return "Balcony"
	case BridgeFloorSlab:
		return "FloorSlab"
	case BridgePillar:
		return "Pillar"
	case BridgeBeam:
		return "Beam"
	case BridgeOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// ParseBridgeType converts a bridge type name into a BridgeType
func ParseBridgeType(s string) (BridgeType, error) {
	for t := BridgeExternalCorner; t <= BridgeOther; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return BridgeOther, fmt.Errorf("unknown bridge type: %s", s)
}

// WallConfiguration is the insulation state used to pick catalog ψ-values
type WallConfiguration int

const (
	ConfigurationUninsulated WallConfiguration = iota
	ConfigurationThinInsulation
	ConfigurationStandardInsulation
	ConfigurationThickInsulation
)

// String method for WallConfiguration enum
func (c WallConfiguration) String() string {
	switch c {
	case ConfigurationUninsulated:
		return "Uninsulated"
	case ConfigurationThinInsulation:
		return "ThinInsulation"
	case ConfigurationStandardInsulation:
		return "StandardInsulation"
	case ConfigurationThickInsulation:
		return "ThickInsulation"
	default:
		return "Unknown"
	}
}

// BridgeData is one catalog entry for a (bridge type, configuration) pair
type BridgeData struct {
	Name        string
	Psi         float64 // W/(m·K)
	Description string
}

// LinearThermalBridge is a ψ-value applied over a length
type LinearThermalBridge struct {
	Type        BridgeType
	Name        string
	Psi         float64 // W/(m·K)
	Length      float64 // m
	Enabled     bool
	Description string
}

// HeatLoss returns ψ × length in W/K
func (b LinearThermalBridge) HeatLoss() float64 {
	return b.Psi * b.Length
}

// Default building geometry used when generating typical bridges
const (
	DefaultBuildingPerimeter = 40.0  // m
	DefaultFloorArea         = 100.0 // m²
)

// ThermalBridgeCollection aggregates the bridges of one building
type ThermalBridgeCollection struct {
	Bridges           []LinearThermalBridge
	BuildingPerimeter float64 // m
	FloorArea         float64 // m²
}

// NewThermalBridgeCollection creates an empty collection with default geometry
func NewThermalBridgeCollection() *ThermalBridgeCollection {
	return &ThermalBridgeCollection{
		BuildingPerimeter: DefaultBuildingPerimeter,
		FloorArea:         DefaultFloorArea,
	}
}

// AddBridge appends a bridge to the collection
func (c *ThermalBridgeCollection) AddBridge(bridge LinearThermalBridge) error {
	if bridge.Length < 0 {
		return fmt.Errorf("bridge length cannot be negative, got %g", bridge.Length)
	}
	c.Bridges = append(c.Bridges, bridge)
	return nil
}

// SetEnabled toggles the bridge at the given index
func (c *ThermalBridgeCollection) SetEnabled(index int, enabled bool) error {
	if index < 0 || index >= len(c.Bridges) {
		return fmt.Errorf("bridge index %d out of range [0,%d)", index, len(c.Bridges))
	}
	c.Bridges[index].Enabled = enabled
	return nil
}

// TotalHeatLoss returns Σ ψ × length over enabled bridges in W/K
func (c *ThermalBridgeCollection) TotalHeatLoss() float64 {
	total := 0.0
	for _, bridge := range c.Bridges {
		if bridge.Enabled {
			total += bridge.HeatLoss()
		}
	}
	return total
}

// BridgeCriticality rates how much the bridges raise the U-value
type BridgeCriticality int

const (
	CriticalityNegligible BridgeCriticality = iota
	CriticalityLow
	CriticalityMedium
	CriticalityHigh
	CriticalityCritical
)

// String method for BridgeCriticality enum
func (c BridgeCriticality) String() string {
	switch c {
	case CriticalityNegligible:
		return "Negligible"
	case CriticalityLow:
		return "Low"
	case CriticalityMedium:
		return "Medium"
	case CriticalityHigh:
		return "High"
	case CriticalityCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// BridgeImpact is the U-value correction caused by a bridge collection
type BridgeImpact struct {
	Configuration    WallConfiguration
	BaseU            float64
	Correction       float64 // ΔU, W/(m²K)
	CorrectedU       float64
	RelativeIncrease float64 // %
	Criticality      BridgeCriticality
}
