package entities

// SteadyStateProperties are the stationary heat transfer aggregates of an assembly
type SteadyStateProperties struct {
	TotalThermalResistance float64 // m²K/W including surface resistances
	ThermalTransmittance   float64 // U, W/(m²K)
	ThermalCapacity        float64 // J/(m²K)
	PhaseShift             float64 // hours
}

// DynamicProperties are the periodic 24 h admittance results of an assembly
type DynamicProperties struct {
	TotalAdmittance    float64 // Σ |Y|, W/(m²K)
	TotalPhase         float64 // Σ φ, rad
	TemperatureDamping float64 // ν, clamped to [1,100]
	PhaseShift         float64 // hours
	PenetrationDepth   float64 // thickness-weighted δ, m
	AmplitudeDecrement float64 // %
	ThermalInertia     ThermalInertiaRating
	SummerComfort      SummerComfortRating
}

// ThermalInertiaRating classifies the temperature damping factor
type ThermalInertiaRating int

const (
	InertiaVeryLow ThermalInertiaRating = iota
	InertiaLow
	InertiaMedium
	InertiaHigh
	InertiaVeryHigh
)

// String method for ThermalInertiaRating enum
func (r ThermalInertiaRating) String() string {
	switch r {
	case InertiaVeryLow:
		return "VeryLow"
	case InertiaLow:
		return "Low"
	case InertiaMedium:
		return "Medium"
	case InertiaHigh:
		return "High"
	case InertiaVeryHigh:
		return "VeryHigh"
	default:
		return "Unknown"
	}
}

// SummerComfortRating combines damping and phase shift into an overheating verdict
type SummerComfortRating int

const (
	ComfortInadequate SummerComfortRating = iota
	ComfortPoor
	ComfortAdequate
	ComfortGood
	ComfortExcellent
)

// String method for SummerComfortRating enum
func (r SummerComfortRating) String() string {
	switch r {
	case ComfortInadequate:
		return "Inadequate"
	case ComfortPoor:
		return "Poor"
	case ComfortAdequate:
		return "Adequate"
	case ComfortGood:
		return "Good"
	case ComfortExcellent:
		return "Excellent"
	default:
		return "Unknown"
	}
}
