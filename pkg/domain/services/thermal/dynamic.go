package thermal

import (
	"math"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

// Angular frequency of the 24 h periodic boundary condition
const omega = 2 * math.Pi / 86400.0

// Bounds of the temperature damping factor
const (
	minDamping = 1.0
	maxDamping = 100.0
)

// LayerAdmittance is the periodic response of one layer
type LayerAdmittance struct {
	Diffusivity      float64 // a, m²/s
	PenetrationDepth float64 // δ, m
	Beta             float64 // d/δ
	Magnitude        float64 // |Y|, W/(m²K)
	Phase            float64 // rad
}

// Admittance computes the 24 h admittance of a single layer
func Admittance(layer entities.WallLayer) (LayerAdmittance, error) {
	if err := layer.Validate(); err != nil {
		return LayerAdmittance{}, err
	}
	return admittance(layer), nil
}

func admittance(layer entities.WallLayer) LayerAdmittance {
	m := layer.Material
	a := m.ThermalConductivity / (m.Density * m.SpecificHeatCapacity)
	delta := math.Sqrt(2 * a / omega)
	beta := layer.ThicknessMeters() / delta

	denominator := math.Cosh(beta) + math.Cos(beta)
	return LayerAdmittance{
		Diffusivity:      a,
		PenetrationDepth: delta,
		Beta:             beta,
		Magnitude:        (m.ThermalConductivity / delta) * math.Sqrt2 / denominator,
		Phase:            math.Atan2(math.Sinh(beta)-math.Sin(beta), denominator),
	}
}

// Dynamic computes the periodic heat storage properties of an assembly
func Dynamic(a *entities.WallAssembly) (entities.DynamicProperties, error) {
	if err := a.Validate(); err != nil {
		return entities.DynamicProperties{}, err
	}
	r, err := checkedResistance(a)
	if err != nil {
		return entities.DynamicProperties{}, err
	}

	var totalAdmittance, totalPhase, weightedDepth, totalThickness float64
	for _, layer := range a.Layers {
		y := admittance(layer)
		totalAdmittance += y.Magnitude
		totalPhase += y.Phase
		weightedDepth += y.PenetrationDepth * layer.ThicknessMeters()
		totalThickness += layer.ThicknessMeters()
	}

	damping := math.Min(math.Max(minDamping, totalAdmittance*r), maxDamping)
	// phase [rad] / omega [rad/s] gives seconds, / 3600 gives hours
	phaseShift := totalPhase / omega / 3600.0

	penetration := 0.0
	if totalThickness > 0 {
		penetration = weightedDepth / totalThickness
	}

	return entities.DynamicProperties{
		TotalAdmittance:    totalAdmittance,
		TotalPhase:         totalPhase,
		TemperatureDamping: damping,
		PhaseShift:         phaseShift,
		PenetrationDepth:   penetration,
		AmplitudeDecrement: (1 - 1/damping) * 100,
		ThermalInertia:     ClassifyThermalInertia(damping),
		SummerComfort:      ClassifySummerComfort(damping, phaseShift),
	}, nil
}

// ClassifyThermalInertia rates a temperature damping factor
func ClassifyThermalInertia(damping float64) entities.ThermalInertiaRating {
	switch {
	case damping >= 15:
		return entities.InertiaVeryHigh
	case damping >= 10:
		return entities.InertiaHigh
	case damping >= 5:
		return entities.InertiaMedium
	case damping >= 2:
		return entities.InertiaLow
	default:
		return entities.InertiaVeryLow
	}
}

// ClassifySummerComfort rates a damping factor and phase shift in hours together
func ClassifySummerComfort(damping, phaseShift float64) entities.SummerComfortRating {
	switch {
	case damping >= 10 && phaseShift >= 8:
		return entities.ComfortExcellent
	case damping >= 5 && phaseShift >= 6:
		return entities.ComfortGood
	case damping >= 3 && phaseShift >= 4:
		return entities.ComfortAdequate
	case damping >= 2 && phaseShift >= 2:
		return entities.ComfortPoor
	default:
		return entities.ComfortInadequate
	}
}
