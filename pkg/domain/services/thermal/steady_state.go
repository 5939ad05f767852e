package thermal

import (
	"fmt"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

// TotalThermalResistance returns Rsi + Rse + Σ layer R in m²K/W
func TotalThermalResistance(a *entities.WallAssembly) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	return checkedResistance(a)
}

// ThermalTransmittance returns U = 1/R_total in W/(m²K)
func ThermalTransmittance(a *entities.WallAssembly) (float64, error) {
	r, err := TotalThermalResistance(a)
	if err != nil {
		return 0, err
	}
	return 1.0 / r, nil
}

// ThermalCapacity returns Σ d·ρ·c in J/(m²K)
func ThermalCapacity(a *entities.WallAssembly) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	return totalCapacity(a), nil
}

// SteadyState computes all stationary aggregates in one pass
func SteadyState(a *entities.WallAssembly) (entities.SteadyStateProperties, error) {
	if err := a.Validate(); err != nil {
		return entities.SteadyStateProperties{}, err
	}
	r, err := checkedResistance(a)
	if err != nil {
		return entities.SteadyStateProperties{}, err
	}
	u := 1.0 / r
	c := totalCapacity(a)
	return entities.SteadyStateProperties{
		TotalThermalResistance: r,
		ThermalTransmittance:   u,
		ThermalCapacity:        c,
		PhaseShift:             c / (u * 3600),
	}, nil
}

// checkedResistance expects a validated assembly
func checkedResistance(a *entities.WallAssembly) (float64, error) {
	r := totalResistance(a)
	if !(r > 0) {
		return 0, fmt.Errorf("total thermal resistance must be positive, got %g", r)
	}
	return r, nil
}

func totalResistance(a *entities.WallAssembly) float64 {
	r := a.InteriorSurfaceResistance + a.ExteriorSurfaceResistance
	for _, layer := range a.Layers {
		r += layer.ThermalResistance()
	}
	return r
}

func totalCapacity(a *entities.WallAssembly) float64 {
	c := 0.0
	for _, layer := range a.Layers {
		c += layer.HeatCapacity()
	}
	return c
}
