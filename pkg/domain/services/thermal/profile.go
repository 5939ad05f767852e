package thermal

import (
	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

// TemperatureProfile returns N+1 (depth mm, °C) points at the layer boundaries.
// The walk starts from the interior air temperature and subtracts q·R per layer.
func TemperatureProfile(a *entities.WallAssembly) ([]entities.ProfilePoint, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	r, err := checkedResistance(a)
	if err != nil {
		return nil, err
	}
	return temperatureProfile(a, r), nil
}

func temperatureProfile(a *entities.WallAssembly, totalR float64) []entities.ProfilePoint {
	flux := (a.Climate.InteriorTemperature - a.Climate.ExteriorTemperature) / totalR

	profile := make([]entities.ProfilePoint, 0, len(a.Layers)+1)
	depth := 0.0
	t := a.Climate.InteriorTemperature
	profile = append(profile, entities.ProfilePoint{Depth: depth, Value: t})
	for _, layer := range a.Layers {
		t -= flux * layer.ThermalResistance()
		depth += layer.Thickness
		profile = append(profile, entities.ProfilePoint{Depth: depth, Value: t})
	}
	return profile
}

// VaporPressureProfile returns N+1 (depth mm, Pa) points at the layer boundaries.
// The outer values come from the boundary air temperature and humidity, the
// interior values from a constant diffusion flux through Σ sd.
func VaporPressureProfile(a *entities.WallAssembly) ([]entities.ProfilePoint, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return vaporPressureProfile(a)
}

func vaporPressureProfile(a *entities.WallAssembly) ([]entities.ProfilePoint, error) {
	totalSd := a.TotalDiffusionResistance()
	if !(totalSd > 0) {
		return nil, entities.ErrZeroDiffusionResistance
	}

	c := a.Climate
	pInt := SaturationVaporPressure(c.InteriorTemperature) * c.InteriorHumidity / 100.0
	pExt := SaturationVaporPressure(c.ExteriorTemperature) * c.ExteriorHumidity / 100.0
	flux := (pInt - pExt) / totalSd

	profile := make([]entities.ProfilePoint, 0, len(a.Layers)+1)
	depth := 0.0
	p := pInt
	profile = append(profile, entities.ProfilePoint{Depth: depth, Value: p})
	for _, layer := range a.Layers {
		p -= flux * layer.DiffusionResistance()
		depth += layer.Thickness
		profile = append(profile, entities.ProfilePoint{Depth: depth, Value: p})
	}
	return profile, nil
}
