package thermal

import (
	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

// Analysis bundles every derived property of one assembly snapshot
type Analysis struct {
	SteadyState          entities.SteadyStateProperties
	Dynamic              entities.DynamicProperties
	TemperatureProfile   []entities.ProfilePoint
	VaporPressureProfile []entities.ProfilePoint
	DewPoint             entities.DewPointAnalysis
}

// Analyze computes the full set of assembly properties
func Analyze(a *entities.WallAssembly) (*Analysis, error) {
	steady, err := SteadyState(a)
	if err != nil {
		return nil, err
	}
	dynamic, err := Dynamic(a)
	if err != nil {
		return nil, err
	}
	temperatures := temperatureProfile(a, steady.TotalThermalResistance)
	pressures, err := vaporPressureProfile(a)
	if err != nil {
		return nil, err
	}
	dewPoint, err := AnalyzeProfiles(a.Layers, temperatures, pressures)
	if err != nil {
		return nil, err
	}
	return &Analysis{
		SteadyState:          steady,
		Dynamic:              dynamic,
		TemperatureProfile:   temperatures,
		VaporPressureProfile: pressures,
		DewPoint:             dewPoint,
	}, nil
}
