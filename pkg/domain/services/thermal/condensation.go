package thermal

import (
	"fmt"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

// Sampling and condensate model constants
const (
	subIntervalsPerLayer = 10
	condensateRateFactor = 0.001 // kg/(m²·day) per K below dew point
	daysPerYear          = 365.0
)

// DewPoint runs the interstitial condensation analysis for an assembly
func DewPoint(a *entities.WallAssembly) (entities.DewPointAnalysis, error) {
	if err := a.Validate(); err != nil {
		return entities.DewPointAnalysis{}, err
	}
	r, err := checkedResistance(a)
	if err != nil {
		return entities.DewPointAnalysis{}, err
	}
	temperatures := temperatureProfile(a, r)
	pressures, err := vaporPressureProfile(a)
	if err != nil {
		return entities.DewPointAnalysis{}, err
	}
	return AnalyzeProfiles(a.Layers, temperatures, pressures)
}

// AnalyzeProfiles compares precomputed boundary profiles with dew points layer by layer
func AnalyzeProfiles(
	layers []entities.WallLayer,
	temperatures, pressures []entities.ProfilePoint,
) (entities.DewPointAnalysis, error) {
	if len(layers) == 0 {
		return entities.DewPointAnalysis{}, entities.ErrNoLayers
	}
	if len(temperatures) != len(layers)+1 || len(pressures) != len(layers)+1 {
		return entities.DewPointAnalysis{}, fmt.Errorf(
			"profiles must have %d points, got %d temperatures and %d pressures",
			len(layers)+1, len(temperatures), len(pressures))
	}

	analysis := entities.DewPointAnalysis{
		Layers: make([]entities.DewPointLayer, 0, len(layers)),
	}
	for i, layer := range layers {
		l := entities.DewPointLayer{
			LayerIndex:         i,
			MaterialName:       layer.Material.Name,
			StartDepth:         temperatures[i].Depth,
			EndDepth:           temperatures[i+1].Depth,
			StartTemperature:   temperatures[i].Value,
			EndTemperature:     temperatures[i+1].Value,
			StartVaporPressure: pressures[i].Value,
			EndVaporPressure:   pressures[i+1].Value,
		}
		l.StartDewPoint = DewPointTemperature(l.StartVaporPressure)
		l.EndDewPoint = DewPointTemperature(l.EndVaporPressure)
		l.HasCondensation = l.StartTemperature < l.StartDewPoint || l.EndTemperature < l.EndDewPoint

		analysis.Layers = append(analysis.Layers, l)
		if l.HasCondensation {
			analysis.HasCondensation = true
		}
	}

	analysis.Zones = CondensationZones(layers, temperatures, pressures)
	return analysis, nil
}

// CondensationZones samples every layer at 11 points and groups contiguous
// condensing points into zones. Profiles must hold len(layers)+1 points.
func CondensationZones(
	layers []entities.WallLayer,
	temperatures, pressures []entities.ProfilePoint,
) []entities.CondensationZone {
	var zones []entities.CondensationZone

	for i, layer := range layers {
		startDepth := temperatures[i].Depth
		thickness := temperatures[i+1].Depth - startDepth

		var current *entities.CondensationZone
		dailyRate := 0.0
		closeZone := func() {
			if current == nil {
				return
			}
			current.AnnualCondensate = dailyRate * daysPerYear
			current.Severity = entities.ClassifyZoneSeverity(current.AnnualCondensate)
			zones = append(zones, *current)
			current = nil
			dailyRate = 0
		}

		for k := 0; k <= subIntervalsPerLayer; k++ {
			f := float64(k) / subIntervalsPerLayer
			depth := startDepth + f*thickness
			t := lerp(temperatures[i].Value, temperatures[i+1].Value, f)
			p := lerp(pressures[i].Value, pressures[i+1].Value, f)
			dew := DewPointTemperature(p)

			if t < dew {
				if current == nil {
					current = &entities.CondensationZone{
						LayerIndex:   i,
						MaterialName: layer.Material.Name,
						StartDepth:   depth,
					}
				}
				current.EndDepth = depth
				dailyRate += (dew - t) * condensateRateFactor
			} else {
				closeZone()
			}
		}
		closeZone()
	}

	return zones
}

func lerp(from, to, f float64) float64 {
	return from + f*(to-from)
}
