package visualization

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/vsinha/wallcalc/pkg/application/dto"
	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/domain/services/thermal"
)

// Render box dimensions for a wall section
const (
	WallHeight = 2800.0 // mm
	WallWidth  = 1000.0 // mm

	// SamplesPerLayer is the number of intervals each layer's gradient is split into
	SamplesPerLayer = 20
)

// CondensationLevel is the five-step severity used for rendering zones
type CondensationLevel int

const (
	LevelNone CondensationLevel = iota
	LevelLow
	LevelMedium
	LevelHigh
	LevelCritical
)

// String method for CondensationLevel enum
func (l CondensationLevel) String() string {
	switch l {
	case LevelNone:
		return "None"
	case LevelLow:
		return "Low"
	case LevelMedium:
		return "Medium"
	case LevelHigh:
		return "High"
	case LevelCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// MarshalText renders the level by name
func (l CondensationLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// ClassifyCondensationLevel maps annual condensate in kg/(m²·yr) to a level
func ClassifyCondensationLevel(amount float64) CondensationLevel {
	switch {
	case amount == 0:
		return LevelNone
	case amount < 0.5:
		return LevelLow
	case amount < 2.0:
		return LevelMedium
	case amount < 5.0:
		return LevelHigh
	default:
		return LevelCritical
	}
}

// Color returns the zone overlay color for the level
func (l CondensationLevel) Color() string {
	switch l {
	case LevelNone:
		return "#00FF00"
	case LevelLow:
		return "#FFFF00"
	case LevelMedium:
		return "#FFA500"
	case LevelHigh:
		return "#FF4500"
	case LevelCritical:
		return "#FF0000"
	default:
		return "#808080"
	}
}

// ZoneAlpha returns the overlay opacity for a condensate amount
func ZoneAlpha(amount float64) float64 {
	return math.Min(0.8, math.Max(0.2, amount/5.0))
}

// TemperaturePoint is one gradient sample inside a layer
type TemperaturePoint struct {
	RelativePosition   float64 `json:"relative_position"`
	Temperature        float64 `json:"temperature"`
	Color              string  `json:"color"`
	IsCondensationRisk bool    `json:"is_condensation_risk"`
}

// Layer3D is a layer box positioned from the interior face
type Layer3D struct {
	MaterialName        string             `json:"material_name"`
	Category            string             `json:"category"`
	Thickness           float64            `json:"thickness"`
	StartPosition       float64            `json:"start_position"`
	EndPosition         float64            `json:"end_position"`
	ThermalConductivity float64            `json:"thermal_conductivity"`
	Visual              MaterialVisual     `json:"visual"`
	TemperaturePoints   []TemperaturePoint `json:"temperature_points"`
	HasCondensation     bool               `json:"has_condensation"`
}

// ProfileSample is a point of the sampled temperature and vapor gradient
type ProfileSample struct {
	Position      float64    `json:"position"`
	Temperature   float64    `json:"temperature"`
	VaporPressure float64    `json:"vapor_pressure"`
	DewPoint      dto.Number `json:"dew_point"`
	LayerName     string     `json:"layer_name"`
}

// TemperatureGradient is the sampled profile across the whole assembly
type TemperatureGradient struct {
	Samples        []ProfileSample `json:"samples"`
	MinTemperature float64         `json:"min_temperature"`
	MaxTemperature float64         `json:"max_temperature"`
}

// Range returns the spread between the warmest and coldest boundary
func (g TemperatureGradient) Range() float64 {
	return g.MaxTemperature - g.MinTemperature
}

// Zone3D is a condensation zone with render hints
type Zone3D struct {
	MaterialName     string            `json:"material_name"`
	StartDepth       float64           `json:"start_depth"`
	EndDepth         float64           `json:"end_depth"`
	AnnualCondensate float64           `json:"annual_condensate"`
	Level            CondensationLevel `json:"level"`
	Color            string            `json:"color"`
	Alpha            float64           `json:"alpha"`
}

// WallVisualization is the render projection of one assembly
type WallVisualization struct {
	Layers         []Layer3D           `json:"layers"`
	Gradient       TemperatureGradient `json:"gradient"`
	Zones          []Zone3D            `json:"zones"`
	TotalThickness float64             `json:"total_thickness"`
	WallHeight     float64             `json:"wall_height"`
	WallWidth      float64             `json:"wall_width"`
	Climate        entities.Climate    `json:"climate"`
	Scheme         string              `json:"scheme"`
}

// Build derives the render projection of an assembly. The assembly is
// not modified.
func Build(a *entities.WallAssembly, scheme ColorScheme) (*WallVisualization, error) {
	analysis, err := thermal.Analyze(a)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze assembly: %w", err)
	}

	v := &WallVisualization{
		Layers:         make([]Layer3D, 0, len(a.Layers)),
		Zones:          make([]Zone3D, 0, len(analysis.DewPoint.Zones)),
		TotalThickness: a.TotalThickness(),
		WallHeight:     WallHeight,
		WallWidth:      WallWidth,
		Climate:        a.Climate,
		Scheme:         scheme.String(),
	}

	temps := analysis.TemperatureProfile
	pressures := analysis.VaporPressureProfile
	v.Gradient.MinTemperature, v.Gradient.MaxTemperature = temperatureBounds(temps)
	v.Gradient.Samples = make([]ProfileSample, 0, len(a.Layers)*(SamplesPerLayer+1))

	fractions := floats.Span(make([]float64, SamplesPerLayer+1), 0, 1)
	position := 0.0

	for i, layer := range a.Layers {
		box := Layer3D{
			MaterialName:        layer.Material.Name,
			Category:            layer.Material.Category.String(),
			Thickness:           layer.Thickness,
			StartPosition:       position,
			EndPosition:         position + layer.Thickness,
			ThermalConductivity: layer.Material.ThermalConductivity,
			Visual:              VisualFor(layer.Material.Category),
			TemperaturePoints:   make([]TemperaturePoint, 0, len(fractions)),
			HasCondensation:     analysis.DewPoint.Layers[i].HasCondensation,
		}

		for _, f := range fractions {
			t := interpolate(temps[i].Value, temps[i+1].Value, f)
			p := interpolate(pressures[i].Value, pressures[i+1].Value, f)
			dew := thermal.DewPointTemperature(p)

			box.TemperaturePoints = append(box.TemperaturePoints, TemperaturePoint{
				RelativePosition:   f,
				Temperature:        t,
				Color:              TemperatureToColor(t, v.Gradient.MinTemperature, v.Gradient.MaxTemperature, scheme),
				IsCondensationRisk: t < dew,
			})
			v.Gradient.Samples = append(v.Gradient.Samples, ProfileSample{
				Position:      position + f*layer.Thickness,
				Temperature:   t,
				VaporPressure: p,
				DewPoint:      dto.Number(dew),
				LayerName:     layer.Material.Name,
			})
		}

		v.Layers = append(v.Layers, box)
		position += layer.Thickness
	}

	for _, zone := range analysis.DewPoint.Zones {
		level := ClassifyCondensationLevel(zone.AnnualCondensate)
		v.Zones = append(v.Zones, Zone3D{
			MaterialName:     zone.MaterialName,
			StartDepth:       zone.StartDepth,
			EndDepth:         zone.EndDepth,
			AnnualCondensate: zone.AnnualCondensate,
			Level:            level,
			Color:            level.Color(),
			Alpha:            ZoneAlpha(zone.AnnualCondensate),
		})
	}

	return v, nil
}

// interpolate returns the exact end values at f = 0 and f = 1
func interpolate(from, to, f float64) float64 {
	return (1-f)*from + f*to
}

func temperatureBounds(profile []entities.ProfilePoint) (float64, float64) {
	values := make([]float64, len(profile))
	for i, p := range profile {
		values[i] = p.Value
	}
	return floats.Min(values), floats.Max(values)
}
