package visualization

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

func material(name string, category entities.MaterialCategory, lambda, density, c, mu float64) entities.Material {
	return entities.Material{
		Name:                      name,
		Category:                  category,
		ThermalConductivity:       lambda,
		Density:                   density,
		SpecificHeatCapacity:      c,
		DiffusionResistanceFactor: mu,
	}
}

var (
	limePlaster   = material("Lime plaster", entities.CategoryPlaster, 0.7, 1600, 880, 8)
	solidBrick    = material("Solid brick", entities.CategoryMasonry, 0.8, 1800, 880, 5)
	eps           = material("EPS 15", entities.CategoryInsulation, 0.035, 15, 1500, 30)
	mineralWool   = material("Mineral wool", entities.CategoryInsulation, 0.035, 30, 1030, 1)
	cementPlaster = material("Cement plaster", entities.CategoryPlaster, 1.0, 1800, 880, 10)
)

func etics(t *testing.T) *entities.WallAssembly {
	t.Helper()
	a, err := entities.NewWallAssembly("ETICS",
		entities.WallLayer{Material: limePlaster, Thickness: 15},
		entities.WallLayer{Material: solidBrick, Thickness: 300},
		entities.WallLayer{Material: eps, Thickness: 120},
		entities.WallLayer{Material: cementPlaster, Thickness: 8},
	)
	require.NoError(t, err)
	return a
}

func TestBuild_LayerBoxes(t *testing.T) {
	v, err := Build(etics(t), SchemeBlueRed)
	require.NoError(t, err)

	assert.Equal(t, WallHeight, v.WallHeight)
	assert.Equal(t, WallWidth, v.WallWidth)
	assert.InDelta(t, 443.0, v.TotalThickness, 1e-9)
	require.Len(t, v.Layers, 4)

	bounds := [][2]float64{{0, 15}, {15, 315}, {315, 435}, {435, 443}}
	for i, box := range v.Layers {
		assert.InDelta(t, bounds[i][0], box.StartPosition, 1e-9, "layer %d start", i)
		assert.InDelta(t, bounds[i][1], box.EndPosition, 1e-9, "layer %d end", i)
		assert.Len(t, box.TemperaturePoints, SamplesPerLayer+1)
		assert.False(t, box.HasCondensation)
	}

	assert.Equal(t, "#F5F5DC", v.Layers[0].Visual.BaseColor)
	assert.Equal(t, "brick", v.Layers[1].Visual.TextureType)
	assert.Equal(t, "insulation", v.Layers[2].Visual.TextureType)
	assert.Empty(t, v.Zones)
}

func TestBuild_Gradient(t *testing.T) {
	v, err := Build(etics(t), SchemeBlueRed)
	require.NoError(t, err)

	assert.InDelta(t, 20.0, v.Gradient.MaxTemperature, 1e-9)
	assert.InDelta(t, -13.51361, v.Gradient.MinTemperature, 1e-4)
	assert.InDelta(t, 33.51361, v.Gradient.Range(), 1e-4)
	require.Len(t, v.Gradient.Samples, 4*(SamplesPerLayer+1))

	first := v.Gradient.Samples[0]
	assert.Equal(t, 0.0, first.Position)
	assert.InDelta(t, 20.0, first.Temperature, 1e-9)
	assert.Equal(t, "Lime plaster", first.LayerName)
	// 50 % of psat(20 °C)
	assert.InDelta(t, 1162.99, first.VaporPressure, 0.01)
	assert.InDelta(t, 9.23, float64(first.DewPoint), 0.01)

	last := v.Gradient.Samples[len(v.Gradient.Samples)-1]
	assert.InDelta(t, 443.0, last.Position, 1e-9)
	assert.InDelta(t, -13.51361, last.Temperature, 1e-4)

	assert.Equal(t, "#FF0000", v.Layers[0].TemperaturePoints[0].Color)
	assert.Equal(t, "#0000FF", v.Layers[3].TemperaturePoints[SamplesPerLayer].Color)
}

func TestBuild_CondensationZones(t *testing.T) {
	a, err := entities.NewWallAssembly("interior insulation",
		entities.WallLayer{Material: mineralWool, Thickness: 100},
		entities.WallLayer{Material: solidBrick, Thickness: 300},
	)
	require.NoError(t, err)

	v, err := Build(a, SchemeThermal)
	require.NoError(t, err)
	require.Len(t, v.Zones, 2)

	wool := v.Zones[0]
	assert.Equal(t, "Mineral wool", wool.MaterialName)
	assert.InDelta(t, 40.0, wool.StartDepth, 1e-9)
	assert.InDelta(t, 100.0, wool.EndDepth, 1e-9)
	assert.Equal(t, LevelCritical, wool.Level)
	assert.Equal(t, "#FF0000", wool.Color)
	assert.Equal(t, 0.8, wool.Alpha)

	assert.True(t, v.Layers[0].HasCondensation)
	assert.False(t, v.Layers[0].TemperaturePoints[0].IsCondensationRisk)
	assert.True(t, v.Layers[0].TemperaturePoints[SamplesPerLayer].IsCondensationRisk)
	assert.Equal(t, "Thermal", v.Scheme)
}

func TestBuild_DoesNotMutateAssembly(t *testing.T) {
	a := etics(t)
	before := a.Clone()

	_, err := Build(a, SchemeRainbow)
	require.NoError(t, err)
	assert.Equal(t, before, a)
}

func TestBuild_RejectsEmptyAssembly(t *testing.T) {
	a, err := entities.NewWallAssembly("empty")
	require.NoError(t, err)

	_, err = Build(a, SchemeBlueRed)
	assert.ErrorIs(t, err, entities.ErrNoLayers)
}

func TestBuild_JSONHandlesMissingDewPoint(t *testing.T) {
	a := etics(t)
	a.Climate.InteriorHumidity = 0
	a.Climate.ExteriorHumidity = 0

	v, err := Build(a, SchemeBlueRed)
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(v.Gradient.Samples[0].DewPoint), -1))

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"dew_point":"-Inf"`)
}

func TestVisualFor(t *testing.T) {
	testCases := []struct {
		category entities.MaterialCategory
		color    string
		texture  string
	}{
		{entities.CategoryInsulation, "#FFE4B5", "insulation"},
		{entities.CategoryMasonry, "#CD853F", "brick"},
		{entities.CategoryConcrete, "#A9A9A9", "concrete"},
		{entities.CategoryWood, "#DEB887", "wood"},
		{entities.CategoryPlaster, "#F5F5DC", "solid"},
		{entities.CategoryMembrane, "#FF6B6B", "membrane"},
		{entities.CategoryAirGap, "#808080", "solid"},
		{entities.CategoryOther, "#808080", "solid"},
	}

	for _, tc := range testCases {
		t.Run(tc.category.String(), func(t *testing.T) {
			v := VisualFor(tc.category)
			assert.Equal(t, tc.color, v.BaseColor)
			assert.Equal(t, tc.texture, v.TextureType)
		})
	}
	assert.Equal(t, 1.0, VisualFor(entities.CategoryMembrane).Opacity)
}

func TestClassifyCondensationLevel(t *testing.T) {
	testCases := []struct {
		amount   float64
		expected CondensationLevel
		color    string
	}{
		{0, LevelNone, "#00FF00"},
		{0.3, LevelLow, "#FFFF00"},
		{0.5, LevelMedium, "#FFA500"},
		{2.0, LevelHigh, "#FF4500"},
		{5.0, LevelCritical, "#FF0000"},
	}

	for _, tc := range testCases {
		level := ClassifyCondensationLevel(tc.amount)
		assert.Equal(t, tc.expected, level, "amount %g", tc.amount)
		assert.Equal(t, tc.color, level.Color())
	}

	assert.Equal(t, 0.2, ZoneAlpha(0))
	assert.InDelta(t, 0.5, ZoneAlpha(2.5), 1e-12)
	assert.Equal(t, 0.8, ZoneAlpha(10))
}

func TestTemperatureToColor(t *testing.T) {
	testCases := []struct {
		name        string
		temperature float64
		scheme      ColorScheme
		expected    string
	}{
		{"blue-red hot", 20, SchemeBlueRed, "#FF0000"},
		{"blue-red cold", -10, SchemeBlueRed, "#0000FF"},
		{"blue-red middle", 5, SchemeBlueRed, "#7FFF7F"},
		{"blue-red clamps above", 40, SchemeBlueRed, "#FF0000"},
		{"rainbow cold", -10, SchemeRainbow, "hsl(240, 100%, 50%)"},
		{"rainbow hot", 20, SchemeRainbow, "hsl(0, 100%, 50%)"},
		{"thermal cold", -10, SchemeThermal, "#000000"},
		{"thermal middle", 5, SchemeThermal, "#00FFFF"},
		{"thermal hot", 20, SchemeThermal, "#FF0000"},
		{"monochrome hot", 20, SchemeMonochrome, "#FFFFFF"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TemperatureToColor(tc.temperature, -10, 20, tc.scheme))
		})
	}

	assert.Equal(t, "#888888", TemperatureToColor(5, 10, 10, SchemeBlueRed))
}

func TestParseColorScheme(t *testing.T) {
	s, err := ParseColorScheme("Thermal")
	require.NoError(t, err)
	assert.Equal(t, SchemeThermal, s)

	s, err = ParseColorScheme("")
	require.NoError(t, err)
	assert.Equal(t, SchemeBlueRed, s)

	_, err = ParseColorScheme("sepia")
	assert.Error(t, err)
}
