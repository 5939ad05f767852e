package dto

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/domain/services/bridges"
	"github.com/vsinha/wallcalc/pkg/domain/services/thermal"
)

func eticsAssembly(t *testing.T) *entities.WallAssembly {
	t.Helper()
	brick, err := entities.NewMaterial("Solid brick", entities.CategoryMasonry, 0.8, 1800, 880, 5, decimal.NewFromInt(2500))
	require.NoError(t, err)
	eps, err := entities.NewMaterial("EPS", entities.CategoryInsulation, 0.035, 15, 1500, 30, decimal.NewFromInt(800))
	require.NoError(t, err)

	a, err := entities.NewWallAssembly("ETICS",
		entities.WallLayer{Material: *brick, Thickness: 300},
		entities.WallLayer{Material: *eps, Thickness: 150},
	)
	require.NoError(t, err)
	return a
}

func TestNumber_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
	}{Number(math.Inf(1)), Number(1.5), Number(math.NaN())})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":null,"b":1.5,"c":null}`, string(data))

	var n Number
	require.NoError(t, json.Unmarshal([]byte("null"), &n))
	assert.True(t, math.IsInf(float64(n), 1))
	assert.False(t, n.Finite())

	require.NoError(t, json.Unmarshal([]byte("12.5"), &n))
	assert.Equal(t, Number(12.5), n)
	assert.True(t, n.Finite())
}

func TestNumber_InfinitySignSurvivesJSON(t *testing.T) {
	type sample struct {
		Payback  Number `json:"payback"`
		DewPoint Number `json:"dew_point"`
	}
	data, err := json.Marshal(sample{Number(math.Inf(1)), Number(math.Inf(-1))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"payback":null,"dew_point":"-Inf"}`, string(data))

	var back sample
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, math.IsInf(float64(back.Payback), 1))
	assert.True(t, math.IsInf(float64(back.DewPoint), -1))

	var n Number
	require.NoError(t, json.Unmarshal([]byte(`"Inf"`), &n))
	assert.True(t, math.IsInf(float64(n), 1))
	require.NoError(t, json.Unmarshal([]byte(`"NaN"`), &n))
	assert.True(t, math.IsNaN(float64(n)))
	assert.Error(t, json.Unmarshal([]byte(`"lots"`), &n))
}

func TestNewAssemblyReport(t *testing.T) {
	a := eticsAssembly(t)
	analysis, err := thermal.Analyze(a)
	require.NoError(t, err)

	report := NewAssemblyReport(a, analysis, nil, nil, nil)

	assert.Equal(t, "ETICS", report.Name)
	require.Len(t, report.Layers, 2)
	assert.Equal(t, "Masonry", report.Layers[0].Category)
	assert.InDelta(t, 0.375, report.Layers[0].Resistance, 1e-9)
	assert.True(t, report.Layers[1].Cost.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, 450.0, report.TotalThickness)
	assert.True(t, report.TotalCost.Equal(decimal.NewFromInt(870)), "total cost %s", report.TotalCost)
	assert.InDelta(t, 0.20701, report.SteadyState.ThermalTransmittance, 1e-4)
	assert.Len(t, report.TemperatureProfile, 3)
	assert.Len(t, report.DewPoint.Layers, 2)
	assert.Nil(t, report.Bridges)
	assert.Equal(t, report.SteadyState.ThermalTransmittance, report.UWithBridges())
	assert.True(t, report.Valid)

	_, err = json.Marshal(report)
	require.NoError(t, err)
}

func TestNewAssemblyReport_WithBridgesAndFindings(t *testing.T) {
	a := eticsAssembly(t)
	analysis, err := thermal.Analyze(a)
	require.NoError(t, err)

	collection, err := bridges.TypicalBridges(a, entities.DefaultBuildingPerimeter, entities.DefaultFloorArea)
	require.NoError(t, err)
	impact, err := bridges.Impact(a, collection)
	require.NoError(t, err)

	findings := []entities.Finding{
		{Code: "U_VALUE_EXCEEDS_REQUIRED", Severity: entities.SeverityError, Category: entities.CategoryBuildingCode, Message: "too high"},
	}

	report := NewAssemblyReport(a, analysis, collection, &impact, findings)

	require.NotNil(t, report.Bridges)
	assert.Len(t, report.Bridges.Bridges, len(collection.Bridges))
	assert.Equal(t, "ThickInsulation", report.Bridges.Configuration)
	assert.Equal(t, impact.CorrectedU, report.UWithBridges())
	assert.Greater(t, report.UWithBridges(), report.SteadyState.ThermalTransmittance)

	require.Len(t, report.Findings, 1)
	assert.Equal(t, "Error", report.Findings[0].Severity)
	assert.Equal(t, "BuildingCode", report.Findings[0].Category)
	assert.False(t, report.Valid)
}

func TestAssemblyReport_Document(t *testing.T) {
	a := eticsAssembly(t)
	analysis, err := thermal.Analyze(a)
	require.NoError(t, err)

	report := NewAssemblyReport(a, analysis, nil, nil, nil)
	generated := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	doc := report.Document(generated)

	assert.Equal(t, "ETICS", doc.Title)
	assert.Equal(t, generated, doc.GeneratedAt)
	require.Len(t, doc.Layers, 2)
	assert.Equal(t, "EPS", doc.Layers[1].Name)
	assert.Equal(t, 150.0, doc.Layers[1].Thickness)
	assert.Equal(t, report.SteadyState.TotalThermalResistance, doc.TotalResistance)
	assert.Equal(t, doc.UValue, doc.UWithBridges)
	assert.Equal(t, report.DewPoint.HasCondensation, doc.HasCondensation)

	report.Name = ""
	assert.Equal(t, "Wall assembly", report.Document(generated).Title)
}

func TestNewOptimizationReport(t *testing.T) {
	result := &entities.InsulationOptimizationResult{
		Input:               entities.DefaultOptimizationInput(),
		BaselineResistance:  0.6,
		BaselineHeatLoss:    108,
		BaselineHeatingCost: 129.6,
		DataPoints: []entities.OptimizationDataPoint{
			{Thickness: 1, PaybackPeriod: math.Inf(1), IncrementalPayback: math.Inf(1)},
			{Thickness: 1.5, PaybackPeriod: 20, IncrementalPayback: 4},
		},
		Recommendations: []entities.Recommendation{
			{Kind: entities.RecommendUValue, UValueBand: entities.UValueNonCompliant, Warning: true},
		},
	}
	result.Optimal = result.DataPoints[1]
	practical := 1.5

	report := NewOptimizationReport(result, result.DataPoints[1:], &practical)

	assert.Equal(t, 0.035, report.Input.Lambda)
	assert.Equal(t, 108.0, report.Baseline.HeatLoss)
	assert.Equal(t, 1.5, report.Optimal.Thickness)
	require.Len(t, report.DataPoints, 2)
	require.Len(t, report.Comparison, 1)
	require.Len(t, report.Recommendations, 1)
	assert.Equal(t, "UValue", report.Recommendations[0].Kind)
	assert.True(t, report.Recommendations[0].Warning)
	assert.Contains(t, report.Recommendations[0].Text, "Warning")

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"payback_period":null`)
	assert.Contains(t, string(data), `"practical_thickness":1.5`)
}

func TestNewStatisticsReport(t *testing.T) {
	stats := entities.NewUsageStatistics()
	stats.Counters[entities.CounterCalculations] = 4
	stats.Counters[entities.CounterLayers] = 10
	stats.MaterialUsage["EPS 20"] = 3
	stats.MaterialUsage["Solid brick"] = 4
	stats.CategoryUsage["Insulation"] = 3

	report := NewStatisticsReport(stats)

	assert.Equal(t, int64(4), report.Calculations)
	assert.Equal(t, 2.5, report.AverageLayersPerCalculation)
	assert.Nil(t, report.FirstUsed)
	require.Len(t, report.TopMaterials, 2)
	assert.Equal(t, "Solid brick", report.TopMaterials[0].Name)
	assert.Equal(t, int64(3), report.CategoryUsage["Insulation"])
}

func TestNewAssemblyRequest_Defaults(t *testing.T) {
	req := NewAssemblyRequest(entities.DefaultClimate(), 0.13, 0.04)

	assert.True(t, req.Bridges.Enabled)
	assert.Equal(t, entities.DefaultFloorArea, req.Bridges.FloorArea)
	assert.Equal(t, -15.0, req.Climate.ExteriorTemperature)

	req.TemplateOverrides = []TemplateOverride{{Index: 2, Thickness: 160}, {Index: 3, Disabled: true}}
	selections := req.Selections()
	assert.Equal(t, 160.0, selections[2].Thickness)
	assert.True(t, selections[3].Disabled)
}

func TestOptimizationRequest_Input(t *testing.T) {
	req := NewOptimizationRequest()
	req.UseInflation = true

	in := req.Input()
	assert.Equal(t, entities.DefaultOptimizationInput().Lambda, in.Lambda)
	assert.True(t, in.InflationApplied())
	assert.NoError(t, in.Validate())
}
