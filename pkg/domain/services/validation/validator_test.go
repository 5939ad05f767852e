package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

var (
	brick = entities.Material{
		Name: "Solid brick", Category: entities.CategoryMasonry,
		ThermalConductivity: 0.8, Density: 1800, SpecificHeatCapacity: 880, DiffusionResistanceFactor: 5,
		PricePerM3: decimal.NewFromInt(2500),
	}
	eps = entities.Material{
		Name: "EPS", Category: entities.CategoryInsulation,
		ThermalConductivity: 0.035, Density: 15, SpecificHeatCapacity: 1500, DiffusionResistanceFactor: 30,
		PricePerM3: decimal.NewFromInt(800),
	}
	barrier = entities.Material{
		Name: "PE vapor barrier", Category: entities.CategoryMembrane,
		ThermalConductivity: 0.2, Density: 920, SpecificHeatCapacity: 2300, DiffusionResistanceFactor: 100000,
		PricePerM3: decimal.NewFromInt(25000),
	}
)

func build(t *testing.T, layers ...entities.WallLayer) *entities.WallAssembly {
	t.Helper()
	a, err := entities.NewWallAssembly("wall", layers...)
	if err != nil {
		t.Fatalf("Failed to build assembly: %v", err)
	}
	return a
}

func codes(result *ValidationResult) []string {
	out := make([]string, len(result.Findings))
	for i, f := range result.Findings {
		out[i] = f.Code
	}
	return out
}

func TestValidate_EmptyAssembly(t *testing.T) {
	result, err := NewAssemblyValidator().Validate(build(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(result.Findings) != 1 {
		t.Fatalf("Expected 1 finding, got %d", len(result.Findings))
	}
	f := result.Findings[0]
	if f.Severity != entities.SeverityWarning || f.Category != entities.CategoryGeneral {
		t.Errorf("Expected general warning, got %s/%s", f.Severity, f.Category)
	}
	if !result.IsValid() {
		t.Error("Expected a warning-only result to be valid")
	}
}

func TestValidate_RuleOrder(t *testing.T) {
	testCases := []struct {
		name     string
		layers   []entities.WallLayer
		expected []string
	}{
		{
			name:     "compliant ETICS wall",
			layers:   []entities.WallLayer{{Material: brick, Thickness: 300}, {Material: eps, Thickness: 150}},
			expected: []string{},
		},
		{
			name:     "uninsulated brick",
			layers:   []entities.WallLayer{{Material: brick, Thickness: 300}},
			expected: []string{"U_VALUE_EXCEEDS_REQUIRED", "NO_INSULATION"},
		},
		{
			name:     "above recommended",
			layers:   []entities.WallLayer{{Material: brick, Thickness: 300}, {Material: eps, Thickness: 100}},
			expected: []string{"U_VALUE_ABOVE_RECOMMENDED"},
		},
		{
			name: "over-insulated with two barriers",
			layers: []entities.WallLayer{
				{Material: barrier, Thickness: 0.5},
				{Material: eps, Thickness: 400},
				{Material: eps, Thickness: 10},
				{Material: barrier, Thickness: 0.5},
			},
			expected: []string{
				"U_VALUE_PASSIVE",
				"LAYER_TOO_THIN",
				"THIN_INSULATION",
				"LAYER_TOO_THIN",
				"MULTIPLE_VAPOR_BARRIERS",
				"HIGH_DIFFUSION_RESISTANCE",
				"POSSIBLE_OVER_INSULATION",
			},
		},
		{
			name:     "too thick layer",
			layers:   []entities.WallLayer{{Material: eps, Thickness: 1200}},
			expected: []string{"U_VALUE_PASSIVE", "LAYER_TOO_THICK", "HIGH_DIFFUSION_RESISTANCE", "POSSIBLE_OVER_INSULATION"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := NewAssemblyValidator().Validate(build(t, tc.layers...))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			got := codes(result)
			if strings.Join(got, ",") != strings.Join(tc.expected, ",") {
				t.Errorf("Expected findings %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestValidate_Details(t *testing.T) {
	a := build(t,
		entities.WallLayer{Material: barrier, Thickness: 0.5},
		entities.WallLayer{Material: eps, Thickness: 400},
		entities.WallLayer{Material: eps, Thickness: 10},
		entities.WallLayer{Material: barrier, Thickness: 0.5},
	)
	result, err := NewAssemblyValidator().Validate(a)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsValid() {
		t.Error("Expected too-thin layers to make the result invalid")
	}
	if got := result.Count(entities.SeverityError); got != 2 {
		t.Errorf("Expected 2 errors, got %d", got)
	}

	economic := result.Findings[len(result.Findings)-1]
	if economic.Category != entities.CategoryEconomic {
		t.Fatalf("Expected economic finding last, got %s", economic.Category)
	}
	// 0.41 m EPS × 800 + 0.001 m PE × 25000
	if !strings.Contains(economic.Details, "353") {
		t.Errorf("Expected material cost 353 in details, got %q", economic.Details)
	}

	diffusion := result.Findings[len(result.Findings)-2]
	if diffusion.Category != entities.CategoryCondensation {
		t.Errorf("Expected diffusion finding tagged Condensation, got %s", diffusion.Category)
	}
}

func TestValidate_CustomLimits(t *testing.T) {
	limits := DefaultLimits()
	limits.RequiredU = 0.2
	v := NewAssemblyValidatorWithLimits(limits)

	result, err := v.Validate(build(t, entities.WallLayer{Material: brick, Thickness: 300}, entities.WallLayer{Material: eps, Thickness: 150}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Findings[0].Code != "U_VALUE_EXCEEDS_REQUIRED" {
		t.Errorf("Expected stricter limit to fail, got %v", codes(result))
	}
}

func TestValidate_ConfigurationError(t *testing.T) {
	broken := &entities.WallAssembly{
		Layers: []entities.WallLayer{{Material: entities.Material{Name: "bad", Density: 1, SpecificHeatCapacity: 1}, Thickness: 10}},
	}
	if _, err := NewAssemblyValidator().Validate(broken); !errors.Is(err, entities.ErrInvalidConductivity) {
		t.Errorf("Expected ErrInvalidConductivity, got %v", err)
	}
}
