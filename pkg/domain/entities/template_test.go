package entities

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func testResolver(layers ...WallLayer) func(string) (Material, bool) {
	byName := make(map[string]Material, len(layers))
	for _, l := range layers {
		byName[l.Material.Name] = l.Material
	}
	return func(name string) (Material, bool) {
		m, ok := byName[name]
		return m, ok
	}
}

func testTemplate() WallTemplate {
	return WallTemplate{
		Name:     "ETICS",
		Category: TemplateETICS,
		Layers: []TemplateLayer{
			{MaterialName: "Plaster", DefaultThickness: 15, Adjustable: true},
			{MaterialName: "Brick", DefaultThickness: 300, MinThickness: 200, MaxThickness: 500, Adjustable: true},
			{MaterialName: "EPS", DefaultThickness: 120, MinThickness: 80, MaxThickness: 200, Adjustable: true},
			{MaterialName: "Render", DefaultThickness: 8},
		},
	}
}

func TestTemplateLayer_ClampThickness(t *testing.T) {
	layer := TemplateLayer{DefaultThickness: 120, MinThickness: 80, MaxThickness: 200, Adjustable: true}

	testCases := []struct {
		requested float64
		expected  float64
	}{
		{150, 150},
		{50, 80},
		{250, 200},
	}
	for _, tc := range testCases {
		if got := layer.ClampThickness(tc.requested); got != tc.expected {
			t.Errorf("Expected %g for request %g, got %g", tc.expected, tc.requested, got)
		}
	}

	layer.Adjustable = false
	if got := layer.ClampThickness(150); got != 120 {
		t.Errorf("Expected fixed layer to keep 120, got %g", got)
	}
}

func TestWallTemplate_Assembly(t *testing.T) {
	resolve := testResolver(
		testLayer("Plaster", CategoryPlaster, 0.7, 0),
		testLayer("Brick", CategoryMasonry, 0.8, 0),
		testLayer("EPS", CategoryInsulation, 0.035, 0),
	)

	a, skipped, err := testTemplate().Assembly(resolve, map[int]LayerSelection{
		0: {Disabled: true},
		2: {Thickness: 300},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := strings.Join(layerNames(a), ","); got != "Brick,EPS" {
		t.Errorf("Expected layers Brick,EPS, got %s", got)
	}
	if a.Layers[1].Thickness != 200 {
		t.Errorf("Expected EPS clamped to 200 mm, got %g", a.Layers[1].Thickness)
	}
	if len(skipped) != 1 || skipped[0] != "Render" {
		t.Errorf("Expected Render to be skipped, got %v", skipped)
	}
	if a.Name != "ETICS" {
		t.Errorf("Expected assembly named after the template, got %s", a.Name)
	}
}

func TestParseTemplateCategory(t *testing.T) {
	c, err := ParseTemplateCategory("Wood Frame")
	if err != nil || c != TemplateWoodFrame {
		t.Errorf("Expected WoodFrame, got %v (%v)", c, err)
	}
	if _, err := ParseTemplateCategory("igloo"); err == nil {
		t.Error("Expected error for unknown category")
	}
}

func TestSavedAssembly_RoundTrip(t *testing.T) {
	brick := testLayer("Brick", CategoryMasonry, 0.8, 300)
	eps := testLayer("EPS", CategoryInsulation, 0.035, 120)

	a, err := NewWallAssembly("house", brick, eps)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	a.Climate.InteriorTemperature = 21

	saved, err := NewSavedAssembly(a, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if saved.Layers[1].MaterialName != "EPS" || saved.Layers[1].Thickness != 120 {
		t.Errorf("Expected EPS 120 mm, got %+v", saved.Layers[1])
	}

	restored, err := saved.Restore(testResolver(brick, eps))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if restored.Climate.InteriorTemperature != 21 {
		t.Errorf("Expected climate to survive, got %g", restored.Climate.InteriorTemperature)
	}
	if got := strings.Join(layerNames(restored), ","); got != "Brick,EPS" {
		t.Errorf("Expected Brick,EPS, got %s", got)
	}

	_, err = saved.Restore(testResolver(brick))
	if !errors.Is(err, ErrMaterialNotFound) {
		t.Errorf("Expected ErrMaterialNotFound, got %v", err)
	}
}

func TestNewSavedAssembly_RequiresName(t *testing.T) {
	a, _ := NewWallAssembly("")
	if _, err := NewSavedAssembly(a, time.Now()); err == nil {
		t.Error("Expected error for unnamed assembly")
	}
}
