package optimization

import (
	"fmt"
	"strings"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

// Preset is a ready-made insulation product for the optimizer
type Preset struct {
	Name                string
	Description         string
	Lambda              float64 // W/(m·K)
	InsulationCostPerCm float64 // material only, fixed cost is added separately
	Category            entities.MaterialCategory
}

var presets = []Preset{
	{Name: "EPS", Description: "Common facade polystyrene", Lambda: 0.035, InsulationCostPerCm: 20, Category: entities.CategoryInsulation},
	{Name: "PUR board", Description: "Polyurethane board, best insulator", Lambda: 0.023, InsulationCostPerCm: 30, Category: entities.CategoryInsulation},
	{Name: "Mineral wool", Description: "Common facade mineral wool", Lambda: 0.040, InsulationCostPerCm: 22, Category: entities.CategoryInsulation},
	{Name: "PUR foam", Description: "Sprayed polyurethane foam, high performance", Lambda: 0.025, InsulationCostPerCm: 28, Category: entities.CategoryInsulation},
	{Name: "Wood fiber board", Description: "Ecological insulation", Lambda: 0.040, InsulationCostPerCm: 35, Category: entities.CategoryWood},
}

// Presets returns a copy of the built-in insulation presets
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// FindPreset looks a preset up by case-insensitive name
func FindPreset(name string) (Preset, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown insulation preset %q", name)
}

// Apply returns the input with the preset's material, lambda and cost
func (p Preset) Apply(input entities.OptimizationInput) entities.OptimizationInput {
	input.MaterialName = p.Name
	input.Lambda = p.Lambda
	input.InsulationCostPerCm = p.InsulationCostPerCm
	return input
}
