package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/wallcalc/pkg/application/services/optimization"
	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/domain/services/bridges"
	"github.com/vsinha/wallcalc/pkg/domain/services/thermal"
	"github.com/vsinha/wallcalc/pkg/domain/services/validation"
)

func main() {
	// Build a brick wall with external polystyrene insulation
	wall, err := buildETICSWall()
	if err != nil {
		fmt.Printf("❌ Invalid wall: %v\n", err)
		return
	}

	fmt.Printf("🧱 Analysing %s (%d layers, %.0f mm)...\n", wall.Name, len(wall.Layers), wall.TotalThickness())
	fmt.Println()

	analysis, err := thermal.Analyze(wall)
	if err != nil {
		fmt.Printf("❌ Analysis failed: %v\n", err)
		return
	}

	fmt.Println("📊 Steady state:")
	fmt.Printf("  R = %.2f m²K/W\n", analysis.SteadyState.TotalThermalResistance)
	fmt.Printf("  U = %.3f W/m²K\n", analysis.SteadyState.ThermalTransmittance)
	fmt.Printf("  Heat capacity: %.0f kJ/m²K\n", analysis.SteadyState.ThermalCapacity/1000)
	fmt.Println()

	fmt.Println("🌡️  Dynamic behaviour:")
	fmt.Printf("  Damping: %.1f | Phase shift: %.1f h\n",
		analysis.Dynamic.TemperatureDamping, analysis.Dynamic.PhaseShift)
	fmt.Printf("  Inertia: %s | Summer comfort: %s\n",
		analysis.Dynamic.ThermalInertia, analysis.Dynamic.SummerComfort)
	fmt.Println()

	if analysis.DewPoint.HasCondensation {
		fmt.Println("💧 Condensation zones:")
		for _, zone := range analysis.DewPoint.Zones {
			fmt.Printf("  %s: %.0f-%.0f mm, %.3f kg/m² per year (%s)\n",
				zone.MaterialName, zone.StartDepth, zone.EndDepth, zone.AnnualCondensate, zone.Severity)
		}
	} else {
		fmt.Println("✅ No interstitial condensation")
	}
	fmt.Println()

	// Correct U for the typical bridges of a detached house
	collection, err := bridges.TypicalBridges(wall, entities.DefaultBuildingPerimeter, entities.DefaultFloorArea)
	if err != nil {
		fmt.Printf("❌ Bridge catalog failed: %v\n", err)
		return
	}
	impact, err := bridges.Impact(wall, collection)
	if err != nil {
		fmt.Printf("❌ Bridge correction failed: %v\n", err)
		return
	}
	fmt.Printf("🔗 Thermal bridges (%s): ΔU = %.3f, U = %.3f W/m²K (+%.1f%%, %s)\n",
		impact.Configuration, impact.Correction, impact.CorrectedU, impact.RelativeIncrease, impact.Criticality)
	fmt.Println()

	result, err := validation.NewAssemblyValidator().Validate(wall)
	if err != nil {
		fmt.Printf("❌ Validation failed: %v\n", err)
		return
	}
	fmt.Printf("📝 Validation findings: %d\n", len(result.Findings))
	for _, f := range result.Findings {
		fmt.Printf("  [%s] %s\n", f.Severity, f.Message)
	}
	fmt.Println()

	// Find the economic insulation thickness for the default scenario
	optimized, err := optimization.NewOptimizerService().Optimize(entities.DefaultOptimizationInput())
	if err != nil {
		fmt.Printf("❌ Optimization failed: %v\n", err)
		return
	}
	fmt.Printf("💰 Optimal %s thickness: %.1f cm (U = %.3f W/m²K, net profit %.0f)\n",
		optimized.Input.MaterialName, optimized.Optimal.Thickness, optimized.Optimal.UValue, optimized.Optimal.NetProfit)
	if practical, ok := optimization.PracticalThickness(optimized); ok {
		fmt.Printf("  Practical board size: %.0f cm\n", practical)
	}
	fmt.Println()

	fmt.Println("✅ Wall analysis complete!")
}

func buildETICSWall() (*entities.WallAssembly, error) {
	plaster, err := entities.NewMaterial("Lime plaster", entities.CategoryPlaster, 0.7, 1600, 880, 8, decimal.NewFromInt(800))
	if err != nil {
		return nil, err
	}
	brick, err := entities.NewMaterial("Solid brick", entities.CategoryMasonry, 0.8, 1800, 880, 5, decimal.NewFromInt(2500))
	if err != nil {
		return nil, err
	}
	eps, err := entities.NewMaterial("EPS 20", entities.CategoryInsulation, 0.04, 20, 1500, 30, decimal.NewFromInt(900))
	if err != nil {
		return nil, err
	}
	render, err := entities.NewMaterial("Cement plaster", entities.CategoryPlaster, 1.0, 1800, 880, 10, decimal.NewFromInt(900))
	if err != nil {
		return nil, err
	}

	return entities.NewWallAssembly("ETICS brick wall",
		entities.WallLayer{Material: *plaster, Thickness: 15},
		entities.WallLayer{Material: *brick, Thickness: 300},
		entities.WallLayer{Material: *eps, Thickness: 120},
		entities.WallLayer{Material: *render, Thickness: 8},
	)
}
