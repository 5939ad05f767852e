package testing

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/infrastructure/catalog"
	"github.com/vsinha/wallcalc/pkg/infrastructure/repositories/memory"
)

// BuildStandardTestData returns repositories seeded with the standard catalog and templates
func BuildStandardTestData() (*memory.MaterialRepository, *memory.TemplateRepository, *memory.AssemblyRepository, *memory.StatisticsRepository) {
	materialRepo, err := catalog.NewMaterialRepository()
	if err != nil {
		panic(err)
	}
	templateRepo, err := catalog.NewTemplateRepository()
	if err != nil {
		panic(err)
	}
	return materialRepo, templateRepo, memory.NewAssemblyRepository(), memory.NewStatisticsRepository()
}

// Material names of the simple scenario
const (
	Brick        = "Brick"
	EPS          = "EPS"
	VaporBarrier = "PE barrier"
)

// BuildSimpleTestData returns a three-material catalog with round numbers:
// brick λ 0.8, EPS λ 0.035 and a PE vapor barrier μ 100000
func BuildSimpleTestData() *memory.MaterialRepository {
	materialRepo := memory.NewMaterialRepository(3)

	materials := []*entities.Material{
		{
			Name:                      Brick,
			Category:                  entities.CategoryMasonry,
			ThermalConductivity:       0.8,
			Density:                   1800,
			SpecificHeatCapacity:      880,
			DiffusionResistanceFactor: 5,
			PricePerM3:                decimal.NewFromInt(2500),
		},
		{
			Name:                      EPS,
			Category:                  entities.CategoryInsulation,
			ThermalConductivity:       0.035,
			Density:                   15,
			SpecificHeatCapacity:      1500,
			DiffusionResistanceFactor: 30,
			PricePerM3:                decimal.NewFromInt(800),
		},
		{
			Name:                      VaporBarrier,
			Category:                  entities.CategoryMembrane,
			ThermalConductivity:       0.2,
			Density:                   920,
			SpecificHeatCapacity:      2300,
			DiffusionResistanceFactor: 100000,
			PricePerM3:                decimal.NewFromInt(25000),
		},
	}

	if err := materialRepo.LoadMaterials(materials); err != nil {
		panic(err)
	}
	return materialRepo
}

// BuildETICSAssembly builds 300 mm brick with the given EPS thickness from the simple catalog
func BuildETICSAssembly(materialRepo *memory.MaterialRepository, epsThickness float64) *entities.WallAssembly {
	brick, _ := materialRepo.Resolve(Brick)
	eps, _ := materialRepo.Resolve(EPS)

	a, err := entities.NewWallAssembly("ETICS",
		entities.WallLayer{Material: brick, Thickness: 300},
		entities.WallLayer{Material: eps, Thickness: epsThickness},
	)
	if err != nil {
		panic(err)
	}
	return a
}
