package repositories

import "github.com/vsinha/wallcalc/pkg/domain/entities"

// MaterialRepository provides access to the material catalog
type MaterialRepository interface {
	GetMaterial(name string) (*entities.Material, error)
	GetAllMaterials() ([]*entities.Material, error)
	GetMaterialsByCategory(category entities.MaterialCategory) ([]*entities.Material, error)
	LoadMaterials(materials []*entities.Material) error
	// SaveMaterial adds a custom material or replaces one with the same name
	SaveMaterial(material *entities.Material) error
}
