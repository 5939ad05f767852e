package memory

import (
	"fmt"
	"sync"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/domain/repositories"
)

// MaterialRepository provides in-memory material storage
type MaterialRepository struct {
	materials    []entities.Material
	materialsMap map[string]int
	mu           sync.RWMutex
}

// NewMaterialRepository creates a new in-memory material repository
func NewMaterialRepository(expectedMaterials int) *MaterialRepository {
	return &MaterialRepository{
		materials:    make([]entities.Material, 0, expectedMaterials),
		materialsMap: make(map[string]int, expectedMaterials),
	}
}

// Verify interface compliance
var _ repositories.MaterialRepository = (*MaterialRepository)(nil)

// LoadMaterials loads materials into the repository
func (r *MaterialRepository) LoadMaterials(materials []*entities.Material) error {
	for _, material := range materials {
		if err := r.SaveMaterial(material); err != nil {
			return err
		}
	}
	return nil
}

// SaveMaterial validates and stores a material, replacing one with the same name
func (r *MaterialRepository) SaveMaterial(material *entities.Material) error {
	if err := material.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if index, exists := r.materialsMap[material.Name]; exists {
		r.materials[index] = *material
		return nil
	}
	r.materialsMap[material.Name] = len(r.materials)
	r.materials = append(r.materials, *material)
	return nil
}

// GetMaterial returns a copy of the named material
func (r *MaterialRepository) GetMaterial(name string) (*entities.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index, exists := r.materialsMap[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", entities.ErrMaterialNotFound, name)
	}
	material := r.materials[index]
	return &material, nil
}

// GetAllMaterials returns all materials in insertion order
func (r *MaterialRepository) GetAllMaterials() ([]*entities.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	materials := make([]*entities.Material, 0, len(r.materials))
	for i := range r.materials {
		material := r.materials[i]
		materials = append(materials, &material)
	}
	return materials, nil
}

// GetMaterialsByCategory returns the materials of one category
func (r *MaterialRepository) GetMaterialsByCategory(category entities.MaterialCategory) ([]*entities.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var materials []*entities.Material
	for i := range r.materials {
		if r.materials[i].Category == category {
			material := r.materials[i]
			materials = append(materials, &material)
		}
	}
	return materials, nil
}

// Resolve looks a material up by name for assembly construction
func (r *MaterialRepository) Resolve(name string) (entities.Material, bool) {
	material, err := r.GetMaterial(name)
	if err != nil {
		return entities.Material{}, false
	}
	return *material, true
}
