package analysis

import (
	"fmt"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

// Materials lists the catalog, optionally restricted to one category
func (s *AnalysisService) Materials(category string) ([]*entities.Material, error) {
	if category == "" {
		return s.materialRepo.GetAllMaterials()
	}
	c, err := entities.ParseMaterialCategory(category)
	if err != nil {
		return nil, err
	}
	return s.materialRepo.GetMaterialsByCategory(c)
}

// AddMaterials adds custom materials, replacing catalog entries with the same name
func (s *AnalysisService) AddMaterials(materials []*entities.Material) error {
	for _, m := range materials {
		if err := s.materialRepo.SaveMaterial(m); err != nil {
			return fmt.Errorf("failed to add material %s: %w", m.Name, err)
		}
	}
	return nil
}

// Templates lists wall templates by category, or only the popular ones
func (s *AnalysisService) Templates(category string, popularOnly bool) ([]*entities.WallTemplate, error) {
	if popularOnly {
		return s.templateRepo.GetPopularTemplates()
	}
	if category == "" {
		return s.templateRepo.GetAllTemplates()
	}
	c, err := entities.ParseTemplateCategory(category)
	if err != nil {
		return nil, err
	}
	return s.templateRepo.GetTemplatesByCategory(c)
}
