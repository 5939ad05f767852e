// Package catalog embeds the standard material catalog and wall templates.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/wallcalc/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/wallcalc/pkg/infrastructure/repositories/yamlspec"
)

//go:embed materials.csv
var materialsCSV []byte

//go:embed templates.yaml
var templatesYAML []byte

// StandardMaterials returns a fresh copy of the built-in material catalog
func StandardMaterials() ([]*entities.Material, error) {
	materials, err := csv.NewLoader().ReadMaterials(bytes.NewReader(materialsCSV))
	if err != nil {
		return nil, fmt.Errorf("standard material catalog: %w", err)
	}
	return materials, nil
}

// StandardTemplates returns a fresh copy of the built-in wall templates
func StandardTemplates() ([]*entities.WallTemplate, error) {
	templates, err := yamlspec.ReadTemplates(bytes.NewReader(templatesYAML))
	if err != nil {
		return nil, fmt.Errorf("standard templates: %w", err)
	}
	return templates, nil
}

// NewMaterialRepository returns an in-memory repository seeded with the standard catalog
func NewMaterialRepository() (*memory.MaterialRepository, error) {
	materials, err := StandardMaterials()
	if err != nil {
		return nil, err
	}
	repo := memory.NewMaterialRepository(len(materials))
	if err := repo.LoadMaterials(materials); err != nil {
		return nil, err
	}
	return repo, nil
}

// NewTemplateRepository returns an in-memory repository seeded with the standard templates
func NewTemplateRepository() (*memory.TemplateRepository, error) {
	templates, err := StandardTemplates()
	if err != nil {
		return nil, err
	}
	repo := memory.NewTemplateRepository(len(templates))
	if err := repo.LoadTemplates(templates); err != nil {
		return nil, err
	}
	return repo, nil
}
