package repositories

import "github.com/vsinha/wallcalc/pkg/domain/entities"

// TemplateRepository provides access to standard wall templates
type TemplateRepository interface {
	GetTemplate(name string) (*entities.WallTemplate, error)
	GetAllTemplates() ([]*entities.WallTemplate, error)
	GetTemplatesByCategory(category entities.TemplateCategory) ([]*entities.WallTemplate, error)
	GetPopularTemplates() ([]*entities.WallTemplate, error)
	LoadTemplates(templates []*entities.WallTemplate) error
}
