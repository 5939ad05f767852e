package memory

import (
	"fmt"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/domain/repositories"
)

// TemplateRepository provides in-memory wall template storage
type TemplateRepository struct {
	templates    []entities.WallTemplate
	templatesMap map[string]int
}

// NewTemplateRepository creates a new in-memory template repository
func NewTemplateRepository(expectedTemplates int) *TemplateRepository {
	return &TemplateRepository{
		templates:    make([]entities.WallTemplate, 0, expectedTemplates),
		templatesMap: make(map[string]int, expectedTemplates),
	}
}

// Verify interface compliance
var _ repositories.TemplateRepository = (*TemplateRepository)(nil)

// LoadTemplates loads templates into the repository
func (r *TemplateRepository) LoadTemplates(templates []*entities.WallTemplate) error {
	for _, template := range templates {
		if _, exists := r.templatesMap[template.Name]; exists {
			return fmt.Errorf("duplicate template: %s", template.Name)
		}
		r.templatesMap[template.Name] = len(r.templates)
		r.templates = append(r.templates, *template)
	}
	return nil
}

// GetTemplate returns the named template
func (r *TemplateRepository) GetTemplate(name string) (*entities.WallTemplate, error) {
	index, exists := r.templatesMap[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", entities.ErrTemplateNotFound, name)
	}
	return &r.templates[index], nil
}

// GetAllTemplates returns all templates
func (r *TemplateRepository) GetAllTemplates() ([]*entities.WallTemplate, error) {
	return r.filter(func(*entities.WallTemplate) bool { return true }), nil
}

// GetTemplatesByCategory returns the templates of one category
func (r *TemplateRepository) GetTemplatesByCategory(category entities.TemplateCategory) ([]*entities.WallTemplate, error) {
	return r.filter(func(t *entities.WallTemplate) bool { return t.Category == category }), nil
}

// GetPopularTemplates returns the templates flagged as popular
func (r *TemplateRepository) GetPopularTemplates() ([]*entities.WallTemplate, error) {
	return r.filter(func(t *entities.WallTemplate) bool { return t.Popular }), nil
}

func (r *TemplateRepository) filter(keep func(*entities.WallTemplate) bool) []*entities.WallTemplate {
	var templates []*entities.WallTemplate
	for i := range r.templates {
		if keep(&r.templates[i]) {
			templates = append(templates, &r.templates[i])
		}
	}
	return templates
}
