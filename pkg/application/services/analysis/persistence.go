package analysis

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vsinha/wallcalc/pkg/application/dto"
	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/infrastructure/events"
)

// ErrInvalidRequest marks save failures caused by the request itself rather
// than by the assembly store
var ErrInvalidRequest = errors.New("invalid assembly request")

// SaveAssembly builds the requested assembly and stores it under its name,
// replacing any assembly with the same name
func (s *AnalysisService) SaveAssembly(ctx context.Context, req dto.AssemblyRequest) (*entities.SavedAssembly, error) {
	a, _, err := s.buildAssembly(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	saved, err := entities.NewSavedAssembly(a, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if err := s.assemblyRepo.SaveAssembly(ctx, saved); err != nil {
		return nil, err
	}

	s.emit(ctx, events.AssemblySavedEvent, saved.Name, events.AssemblySaved{Name: saved.Name, Layers: len(saved.Layers)})
	s.logger.Info("assembly saved", zap.String("name", saved.Name), zap.Int("layers", len(saved.Layers)))
	return saved, nil
}

// GetAssembly loads a saved assembly record
func (s *AnalysisService) GetAssembly(ctx context.Context, name string) (*entities.SavedAssembly, error) {
	saved, err := s.assemblyRepo.GetAssembly(ctx, name)
	if err != nil {
		return nil, err
	}
	s.emit(ctx, events.AssemblyLoadedEvent, saved.Name, events.AssemblyLoaded{Name: saved.Name})
	return saved, nil
}

// LoadRequest turns a saved assembly into a request, keeping the bridge
// options of base. Every layer material must still exist in the catalog.
func (s *AnalysisService) LoadRequest(ctx context.Context, name string, base dto.AssemblyRequest) (*dto.AssemblyRequest, error) {
	saved, err := s.GetAssembly(ctx, name)
	if err != nil {
		return nil, err
	}
	if _, err := saved.Restore(s.resolveMaterial); err != nil {
		return nil, fmt.Errorf("failed to restore assembly: %w", err)
	}

	req := base
	req.Name = saved.Name
	req.Template = ""
	req.TemplateOverrides = nil
	req.InteriorSurfaceResistance = saved.InteriorSurfaceResistance
	req.ExteriorSurfaceResistance = saved.ExteriorSurfaceResistance
	req.Climate = saved.Climate
	req.Layers = make([]dto.LayerRequest, len(saved.Layers))
	for i, layer := range saved.Layers {
		req.Layers[i] = dto.LayerRequest{Material: layer.MaterialName, Thickness: layer.Thickness}
	}
	return &req, nil
}

// ListAssemblies returns every saved assembly ordered by name
func (s *AnalysisService) ListAssemblies(ctx context.Context) ([]*entities.SavedAssembly, error) {
	return s.assemblyRepo.GetAllAssemblies(ctx)
}

// DeleteAssembly removes a saved assembly by name
func (s *AnalysisService) DeleteAssembly(ctx context.Context, name string) error {
	if err := s.assemblyRepo.DeleteAssembly(ctx, name); err != nil {
		return err
	}
	s.emit(ctx, events.AssemblyDeletedEvent, name, events.AssemblyDeleted{Name: name})
	s.logger.Info("assembly deleted", zap.String("name", name))
	return nil
}
