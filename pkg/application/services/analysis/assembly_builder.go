package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/vsinha/wallcalc/pkg/application/dto"
	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/domain/services/bridges"
	"github.com/vsinha/wallcalc/pkg/infrastructure/events"
)

// DefaultAssemblyName is used when a request names neither the wall nor a template
const DefaultAssemblyName = "Wall assembly"

// BuildAssembly turns a request into a wall assembly. Template layers whose
// material is not in the catalog are skipped and reported; unknown materials
// in an explicit layer list are an error.
func (s *AnalysisService) BuildAssembly(ctx context.Context, req dto.AssemblyRequest) (*entities.WallAssembly, []string, error) {
	a, skipped, err := s.buildAssembly(req)
	if err != nil {
		return nil, nil, err
	}
	if req.Template != "" {
		s.emit(ctx, events.TemplateUsedEvent, req.Template, events.TemplateUsed{Template: req.Template, Skipped: skipped})
	}
	return a, skipped, nil
}

// buildAssembly is BuildAssembly without usage tracking
func (s *AnalysisService) buildAssembly(req dto.AssemblyRequest) (*entities.WallAssembly, []string, error) {
	var a *entities.WallAssembly
	var skipped []string

	if req.Template != "" {
		template, err := s.templateRepo.GetTemplate(req.Template)
		if err != nil {
			return nil, nil, err
		}
		a, skipped, err = template.Assembly(s.resolveMaterial, req.Selections())
		if err != nil {
			return nil, nil, err
		}
	} else {
		var err error
		a, err = entities.NewWallAssembly(req.Name)
		if err != nil {
			return nil, nil, err
		}
		for i, lr := range req.Layers {
			material, err := s.materialRepo.GetMaterial(lr.Material)
			if err != nil {
				return nil, nil, fmt.Errorf("layer %d: %w", i+1, err)
			}
			if err := a.AddLayer(entities.WallLayer{Material: *material, Thickness: lr.Thickness}); err != nil {
				return nil, nil, fmt.Errorf("layer %d: %w", i+1, err)
			}
		}
	}

	if req.Name != "" {
		a.Name = req.Name
	}
	if a.Name == "" {
		a.Name = DefaultAssemblyName
	}
	a.InteriorSurfaceResistance = req.InteriorSurfaceResistance
	a.ExteriorSurfaceResistance = req.ExteriorSurfaceResistance
	a.Climate = req.Climate

	if err := a.Validate(); err != nil {
		return nil, nil, err
	}
	return a, skipped, nil
}

func (s *AnalysisService) resolveMaterial(name string) (entities.Material, bool) {
	material, err := s.materialRepo.GetMaterial(name)
	if err != nil {
		return entities.Material{}, false
	}
	return *material, true
}

// thermalBridges generates the typical bridges, applies the disabled list and appends custom bridges
func thermalBridges(a *entities.WallAssembly, opts dto.BridgeOptions) (*entities.ThermalBridgeCollection, error) {
	collection, err := bridges.TypicalBridges(a, opts.Perimeter, opts.FloorArea)
	if err != nil {
		return nil, err
	}

	for i, bridge := range collection.Bridges {
		for _, disabled := range opts.Disabled {
			if strings.EqualFold(disabled, bridge.Type.String()) {
				if err := collection.SetEnabled(i, false); err != nil {
					return nil, err
				}
			}
		}
	}

	for _, custom := range opts.Custom {
		bridgeType := entities.BridgeOther
		if custom.Type != "" {
			bridgeType, err = entities.ParseBridgeType(custom.Type)
			if err != nil {
				return nil, err
			}
		}
		name := custom.Name
		if name == "" {
			name = bridgeType.String()
		}
		err := collection.AddBridge(entities.LinearThermalBridge{
			Type:    bridgeType,
			Name:    name,
			Psi:     custom.Psi,
			Length:  custom.Length,
			Enabled: true,
		})
		if err != nil {
			return nil, err
		}
	}

	return collection, nil
}
