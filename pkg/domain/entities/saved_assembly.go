package entities

import (
	"fmt"
	"time"
)

// SavedLayer is the persisted form of a layer, the material kept by name
type SavedLayer struct {
	MaterialName string  `json:"material"`
	Thickness    float64 `json:"thickness"`
}

// SavedAssembly is the persisted form of a wall assembly, keyed by name
type SavedAssembly struct {
	Name                      string       `json:"name"`
	Layers                    []SavedLayer `json:"layers"`
	InteriorSurfaceResistance float64      `json:"rsi"`
	ExteriorSurfaceResistance float64      `json:"rse"`
	Climate                   Climate      `json:"climate"`
	SavedAt                   time.Time    `json:"saved_at"`
}

// NewSavedAssembly captures an assembly for persistence
func NewSavedAssembly(a *WallAssembly, savedAt time.Time) (*SavedAssembly, error) {
	if a.Name == "" {
		return nil, fmt.Errorf("assembly name cannot be empty")
	}

	s := &SavedAssembly{
		Name:                      a.Name,
		Layers:                    make([]SavedLayer, len(a.Layers)),
		InteriorSurfaceResistance: a.InteriorSurfaceResistance,
		ExteriorSurfaceResistance: a.ExteriorSurfaceResistance,
		Climate:                   a.Climate,
		SavedAt:                   savedAt,
	}
	for i, layer := range a.Layers {
		s.Layers[i] = SavedLayer{MaterialName: layer.Material.Name, Thickness: layer.Thickness}
	}
	return s, nil
}

// Restore rebuilds the assembly, resolving each material by name
func (s *SavedAssembly) Restore(resolve func(name string) (Material, bool)) (*WallAssembly, error) {
	a := &WallAssembly{
		Name:                      s.Name,
		Layers:                    make([]WallLayer, 0, len(s.Layers)),
		InteriorSurfaceResistance: s.InteriorSurfaceResistance,
		ExteriorSurfaceResistance: s.ExteriorSurfaceResistance,
		Climate:                   s.Climate,
	}
	for i, layer := range s.Layers {
		material, ok := resolve(layer.MaterialName)
		if !ok {
			return nil, fmt.Errorf("assembly %s layer %d: %w: %s", s.Name, i+1, ErrMaterialNotFound, layer.MaterialName)
		}
		if err := a.AddLayer(WallLayer{Material: material, Thickness: layer.Thickness}); err != nil {
			return nil, fmt.Errorf("assembly %s layer %d: %w", s.Name, i+1, err)
		}
	}
	return a, nil
}
