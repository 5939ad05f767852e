package visualization

import "github.com/vsinha/wallcalc/pkg/domain/entities"

// MaterialVisual describes how a layer is rendered
type MaterialVisual struct {
	BaseColor   string  `json:"base_color"`
	Opacity     float64 `json:"opacity"`
	TextureType string  `json:"texture_type"`
	Roughness   float64 `json:"roughness"`
	Metalness   float64 `json:"metalness"`
}

var defaultVisual = MaterialVisual{BaseColor: "#808080", Opacity: 0.9, TextureType: "solid", Roughness: 0.5}

var categoryVisuals = map[entities.MaterialCategory]MaterialVisual{
	entities.CategoryInsulation: {BaseColor: "#FFE4B5", Opacity: 0.9, TextureType: "insulation", Roughness: 0.9},
	entities.CategoryMasonry:    {BaseColor: "#CD853F", Opacity: 0.9, TextureType: "brick", Roughness: 0.8},
	entities.CategoryConcrete:   {BaseColor: "#A9A9A9", Opacity: 0.9, TextureType: "concrete", Roughness: 0.6},
	entities.CategoryWood:       {BaseColor: "#DEB887", Opacity: 0.9, TextureType: "wood", Roughness: 0.7},
	entities.CategoryPlaster:    {BaseColor: "#F5F5DC", Opacity: 0.9, TextureType: "solid", Roughness: 0.4},
	entities.CategoryMembrane:   {BaseColor: "#FF6B6B", Opacity: 1.0, TextureType: "membrane", Roughness: 0.2},
}

// VisualFor returns the render properties for a material category,
// falling back to neutral grey for unmapped categories
func VisualFor(category entities.MaterialCategory) MaterialVisual {
	if v, ok := categoryVisuals[category]; ok {
		return v
	}
	return defaultVisual
}
