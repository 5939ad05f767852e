package entities

import (
	"fmt"
	"strings"
)

// TemplateCategory groups wall templates
type TemplateCategory int

const (
	TemplateETICS TemplateCategory = iota
	TemplateSandwich
	TemplateMonolithic
	TemplatePartition
	TemplateWoodFrame
	TemplateIndustrial
)

// String method for TemplateCategory enum
func (c TemplateCategory) String() string {
	switch c {
	case TemplateETICS:
		return "ETICS"
	case TemplateSandwich:
		return "Sandwich"
	case TemplateMonolithic:
		return "Monolithic"
	case TemplatePartition:
		return "Partition"
	case TemplateWoodFrame:
		return "WoodFrame"
	case TemplateIndustrial:
		return "Industrial"
	default:
		return "Unknown"
	}
}

// ParseTemplateCategory converts a category name into a TemplateCategory
func ParseTemplateCategory(s string) (TemplateCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "etics":
		return TemplateETICS, nil
	case "sandwich":
		return TemplateSandwich, nil
	case "monolithic":
		return TemplateMonolithic, nil
	case "partition":
		return TemplatePartition, nil
	case "woodframe", "wood frame", "wood_frame":
		return TemplateWoodFrame, nil
	case "industrial":
		return TemplateIndustrial, nil
	default:
		return TemplateETICS, fmt.Errorf("unknown template category: %s", s)
	}
}

// TemplateLayer is one layer of a wall template, thicknesses in mm
type TemplateLayer struct {
	MaterialName     string
	DefaultThickness float64
	MinThickness     float64
	MaxThickness     float64
	Adjustable       bool
	Description      string
}

// ClampThickness limits a requested thickness to the template bounds
func (l TemplateLayer) ClampThickness(thickness float64) float64 {
	if !l.Adjustable {
		return l.DefaultThickness
	}
	if l.MinThickness > 0 && thickness < l.MinThickness {
		return l.MinThickness
	}
	if l.MaxThickness > 0 && thickness > l.MaxThickness {
		return l.MaxThickness
	}
	return thickness
}

// WallTemplate is a standard wall composition ordered from interior to exterior
type WallTemplate struct {
	Name        string
	Description string
	Category    TemplateCategory
	Popular     bool
	Layers      []TemplateLayer
}

// LayerSelection overrides one template layer when building an assembly.
// A zero Thickness keeps the default.
type LayerSelection struct {
	Thickness float64
	Disabled  bool
}

// Assembly converts the template into a wall assembly. Materials are
// resolved by name; layers whose material cannot be resolved are skipped
// and their names returned.
func (t WallTemplate) Assembly(
	resolve func(name string) (Material, bool),
	selections map[int]LayerSelection,
) (*WallAssembly, []string, error) {
	a, err := NewWallAssembly(t.Name)
	if err != nil {
		return nil, nil, err
	}

	var skipped []string
	for i, tl := range t.Layers {
		sel := selections[i]
		if sel.Disabled {
			continue
		}
		material, ok := resolve(tl.MaterialName)
		if !ok {
			skipped = append(skipped, tl.MaterialName)
			continue
		}

		thickness := tl.DefaultThickness
		if sel.Thickness > 0 {
			thickness = tl.ClampThickness(sel.Thickness)
		}
		if err := a.AddLayer(WallLayer{Material: material, Thickness: thickness}); err != nil {
			return nil, nil, fmt.Errorf("template %s layer %d: %w", t.Name, i+1, err)
		}
	}

	return a, skipped, nil
}
