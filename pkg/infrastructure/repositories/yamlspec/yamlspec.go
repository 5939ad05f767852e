// Package yamlspec reads wall templates and calculation inputs from YAML.
package yamlspec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vsinha/wallcalc/pkg/application/dto"
	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

type templateFile struct {
	Templates []templateSpec `yaml:"templates"`
}

type templateSpec struct {
	Name        string              `yaml:"name"`
	Description string              `yaml:"description"`
	Category    string              `yaml:"category"`
	Popular     bool                `yaml:"popular"`
	Layers      []templateLayerSpec `yaml:"layers"`
}

type templateLayerSpec struct {
	Material    string  `yaml:"material"`
	Default     float64 `yaml:"default"`
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
	Fixed       bool    `yaml:"fixed"`
	Description string  `yaml:"description"`
}

// ReadTemplates parses a templates document
func ReadTemplates(r io.Reader) ([]*entities.WallTemplate, error) {
	var file templateFile
	if err := decode(r, &file); err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	templates := make([]*entities.WallTemplate, 0, len(file.Templates))
	for i, spec := range file.Templates {
		if spec.Name == "" {
			return nil, fmt.Errorf("template %d: name cannot be empty", i+1)
		}
		category, err := entities.ParseTemplateCategory(spec.Category)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", spec.Name, err)
		}

		template := &entities.WallTemplate{
			Name:        spec.Name,
			Description: spec.Description,
			Category:    category,
			Popular:     spec.Popular,
			Layers:      make([]entities.TemplateLayer, len(spec.Layers)),
		}
		for j, layer := range spec.Layers {
			if layer.Material == "" {
				return nil, fmt.Errorf("template %s layer %d: material cannot be empty", spec.Name, j+1)
			}
			if layer.Default < 0 {
				return nil, fmt.Errorf("template %s layer %d: %w", spec.Name, j+1, entities.ErrInvalidThickness)
			}
			template.Layers[j] = entities.TemplateLayer{
				MaterialName:     layer.Material,
				DefaultThickness: layer.Default,
				MinThickness:     layer.Min,
				MaxThickness:     layer.Max,
				Adjustable:       !layer.Fixed,
				Description:      layer.Description,
			}
		}
		templates = append(templates, template)
	}

	return templates, nil
}

// LoadAssemblyRequest reads an assembly description from a file, filling defaults
func LoadAssemblyRequest(filename string, defaults dto.AssemblyRequest) (*dto.AssemblyRequest, error) {
	req := defaults
	if err := decodeFile(filename, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// LoadOptimizationRequest reads an optimization scenario from a file, filling defaults
func LoadOptimizationRequest(filename string, defaults dto.OptimizationRequest) (*dto.OptimizationRequest, error) {
	req := defaults
	if err := decodeFile(filename, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func decodeFile(filename string, out interface{}) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if err := decode(bytes.NewReader(data), out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return nil
}

// decode rejects unknown keys so typos do not silently fall back to defaults
func decode(r io.Reader, out interface{}) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
