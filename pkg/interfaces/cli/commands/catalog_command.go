package commands

import (
	"context"
	"fmt"

	"github.com/vsinha/wallcalc/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/wallcalc/pkg/interfaces/cli/output"
)

// MaterialsConfig holds configuration for the materials command
type MaterialsConfig struct {
	Options
	Category   string
	ImportFile string // custom materials CSV merged before listing
}

// MaterialsCommand lists the material catalog
type MaterialsCommand struct {
	config MaterialsConfig
}

// NewMaterialsCommand creates a new materials command
func NewMaterialsCommand(config MaterialsConfig) *MaterialsCommand {
	return &MaterialsCommand{config: config}
}

// Execute runs the materials command
func (c *MaterialsCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		fmt.Printf(`wallcalc materials - list the material catalog

OPTIONS:
    -category <name>    masonry, concrete, wood, insulation, plaster, membrane, airgap, other
    -import <file>      Merge custom materials from CSV before listing
    -format <fmt>       text, json, csv (default: text)
    -output <file>      Write to a file instead of stdout
`)
		return nil
	}

	app, err := c.config.open(ctx)
	if err != nil {
		return err
	}
	defer closeApp(app)

	if c.config.ImportFile != "" {
		materials, err := csv.NewLoader().LoadMaterials(c.config.ImportFile)
		if err != nil {
			return err
		}
		if err := app.Service.AddMaterials(materials); err != nil {
			return err
		}
		c.config.logf("📥 Imported %d materials from %s\n", len(materials), c.config.ImportFile)
	}

	materials, err := app.Service.Materials(c.config.Category)
	if err != nil {
		return err
	}
	return output.GenerateMaterials(materials, c.config.outputConfig(0))
}

// TemplatesConfig holds configuration for the templates command
type TemplatesConfig struct {
	Options
	Category string
	Popular  bool
}

// TemplatesCommand lists the standard wall templates
type TemplatesCommand struct {
	config TemplatesConfig
}

// NewTemplatesCommand creates a new templates command
func NewTemplatesCommand(config TemplatesConfig) *TemplatesCommand {
	return &TemplatesCommand{config: config}
}

// Execute runs the templates command
func (c *TemplatesCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		fmt.Printf(`wallcalc templates - list standard wall compositions

OPTIONS:
    -category <name>    etics, sandwich, monolithic, partition, woodframe, industrial
    -popular            Only the most used templates
    -format <fmt>       text, json (default: text)
`)
		return nil
	}

	app, err := c.config.open(ctx)
	if err != nil {
		return err
	}
	defer closeApp(app)

	templates, err := app.Service.Templates(c.config.Category, c.config.Popular)
	if err != nil {
		return err
	}
	return output.GenerateTemplates(templates, c.config.outputConfig(0))
}
