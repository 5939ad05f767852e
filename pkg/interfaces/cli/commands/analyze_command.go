package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/wallcalc/pkg/application/dto"
	"github.com/vsinha/wallcalc/pkg/infrastructure/config"
	"github.com/vsinha/wallcalc/pkg/infrastructure/repositories/yamlspec"
	"github.com/vsinha/wallcalc/pkg/interfaces/cli/output"
)

// AnalyzeConfig holds configuration for the analyze command
type AnalyzeConfig struct {
	Options
	InputFile string // YAML assembly request
	Name      string
	Template  string
	Layers    string // "Material:mm,Material:mm", interior first
	NoBridges bool
	Perimeter float64
	FloorArea float64
	Save      bool
	Load      string
}

// AnalyzeCommand analyzes one wall assembly
type AnalyzeCommand struct {
	config AnalyzeConfig
}

// NewAnalyzeCommand creates a new analyze command with the given configuration
func NewAnalyzeCommand(config AnalyzeConfig) *AnalyzeCommand {
	return &AnalyzeCommand{
		config: config,
	}
}

// Execute runs the analyze command
func (c *AnalyzeCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		showAnalyzeHelp()
		return nil
	}
	if c.config.InputFile == "" && c.config.Template == "" && c.config.Layers == "" && c.config.Load == "" {
		return fmt.Errorf("validation error: must specify -input, -template, -layers or -load")
	}

	app, err := c.config.open(ctx)
	if err != nil {
		return err
	}
	defer closeApp(app)
	service := app.Service

	c.config.logf("🏗️  wallcalc analyze\n")

	// Build the request: saved assembly, then input file, then flags
	req := service.NewAssemblyRequest()
	if c.config.Load != "" {
		c.config.logf("📂 Loading saved assembly %q...\n", c.config.Load)
		loaded, err := service.LoadRequest(ctx, c.config.Load, req)
		if err != nil {
			return fmt.Errorf("error loading assembly: %w", err)
		}
		req = *loaded
	}
	if c.config.InputFile != "" {
		c.config.logf("📂 Reading %s...\n", c.config.InputFile)
		loaded, err := yamlspec.LoadAssemblyRequest(c.config.InputFile, req)
		if err != nil {
			return err
		}
		req = *loaded
	}
	if err := c.applyFlags(&req); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	c.config.logf("🔄 Running thermal analysis...\n")
	startTime := time.Now()
	report, err := service.Analyze(ctx, req)
	if err != nil {
		return fmt.Errorf("error analyzing assembly: %w", err)
	}
	elapsed := time.Since(startTime)
	c.config.logf("✅ Analysis completed in %v\n", elapsed)

	if c.config.Save {
		if req.Name == "" {
			req.Name = report.Name
		}
		if app.Config.Storage.Driver == config.StorageMemory {
			app.Logger.Warn("memory storage does not persist between runs, configure storage.driver to keep saved assemblies")
		}
		saved, err := service.SaveAssembly(ctx, req)
		if err != nil {
			return fmt.Errorf("error saving assembly: %w", err)
		}
		c.config.logf("💾 Saved assembly %q\n", saved.Name)
	}

	if err := output.GenerateReport(report, c.config.outputConfig(elapsed)); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}
	if c.config.Output != "" {
		service.RecordExport(ctx, report.Name, c.config.Format)
	}

	app.Logger.Debug("analyze finished", zap.String("name", report.Name), zap.Duration("elapsed", elapsed))
	c.config.logf("🏁 Analysis complete!\n")
	return nil
}

func (c *AnalyzeCommand) applyFlags(req *dto.AssemblyRequest) error {
	if c.config.Name != "" {
		req.Name = c.config.Name
	}
	if c.config.Template != "" {
		req.Template = c.config.Template
	}
	if c.config.Layers != "" {
		layers, err := ParseLayers(c.config.Layers)
		if err != nil {
			return err
		}
		req.Template = ""
		req.Layers = layers
	}
	if c.config.NoBridges {
		req.Bridges.Enabled = false
	}
	if c.config.Perimeter > 0 {
		req.Bridges.Perimeter = c.config.Perimeter
	}
	if c.config.FloorArea > 0 {
		req.Bridges.FloorArea = c.config.FloorArea
	}
	return nil
}

// ParseLayers reads a "Material:mm,Material:mm" layer list
func ParseLayers(s string) ([]dto.LayerRequest, error) {
	var layers []dto.LayerRequest
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i := strings.LastIndex(part, ":")
		if i <= 0 {
			return nil, fmt.Errorf("layer %q must be Material:thickness", part)
		}
		thickness, err := strconv.ParseFloat(strings.TrimSpace(part[i+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid thickness in layer %q", part)
		}
		layers = append(layers, dto.LayerRequest{Material: strings.TrimSpace(part[:i]), Thickness: thickness})
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("no layers in %q", s)
	}
	return layers, nil
}

func showAnalyzeHelp() {
	fmt.Printf(`wallcalc analyze - thermal analysis of a multi-layer wall

USAGE:
    wallcalc analyze -layers "Lime plaster:15,Solid brick:300,EPS 20:120"
    wallcalc analyze -template "ETICS - standard"
    wallcalc analyze -input wall.yaml
    wallcalc analyze -load "My house"

OPTIONS:
    -input <file>       YAML assembly request
    -layers <list>      Material:mm pairs, interior first
    -template <name>    Standard wall template
    -name <name>        Assembly name
    -no-bridges         Skip the thermal bridge correction
    -perimeter <m>      Building perimeter for typical bridges (default: 40)
    -floor-area <m²>    Floor area for the bridge correction (default: 100)
    -save               Store the assembly under its name
    -load <name>        Start from a saved assembly
    -format <fmt>       text, json, csv, xlsx, png, html (default: text)
    -output <file>      Write to a file instead of stdout
    -config <file>      Configuration file
    -verbose            Enable verbose output
    -help               Show this help message

INPUT FILE:
    name: My house
    layers:
      - {material: Lime plaster, thickness: 15}
      - {material: Solid brick, thickness: 300}
      - {material: EPS 20, thickness: 120}
    climate: {interior_temperature: 20, exterior_temperature: -15, interior_humidity: 50, exterior_humidity: 80}
    bridges: {enabled: true, perimeter: 40, floor_area: 100, disabled: [Foundation]}
`)
}
