package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/vsinha/wallcalc/pkg/application/dto"
	"github.com/vsinha/wallcalc/pkg/application/services/optimization"
	"github.com/vsinha/wallcalc/pkg/infrastructure/repositories/yamlspec"
	"github.com/vsinha/wallcalc/pkg/interfaces/cli/output"
)

// OptimizeConfig holds configuration for the optimize command.
// Only the parameters named in Set override the input file.
type OptimizeConfig struct {
	Options
	InputFile string
	Request   dto.OptimizationRequest
	Set       map[string]bool
}

// OptimizeCommand runs the insulation thickness optimization
type OptimizeCommand struct {
	config OptimizeConfig
}

// NewOptimizeCommand creates a new optimize command with the given configuration
func NewOptimizeCommand(config OptimizeConfig) *OptimizeCommand {
	return &OptimizeCommand{
		config: config,
	}
}

// Execute runs the optimize command
func (c *OptimizeCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		showOptimizeHelp()
		return nil
	}

	app, err := c.config.open(ctx)
	if err != nil {
		return err
	}
	defer closeApp(app)

	c.config.logf("💰 wallcalc optimize\n")

	req := dto.NewOptimizationRequest()
	if c.config.InputFile != "" {
		c.config.logf("📂 Reading %s...\n", c.config.InputFile)
		loaded, err := yamlspec.LoadOptimizationRequest(c.config.InputFile, req)
		if err != nil {
			return err
		}
		req = *loaded
	}
	ApplyOptimizationFlags(&req, c.config.Request, c.config.Set)

	c.config.logf("🔄 Sweeping insulation thickness...\n")
	startTime := time.Now()
	report, err := app.Service.Optimize(ctx, req)
	if err != nil {
		return fmt.Errorf("error optimizing insulation: %w", err)
	}
	elapsed := time.Since(startTime)
	c.config.logf("✅ Optimization completed in %v\n", elapsed)

	if err := output.GenerateOptimization(report, c.config.outputConfig(elapsed)); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}
	if c.config.Output != "" {
		app.Service.RecordExport(ctx, report.Input.MaterialName, c.config.Format)
	}
	return nil
}

// ApplyOptimizationFlags copies the explicitly set flag values onto req
func ApplyOptimizationFlags(req *dto.OptimizationRequest, flags dto.OptimizationRequest, set map[string]bool) {
	for name := range set {
		switch name {
		case "preset":
			req.Preset = flags.Preset
		case "material":
			req.MaterialName = flags.MaterialName
		case "lambda":
			req.Lambda = flags.Lambda
		case "energy-cost":
			req.EnergyCost = flags.EnergyCost
		case "cost-per-cm":
			req.InsulationCostPerCm = flags.InsulationCostPerCm
		case "fixed-cost":
			req.FixedCost = flags.FixedCost
		case "delta-t":
			req.TemperatureDifference = flags.TemperatureDifference
		case "heating-days":
			req.HeatingDays = flags.HeatingDays
		case "years":
			req.LifetimeYears = flags.LifetimeYears
		case "area":
			req.Area = flags.Area
		case "inflation":
			req.UseInflation = true
			req.AnnualInflationRate = flags.AnnualInflationRate
		case "discount":
			req.UseDiscounting = true
			req.DiscountRate = flags.DiscountRate
		}
	}
}

func showOptimizeHelp() {
	fmt.Printf(`wallcalc optimize - economically optimal insulation thickness

USAGE:
    wallcalc optimize -preset "Mineral wool" -energy-cost 1.5
    wallcalc optimize -input scenario.yaml -format xlsx -output sweep.xlsx

OPTIONS:
    -input <file>         YAML optimization request
    -preset <name>        Insulation preset (overrides material, lambda and cost per cm)
    -material <name>      Insulation name
    -lambda <W/mK>        Thermal conductivity (default: 0.035)
    -energy-cost <v>      Energy price per kWh (default: 1.2)
    -cost-per-cm <v>      Insulation price per cm and m² (default: 20)
    -fixed-cost <v>       Fixed installation cost (default: 1200)
    -delta-t <K>          Mean indoor/outdoor difference (default: 18)
    -heating-days <n>     Heating season length (default: 150)
    -years <n>            Evaluation lifetime (default: 20)
    -area <m²>            Wall area (default: 1)
    -inflation <%%>        Enable energy price inflation at this annual rate
    -discount <%%>         Enable discounting at this annual rate
    -format <fmt>         text, json, csv, xlsx, png (default: text)
    -output <file>        Write to a file instead of stdout
    -config <file>        Configuration file
    -verbose              Enable verbose output

PRESETS:
`)
	for _, p := range optimization.Presets() {
		fmt.Printf("    %-18s λ %.3f  %.0f/cm  %s\n", p.Name, p.Lambda, p.InsulationCostPerCm, p.Description)
	}
}
