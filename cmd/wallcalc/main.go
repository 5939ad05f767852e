package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vsinha/wallcalc/pkg/application/dto"
	"github.com/vsinha/wallcalc/pkg/interfaces/cli/commands"
)

// command is implemented by every subcommand
type command interface {
	Execute(ctx context.Context) error
}

func main() {
	if len(os.Args) < 2 {
		showUsage()
		os.Exit(2)
	}

	name, args := os.Args[1], os.Args[2:]
	if name == "help" || name == "-help" || name == "--help" || name == "-h" {
		showUsage()
		return
	}

	cmd, err := parseCommand(name, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseCommand(name string, args []string) (command, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)

	// Command line flags shared by every subcommand
	var options commands.Options
	fs.StringVar(&options.ConfigFile, "config", "", "Path to configuration file")
	fs.StringVar(&options.Format, "format", "text", "Output format")
	fs.StringVar(&options.Output, "output", "", "Output file (optional)")
	fs.BoolVar(&options.Verbose, "verbose", false, "Enable verbose output")
	fs.BoolVar(&options.Help, "help", false, "Show help message")

	switch name {
	case "analyze":
		config := commands.AnalyzeConfig{}
		fs.StringVar(&config.InputFile, "input", "", "YAML assembly request")
		fs.StringVar(&config.Name, "name", "", "Assembly name")
		fs.StringVar(&config.Template, "template", "", "Wall template name")
		fs.StringVar(&config.Layers, "layers", "", "Layers as Material:mm pairs, interior first")
		fs.BoolVar(&config.NoBridges, "no-bridges", false, "Skip the thermal bridge correction")
		fs.Float64Var(&config.Perimeter, "perimeter", 0, "Building perimeter in m")
		fs.Float64Var(&config.FloorArea, "floor-area", 0, "Floor area in m²")
		fs.BoolVar(&config.Save, "save", false, "Save the assembly under its name")
		fs.StringVar(&config.Load, "load", "", "Start from a saved assembly")
		fs.Parse(args)
		config.Options = options
		return commands.NewAnalyzeCommand(config), nil

	case "optimize":
		config := commands.OptimizeConfig{Set: make(map[string]bool)}
		req := &config.Request
		defaults := dto.NewOptimizationRequest()
		fs.StringVar(&config.InputFile, "input", "", "YAML optimization request")
		fs.StringVar(&req.Preset, "preset", "", "Insulation preset")
		fs.StringVar(&req.MaterialName, "material", defaults.MaterialName, "Insulation name")
		fs.Float64Var(&req.Lambda, "lambda", defaults.Lambda, "Thermal conductivity in W/mK")
		fs.Float64Var(&req.EnergyCost, "energy-cost", defaults.EnergyCost, "Energy price per kWh")
		fs.Float64Var(&req.InsulationCostPerCm, "cost-per-cm", defaults.InsulationCostPerCm, "Insulation price per cm and m²")
		fs.Float64Var(&req.FixedCost, "fixed-cost", defaults.FixedCost, "Fixed installation cost")
		fs.Float64Var(&req.TemperatureDifference, "delta-t", defaults.TemperatureDifference, "Mean temperature difference in K")
		fs.IntVar(&req.HeatingDays, "heating-days", defaults.HeatingDays, "Heating days per year")
		fs.IntVar(&req.LifetimeYears, "years", defaults.LifetimeYears, "Evaluation lifetime in years")
		fs.Float64Var(&req.Area, "area", defaults.Area, "Wall area in m²")
		fs.Float64Var(&req.AnnualInflationRate, "inflation", defaults.AnnualInflationRate, "Annual energy price inflation in %")
		fs.Float64Var(&req.DiscountRate, "discount", defaults.DiscountRate, "Annual discount rate in %")
		fs.Parse(args)
		fs.Visit(func(f *flag.Flag) { config.Set[f.Name] = true })
		config.Options = options
		return commands.NewOptimizeCommand(config), nil

	case "materials":
		config := commands.MaterialsConfig{}
		fs.StringVar(&config.Category, "category", "", "Material category")
		fs.StringVar(&config.ImportFile, "import", "", "Custom materials CSV")
		fs.Parse(args)
		config.Options = options
		return commands.NewMaterialsCommand(config), nil

	case "templates":
		config := commands.TemplatesConfig{}
		fs.StringVar(&config.Category, "category", "", "Template category")
		fs.BoolVar(&config.Popular, "popular", false, "Only popular templates")
		fs.Parse(args)
		config.Options = options
		return commands.NewTemplatesCommand(config), nil

	case "assemblies":
		config := commands.AssembliesConfig{}
		fs.StringVar(&config.Delete, "delete", "", "Delete a saved assembly")
		fs.Parse(args)
		config.Options = options
		return commands.NewAssembliesCommand(config), nil

	case "stats":
		config := commands.StatsConfig{}
		fs.BoolVar(&config.Reset, "reset", false, "Reset the usage statistics")
		fs.Parse(args)
		config.Options = options
		return commands.NewStatsCommand(config), nil

	default:
		return nil, fmt.Errorf("unknown command %q, run wallcalc help", name)
	}
}

func showUsage() {
	fmt.Printf(`wallcalc - thermal analysis of multi-layer building walls

USAGE:
    wallcalc <command> [options]

COMMANDS:
    analyze      U-value, dynamic behavior, condensation, thermal bridges and checks of a wall
    optimize     Economically optimal insulation thickness
    materials    List the material catalog
    templates    List standard wall compositions
    assemblies   List or delete saved assemblies
    stats        Show or reset usage statistics

Run wallcalc <command> -help for the options of a command.

CONFIGURATION:
    -config <file> or WALLCALC_* environment variables, e.g.
    WALLCALC_STORAGE_DRIVER=sqlite WALLCALC_STORAGE_DSN=walls.db wallcalc analyze -load "My house"

EXAMPLES:
    wallcalc analyze -template "ETICS - standard" -verbose
    wallcalc analyze -layers "Lime plaster:15,Solid brick:300,EPS 20:120" -format png -output wall.png
    wallcalc optimize -preset "Mineral wool" -energy-cost 1.5 -discount 4
    wallcalc materials -category insulation -format csv
`)
}
