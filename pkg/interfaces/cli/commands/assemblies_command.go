package commands

import (
	"context"
	"fmt"

	"github.com/vsinha/wallcalc/pkg/interfaces/cli/output"
)

// AssembliesConfig holds configuration for the assemblies command
type AssembliesConfig struct {
	Options
	Delete string
}

// AssembliesCommand lists or deletes saved assemblies
type AssembliesCommand struct {
	config AssembliesConfig
}

// NewAssembliesCommand creates a new assemblies command
func NewAssembliesCommand(config AssembliesConfig) *AssembliesCommand {
	return &AssembliesCommand{config: config}
}

// Execute runs the assemblies command
func (c *AssembliesCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		fmt.Printf(`wallcalc assemblies - saved assemblies in the configured store

OPTIONS:
    -delete <name>      Delete a saved assembly
    -format <fmt>       text, json (default: text)
    -config <file>      Configuration file selecting the store
`)
		return nil
	}

	app, err := c.config.open(ctx)
	if err != nil {
		return err
	}
	defer closeApp(app)

	if c.config.Delete != "" {
		if err := app.Service.DeleteAssembly(ctx, c.config.Delete); err != nil {
			return err
		}
		c.config.logf("🗑️  Deleted %q\n", c.config.Delete)
		return nil
	}

	assemblies, err := app.Service.ListAssemblies(ctx)
	if err != nil {
		return err
	}
	return output.GenerateAssemblies(assemblies, c.config.outputConfig(0))
}

// StatsConfig holds configuration for the stats command
type StatsConfig struct {
	Options
	Reset bool
}

// StatsCommand prints or resets the usage statistics
type StatsCommand struct {
	config StatsConfig
}

// NewStatsCommand creates a new stats command
func NewStatsCommand(config StatsConfig) *StatsCommand {
	return &StatsCommand{config: config}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		fmt.Printf(`wallcalc stats - usage statistics

OPTIONS:
    -reset              Clear every counter
    -format <fmt>       text, json (default: text)
    -config <file>      Configuration file selecting the redis instance
`)
		return nil
	}

	app, err := c.config.open(ctx)
	if err != nil {
		return err
	}
	defer closeApp(app)

	if c.config.Reset {
		if err := app.Service.ResetStatistics(ctx); err != nil {
			return err
		}
		c.config.logf("🧹 Statistics reset\n")
		return nil
	}

	stats, err := app.Service.Statistics(ctx)
	if err != nil {
		return err
	}
	return output.GenerateStatistics(stats, c.config.outputConfig(0))
}
