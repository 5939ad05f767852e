package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/wallcalc/pkg/infrastructure/config"
	"github.com/vsinha/wallcalc/pkg/infrastructure/logging"
	"github.com/vsinha/wallcalc/pkg/interfaces/bootstrap"
	"github.com/vsinha/wallcalc/pkg/interfaces/cli/output"
)

// Options are the flags every subcommand accepts
type Options struct {
	ConfigFile string
	Format     string
	Output     string
	Verbose    bool
	Help       bool
}

// open loads configuration and wires the application
func (o Options) open(ctx context.Context) (*bootstrap.App, error) {
	cfg, err := config.Load(o.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.Log.Level
	if o.Verbose {
		level = "debug"
	}
	logger, err := logging.NewLogger(level, cfg.Log.Format, "wallcalc")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}
	return app, nil
}

// outputConfig builds the writer configuration for a run
func (o Options) outputConfig(elapsed time.Duration) output.Config {
	return output.Config{
		Format:  o.Format,
		File:    o.Output,
		Verbose: o.Verbose,
		Elapsed: elapsed,
	}
}

// logf prints progress to stderr so results on stdout stay machine-readable
func (o Options) logf(format string, args ...interface{}) {
	if o.Verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

func closeApp(app *bootstrap.App) {
	if err := app.Close(); err != nil {
		app.Logger.Warn("failed to close resources", zap.Error(err))
	}
	app.Logger.Sync()
}
