// Package bootstrap wires the configured repositories, usage tracking and
// logger into an analysis service. Both binaries start from here.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vsinha/wallcalc/pkg/application/services/analysis"
	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/domain/repositories"
	"github.com/vsinha/wallcalc/pkg/infrastructure/catalog"
	"github.com/vsinha/wallcalc/pkg/infrastructure/config"
	"github.com/vsinha/wallcalc/pkg/infrastructure/events"
	"github.com/vsinha/wallcalc/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/wallcalc/pkg/infrastructure/repositories/gormstore"
	"github.com/vsinha/wallcalc/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/wallcalc/pkg/infrastructure/repositories/redisstats"
)

// App holds the service and the resources it owns
type App struct {
	Service *analysis.AnalysisService
	Config  *config.Config
	Logger  *zap.Logger

	closers []func() error
}

// New builds the application from configuration. Close must be called to
// release database and redis connections.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := &App{Config: cfg, Logger: logger}

	materialRepo, err := catalog.NewMaterialRepository()
	if err != nil {
		return nil, err
	}
	if cfg.Materials != "" {
		custom, err := csv.NewLoader().LoadMaterials(cfg.Materials)
		if err != nil {
			return nil, err
		}
		if err := materialRepo.LoadMaterials(custom); err != nil {
			return nil, fmt.Errorf("failed to load custom materials: %w", err)
		}
		logger.Info("custom materials loaded", zap.String("file", cfg.Materials), zap.Int("count", len(custom)))
	}

	templateRepo, err := catalog.NewTemplateRepository()
	if err != nil {
		return nil, err
	}

	assemblyRepo, err := app.assemblyRepository(cfg.Storage)
	if err != nil {
		app.Close()
		return nil, err
	}

	statsRepo, err := app.statisticsRepository(ctx, cfg.Redis)
	if err != nil {
		app.Close()
		return nil, err
	}

	eventStore := events.NewInMemoryEventStore(events.DefaultRetention, logger)
	if err := eventStore.Subscribe(events.UsageEventTypes, events.NewStatisticsProjector(statsRepo)); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to subscribe statistics projector: %w", err)
	}

	settings := analysis.Settings{
		Climate:                   cfg.DefaultClimate(),
		InteriorSurfaceResistance: cfg.Surface.Rsi,
		ExteriorSurfaceResistance: cfg.Surface.Rse,
	}
	app.Service = analysis.NewAnalysisService(materialRepo, templateRepo, assemblyRepo, statsRepo, eventStore, settings, logger)

	logger.Debug("application ready",
		zap.String("storage", cfg.Storage.Driver),
		zap.Bool("redis", cfg.Redis.Addr != ""))
	return app, nil
}

func (a *App) assemblyRepository(cfg config.StorageConfig) (repositories.AssemblyRepository, error) {
	switch cfg.Driver {
	case config.StorageMemory, "":
		return memory.NewAssemblyRepository(), nil
	case config.StorageSQLite, config.StoragePostgres:
		db, err := gormstore.Open(cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access database handle: %w", err)
		}
		a.closers = append(a.closers, sqlDB.Close)
		return gormstore.NewAssemblyStore(db, a.Logger), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func (a *App) statisticsRepository(ctx context.Context, cfg config.RedisConfig) (repositories.StatisticsRepository, error) {
	if cfg.Addr == "" {
		return memory.NewStatisticsRepository(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	a.closers = append(a.closers, client.Close)
	return redisstats.NewStatisticsRepository(client, cfg.Prefix, a.Logger), nil
}

// Close releases every owned connection
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// IsNotFound reports whether err means a named assembly, material or template does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, entities.ErrAssemblyNotFound) ||
		errors.Is(err, entities.ErrMaterialNotFound) ||
		errors.Is(err, entities.ErrTemplateNotFound)
}
