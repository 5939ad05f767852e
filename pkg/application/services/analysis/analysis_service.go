package analysis

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/wallcalc/pkg/application/dto"
	"github.com/vsinha/wallcalc/pkg/application/services/optimization"
	"github.com/vsinha/wallcalc/pkg/application/services/visualization"
	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/domain/repositories"
	"github.com/vsinha/wallcalc/pkg/domain/services/bridges"
	"github.com/vsinha/wallcalc/pkg/domain/services/thermal"
	"github.com/vsinha/wallcalc/pkg/domain/services/validation"
	"github.com/vsinha/wallcalc/pkg/infrastructure/events"
)

// Settings are the boundary conditions applied to new assembly requests
type Settings struct {
	Climate                   entities.Climate
	InteriorSurfaceResistance float64
	ExteriorSurfaceResistance float64
}

// DefaultSettings returns the standard winter design conditions
func DefaultSettings() Settings {
	return Settings{
		Climate:                   entities.DefaultClimate(),
		InteriorSurfaceResistance: entities.DefaultInteriorSurfaceResistance,
		ExteriorSurfaceResistance: entities.DefaultExteriorSurfaceResistance,
	}
}

// AnalysisService coordinates the calculation engines with the catalogs,
// the assembly store and usage tracking
type AnalysisService struct {
	materialRepo repositories.MaterialRepository
	templateRepo repositories.TemplateRepository
	assemblyRepo repositories.AssemblyRepository
	statsRepo    repositories.StatisticsRepository
	eventStore   events.EventStore
	optimizer    *optimization.OptimizerService
	validator    *validation.AssemblyValidator
	settings     Settings
	logger       *zap.Logger
	now          func() time.Time
}

// NewAnalysisService creates a new analysis service. eventStore may be nil to disable usage tracking.
func NewAnalysisService(
	materialRepo repositories.MaterialRepository,
	templateRepo repositories.TemplateRepository,
	assemblyRepo repositories.AssemblyRepository,
	statsRepo repositories.StatisticsRepository,
	eventStore events.EventStore,
	settings Settings,
	logger *zap.Logger,
) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{
		materialRepo: materialRepo,
		templateRepo: templateRepo,
		assemblyRepo: assemblyRepo,
		statsRepo:    statsRepo,
		eventStore:   eventStore,
		optimizer:    optimization.NewOptimizerService(),
		validator:    validation.NewAssemblyValidator(),
		settings:     settings,
		logger:       logger,
		now:          time.Now,
	}
}

// NewAssemblyRequest returns an empty request carrying the configured boundary conditions
func (s *AnalysisService) NewAssemblyRequest() dto.AssemblyRequest {
	return dto.NewAssemblyRequest(
		s.settings.Climate,
		s.settings.InteriorSurfaceResistance,
		s.settings.ExteriorSurfaceResistance,
	)
}

// Analyze builds the requested assembly and runs every engine on it
func (s *AnalysisService) Analyze(ctx context.Context, req dto.AssemblyRequest) (*dto.AssemblyReport, error) {
	a, skipped, err := s.BuildAssembly(ctx, req)
	if err != nil {
		return nil, err
	}

	report, err := s.AnalyzeAssembly(ctx, a, req.Bridges)
	if err != nil {
		return nil, err
	}
	report.SkippedMaterials = skipped
	return report, nil
}

// AnalyzeAssembly runs the thermal, bridge and validation engines on an assembly
func (s *AnalysisService) AnalyzeAssembly(ctx context.Context, a *entities.WallAssembly, opts dto.BridgeOptions) (*dto.AssemblyReport, error) {
	start := time.Now()

	result, err := thermal.Analyze(a)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze assembly: %w", err)
	}

	validationResult, err := s.validator.Validate(a)
	if err != nil {
		return nil, fmt.Errorf("failed to validate assembly: %w", err)
	}

	var collection *entities.ThermalBridgeCollection
	var impact *entities.BridgeImpact
	if opts.Enabled {
		collection, err = thermalBridges(a, opts)
		if err != nil {
			return nil, err
		}
		bridgeImpact, err := bridges.Impact(a, collection)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate thermal bridges: %w", err)
		}
		impact = &bridgeImpact
	}

	report := dto.NewAssemblyReport(a, result, collection, impact, validationResult.Findings)

	layers := make([]events.LayerUsage, len(a.Layers))
	for i, layer := range a.Layers {
		layers[i] = events.LayerUsage{Material: layer.Material.Name, Category: layer.Material.Category.String()}
	}
	s.emit(ctx, events.AssemblyCalculatedEvent, a.Name, events.AssemblyCalculated{
		Name:            a.Name,
		Layers:          layers,
		UValue:          result.SteadyState.ThermalTransmittance,
		HasCondensation: result.DewPoint.HasCondensation,
	})

	s.logger.Debug("assembly analyzed",
		zap.String("name", a.Name),
		zap.Int("layers", len(a.Layers)),
		zap.Float64("u_value", result.SteadyState.ThermalTransmittance),
		zap.Bool("condensation", result.DewPoint.HasCondensation),
		zap.Int("findings", len(validationResult.Findings)),
		zap.Duration("duration", time.Since(start)))

	return report, nil
}

// Visualize builds the requested assembly and projects it for 3D rendering
func (s *AnalysisService) Visualize(ctx context.Context, req dto.AssemblyRequest, scheme string) (*visualization.WallVisualization, error) {
	colorScheme, err := visualization.ParseColorScheme(scheme)
	if err != nil {
		return nil, err
	}
	a, _, err := s.BuildAssembly(ctx, req)
	if err != nil {
		return nil, err
	}
	return visualization.Build(a, colorScheme)
}

// Optimize runs the insulation sweep, applying a named preset when requested
func (s *AnalysisService) Optimize(ctx context.Context, req dto.OptimizationRequest) (*dto.OptimizationReport, error) {
	input := req.Input()
	if req.Preset != "" {
		preset, err := optimization.FindPreset(req.Preset)
		if err != nil {
			return nil, err
		}
		input = preset.Apply(input)
	}

	result, err := s.optimizer.Optimize(input)
	if err != nil {
		return nil, err
	}

	var practical *float64
	if thickness, ok := optimization.PracticalThickness(result); ok {
		practical = &thickness
	}
	report := dto.NewOptimizationReport(result, optimization.ComparisonData(result), practical)

	s.emit(ctx, events.OptimizationRunEvent, input.MaterialName, events.OptimizationRun{
		Material:         input.MaterialName,
		OptimalThickness: result.Optimal.Thickness,
	})
	s.logger.Debug("insulation optimized",
		zap.String("material", input.MaterialName),
		zap.Float64("optimal_cm", result.Optimal.Thickness),
		zap.Float64("u_value", result.Optimal.UValue))

	return report, nil
}

// RecordExport counts a report export
func (s *AnalysisService) RecordExport(ctx context.Context, name, format string) {
	s.emit(ctx, events.ReportExportedEvent, name, events.ReportExported{Name: name, Format: format})
}

// Statistics returns the usage statistics
func (s *AnalysisService) Statistics(ctx context.Context) (*dto.StatisticsReport, error) {
	stats, err := s.statsRepo.GetStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read statistics: %w", err)
	}
	return dto.NewStatisticsReport(stats), nil
}

// ResetStatistics clears the usage statistics
func (s *AnalysisService) ResetStatistics(ctx context.Context) error {
	return s.statsRepo.Reset(ctx)
}

// emit appends a usage event; tracking failures are logged, never returned
func (s *AnalysisService) emit(ctx context.Context, eventType, streamID string, data interface{}) {
	if s.eventStore == nil || ctx.Err() != nil {
		return
	}
	if streamID == "" {
		streamID = "unnamed"
	}
	if err := s.eventStore.AppendEvent(streamID, events.NewEvent(eventType, streamID, data, s.now())); err != nil {
		s.logger.Warn("failed to record usage event", zap.String("event", eventType), zap.Error(err))
	}
}
