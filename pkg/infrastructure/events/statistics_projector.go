package events

import (
	"context"
	"fmt"
	"time"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/domain/repositories"
)

// projectionTimeout bounds one statistics update
const projectionTimeout = 5 * time.Second

// StatisticsProjector folds usage events into the statistics repository
type StatisticsProjector struct {
	repo repositories.StatisticsRepository
}

func NewStatisticsProjector(repo repositories.StatisticsRepository) *StatisticsProjector {
	return &StatisticsProjector{repo: repo}
}

// Verify interface compliance
var _ EventHandler = (*StatisticsProjector)(nil)

func (p *StatisticsProjector) CanHandle(eventType string) bool {
	for _, t := range UsageEventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

func (p *StatisticsProjector) Handle(event Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), projectionTimeout)
	defer cancel()

	at := event.Timestamp()
	switch data := event.Data().(type) {
	case AssemblyCalculated:
		if err := p.repo.Increment(ctx, entities.CounterCalculations, 1, at); err != nil {
			return err
		}
		if err := p.repo.Increment(ctx, entities.CounterLayers, int64(len(data.Layers)), at); err != nil {
			return err
		}
		for _, layer := range data.Layers {
			if err := p.repo.RecordMaterial(ctx, layer.Material, layer.Category); err != nil {
				return err
			}
		}
		return nil
	case AssemblySaved:
		return p.repo.Increment(ctx, entities.CounterSaves, 1, at)
	case AssemblyLoaded:
		return p.repo.Increment(ctx, entities.CounterLoads, 1, at)
	case TemplateUsed:
		return p.repo.Increment(ctx, entities.CounterTemplates, 1, at)
	case ReportExported:
		return p.repo.Increment(ctx, entities.CounterExports, 1, at)
	case OptimizationRun:
		return p.repo.Increment(ctx, entities.CounterOptimizations, 1, at)
	default:
		return fmt.Errorf("unexpected payload %T for event %s", event.Data(), event.Type())
	}
}
