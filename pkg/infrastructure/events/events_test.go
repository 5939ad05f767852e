package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/infrastructure/repositories/memory"
)

type recordingHandler struct {
	handled []Event
	err     error
}

func (h *recordingHandler) Handle(event Event) error {
	h.handled = append(h.handled, event)
	return h.err
}

func (h *recordingHandler) CanHandle(eventType string) bool { return true }

var at = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestInMemoryEventStore_Versions(t *testing.T) {
	store := NewInMemoryEventStore(0, nil)

	require.NoError(t, store.AppendEvent("House", NewEvent(AssemblySavedEvent, "House", AssemblySaved{Name: "House"}, at)))
	require.NoError(t, store.AppendEvent("House", NewEvent(AssemblyLoadedEvent, "House", AssemblyLoaded{Name: "House"}, at)))
	require.NoError(t, store.AppendEvent("Garage", NewEvent(AssemblySavedEvent, "Garage", AssemblySaved{Name: "Garage"}, at)))

	house, err := store.ReadEvents("House", 2)
	require.NoError(t, err)
	require.Len(t, house, 1)
	assert.Equal(t, 2, house[0].Version())
	assert.Equal(t, AssemblyLoadedEvent, house[0].Type())

	all, err := store.ReadAllEvents(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	assert.Equal(t, "Garage", all[2].StreamID())
	assert.Equal(t, AssemblySaved{Name: "Garage"}, all[2].Data())
	assert.Equal(t, at, all[2].Timestamp())
	assert.Equal(t, 0, NewEvent(AssemblySavedEvent, "Garage", nil, at).Version())

	none, err := store.ReadEvents("Attic", 1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInMemoryEventStore_Retention(t *testing.T) {
	store := NewInMemoryEventStore(2, nil)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.AppendEvent("s", NewEvent(ReportExportedEvent, "s", ReportExported{Format: "json"}, at)))
	}

	events, _ := store.ReadEvents("s", 1)
	require.Len(t, events, 2)
	assert.Equal(t, 4, events[0].Version())
	assert.Equal(t, 5, events[1].Version())

	all, _ := store.ReadAllEvents(0)
	assert.Len(t, all, 2)

	tail, _ := store.ReadAllEvents(4)
	require.Len(t, tail, 1)
	assert.Equal(t, 5, tail[0].Version())

	empty, _ := store.ReadAllEvents(5)
	assert.Empty(t, empty)
}

func TestInMemoryEventStore_SubscribersAreNotifiedSynchronously(t *testing.T) {
	store := NewInMemoryEventStore(0, nil)
	handler := &recordingHandler{err: errors.New("boom")}
	other := &recordingHandler{}

	require.NoError(t, store.Subscribe([]string{AssemblySavedEvent}, handler))
	require.NoError(t, store.Subscribe([]string{AssemblyLoadedEvent}, other))

	require.NoError(t, store.AppendEvent("House", NewEvent(AssemblySavedEvent, "House", AssemblySaved{}, at)))
	assert.Len(t, handler.handled, 1, "handler errors do not fail the append")
	assert.Empty(t, other.handled)

	require.NoError(t, store.Unsubscribe(handler))
	require.NoError(t, store.AppendEvent("House", NewEvent(AssemblySavedEvent, "House", AssemblySaved{}, at)))
	assert.Len(t, handler.handled, 1)
}

func TestStatisticsProjector(t *testing.T) {
	repo := memory.NewStatisticsRepository()
	store := NewInMemoryEventStore(0, nil)
	projector := NewStatisticsProjector(repo)
	require.NoError(t, store.Subscribe(UsageEventTypes, projector))

	calculated := AssemblyCalculated{
		Name: "House",
		Layers: []LayerUsage{
			{Material: "Solid brick", Category: "Masonry"},
			{Material: "EPS 20", Category: "Insulation"},
		},
	}
	appendAll := []Event{
		NewEvent(AssemblyCalculatedEvent, "House", calculated, at),
		NewEvent(AssemblyCalculatedEvent, "House", calculated, at.Add(time.Hour)),
		NewEvent(AssemblySavedEvent, "House", AssemblySaved{Name: "House"}, at),
		NewEvent(AssemblyLoadedEvent, "House", AssemblyLoaded{Name: "House"}, at),
		NewEvent(TemplateUsedEvent, "ETICS", TemplateUsed{Template: "ETICS"}, at),
		NewEvent(ReportExportedEvent, "House", ReportExported{Format: "xlsx"}, at),
		NewEvent(OptimizationRunEvent, "EPS", OptimizationRun{Material: "EPS"}, at),
		NewEvent(AssemblyDeletedEvent, "House", AssemblyDeleted{Name: "House"}, at),
	}
	for _, e := range appendAll {
		require.NoError(t, store.AppendEvent(e.StreamID(), e))
	}

	stats, err := repo.GetStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Counters[entities.CounterCalculations])
	assert.Equal(t, int64(4), stats.Counters[entities.CounterLayers])
	assert.Equal(t, int64(1), stats.Counters[entities.CounterSaves])
	assert.Equal(t, int64(1), stats.Counters[entities.CounterLoads])
	assert.Equal(t, int64(1), stats.Counters[entities.CounterTemplates])
	assert.Equal(t, int64(1), stats.Counters[entities.CounterExports])
	assert.Equal(t, int64(1), stats.Counters[entities.CounterOptimizations])
	assert.Equal(t, int64(2), stats.MaterialUsage["EPS 20"])
	assert.Equal(t, int64(2), stats.CategoryUsage["Masonry"])
	assert.True(t, stats.LastUsed.Equal(at.Add(time.Hour)))
}

func TestStatisticsProjector_UnexpectedPayload(t *testing.T) {
	projector := NewStatisticsProjector(memory.NewStatisticsRepository())

	assert.False(t, projector.CanHandle(AssemblyDeletedEvent))
	assert.True(t, projector.CanHandle(OptimizationRunEvent))

	err := projector.Handle(NewEvent(AssemblySavedEvent, "x", "not a payload", at))
	assert.Error(t, err)
}
