package events

const (
	AssemblyCalculatedEvent = "assembly.calculated"
	AssemblySavedEvent      = "assembly.saved"
	AssemblyLoadedEvent     = "assembly.loaded"
	AssemblyDeletedEvent    = "assembly.deleted"
	TemplateUsedEvent       = "template.used"
	ReportExportedEvent     = "report.exported"
	OptimizationRunEvent    = "optimization.run"
)

// UsageEventTypes lists every event the statistics projection consumes
var UsageEventTypes = []string{
	AssemblyCalculatedEvent,
	AssemblySavedEvent,
	AssemblyLoadedEvent,
	TemplateUsedEvent,
	ReportExportedEvent,
	OptimizationRunEvent,
}

type LayerUsage struct {
	Material string `json:"material"`
	Category string `json:"category"`
}

type AssemblyCalculated struct {
	Name            string       `json:"name"`
	Layers          []LayerUsage `json:"layers"`
	UValue          float64      `json:"u_value"`
	HasCondensation bool         `json:"has_condensation"`
}

type AssemblySaved struct {
	Name   string `json:"name"`
	Layers int    `json:"layers"`
}

type AssemblyLoaded struct {
	Name string `json:"name"`
}

type AssemblyDeleted struct {
	Name string `json:"name"`
}

type TemplateUsed struct {
	Template string   `json:"template"`
	Skipped  []string `json:"skipped,omitempty"`
}

type ReportExported struct {
	Name   string `json:"name"`
	Format string `json:"format"`
}

type OptimizationRun struct {
	Material         string  `json:"material"`
	OptimalThickness float64 `json:"optimal_thickness"`
}
