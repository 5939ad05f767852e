package dto

import (
	"time"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

// MaterialUsage is a material with its usage count
type MaterialUsage struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// StatisticsReport summarises usage counters
type StatisticsReport struct {
	Calculations                int64            `json:"calculations"`
	LayersAnalysed              int64            `json:"layers_analysed"`
	AverageLayersPerCalculation float64          `json:"average_layers_per_calculation"`
	Saves                       int64            `json:"saves"`
	Loads                       int64            `json:"loads"`
	TemplateUses                int64            `json:"template_uses"`
	Exports                     int64            `json:"exports"`
	Optimizations               int64            `json:"optimizations"`
	FirstUsed                   *time.Time       `json:"first_used,omitempty"`
	LastUsed                    *time.Time       `json:"last_used,omitempty"`
	TopMaterials                []MaterialUsage  `json:"top_materials"`
	CategoryUsage               map[string]int64 `json:"category_usage"`
}

// TopMaterialCount is the number of materials listed in a statistics report
const TopMaterialCount = 5

// NewStatisticsReport converts a statistics snapshot
func NewStatisticsReport(s *entities.UsageStatistics) *StatisticsReport {
	report := &StatisticsReport{
		Calculations:                s.Counters[entities.CounterCalculations],
		LayersAnalysed:              s.Counters[entities.CounterLayers],
		AverageLayersPerCalculation: s.AverageLayersPerCalculation(),
		Saves:                       s.Counters[entities.CounterSaves],
		Loads:                       s.Counters[entities.CounterLoads],
		TemplateUses:                s.Counters[entities.CounterTemplates],
		Exports:                     s.Counters[entities.CounterExports],
		Optimizations:               s.Counters[entities.CounterOptimizations],
		TopMaterials:                make([]MaterialUsage, 0, TopMaterialCount),
		CategoryUsage:               make(map[string]int64, len(s.CategoryUsage)),
	}
	if !s.FirstUsed.IsZero() {
		first := s.FirstUsed
		report.FirstUsed = &first
	}
	if !s.LastUsed.IsZero() {
		last := s.LastUsed
		report.LastUsed = &last
	}
	for _, m := range s.TopMaterials(TopMaterialCount) {
		report.TopMaterials = append(report.TopMaterials, MaterialUsage{Name: m.Name, Count: m.Count})
	}
	for category, count := range s.CategoryUsage {
		report.CategoryUsage[category] = count
	}
	return report
}
