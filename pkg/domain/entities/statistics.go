package entities

import (
	"sort"
	"time"
)

// UsageCounter identifies a tracked usage counter
type UsageCounter string

const (
	CounterCalculations  UsageCounter = "calculations"
	CounterLayers        UsageCounter = "layers"
	CounterSaves         UsageCounter = "saves"
	CounterLoads         UsageCounter = "loads"
	CounterTemplates     UsageCounter = "templates"
	CounterExports       UsageCounter = "exports"
	CounterOptimizations UsageCounter = "optimizations"
)

// UsageStatistics is a snapshot of the usage counters
type UsageStatistics struct {
	Counters      map[UsageCounter]int64
	MaterialUsage map[string]int64
	CategoryUsage map[string]int64
	FirstUsed     time.Time
	LastUsed      time.Time
}

// NewUsageStatistics creates an empty statistics snapshot
func NewUsageStatistics() *UsageStatistics {
	return &UsageStatistics{
		Counters:      make(map[UsageCounter]int64),
		MaterialUsage: make(map[string]int64),
		CategoryUsage: make(map[string]int64),
	}
}

// AverageLayersPerCalculation returns layers analysed divided by calculations
func (s *UsageStatistics) AverageLayersPerCalculation() float64 {
	calculations := s.Counters[CounterCalculations]
	if calculations == 0 {
		return 0
	}
	return float64(s.Counters[CounterLayers]) / float64(calculations)
}

// MaterialCount is a material name with its usage count
type MaterialCount struct {
	Name  string
	Count int64
}

// TopMaterials returns the n most used materials, most used first
func (s *UsageStatistics) TopMaterials(n int) []MaterialCount {
	counts := make([]MaterialCount, 0, len(s.MaterialUsage))
	for name, count := range s.MaterialUsage {
		counts = append(counts, MaterialCount{Name: name, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Name < counts[j].Name
	})
	if n >= 0 && n < len(counts) {
		counts = counts[:n]
	}
	return counts
}
