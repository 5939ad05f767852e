package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportLayer is one row of the printable layer table
type ReportLayer struct {
	Name       string          `json:"name"`
	Thickness  float64         `json:"thickness"`
	Lambda     float64         `json:"lambda"`
	Resistance float64         `json:"resistance"`
	Cost       decimal.Decimal `json:"cost"`
}

// ReportDocument is the subset of an analysis that goes into a printed report
type ReportDocument struct {
	Title           string          `json:"title"`
	GeneratedAt     time.Time       `json:"generated_at"`
	Layers          []ReportLayer   `json:"layers"`
	TotalThickness  float64         `json:"total_thickness"`
	TotalResistance float64         `json:"total_resistance"`
	UValue          float64         `json:"u_value"`
	UWithBridges    float64         `json:"u_with_bridges"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	HasCondensation bool            `json:"has_condensation"`
	Findings        []FindingResult `json:"findings"`
}

// Document projects the report onto the printable document layout
func (r *AssemblyReport) Document(generatedAt time.Time) ReportDocument {
	doc := ReportDocument{
		Title:           r.Name,
		GeneratedAt:     generatedAt,
		Layers:          make([]ReportLayer, len(r.Layers)),
		TotalThickness:  r.TotalThickness,
		TotalResistance: r.SteadyState.TotalThermalResistance,
		UValue:          r.SteadyState.ThermalTransmittance,
		UWithBridges:    r.UWithBridges(),
		TotalCost:       r.TotalCost,
		HasCondensation: r.DewPoint.HasCondensation,
		Findings:        r.Findings,
	}
	if doc.Title == "" {
		doc.Title = "Wall assembly"
	}
	for i, l := range r.Layers {
		doc.Layers[i] = ReportLayer{
			Name:       l.Material,
			Thickness:  l.Thickness,
			Lambda:     l.Lambda,
			Resistance: l.Resistance,
			Cost:       l.Cost,
		}
	}
	return doc
}
