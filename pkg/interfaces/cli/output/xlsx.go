package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/vsinha/wallcalc/pkg/application/dto"
)

// Sheet names of the spreadsheet exports
const (
	SheetLayers       = "Layers"
	SheetFindings     = "Findings"
	SheetOptimization = "Optimization"
)

// sheet is one table of a workbook
type sheet struct {
	name   string
	header []string
	widths []float64
	rows   [][]interface{}
}

// WriteReportXLSX writes the layer table with totals and the validation findings
func WriteReportXLSX(w io.Writer, report *dto.AssemblyReport) error {
	layers := sheet{
		name:   SheetLayers,
		header: []string{"Material", "Category", "Thickness [mm]", "λ [W/mK]", "R [m²K/W]", "sd [m]", "Cost"},
		widths: []float64{32, 14, 15, 12, 12, 10, 12},
	}
	for _, l := range report.Layers {
		cost, _ := l.Cost.Float64()
		layers.rows = append(layers.rows, []interface{}{
			l.Material, l.Category, l.Thickness, l.Lambda, round(l.Resistance, 3), round(l.DiffusionResistance, 2), cost,
		})
	}
	totalCost, _ := report.TotalCost.Float64()
	layers.rows = append(layers.rows,
		[]interface{}{},
		[]interface{}{"Total", "", report.TotalThickness, "", round(report.SteadyState.TotalThermalResistance, 3),
			round(report.TotalDiffusionResistance, 2), totalCost},
		[]interface{}{"U-value [W/m²K]", "", "", "", round(report.SteadyState.ThermalTransmittance, 3)},
		[]interface{}{"U with bridges [W/m²K]", "", "", "", round(report.UWithBridges(), 3)},
		[]interface{}{"Condensation", yesNo(report.DewPoint.HasCondensation)},
	)

	findings := sheet{
		name:   SheetFindings,
		header: []string{"Severity", "Code", "Category", "Message", "Details", "Suggestion"},
		widths: []float64{10, 26, 20, 50, 40, 50},
	}
	for _, f := range report.Findings {
		findings.rows = append(findings.rows, []interface{}{f.Severity, f.Code, f.Category, f.Message, f.Details, f.Suggestion})
	}

	return writeWorkbook(w, layers, findings)
}

// WriteOptimizationXLSX writes every swept thickness of an optimization
func WriteOptimizationXLSX(w io.Writer, report *dto.OptimizationReport) error {
	points := sheet{
		name: SheetOptimization,
		header: []string{
			"Thickness [cm]", "R [m²K/W]", "U [W/m²K]", "Heat loss [kWh/yr]", "Heating cost [/yr]",
			"Savings [/yr]", "Investment", "Cumulative savings", "Net profit", "Payback [yr]",
			"Incremental payback [yr]", "NPV", "Discounted payback [yr]", "Optimal",
		},
		widths: []float64{14, 11, 11, 18, 18, 14, 12, 18, 12, 13, 22, 12, 22, 9},
	}
	for _, p := range report.DataPoints {
		optimal := ""
		if p.Thickness == report.Optimal.Thickness {
			optimal = "✓"
		}
		points.rows = append(points.rows, []interface{}{
			p.Thickness, round(p.RValue, 3), round(p.UValue, 4), round(p.AnnualHeatLoss, 1),
			round(p.AnnualHeatingCost, 2), round(p.AnnualSavings, 2), round(p.InvestmentCost, 2),
			round(p.CumulativeSavings, 2), round(p.NetProfit, 2), cellNumber(p.PaybackPeriod),
			cellNumber(p.IncrementalPayback), round(p.NetPresentValue, 2), cellNumber(p.DiscountedPaybackPeriod),
			optimal,
		})
	}
	return writeWorkbook(w, points)
}

func writeWorkbook(w io.Writer, sheets ...sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for _, s := range sheets {
		if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", s.name, err)
		}

		for col, header := range s.header {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(s.name, cell, header); err != nil {
				return fmt.Errorf("failed to set header cell %s: %w", cell, err)
			}
			if err := f.SetCellStyle(s.name, cell, cell, headerStyle); err != nil {
				return fmt.Errorf("failed to set header style: %w", err)
			}
		}

		for col, width := range s.widths {
			name, err := excelize.ColumnNumberToName(col + 1)
			if err != nil {
				return fmt.Errorf("failed to convert column number: %w", err)
			}
			if err := f.SetColWidth(s.name, name, name, width); err != nil {
				return fmt.Errorf("failed to set column width: %w", err)
			}
		}

		for r, row := range s.rows {
			for col, value := range row {
				if value == nil || value == "" {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(col+1, r+2)
				if err != nil {
					return fmt.Errorf("failed to convert coordinates: %w", err)
				}
				if err := f.SetCellValue(s.name, cell, value); err != nil {
					return fmt.Errorf("failed to set cell %s on %s: %w", cell, s.name, err)
				}
			}
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}
	index, err := f.GetSheetIndex(sheets[0].name)
	if err != nil {
		return fmt.Errorf("failed to find sheet %s: %w", sheets[0].name, err)
	}
	f.SetActiveSheet(index)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// cellNumber leaves never-recovered paybacks as text
func cellNumber(n dto.Number) interface{} {
	if !n.Finite() {
		return "never"
	}
	return round(float64(n), 1)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
