package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/vsinha/wallcalc/pkg/application/dto"
)

var layerHeader = []string{"material", "category", "thickness_mm", "lambda", "resistance", "sd_m", "heat_capacity", "cost"}

var dataPointHeader = []string{
	"thickness_cm", "r_value", "u_value", "annual_heat_loss", "annual_heating_cost", "annual_savings",
	"investment_cost", "cumulative_savings", "net_profit", "payback_period", "incremental_payback",
	"npv", "discounted_payback_period",
}

func writeLayersCSV(w io.Writer, report *dto.AssemblyReport) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(layerHeader); err != nil {
		return fmt.Errorf("failed to write layers header: %w", err)
	}
	for _, l := range report.Layers {
		record := []string{
			l.Material,
			l.Category,
			formatFloat(l.Thickness),
			formatFloat(l.Lambda),
			formatFloat(l.Resistance),
			formatFloat(l.DiffusionResistance),
			formatFloat(l.HeatCapacity),
			l.Cost.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write layer %s: %w", l.Material, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeDataPointsCSV(w io.Writer, report *dto.OptimizationReport) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(dataPointHeader); err != nil {
		return fmt.Errorf("failed to write data point header: %w", err)
	}
	for _, p := range report.DataPoints {
		record := []string{
			formatFloat(p.Thickness),
			formatFloat(p.RValue),
			formatFloat(p.UValue),
			formatFloat(p.AnnualHeatLoss),
			formatFloat(p.AnnualHeatingCost),
			formatFloat(p.AnnualSavings),
			formatFloat(p.InvestmentCost),
			formatFloat(p.CumulativeSavings),
			formatFloat(p.NetProfit),
			formatCSVNumber(p.PaybackPeriod),
			formatCSVNumber(p.IncrementalPayback),
			formatFloat(p.NetPresentValue),
			formatCSVNumber(p.DiscountedPaybackPeriod),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write data point %g: %w", p.Thickness, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatCSVNumber leaves never-recovered paybacks empty
func formatCSVNumber(n dto.Number) string {
	if !n.Finite() {
		return ""
	}
	return formatFloat(float64(n))
}
