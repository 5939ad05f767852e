package output

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/vsinha/wallcalc/pkg/application/dto"
	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

const rule = "────────────────────────────────────────────────────────────────────────\n"

func writeReportText(w io.Writer, report *dto.AssemblyReport, config Config) error {
	var b strings.Builder

	b.WriteString("════════════════════════════════════════════════════════════════════════\n")
	fmt.Fprintf(&b, "  %s\n", report.Name)
	b.WriteString("════════════════════════════════════════════════════════════════════════\n\n")

	fmt.Fprintf(&b, "🌡️  Climate: interior %.1f °C / %.0f %%, exterior %.1f °C / %.0f %%\n\n",
		report.Climate.InteriorTemperature, report.Climate.InteriorHumidity,
		report.Climate.ExteriorTemperature, report.Climate.ExteriorHumidity)

	b.WriteString("🧱 LAYERS (interior → exterior)\n")
	b.WriteString(rule)
	fmt.Fprintf(&b, "%-28s %9s %8s %9s %9s %10s\n", "Material", "d [mm]", "λ", "R", "sd [m]", "Cost")
	for _, l := range report.Layers {
		fmt.Fprintf(&b, "%-28s %9.1f %8.3f %9.3f %9.2f %10s\n",
			truncate(l.Material, 28), l.Thickness, l.Lambda, l.Resistance, l.DiffusionResistance, l.Cost.StringFixed(2))
	}
	b.WriteString(rule)
	fmt.Fprintf(&b, "%-28s %9.1f %8s %9.3f %9.2f %10s\n\n",
		"Total", report.TotalThickness, "", report.SteadyState.TotalThermalResistance,
		report.TotalDiffusionResistance, report.TotalCost.StringFixed(2))

	b.WriteString("📊 THERMAL PROPERTIES\n")
	b.WriteString(rule)
	fmt.Fprintf(&b, "  Thermal resistance R:     %.3f m²K/W\n", report.SteadyState.TotalThermalResistance)
	fmt.Fprintf(&b, "  Thermal transmittance U:  %.3f W/m²K\n", report.SteadyState.ThermalTransmittance)
	if report.Bridges != nil {
		fmt.Fprintf(&b, "  U with thermal bridges:   %.3f W/m²K (+%.1f %%, %s)\n",
			report.Bridges.CorrectedU, report.Bridges.RelativeIncrease, report.Bridges.Criticality)
	}
	fmt.Fprintf(&b, "  Thermal capacity:         %.0f kJ/m²K\n", report.SteadyState.ThermalCapacity/1000)
	fmt.Fprintf(&b, "  Phase shift (simple):     %s h\n", formatNumber(report.SteadyState.PhaseShift, 1))
	fmt.Fprintf(&b, "  Phase shift (dynamic):    %.1f h\n", report.Dynamic.PhaseShift)
	fmt.Fprintf(&b, "  Temperature damping:      %.1f (%s inertia)\n", report.Dynamic.TemperatureDamping, report.Dynamic.ThermalInertia)
	fmt.Fprintf(&b, "  Amplitude decrement:      %.1f %%\n", report.Dynamic.AmplitudeDecrement)
	fmt.Fprintf(&b, "  Summer comfort:           %s\n\n", report.Dynamic.SummerComfort)

	b.WriteString("💧 CONDENSATION\n")
	b.WriteString(rule)
	if !report.DewPoint.HasCondensation {
		b.WriteString("  ✅ No interstitial condensation\n\n")
	} else {
		fmt.Fprintf(&b, "  ⚠️  Condensation risk, %.3f kg/m² per year\n", report.DewPoint.TotalAnnualCondensate)
		for _, z := range report.DewPoint.Zones {
			fmt.Fprintf(&b, "  %-28s %7.1f–%-7.1f mm  %.3f kg/m²  %s\n",
				truncate(z.Material, 28), z.StartDepth, z.EndDepth, z.AnnualCondensate, z.Severity)
		}
		b.WriteString("\n")
	}

	if report.Bridges != nil {
		fmt.Fprintf(&b, "🔗 THERMAL BRIDGES (%s)\n", report.Bridges.Configuration)
		b.WriteString(rule)
		for _, br := range report.Bridges.Bridges {
			state := ""
			if !br.Enabled {
				state = " (disabled)"
			}
			fmt.Fprintf(&b, "  %-28s ψ %6.3f  L %6.1f m  %6.2f W/K%s\n",
				truncate(br.Name, 28), br.Psi, br.Length, br.HeatLoss, state)
		}
		fmt.Fprintf(&b, "  ΔU = %.3f W/m²K\n\n", report.Bridges.Correction)
	}

	if len(report.Findings) > 0 {
		b.WriteString("🔍 FINDINGS\n")
		b.WriteString(rule)
		for _, f := range report.Findings {
			fmt.Fprintf(&b, "  %s %s [%s]\n", severityIcon(f.Severity), f.Message, f.Code)
			if f.Details != "" {
				fmt.Fprintf(&b, "     %s\n", f.Details)
			}
			if f.Suggestion != "" {
				fmt.Fprintf(&b, "     → %s\n", f.Suggestion)
			}
		}
		b.WriteString("\n")
	}

	if len(report.SkippedMaterials) > 0 {
		fmt.Fprintf(&b, "⚠️  Skipped unknown materials: %s\n", strings.Join(report.SkippedMaterials, ", "))
	}
	if config.Verbose {
		fmt.Fprintf(&b, "⏱️  Calculated in %v\n", config.Elapsed)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeOptimizationText(w io.Writer, report *dto.OptimizationReport, config Config) error {
	var b strings.Builder
	in := report.Input

	b.WriteString("════════════════════════════════════════════════════════════════════════\n")
	fmt.Fprintf(&b, "  Insulation optimization: %s (λ %.3f W/mK)\n", in.MaterialName, in.Lambda)
	b.WriteString("════════════════════════════════════════════════════════════════════════\n\n")

	fmt.Fprintf(&b, "  Energy %.2f/kWh, insulation %.2f/cm, fixed %.2f, ΔT %.1f K, %d days, %d years\n",
		in.EnergyCost, in.InsulationCostPerCm, in.FixedCost, in.TemperatureDifference, in.HeatingDays, in.LifetimeYears)
	fmt.Fprintf(&b, "  Baseline: R %.3f m²K/W, %.1f kWh/yr, %.2f/yr\n\n",
		report.Baseline.Resistance, report.Baseline.HeatLoss, report.Baseline.HeatingCost)

	opt := report.Optimal
	b.WriteString("🎯 OPTIMUM\n")
	b.WriteString(rule)
	fmt.Fprintf(&b, "  Thickness:       %.0f cm\n", opt.Thickness)
	if report.PracticalThickness != nil {
		fmt.Fprintf(&b, "  Practical:       %.0f cm\n", *report.PracticalThickness)
	}
	fmt.Fprintf(&b, "  U-value:         %.3f W/m²K\n", opt.UValue)
	fmt.Fprintf(&b, "  Annual savings:  %.2f\n", opt.AnnualSavings)
	fmt.Fprintf(&b, "  Investment:      %.2f\n", opt.InvestmentCost)
	fmt.Fprintf(&b, "  Net profit:      %.2f\n", opt.NetProfit)
	fmt.Fprintf(&b, "  Payback:         %s years\n\n", formatNumber(opt.PaybackPeriod, 1))

	b.WriteString("📋 COMPARISON\n")
	b.WriteString(rule)
	fmt.Fprintf(&b, "%8s %8s %10s %12s %12s %10s\n", "d [cm]", "U", "Savings", "Investment", "Net profit", "Payback")
	for _, p := range report.Comparison {
		fmt.Fprintf(&b, "%8.0f %8.3f %10.2f %12.2f %12.2f %10s\n",
			p.Thickness, p.UValue, p.AnnualSavings, p.InvestmentCost, p.NetProfit, formatNumber(p.PaybackPeriod, 1))
	}
	b.WriteString("\n")

	b.WriteString("💡 RECOMMENDATIONS\n")
	b.WriteString(rule)
	for _, r := range report.Recommendations {
		icon := "•"
		if r.Warning {
			icon = "⚠️ "
		}
		fmt.Fprintf(&b, "  %s %s\n", icon, r.Text)
	}

	if config.Verbose {
		fmt.Fprintf(&b, "\n⏱️  %d thicknesses evaluated in %v\n", len(report.DataPoints), config.Elapsed)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMaterialsText(w io.Writer, materials []*entities.Material) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-32s %-11s %8s %7s %7s %9s %9s\n", "Name", "Category", "λ", "ρ", "c", "μ", "Price/m³")
	fmt.Fprintf(&b, "%-32s %-11s %8s %7s %7s %9s %9s\n",
		strings.Repeat("-", 32), strings.Repeat("-", 11), "--------", "-------", "-------", "---------", "---------")
	for _, m := range materials {
		lambda := fmt.Sprintf("%.3f", m.ThermalConductivity)
		if m.AirGap {
			lambda = fmt.Sprintf("R=%.2f", m.FixedResistance)
		}
		fmt.Fprintf(&b, "%-32s %-11s %8s %7.0f %7.0f %9.0f %9s\n",
			truncate(m.Name, 32), m.Category, lambda, m.Density, m.SpecificHeatCapacity,
			m.DiffusionResistanceFactor, m.PricePerM3.StringFixed(0))
	}
	fmt.Fprintf(&b, "\n%d materials\n", len(materials))
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTemplatesText(w io.Writer, templates []*entities.WallTemplate) error {
	var b strings.Builder
	for _, t := range templates {
		star := ""
		if t.Popular {
			star = " ⭐"
		}
		fmt.Fprintf(&b, "📐 %s [%s]%s\n", t.Name, t.Category, star)
		if t.Description != "" {
			fmt.Fprintf(&b, "   %s\n", t.Description)
		}
		for i, l := range t.Layers {
			bounds := "fixed"
			if l.Adjustable && (l.MinThickness > 0 || l.MaxThickness > 0) {
				bounds = fmt.Sprintf("%g–%g mm", l.MinThickness, l.MaxThickness)
			} else if l.Adjustable {
				bounds = "adjustable"
			}
			fmt.Fprintf(&b, "   %d. %-30s %7g mm  (%s)\n", i, truncate(l.MaterialName, 30), l.DefaultThickness, bounds)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeAssembliesText(w io.Writer, assemblies []*entities.SavedAssembly) error {
	var b strings.Builder
	if len(assemblies) == 0 {
		b.WriteString("No saved assemblies\n")
	}
	for _, s := range dto.NewAssemblySummaries(assemblies) {
		fmt.Fprintf(&b, "%-32s %2d layers %8.1f mm  saved %s\n",
			truncate(s.Name, 32), s.Layers, s.TotalThickness, s.SavedAt.Format("2006-01-02 15:04"))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeStatisticsText(w io.Writer, stats *dto.StatisticsReport) error {
	var b strings.Builder
	b.WriteString("📈 USAGE STATISTICS\n")
	b.WriteString(rule)
	fmt.Fprintf(&b, "  Calculations:        %d\n", stats.Calculations)
	fmt.Fprintf(&b, "  Layers analysed:     %d (%.1f per calculation)\n", stats.LayersAnalysed, stats.AverageLayersPerCalculation)
	fmt.Fprintf(&b, "  Template uses:       %d\n", stats.TemplateUses)
	fmt.Fprintf(&b, "  Optimizations:       %d\n", stats.Optimizations)
	fmt.Fprintf(&b, "  Saves / loads:       %d / %d\n", stats.Saves, stats.Loads)
	fmt.Fprintf(&b, "  Exports:             %d\n", stats.Exports)
	if stats.FirstUsed != nil && stats.LastUsed != nil {
		fmt.Fprintf(&b, "  First / last use:    %s / %s\n",
			stats.FirstUsed.Format("2006-01-02 15:04"), stats.LastUsed.Format("2006-01-02 15:04"))
	}

	if len(stats.TopMaterials) > 0 {
		b.WriteString("\n  Top materials:\n")
		for i, m := range stats.TopMaterials {
			fmt.Fprintf(&b, "    %d. %-30s %d\n", i+1, m.Name, m.Count)
		}
	}

	if len(stats.CategoryUsage) > 0 {
		categories := make([]string, 0, len(stats.CategoryUsage))
		for c := range stats.CategoryUsage {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		b.WriteString("\n  Categories:\n")
		for _, c := range categories {
			fmt.Fprintf(&b, "    %-32s %d\n", c, stats.CategoryUsage[c])
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func severityIcon(severity string) string {
	switch severity {
	case "Critical", "Error":
		return "❌"
	case "Warning":
		return "⚠️ "
	default:
		return "ℹ️ "
	}
}

func formatNumber(n dto.Number, precision int) string {
	if !n.Finite() {
		return "never"
	}
	return fmt.Sprintf("%.*f", precision, float64(n))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func round(f float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(f*p) / p
}
