package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vsinha/wallcalc/pkg/application/dto"
	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/infrastructure/repositories/csv"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPNG  = "png"
	FormatHTML = "html"
)

// Config holds configuration for output generation
type Config struct {
	Format  string
	File    string    // written instead of Writer when set
	Writer  io.Writer // defaults to stdout
	Verbose bool
	Elapsed time.Duration
}

// Binary reports whether the format cannot go to a terminal
func Binary(format string) bool {
	return format == FormatXLSX || format == FormatPNG
}

// GenerateReport writes an assembly analysis in the configured format
func GenerateReport(report *dto.AssemblyReport, config Config) error {
	switch config.Format {
	case FormatText:
		return emit(config, func(w io.Writer) error { return writeReportText(w, report, config) })
	case FormatJSON:
		return emit(config, func(w io.Writer) error { return writeJSON(w, report) })
	case FormatCSV:
		return emit(config, func(w io.Writer) error { return writeLayersCSV(w, report) })
	case FormatXLSX:
		return emit(config, func(w io.Writer) error { return WriteReportXLSX(w, report) })
	case FormatPNG:
		return emit(config, func(w io.Writer) error { return WriteProfilePNG(w, report) })
	case FormatHTML:
		return emit(config, func(w io.Writer) error { return WriteReportHTML(w, report.Document(time.Now())) })
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// GenerateOptimization writes an insulation sweep in the configured format
func GenerateOptimization(report *dto.OptimizationReport, config Config) error {
	switch config.Format {
	case FormatText:
		return emit(config, func(w io.Writer) error { return writeOptimizationText(w, report, config) })
	case FormatJSON:
		return emit(config, func(w io.Writer) error { return writeJSON(w, report) })
	case FormatCSV:
		return emit(config, func(w io.Writer) error { return writeDataPointsCSV(w, report) })
	case FormatXLSX:
		return emit(config, func(w io.Writer) error { return WriteOptimizationXLSX(w, report) })
	case FormatPNG:
		return emit(config, func(w io.Writer) error { return WriteOptimizationPNG(w, report) })
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// GenerateMaterials writes a material listing. The csv format can be read back as a custom catalog.
func GenerateMaterials(materials []*entities.Material, config Config) error {
	switch config.Format {
	case FormatText:
		return emit(config, func(w io.Writer) error { return writeMaterialsText(w, materials) })
	case FormatJSON:
		return emit(config, func(w io.Writer) error { return writeJSON(w, dto.NewMaterialResults(materials)) })
	case FormatCSV:
		return emit(config, func(w io.Writer) error { return csv.NewLoader().WriteMaterials(w, materials) })
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// GenerateTemplates writes a template listing
func GenerateTemplates(templates []*entities.WallTemplate, config Config) error {
	switch config.Format {
	case FormatText:
		return emit(config, func(w io.Writer) error { return writeTemplatesText(w, templates) })
	case FormatJSON:
		return emit(config, func(w io.Writer) error { return writeJSON(w, dto.NewTemplateResults(templates)) })
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// GenerateAssemblies writes the saved assembly listing
func GenerateAssemblies(assemblies []*entities.SavedAssembly, config Config) error {
	switch config.Format {
	case FormatText:
		return emit(config, func(w io.Writer) error { return writeAssembliesText(w, assemblies) })
	case FormatJSON:
		return emit(config, func(w io.Writer) error { return writeJSON(w, dto.NewAssemblySummaries(assemblies)) })
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// GenerateStatistics writes the usage statistics
func GenerateStatistics(stats *dto.StatisticsReport, config Config) error {
	switch config.Format {
	case FormatText:
		return emit(config, func(w io.Writer) error { return writeStatisticsText(w, stats) })
	case FormatJSON:
		return emit(config, func(w io.Writer) error { return writeJSON(w, stats) })
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// emit routes the writer to the configured file or stream
func emit(config Config, write func(w io.Writer) error) error {
	if config.File == "" {
		if config.Writer != nil {
			return write(config.Writer)
		}
		if Binary(config.Format) {
			return fmt.Errorf("output file required for %s format", config.Format)
		}
		return write(os.Stdout)
	}

	if dir := filepath.Dir(config.File); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(config.File)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if config.Verbose {
		fmt.Fprintf(os.Stderr, "💾 Results saved to: %s\n", config.File)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}
