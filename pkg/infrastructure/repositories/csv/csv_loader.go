package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

// MaterialHeader is the column layout of material catalog files
var MaterialHeader = []string{
	"name", "category", "lambda", "density", "specific_heat", "mu",
	"price_per_m3", "manufacturer", "air_gap", "fixed_resistance",
}

// Loader handles loading material catalogs from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadMaterials loads materials from a CSV file
func (l *Loader) LoadMaterials(filename string) ([]*entities.Material, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open materials file %s: %w", filename, err)
	}
	defer file.Close()

	return l.ReadMaterials(file)
}

// ReadMaterials parses a material catalog from any reader
func (l *Loader) ReadMaterials(r io.Reader) ([]*entities.Material, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read materials CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("materials CSV must have header and at least one data row")
	}

	header := records[0]
	if !validateHeader(header, MaterialHeader) {
		return nil, fmt.Errorf("materials CSV header mismatch. Expected: %v, Got: %v", MaterialHeader, header)
	}

	seen := make(map[string]bool, len(records)-1)
	var materials []*entities.Material
	for i, record := range records[1:] {
		if len(record) != len(MaterialHeader) {
			return nil, fmt.Errorf("materials CSV row %d: expected %d columns, got %d", i+2, len(MaterialHeader), len(record))
		}

		material, err := parseMaterial(record)
		if err != nil {
			return nil, fmt.Errorf("materials CSV row %d: %w", i+2, err)
		}
		if seen[material.Name] {
			return nil, fmt.Errorf("materials CSV row %d: duplicate material %q", i+2, material.Name)
		}
		seen[material.Name] = true

		materials = append(materials, &material)
	}

	return materials, nil
}

// WriteMaterials writes materials in the layout ReadMaterials accepts
func (l *Loader) WriteMaterials(w io.Writer, materials []*entities.Material) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(MaterialHeader); err != nil {
		return fmt.Errorf("failed to write materials header: %w", err)
	}

	for _, m := range materials {
		record := []string{
			m.Name,
			strings.ToLower(m.Category.String()),
			formatFloat(m.ThermalConductivity),
			formatFloat(m.Density),
			formatFloat(m.SpecificHeatCapacity),
			formatFloat(m.DiffusionResistanceFactor),
			m.PricePerM3.String(),
			m.Manufacturer,
			strconv.FormatBool(m.AirGap),
			formatFloat(m.FixedResistance),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write material %s: %w", m.Name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseMaterial(record []string) (entities.Material, error) {
	name := strings.TrimSpace(record[0])

	category, err := entities.ParseMaterialCategory(record[1])
	if err != nil {
		return entities.Material{}, err
	}

	values := make([]float64, 4)
	for i, column := range []string{"lambda", "density", "specific_heat", "mu"} {
		values[i], err = strconv.ParseFloat(strings.TrimSpace(record[i+2]), 64)
		if err != nil {
			return entities.Material{}, fmt.Errorf("invalid %s: %s", column, record[i+2])
		}
	}

	price, err := decimal.NewFromString(strings.TrimSpace(record[6]))
	if err != nil {
		return entities.Material{}, fmt.Errorf("invalid price_per_m3: %s", record[6])
	}

	airGap := false
	if s := strings.TrimSpace(record[8]); s != "" {
		airGap, err = strconv.ParseBool(s)
		if err != nil {
			return entities.Material{}, fmt.Errorf("invalid air_gap: %s", record[8])
		}
	}

	fixedResistance := 0.0
	if s := strings.TrimSpace(record[9]); s != "" {
		fixedResistance, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return entities.Material{}, fmt.Errorf("invalid fixed_resistance: %s", record[9])
		}
	}

	material := entities.Material{
		Name:                      name,
		Category:                  category,
		ThermalConductivity:       values[0],
		Density:                   values[1],
		SpecificHeatCapacity:      values[2],
		DiffusionResistanceFactor: values[3],
		PricePerM3:                price,
		Manufacturer:              strings.TrimSpace(record[7]),
		AirGap:                    airGap,
		FixedResistance:           fixedResistance,
	}
	if err := material.Validate(); err != nil {
		return entities.Material{}, err
	}

	return material, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
