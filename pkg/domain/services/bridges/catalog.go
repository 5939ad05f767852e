package bridges

import (
	"sort"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

type catalogKey struct {
	bridgeType    entities.BridgeType
	configuration entities.WallConfiguration
}

// psiTable lists ψ-values in configuration order: uninsulated, thin, standard, thick
var psiTable = []struct {
	bridgeType  entities.BridgeType
	name        string
	description string
	psi         [4]float64
}{
	{entities.BridgeExternalCorner, "External corner", "Junction of two external walls", [4]float64{0.20, 0.15, 0.10, 0.05}},
	{entities.BridgeFoundation, "Foundation", "Wall to ground floor or foundation junction", [4]float64{0.80, 0.65, 0.50, 0.35}},
	{entities.BridgeRoofConnection, "Roof connection", "Wall to roof or top ceiling junction", [4]float64{0.60, 0.45, 0.30, 0.20}},
	{entities.BridgeWindowSill, "Window sill", "Window to wall junction below the opening", [4]float64{0.30, 0.25, 0.20, 0.15}},
	{entities.BridgeWindowLintel, "Window lintel", "Lintel above the opening", [4]float64{0.25, 0.20, 0.15, 0.10}},
	{entities.BridgeBalcony, "Balcony", "Cantilevered balcony slab", [4]float64{1.20, 1.00, 0.80, 0.60}},
	{entities.BridgeFloorSlab, "Floor slab", "Intermediate floor slab bearing on the wall", [4]float64{0.70, 0.55, 0.40, 0.25}},
}

var configurations = [4]entities.WallConfiguration{
	entities.ConfigurationUninsulated,
	entities.ConfigurationThinInsulation,
	entities.ConfigurationStandardInsulation,
	entities.ConfigurationThickInsulation,
}

var catalog = buildCatalog()

func buildCatalog() map[catalogKey]entities.BridgeData {
	m := make(map[catalogKey]entities.BridgeData, len(psiTable)*len(configurations))
	for _, row := range psiTable {
		for i, configuration := range configurations {
			m[catalogKey{row.bridgeType, configuration}] = entities.BridgeData{
				Name:        row.name,
				Psi:         row.psi[i],
				Description: row.description,
			}
		}
	}
	return m
}

// Lookup returns catalog data for a bridge type in a configuration.
// Types without catalog values report false.
func Lookup(bridgeType entities.BridgeType, configuration entities.WallConfiguration) (entities.BridgeData, bool) {
	data, ok := catalog[catalogKey{bridgeType, configuration}]
	return data, ok
}

// CatalogEntry pairs a bridge type with its catalog data
type CatalogEntry struct {
	Type entities.BridgeType
	Data entities.BridgeData
}

// AllBridgeTypes lists every cataloged bridge for a configuration in type order
func AllBridgeTypes(configuration entities.WallConfiguration) []CatalogEntry {
	var entries []CatalogEntry
	for key, data := range catalog {
		if key.configuration == configuration {
			entries = append(entries, CatalogEntry{Type: key.bridgeType, Data: data})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Type < entries[j].Type })
	return entries
}
