package entities

// ProfilePoint is one (depth, value) pair of a temperature or vapor pressure profile.
// Depth is measured in mm from the interior face.
type ProfilePoint struct {
	Depth float64
	Value float64
}

// ZoneSeverity classifies the annual condensate of one zone
type ZoneSeverity int

const (
	ZoneSeverityLow ZoneSeverity = iota
	ZoneSeverityMedium
	ZoneSeverityHigh
)

// String method for ZoneSeverity enum
func (s ZoneSeverity) String() string {
	switch s {
	case ZoneSeverityLow:
		return "Low"
	case ZoneSeverityMedium:
		return "Medium"
	case ZoneSeverityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// ClassifyZoneSeverity maps annual condensate in kg/(m²·yr) to a severity class
func ClassifyZoneSeverity(annualCondensate float64) ZoneSeverity {
	switch {
	case annualCondensate < 0.5:
		return ZoneSeverityLow
	case annualCondensate < 2.0:
		return ZoneSeverityMedium
	default:
		return ZoneSeverityHigh
	}
}

// CondensationZone is a contiguous condensing region inside one layer
type CondensationZone struct {
	LayerIndex       int
	MaterialName     string
	StartDepth       float64 // mm
	EndDepth         float64 // mm
	AnnualCondensate float64 // kg/(m²·yr)
	Severity         ZoneSeverity
}

// DewPointLayer compares temperature and dew point at both faces of a layer
type DewPointLayer struct {
	LayerIndex         int
	MaterialName       string
	StartDepth         float64
	EndDepth           float64
	StartTemperature   float64
	EndTemperature     float64
	StartVaporPressure float64
	EndVaporPressure   float64
	StartDewPoint      float64
	EndDewPoint        float64
	HasCondensation    bool
}

// DewPointAnalysis is the interstitial condensation result for an assembly
type DewPointAnalysis struct {
	Layers          []DewPointLayer
	Zones           []CondensationZone
	HasCondensation bool
}

// TotalAnnualCondensate sums the condensate of every zone
func (d DewPointAnalysis) TotalAnnualCondensate() float64 {
	total := 0.0
	for _, zone := range d.Zones {
		total += zone.AnnualCondensate
	}
	return total
}
