package entities

// Severity ranks a validation finding
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
)

// String method for Severity enum
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "Info"
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	case SeverityCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// FindingCategory tags the rule family that produced a finding
type FindingCategory int

const (
	CategoryGeneral FindingCategory = iota
	CategoryBuildingCode
	CategoryPhysicalLimits
	CategoryMaterialCombination
	CategoryEconomic
	CategoryCondensation
)

// String method for FindingCategory enum
func (c FindingCategory) String() string {
	switch c {
	case CategoryGeneral:
		return "General"
	case CategoryBuildingCode:
		return "BuildingCode"
	case CategoryPhysicalLimits:
		return "PhysicalLimits"
	case CategoryMaterialCombination:
		return "MaterialCombination"
	case CategoryEconomic:
		return "Economic"
	case CategoryCondensation:
		return "Condensation"
	default:
		return "Unknown"
	}
}

// Finding is one result of a validation rule
type Finding struct {
	Code       string
	Severity   Severity
	Category   FindingCategory
	Message    string
	Details    string
	Suggestion string
}

// IsValid reports whether the finding does not block compliance
func (f Finding) IsValid() bool {
	return f.Severity < SeverityError
}

// HasBlockingFindings reports whether any finding is an error or worse
func HasBlockingFindings(findings []Finding) bool {
	for _, f := range findings {
		if !f.IsValid() {
			return true
		}
	}
	return false
}
