package entities

import "errors"

// Configuration errors reported before any calculation runs
var (
	ErrInvalidConductivity     = errors.New("thermal conductivity must be positive")
	ErrInvalidThickness        = errors.New("layer thickness cannot be negative")
	ErrInvalidHeatCapacity     = errors.New("density and specific heat capacity must be positive")
	ErrInvalidDiffusionFactor  = errors.New("diffusion resistance factor cannot be negative")
	ErrNoLayers                = errors.New("assembly has no layers")
	ErrZeroDiffusionResistance = errors.New("total diffusion resistance must be positive")
	ErrInvalidFloorArea        = errors.New("floor area must be positive")
	ErrInvalidClimate          = errors.New("invalid boundary climate")
)

// Lookup errors returned by collaborators
var (
	ErrAssemblyNotFound = errors.New("assembly not found")
	ErrMaterialNotFound = errors.New("material not found")
	ErrTemplateNotFound = errors.New("template not found")
)
