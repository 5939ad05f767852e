package thermal

import "math"

// Magnus coefficients over water (T ≥ 0 °C) and over ice (T < 0 °C)
const (
	referencePressure = 610.78 // Pa at 0 °C

	waterA = 17.2694
	waterB = 238.3
	iceA   = 21.875
	iceB   = 265.5
)

// SaturationVaporPressure returns the saturation pressure in Pa at temperature t in °C
func SaturationVaporPressure(t float64) float64 {
	if t >= 0 {
		return referencePressure * math.Exp(waterA*t/(t+waterB))
	}
	return referencePressure * math.Exp(iceA*t/(t+iceB))
}

// DewPointTemperature returns the dew point in °C for a vapor pressure in Pa.
// Non-positive pressures have no dew point and return -Inf.
func DewPointTemperature(p float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}
	a, b := waterA, waterB
	if p < referencePressure {
		a, b = iceA, iceB
	}
	x := math.Log(p / referencePressure)
	return b * x / (a - x)
}
