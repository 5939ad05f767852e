package visualization

import (
	"fmt"
	"math"
	"strings"
)

// ColorScheme selects the temperature color ramp
type ColorScheme int

const (
	SchemeBlueRed ColorScheme = iota
	SchemeRainbow
	SchemeThermal
	SchemeMonochrome
)

// String method for ColorScheme enum
func (s ColorScheme) String() string {
	switch s {
	case SchemeBlueRed:
		return "BlueRed"
	case SchemeRainbow:
		return "Rainbow"
	case SchemeThermal:
		return "Thermal"
	case SchemeMonochrome:
		return "Monochrome"
	default:
		return "Unknown"
	}
}

// ParseColorScheme accepts scheme names case-insensitively
func ParseColorScheme(s string) (ColorScheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bluered", "blue-red":
		return SchemeBlueRed, nil
	case "rainbow":
		return SchemeRainbow, nil
	case "thermal":
		return SchemeThermal, nil
	case "monochrome", "mono":
		return SchemeMonochrome, nil
	default:
		return SchemeBlueRed, fmt.Errorf("unknown color scheme %q", s)
	}
}

// TemperatureToColor maps a temperature within [lo, hi] onto the scheme.
// A degenerate range yields neutral grey.
func TemperatureToColor(temperature, lo, hi float64, scheme ColorScheme) string {
	if hi <= lo {
		return "#888888"
	}
	t := math.Max(0, math.Min(1, (temperature-lo)/(hi-lo)))

	switch scheme {
	case SchemeRainbow:
		return fmt.Sprintf("hsl(%d, 100%%, 50%%)", int(240*(1-t)))
	case SchemeThermal:
		return thermalRamp(t)
	case SchemeMonochrome:
		v := channel(t)
		return hex(v, v, v)
	default:
		return hex(channel(t), channel(1-math.Abs(2*t-1)), channel(1-t))
	}
}

// thermalRamp goes black, blue, cyan, yellow, red like an infrared camera
func thermalRamp(t float64) string {
	switch {
	case t < 0.25:
		return hex(0, 0, channel(4*t))
	case t < 0.5:
		return hex(0, channel(4*(t-0.25)), 255)
	case t < 0.75:
		return hex(channel(4*(t-0.5)), 255, channel(1-4*(t-0.5)))
	default:
		return hex(255, channel(1-4*(t-0.75)), 0)
	}
}

func channel(f float64) int {
	return int(255 * f)
}

func hex(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
