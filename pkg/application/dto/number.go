package dto

import (
	"encoding/json"
	"fmt"
	"math"
)

// Number is a float64 that survives JSON when it is not finite.
// +Inf and NaN encode as null, so an infinite payback period reads as
// "never". -Inf, the dew point of dry air, encodes as the string "-Inf".
type Number float64

const negInf = `"-Inf"`

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsInf(f, -1):
		return []byte(negInf), nil
	case math.IsInf(f, 1) || math.IsNaN(f):
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON reads null back as +Inf and accepts the strings
// "Inf", "+Inf", "-Inf" and "NaN"
func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Number(math.Inf(1))
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		switch s {
		case "Inf", "+Inf":
			*n = Number(math.Inf(1))
		case "-Inf":
			*n = Number(math.Inf(-1))
		case "NaN":
			*n = Number(math.NaN())
		default:
			return fmt.Errorf("invalid number %q", s)
		}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// Finite reports whether the value is a real number
func (n Number) Finite() bool {
	f := float64(n)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
