// percent implements a simple and straightforward type for percentage values
package percent

import (
	"math"
	"strconv"
	"strings"
)

// Percent is a simple and straightforward type for percentage values.
// Values may be fractional, e.g. 33.3333%.
type Percent float64

// FromInt creates a percentage from an integer, clamped to 0…100.
func FromInt(n int) Percent {
	switch {
	case n <= 0:
		return Percent(0)
	case n >= 100:
		return Percent(100)
	}
	return Percent(n)
}

// FromFloat creates a percentage from a float, clamped to 0…100.
func FromFloat(f float64) Percent {
	switch {
	case f <= 0 || math.IsNaN(f) || math.IsInf(f, -1):
		return Percent(0)
	case f >= 100 || math.IsInf(f, 1):
		return Percent(100)
	}
	return Percent(f)
}

// FromString parses strings like "25", "25%" or "12.5%".
func FromString(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Percent(0), err
	}
	return FromFloat(f), nil
}

// Share returns part/total as a percentage, truncated to 4 decimal places.
func Share(part, total float64) Percent {
	if total <= 0 {
		return Percent(0)
	}
	return FromFloat(Truncate(part * 100 / total))
}

// Truncate cuts a value down to 4 decimal places.
func Truncate(f float64) float64 {
	return math.Floor(f*10000) / 10000
}

// Format prints a percentage without the '%' sign. Integral values are printed
// as integers, all other values with at most 4 decimal places, trailing zeros
// stripped.
func (p Percent) Format() string {
	f := float64(p)
	if f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	s := strconv.FormatFloat(f, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func (p Percent) String() string {
	return p.Format() + "%"
}
