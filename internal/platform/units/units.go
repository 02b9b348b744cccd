// Package units formats SI values with their unit symbols for reports
// Inputs everywhere are SI; nothing here converts between unit systems
package units

import (
	"fmt"

	"gonum.org/v1/gonum/unit"
)

// Quantity selects the unit Format attaches
type Quantity uint8

const (
	Length   Quantity = iota // m
	Pressure                 // Pa
	Flow                     // m³/s
	Density                  // kg/m³
)

func (q Quantity) String() string {
	switch q {
	case Length:
		return "length"
	case Pressure:
		return "pressure"
	case Flow:
		return "flow"
	case Density:
		return "density"
	default:
		return fmt.Sprintf("quantity(%d)", uint8(q))
	}
}

var (
	flowDims    = unit.Dimensions{unit.LengthDim: 3, unit.TimeDim: -1}
	densityDims = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -3}
)

// Value wraps v as the gonum typed quantity for q, ready for fmt verbs
func Value(v float64, q Quantity) fmt.Formatter {
	switch q {
	case Length:
		return unit.Length(v)
	case Pressure:
		return unit.Pressure(v)
	case Flow:
		return unit.New(v, flowDims)
	case Density:
		return unit.New(v, densityDims)
	default:
		return unit.New(v, unit.Dimensions{})
	}
}

// Format renders an SI value with its unit symbol, using verb precision like "%.4f"
func Format(v float64, q Quantity, verb string) string {
	return fmt.Sprintf(verb, Value(v, q))
}
