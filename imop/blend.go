// Package imop implements the elementwise blend modes and the Porter-Duff
// composition operators used to combine the scalar fields of a brush stamp.
//
// The blend modes work on raw field values, so darken, lighten, multiply,
// add and subtract are valid both on normalized masks ([0,1]) and on
// alpha scaled fields ([0,255]). Screen and overlay assume normalized input.
package imop

import (
	"math"

	"github.com/esimov/brushgen/utils"
	"github.com/pkg/errors"
)

const (
	Darken   = "darken"
	Lighten  = "lighten"
	Multiply = "multiply"
	Screen   = "screen"
	Overlay  = "overlay"
	Add      = "add"
	Subtract = "subtract"
)

var blendModes = []string{Darken, Lighten, Multiply, Screen, Overlay, Add, Subtract}

// Blend holds the currently active blend mode.
type Blend struct {
	OpType string
}

// NewBlend initializes a new Blend.
func NewBlend() *Blend {
	return &Blend{}
}

// Set activates one of the supported blend modes.
func (o *Blend) Set(opType string) error {
	if !utils.Contains(blendModes, opType) {
		return errors.Errorf("unsupported blend mode: %q", opType)
	}
	o.OpType = opType
	return nil
}

// Get returns the currently active blend mode.
func (o *Blend) Get() string {
	return o.OpType
}

// Func returns the function applying the active blend mode to a backdrop
// value a and a source value b. An unset blend mode returns the source.
func (o *Blend) Func() func(a, b float64) float64 {
	switch o.OpType {
	case Darken:
		return math.Min
	case Lighten:
		return math.Max
	case Multiply:
		return func(a, b float64) float64 { return a * b }
	case Screen:
		return func(a, b float64) float64 { return a + b - a*b }
	case Overlay:
		return func(a, b float64) float64 {
			if a <= 0.5 {
				return 2 * a * b
			}
			return 1 - 2*(1-a)*(1-b)
		}
	case Add:
		return func(a, b float64) float64 { return a + b }
	case Subtract:
		return func(a, b float64) float64 { return a - b }
	}
	return func(_, b float64) float64 { return b }
}

// Apply blends a single pair of values.
func (o *Blend) Apply(a, b float64) float64 {
	return o.Func()(a, b)
}
