package brushgen

import (
	"math"
	"math/rand"

	"github.com/esimov/brushgen/utils"
	"github.com/pkg/errors"
)

// Precondition errors returned by the engine.
var (
	ErrInvalidSize    = errors.New("brushgen: canvas size must be positive")
	ErrInvalidFeather = errors.New("brushgen: feather must be within [0,1)")
	ErrInvalidWeights = errors.New("brushgen: invalid probability weights")
	ErrInvalidRange   = errors.New("brushgen: invalid parameter range")
	ErrNilRand        = errors.New("brushgen: nil random source")
	ErrUnknownBrush   = errors.New("brushgen: unknown brush")
)

// featherEpsilon keeps the mask denominator away from zero when feather approaches 1.
const featherEpsilon = 1e-6

func checkSize(size int) error {
	if size <= 0 {
		return errors.Wrapf(ErrInvalidSize, "size %d", size)
	}
	return nil
}

func checkFeather(feather float64) error {
	if math.IsNaN(feather) || feather < 0 || feather >= 1 {
		return errors.Wrapf(ErrInvalidFeather, "feather %v", feather)
	}
	return nil
}

func checkArgs(size int, rng *rand.Rand) error {
	if err := checkSize(size); err != nil {
		return err
	}
	if rng == nil {
		return ErrNilRand
	}
	return nil
}

// RadialMask returns a radial falloff field in the [0,1] range: 1 at the
// center and linearly decreasing towards the edge. The feather parameter
// controls the edge hardness: 0 gives a ramp spanning the whole radius,
// values close to 1 give a nearly hard disk with a thin soft rim.
//
// For every pixel at distance d from the center the value is
// clamp((c - d) / (c * max(1 - feather, ε)), 0, 1) where c = size/2.
func RadialMask(size int, feather float64) (*Field, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if err := checkFeather(feather); err != nil {
		return nil, err
	}

	var (
		mask   = newField(size)
		radius = float64(size) / 2
		span   = radius * math.Max(1-feather, featherEpsilon)
		// The distance origin is the central pixel, which for odd sizes
		// keeps the mask symmetric and exactly 1 in the middle.
		cx = float64(size / 2)
	)

	for y := 0; y < size; y++ {
		dy := float64(y) - cx
		row := mask.Pix[y*size : (y+1)*size]
		for x := range row {
			d := math.Hypot(float64(x)-cx, dy)
			row[x] = utils.Clamp((radius-d)/span, 0, 1)
		}
	}
	return mask, nil
}

// RingMask returns the difference of two radial masks, mask(outer) - mask(inner),
// which highlights the rim of the disk. The result is clamped to [0,1].
func RingMask(size int, inner, outer float64) (*Field, error) {
	if err := checkFeather(inner); err != nil {
		return nil, err
	}
	if err := checkFeather(outer); err != nil {
		return nil, err
	}
	if inner >= outer {
		return nil, errors.Wrapf(ErrInvalidRange, "ring inner feather %v must be less than outer feather %v", inner, outer)
	}

	hard, err := RadialMask(size, outer)
	if err != nil {
		return nil, err
	}
	soft, err := RadialMask(size, inner)
	if err != nil {
		return nil, err
	}
	return hard.Sub(soft).Clamp(0, 1), nil
}
