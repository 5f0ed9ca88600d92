package brushgen

import (
	"math"
	"math/rand"

	"github.com/esimov/brushgen/utils"
	"github.com/pkg/errors"
)

// weightTolerance is the accepted deviation of the categorical weights sum from 1.
const weightTolerance = 1e-6

func checkRange(name string, lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return errors.Wrapf(ErrInvalidRange, "%s [%v, %v]", name, lo, hi)
	}
	return nil
}

func checkProbability(name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return errors.Wrapf(ErrInvalidRange, "%s probability %v", name, p)
	}
	return nil
}

// between returns a uniformly distributed value in [lo, hi).
func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// betweenInt returns a uniformly distributed integer in [lo, hi].
func betweenInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// UniformNoise returns a field of independent values uniformly distributed in [lo, hi).
func UniformNoise(size int, lo, hi float64, rng *rand.Rand) (*Field, error) {
	if err := checkArgs(size, rng); err != nil {
		return nil, err
	}
	if err := checkRange("uniform noise", lo, hi); err != nil {
		return nil, err
	}

	noise := newField(size)
	for i := range noise.Pix {
		noise.Pix[i] = between(rng, lo, hi)
	}
	return noise, nil
}

// GaussianNoise returns a field of independent normally distributed values.
// The values are not clamped.
func GaussianNoise(size int, mean, sigma float64, rng *rand.Rand) (*Field, error) {
	if err := checkArgs(size, rng); err != nil {
		return nil, err
	}
	if math.IsNaN(sigma) || sigma < 0 {
		return nil, errors.Wrapf(ErrInvalidRange, "gaussian noise sigma %v", sigma)
	}

	noise := newField(size)
	for i := range noise.Pix {
		noise.Pix[i] = mean + rng.NormFloat64()*sigma
	}
	return noise, nil
}

// Bernoulli returns a binary field where every value is 1 with probability p and 0 otherwise.
func Bernoulli(size int, p float64, rng *rand.Rand) (*Field, error) {
	if err := checkArgs(size, rng); err != nil {
		return nil, err
	}
	if err := checkProbability("bernoulli", p); err != nil {
		return nil, err
	}

	field := newField(size)
	for i := range field.Pix {
		if rng.Float64() < p {
			field.Pix[i] = 1
		}
	}
	return field, nil
}

// Categorical returns a field whose values are drawn from levels,
// each level being selected with the probability given by the weight at the same index.
// The weights must be non-negative and sum up to 1.
func Categorical(size int, levels, weights []float64, rng *rand.Rand) (*Field, error) {
	if err := checkArgs(size, rng); err != nil {
		return nil, err
	}
	if len(levels) == 0 || len(levels) != len(weights) {
		return nil, errors.Wrapf(ErrInvalidWeights, "%d levels with %d weights", len(levels), len(weights))
	}

	var sum float64
	cdf := make([]float64, len(weights))
	for i, w := range weights {
		if math.IsNaN(w) || w < 0 {
			return nil, errors.Wrapf(ErrInvalidWeights, "negative weight %v", w)
		}
		sum += w
		cdf[i] = sum
	}
	if utils.Abs(sum-1) > weightTolerance {
		return nil, errors.Wrapf(ErrInvalidWeights, "weights sum up to %v", sum)
	}

	field := newField(size)
	last := len(levels) - 1
	for i := range field.Pix {
		u := rng.Float64() * sum
		k := 0
		for k < last && u >= cdf[k] {
			k++
		}
		field.Pix[i] = levels[k]
	}
	return field, nil
}

// Falloff defines the radial profile of a single bump.
type Falloff int

const (
	// Cone decreases linearly from the bump center to its radius.
	Cone Falloff = iota
	// Gaussian follows a bell curve with the standard deviation of half the radius.
	Gaussian
)

// BumpOptions configures the bump accumulation.
// Center and radius bounds are expressed as fractions of the canvas size.
type BumpOptions struct {
	Count      int
	MinCenter  float64
	MaxCenter  float64
	MinRadius  float64
	MaxRadius  float64
	MinLevel   float64
	MaxLevel   float64
	Weight     float64
	Falloff    Falloff
	ClampLevel float64
}

func (o BumpOptions) validate() error {
	if o.Count < 0 {
		return errors.Wrapf(ErrInvalidRange, "bump count %d", o.Count)
	}
	if err := checkRange("bump center", o.MinCenter, o.MaxCenter); err != nil {
		return err
	}
	if err := checkRange("bump radius", o.MinRadius, o.MaxRadius); err != nil {
		return err
	}
	if o.MinRadius <= 0 {
		return errors.Wrapf(ErrInvalidRange, "bump radius %v", o.MinRadius)
	}
	return checkRange("bump level", o.MinLevel, o.MaxLevel)
}

// Bumps accumulates Count randomly placed radial bumps into a single field.
// Each bump has a random center, radius and peak level; its contribution is
// scaled by Weight and summed. When ClampLevel is positive the running sum is
// clamped to [0, ClampLevel] after every bump.
func Bumps(size int, opts BumpOptions, rng *rand.Rand) (*Field, error) {
	if err := checkArgs(size, rng); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	acc := newField(size)
	s := float64(size)
	for n := 0; n < opts.Count; n++ {
		var (
			cx    = math.Round(between(rng, opts.MinCenter, opts.MaxCenter) * s)
			cy    = math.Round(between(rng, opts.MinCenter, opts.MaxCenter) * s)
			r     = math.Max(1, math.Round(between(rng, opts.MinRadius, opts.MaxRadius)*s))
			level = between(rng, opts.MinLevel, opts.MaxLevel) * opts.Weight
		)
		profile := bumpProfile(opts.Falloff, r)

		// Only the bounding box of the bump can be affected.
		reach := r
		if opts.Falloff == Gaussian {
			reach = 1.5 * r
		}
		x0, x1 := utils.Max(0, int(cx-reach)), utils.Min(size-1, int(cx+reach))
		y0, y1 := utils.Max(0, int(cy-reach)), utils.Min(size-1, int(cy+reach))

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				d := math.Hypot(float64(x)-cx, float64(y)-cy)
				i := y*size + x
				acc.Pix[i] += level * profile(d)
				if opts.ClampLevel > 0 {
					acc.Pix[i] = utils.Clamp(acc.Pix[i], 0, opts.ClampLevel)
				}
			}
		}
	}
	return acc, nil
}

func bumpProfile(falloff Falloff, r float64) func(d float64) float64 {
	if falloff == Gaussian {
		sigma := r / 2
		return func(d float64) float64 {
			return math.Exp(-(d * d) / (2 * sigma * sigma))
		}
	}
	return func(d float64) float64 {
		return utils.Clamp(1-d/r, 0, 1)
	}
}

// StripeOptions configures the vertical stripe field.
type StripeOptions struct {
	Step     int
	Prob     float64
	MinLevel float64
	MaxLevel float64
}

// Stripes lights every Step-th pixel column with probability Prob.
// A lit column gets a single random level in [MinLevel, MaxLevel] along its whole height.
func Stripes(size int, opts StripeOptions, rng *rand.Rand) (*Field, error) {
	if err := checkArgs(size, rng); err != nil {
		return nil, err
	}
	if opts.Step <= 0 {
		return nil, errors.Wrapf(ErrInvalidRange, "stripe step %d", opts.Step)
	}
	if err := checkProbability("stripe", opts.Prob); err != nil {
		return nil, err
	}
	if err := checkRange("stripe level", opts.MinLevel, opts.MaxLevel); err != nil {
		return nil, err
	}

	field := newField(size)
	for x := 0; x < size; x += opts.Step {
		if rng.Float64() >= opts.Prob {
			continue
		}
		level := math.Round(between(rng, opts.MinLevel, opts.MaxLevel))
		for y := 0; y < size; y++ {
			field.Pix[y*size+x] = level
		}
	}
	return field, nil
}

// BlockOptions configures the random block field. Dimensions are in pixels.
type BlockOptions struct {
	Count     int
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
	MinLevel  float64
	MaxLevel  float64
}

// Blocks scatters Count rectangles of random dimension and level over the canvas.
// A rectangle overwrites the values of the rectangles drawn before it.
func Blocks(size int, opts BlockOptions, rng *rand.Rand) (*Field, error) {
	if err := checkArgs(size, rng); err != nil {
		return nil, err
	}
	if opts.Count < 0 || opts.MinWidth < 0 || opts.MinHeight < 0 ||
		opts.MinWidth > opts.MaxWidth || opts.MinHeight > opts.MaxHeight {
		return nil, errors.Wrapf(ErrInvalidRange, "blocks %+v", opts)
	}
	if err := checkRange("block level", opts.MinLevel, opts.MaxLevel); err != nil {
		return nil, err
	}

	field := newField(size)
	for n := 0; n < opts.Count; n++ {
		x, y := betweenInt(rng, 0, size), betweenInt(rng, 0, size)
		w := betweenInt(rng, opts.MinWidth, opts.MaxWidth)
		h := betweenInt(rng, opts.MinHeight, opts.MaxHeight)
		level := math.Round(between(rng, opts.MinLevel, opts.MaxLevel))
		field.fill(x, y, x+w, y+h, level)
	}
	return field, nil
}

// fill sets every value of the inclusive rectangle (x0,y0)-(x1,y1) to v.
// It mutates the receiver and is only used while a field is being built.
func (f *Field) fill(x0, y0, x1, y1 int, v float64) {
	x0, y0 = utils.Max(0, x0), utils.Max(0, y0)
	x1, y1 = utils.Min(f.Size-1, x1), utils.Min(f.Size-1, y1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			f.Pix[y*f.Size+x] = v
		}
	}
}
