package brushgen

import (
	"image"
	"math"
	"math/rand"

	"github.com/esimov/brushgen/imop"
	"github.com/pkg/errors"
)

// Recipe synthesizes the alpha field of a brush stamp.
// Implementations have no shared state; all randomness comes from rng.
type Recipe interface {
	Alpha(size int, rng *rand.Rand) (*Field, error)
}

// Generate runs the recipe and wraps its alpha field into a white stamp image.
func Generate(r Recipe, size int, rng *rand.Rand) (*image.NRGBA, error) {
	if err := checkArgs(size, rng); err != nil {
		return nil, err
	}
	alpha, err := r.Alpha(size, rng)
	if err != nil {
		return nil, err
	}
	return alpha.Image(), nil
}

// Crayon is a grainy disk with random holes, imitating broken wax.
type Crayon struct {
	Feather  float64
	MinLevel float64
	MaxLevel float64
	HoleRate float64
}

func (c Crayon) Alpha(size int, rng *rand.Rand) (*Field, error) {
	mask, err := RadialMask(size, c.Feather)
	if err != nil {
		return nil, err
	}
	noise, err := UniformNoise(size, c.MinLevel, c.MaxLevel, rng)
	if err != nil {
		return nil, err
	}
	keep, err := Bernoulli(size, 1-c.HoleRate, rng)
	if err != nil {
		return nil, err
	}
	return noise.Mul(mask).Mul(keep).Clamp(0, 255), nil
}

// Pencil is a small soft stamp of dense graphite grain.
type Pencil struct {
	Feather float64
	Mean    float64
	Sigma   float64
}

func (p Pencil) Alpha(size int, rng *rand.Rand) (*Field, error) {
	mask, err := RadialMask(size, p.Feather)
	if err != nil {
		return nil, err
	}
	noise, err := GaussianNoise(size, p.Mean, p.Sigma, rng)
	if err != nil {
		return nil, err
	}
	return noise.Mul(mask).Clamp(0, 255), nil
}

// Watercolor is a diffuse wash whose rim is more opaque than its body (the wet edge).
type Watercolor struct {
	Feather    float64
	RimInner   float64
	RimOuter   float64
	BodyLevel  float64
	RimLevel   float64
	Bleed      BumpOptions
	BlurRadius float64
}

func (w Watercolor) Alpha(size int, rng *rand.Rand) (*Field, error) {
	body, err := RadialMask(size, w.Feather)
	if err != nil {
		return nil, err
	}
	rim, err := RingMask(size, w.RimInner, w.RimOuter)
	if err != nil {
		return nil, err
	}
	alpha := body.Scale(w.BodyLevel).Add(rim.Scale(w.RimLevel))

	if w.Bleed.Count > 0 {
		bleed, err := Bumps(size, w.Bleed, rng)
		if err != nil {
			return nil, err
		}
		alpha = alpha.Add(bleed.Mul(body.Map(func(v float64) float64 {
			// The bleed stays inside the wash.
			return math.Min(1, v*4)
		})))
	}
	return alpha.Clamp(0, 255).Blur(w.BlurRadius)
}

// Oil is a set of directional bristle streaks at a random orientation.
type Oil struct {
	Feather float64
	Stripes StripeOptions
	// Angle is the streak rotation in degrees, used when RandomAngle is false.
	Angle       float64
	RandomAngle bool
	BlurRadius  float64
}

func (o Oil) Alpha(size int, rng *rand.Rand) (*Field, error) {
	mask, err := RadialMask(size, o.Feather)
	if err != nil {
		return nil, err
	}
	stripes, err := Stripes(size, o.Stripes, rng)
	if err != nil {
		return nil, err
	}
	angle := o.Angle
	if o.RandomAngle {
		angle = rng.Float64() * 180
	}
	// The streaks are masked first, so the rotation never exposes the square corners.
	return stripes.Mul(mask).Rotate(angle).Blur(o.BlurRadius)
}

// Chalk is a porous stamp built from a few discrete opacity levels.
type Chalk struct {
	Feather    float64
	Levels     []float64
	Weights    []float64
	MedianSize int
}

func (c Chalk) Alpha(size int, rng *rand.Rand) (*Field, error) {
	mask, err := RadialMask(size, c.Feather)
	if err != nil {
		return nil, err
	}
	noise, err := Categorical(size, c.Levels, c.Weights, rng)
	if err != nil {
		return nil, err
	}
	return noise.Mul(mask).Clamp(0, 255).Median(c.MedianSize)
}

// Ink is a soft circular blot with a diffused edge.
type Ink struct {
	Feather float64
	// DiskRadius is the disk radius as a fraction of half the canvas size.
	DiskRadius float64
	BlurRadius float64
}

func (in Ink) Alpha(size int, _ *rand.Rand) (*Field, error) {
	mask, err := RadialMask(size, in.Feather)
	if err != nil {
		return nil, err
	}
	c := float64(size) / 2
	disk, err := Ellipse(size, Point{c, c}, c*in.DiskRadius, c*in.DiskRadius)
	if err != nil {
		return nil, err
	}
	blot, err := disk.Scale(255).Blur(in.BlurRadius)
	if err != nil {
		return nil, err
	}
	return blot.Mul(mask), nil
}

// Spray is a scatter of dots whose density drops sharply away from the center.
type Spray struct {
	Feather    float64
	Exponent   float64
	Level      float64
	BlurRadius float64
}

func (s Spray) Alpha(size int, rng *rand.Rand) (*Field, error) {
	if math.IsNaN(s.Exponent) || s.Exponent < 2 {
		return nil, errors.Wrapf(ErrInvalidRange, "spray exponent %v must be at least 2", s.Exponent)
	}
	mask, err := RadialMask(size, s.Feather)
	if err != nil {
		return nil, err
	}
	noise, err := UniformNoise(size, 0, 1, rng)
	if err != nil {
		return nil, err
	}
	hits := noise.Less(mask.Pow(s.Exponent))
	return hits.Mul(mask).Scale(s.Level).Blur(s.BlurRadius)
}

// Star is a slightly softened star shape.
type Star struct {
	Tips int
	// Outer and Inner radii are fractions of the canvas size.
	Outer      float64
	Inner      float64
	BlurRadius float64
}

func (s Star) Alpha(size int, _ *rand.Rand) (*Field, error) {
	if s.Tips < 2 {
		return nil, errors.Wrapf(ErrInvalidRange, "star tips %d", s.Tips)
	}
	c := float64(size / 2)
	shape, err := Polygon(size, StarPoints(Point{c, c}, s.Tips, s.Outer*float64(size), s.Inner*float64(size)))
	if err != nil {
		return nil, err
	}
	return shape.Scale(255).Blur(s.BlurRadius)
}

// Smoke is a cloud of overlapping blurred puffs.
type Smoke struct {
	Feather    float64
	Puffs      BumpOptions
	BlurRadius float64
}

func (s Smoke) Alpha(size int, rng *rand.Rand) (*Field, error) {
	mask, err := RadialMask(size, s.Feather)
	if err != nil {
		return nil, err
	}
	puffs, err := Bumps(size, s.Puffs, rng)
	if err != nil {
		return nil, err
	}
	return puffs.Mul(mask).Clamp(0, 255).Blur(s.BlurRadius)
}

// Glitch scatters opaque horizontal blocks inside a disk.
type Glitch struct {
	Feather float64
	Blocks  BlockOptions
	// BaseSize is the canvas size the block dimensions refer to;
	// they are scaled proportionally for other sizes.
	BaseSize int
}

func (g Glitch) Alpha(size int, rng *rand.Rand) (*Field, error) {
	mask, err := RadialMask(size, g.Feather)
	if err != nil {
		return nil, err
	}
	opts := g.Blocks
	if g.BaseSize > 0 && g.BaseSize != size {
		scale := func(v int) int {
			return int(math.Round(float64(v) * float64(size) / float64(g.BaseSize)))
		}
		opts.MinWidth, opts.MaxWidth = scale(opts.MinWidth), scale(opts.MaxWidth)
		opts.MinHeight, opts.MaxHeight = scale(opts.MinHeight), scale(opts.MaxHeight)
	}
	blocks, err := Blocks(size, opts, rng)
	if err != nil {
		return nil, err
	}
	return blocks.Mul(mask), nil
}

// Grass is a tuft of blades radiating from the center.
type Grass struct {
	Blades int
	// MinLength and MaxLength are fractions of the canvas size.
	MinLength float64
	MaxLength float64
	MinLevel  float64
	MaxLevel  float64
	Width     float64
}

func (g Grass) Alpha(size int, rng *rand.Rand) (*Field, error) {
	if err := checkArgs(size, rng); err != nil {
		return nil, err
	}
	if g.Blades < 0 {
		return nil, errors.Wrapf(ErrInvalidRange, "grass blades %d", g.Blades)
	}
	if err := checkRange("blade length", g.MinLength, g.MaxLength); err != nil {
		return nil, err
	}
	if err := checkRange("blade level", g.MinLevel, g.MaxLevel); err != nil {
		return nil, err
	}

	var (
		c      = float64(size / 2)
		center = Point{c, c}
		acc    = newField(size)
	)
	for n := 0; n < g.Blades; n++ {
		angle := rng.Float64() * 2 * math.Pi
		length := between(rng, g.MinLength, g.MaxLength) * float64(size)
		level := float64(betweenInt(rng, int(g.MinLevel), int(g.MaxLevel))) / 255

		tip := Point{
			X: c + length*math.Cos(angle),
			Y: c + length*math.Sin(angle),
		}
		blade, err := Stroke(size, center, tip, g.Width)
		if err != nil {
			return nil, err
		}
		if acc, err = acc.Compose(imop.SrcOver, blade.Scale(level)); err != nil {
			return nil, err
		}
	}
	return acc.Scale(255), nil
}

// Glow is a single neon ring: a mask whose plateau covers
// 1-Radius of the canvas, weighted by Level.
type Glow struct {
	Radius float64
	Level  float64
}

// Neon stacks concentric glows into a bright core with a fading halo.
type Neon struct {
	Glows      []Glow
	BlurRadius float64
}

func (n Neon) Alpha(size int, _ *rand.Rand) (*Field, error) {
	alpha, err := NewField(size)
	if err != nil {
		return nil, err
	}
	for _, g := range n.Glows {
		m, err := RadialMask(size, 1-g.Radius)
		if err != nil {
			return nil, err
		}
		alpha = alpha.Max(m.Scale(g.Level))
	}
	return alpha.Clamp(0, 255).Blur(n.BlurRadius)
}
