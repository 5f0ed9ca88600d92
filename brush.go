package brushgen

import (
	"fmt"
	"image"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// The default recipes. Their parameters are tuned by eye and can be
// overridden by building a Brush around a modified copy.
var (
	DefaultCrayon = Crayon{
		Feather:  0.8,
		MinLevel: 120,
		MaxLevel: 255,
		HoleRate: 0.15,
	}

	DefaultPencil = Pencil{
		Feather: 0.4,
		Mean:    180,
		Sigma:   60,
	}

	DefaultWatercolor = Watercolor{
		Feather:   0.1,
		RimInner:  0.85,
		RimOuter:  0.98,
		BodyLevel: 100,
		RimLevel:  120,
		Bleed: BumpOptions{
			Count:     6,
			MinCenter: 0.2,
			MaxCenter: 0.8,
			MinRadius: 0.1,
			MaxRadius: 0.3,
			MinLevel:  10,
			MaxLevel:  30,
			Weight:    1,
			Falloff:   Gaussian,
		},
		BlurRadius: 8,
	}

	DefaultOil = Oil{
		Feather: 0.9,
		Stripes: StripeOptions{
			Step:     2,
			Prob:     0.8,
			MinLevel: 180,
			MaxLevel: 255,
		},
		RandomAngle: true,
		BlurRadius:  1,
	}

	DefaultChalk = Chalk{
		Feather:    0.7,
		Levels:     []float64{0, 150, 255},
		Weights:    []float64{0.7, 0.1, 0.2},
		MedianSize: 3,
	}

	DefaultInk = Ink{
		Feather:    0.7,
		DiskRadius: 0.8,
		BlurRadius: 12,
	}

	DefaultSpray = Spray{
		Feather:    0,
		Exponent:   3,
		Level:      255,
		BlurRadius: 0.8,
	}

	DefaultStar = Star{
		Tips:       5,
		Outer:      0.45,
		Inner:      0.18,
		BlurRadius: 1,
	}

	DefaultSmoke = Smoke{
		Feather: 0,
		Puffs: BumpOptions{
			Count:     20,
			MinCenter: 0.25,
			MaxCenter: 0.75,
			MinRadius: 0.125,
			MaxRadius: 0.25,
			MinLevel:  255,
			MaxLevel:  255,
			Weight:    0.3,
			Falloff:   Cone,
		},
		BlurRadius: 12,
	}

	DefaultGlitch = Glitch{
		Feather: 0.9,
		Blocks: BlockOptions{
			Count:     35,
			MinWidth:  15,
			MaxWidth:  70,
			MinHeight: 3,
			MaxHeight: 12,
			MinLevel:  150,
			MaxLevel:  255,
		},
		BaseSize: 256,
	}

	DefaultGrass = Grass{
		Blades:    80,
		MinLength: 0.1,
		MaxLength: 0.48,
		MinLevel:  180,
		MaxLevel:  255,
		Width:     2,
	}

	DefaultNeon = Neon{
		Glows: []Glow{
			{Radius: 0.48, Level: 40},
			{Radius: 0.3, Level: 80},
			{Radius: 0.15, Level: 200},
		},
		BlurRadius: 4,
	}
)

// Brush associates a recipe with its name and default canvas size.
type Brush struct {
	Name   string
	Size   int
	Recipe Recipe

	// seed offset, the position of the brush in the catalog.
	// Brushes built outside of Catalog are not cataloged.
	index     int
	cataloged bool
}

// Generate synthesizes the brush stamp at the given size.
func (b Brush) Generate(size int, rng *rand.Rand) (*image.NRGBA, error) {
	img, err := Generate(b.Recipe, size, rng)
	if err != nil {
		return nil, errors.Wrapf(err, "generating %s brush", b.Name)
	}
	return img, nil
}

// FileName returns the file name of the stamp with the given extension, e.g. brush_ink.png.
func (b Brush) FileName(ext string) string {
	return fmt.Sprintf("brush_%s.%s", b.Name, strings.TrimPrefix(ext, "."))
}

// Catalog returns the supported brushes in their canonical order.
func Catalog() []Brush {
	brushes := []Brush{
		{Name: "crayon", Size: 256, Recipe: DefaultCrayon},
		{Name: "pencil", Size: 128, Recipe: DefaultPencil},
		{Name: "watercolor", Size: 512, Recipe: DefaultWatercolor},
		{Name: "oil", Size: 256, Recipe: DefaultOil},
		{Name: "chalk", Size: 256, Recipe: DefaultChalk},
		{Name: "ink", Size: 256, Recipe: DefaultInk},
		{Name: "star", Size: 256, Recipe: DefaultStar},
		{Name: "smoke", Size: 512, Recipe: DefaultSmoke},
		{Name: "glitch", Size: 256, Recipe: DefaultGlitch},
		{Name: "grass", Size: 256, Recipe: DefaultGrass},
		{Name: "neon", Size: 256, Recipe: DefaultNeon},
		{Name: "spray", Size: 512, Recipe: DefaultSpray},
	}
	for i := range brushes {
		brushes[i].index = i
		brushes[i].cataloged = true
	}
	return brushes
}

// Lookup returns the catalog brush with the given name. The match is case insensitive.
func Lookup(name string) (Brush, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, b := range Catalog() {
		if b.Name == name {
			return b, nil
		}
	}
	return Brush{}, errors.Wrapf(ErrUnknownBrush, "%q", name)
}

// Select resolves a comma separated list of brush names.
// An empty list selects the whole catalog.
func Select(names string) ([]Brush, error) {
	if strings.TrimSpace(names) == "" {
		return Catalog(), nil
	}
	var brushes []Brush
	for _, name := range strings.Split(names, ",") {
		b, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		brushes = append(brushes, b)
	}
	return brushes, nil
}
