package brushgen

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertStamp checks the invariants shared by every brush stamp.
func assertStamp(t *testing.T, img *image.NRGBA, size int) {
	t.Helper()
	require.NotNil(t, img)
	require.Equal(t, image.Rect(0, 0, size, size), img.Bounds())

	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0xff || img.Pix[i+1] != 0xff || img.Pix[i+2] != 0xff {
			t.Fatalf("stamp color should be white, got %v at offset %d", img.Pix[i:i+3], i)
		}
	}
}

func alphaOf(t *testing.T, img *image.NRGBA) *Field {
	t.Helper()
	f, err := FieldFromAlpha(img)
	require.NoError(t, err)
	return f
}

func cornersOf(f *Field) []float64 {
	last := f.Size - 1
	return []float64{f.At(0, 0), f.At(last, 0), f.At(0, last), f.At(last, last)}
}

func TestRecipe_AllBrushesProduceWhiteStamps(t *testing.T) {
	for _, b := range Catalog() {
		b := b
		t.Run(b.Name, func(t *testing.T) {
			img, err := b.Generate(64, newRand(11))
			require.NoError(t, err)
			assertStamp(t, img, 64)

			alpha := alphaOf(t, img)
			assert.Greater(t, alpha.MaxValue(), 0.0, "the stamp should not be empty")
		})
	}
}

func TestRecipe_InvalidArguments(t *testing.T) {
	_, err := Generate(DefaultInk, 0, newRand(1))
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = Generate(DefaultInk, -8, newRand(1))
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = Generate(DefaultInk, 64, nil)
	assert.ErrorIs(t, err, ErrNilRand)

	crayon := DefaultCrayon
	crayon.Feather = 1
	_, err = Generate(crayon, 64, newRand(1))
	assert.ErrorIs(t, err, ErrInvalidFeather)

	spray := DefaultSpray
	spray.Exponent = 1
	_, err = Generate(spray, 64, newRand(1))
	assert.ErrorIs(t, err, ErrInvalidRange)

	star := DefaultStar
	star.Tips = 1
	_, err = Generate(star, 64, newRand(1))
	assert.ErrorIs(t, err, ErrInvalidRange)

	neon := Neon{Glows: []Glow{{Radius: 0, Level: 100}}}
	_, err = Generate(neon, 64, newRand(1))
	assert.ErrorIs(t, err, ErrInvalidFeather)

	for _, size := range []int{0, -1} {
		_, err = Grass{}.Alpha(size, newRand(1))
		assert.ErrorIs(t, err, ErrInvalidSize, "size %d", size)
	}
	_, err = Grass{}.Alpha(16, nil)
	assert.ErrorIs(t, err, ErrNilRand)
	_, err = Grass{Blades: -1}.Alpha(16, newRand(1))
	assert.ErrorIs(t, err, ErrInvalidRange)

	chalk := DefaultChalk
	chalk.Weights = []float64{0.5, 0.5, 0.5}
	_, err = Generate(chalk, 64, newRand(1))
	assert.ErrorIs(t, err, ErrInvalidWeights)
}

func TestRecipe_PencilSeeds(t *testing.T) {
	first, err := Generate(DefaultPencil, 128, newRand(1))
	require.NoError(t, err)
	second, err := Generate(DefaultPencil, 128, newRand(2))
	require.NoError(t, err)

	assertStamp(t, first, 128)
	assertStamp(t, second, 128)
	assert.NotEqual(t, first.Pix, second.Pix)

	again, err := Generate(DefaultPencil, 128, newRand(1))
	require.NoError(t, err)
	assert.Equal(t, first.Pix, again.Pix)
}

func TestRecipe_InkBlot(t *testing.T) {
	img, err := Generate(DefaultInk, 256, newRand(3))
	require.NoError(t, err)
	assertStamp(t, img, 256)

	alpha := alphaOf(t, img)
	assert.Greater(t, alpha.Mean(image.Rect(103, 103, 153, 153)), 100.0)
	for _, v := range cornersOf(alpha) {
		assert.Less(t, v, 5.0)
	}
}

func TestRecipe_CrayonHoles(t *testing.T) {
	alpha, err := DefaultCrayon.Alpha(256, newRand(4))
	require.NoError(t, err)

	// Inside the opaque core of the mask only the holes are transparent.
	core := image.Rect(96, 96, 160, 160)
	holes := 0
	for y := core.Min.Y; y < core.Max.Y; y++ {
		for x := core.Min.X; x < core.Max.X; x++ {
			v := alpha.At(x, y)
			if v == 0 {
				holes++
				continue
			}
			assert.True(t, v >= 120 && v < 255, "crayon grain %v", v)
		}
	}
	rate := float64(holes) / float64(core.Dx()*core.Dy())
	assert.InDelta(t, 0.15, rate, 0.03)
}

func TestRecipe_WatercolorWetEdge(t *testing.T) {
	w := DefaultWatercolor
	w.Bleed.Count = 0

	alpha, err := w.Alpha(512, newRand(5))
	require.NoError(t, err)

	rim := alpha.At(256+243, 256)
	inside := alpha.At(256+205, 256)
	assert.Greater(t, rim, inside, "the rim should be more opaque than the body next to it")

	withBleed, err := DefaultWatercolor.Alpha(512, newRand(5))
	require.NoError(t, err)
	for _, v := range withBleed.Pix {
		if v < 0 || v > 255 {
			t.Fatalf("watercolor alpha out of range: %v", v)
		}
	}
}

func TestRecipe_OilStreaks(t *testing.T) {
	oil := DefaultOil
	oil.RandomAngle = false
	oil.BlurRadius = 0

	alpha, err := oil.Alpha(64, newRand(6))
	require.NoError(t, err)

	for y := 0; y < 64; y++ {
		for x := 1; x < 64; x += 2 {
			require.Equal(t, 0.0, alpha.At(x, y), "odd column %d should be unlit", x)
		}
	}
	assert.Greater(t, alpha.MaxValue(), 0.0)

	rotated, err := DefaultOil.Alpha(64, newRand(6))
	require.NoError(t, err)
	assert.Equal(t, 64, rotated.Size)
}

func TestRecipe_ChalkLevels(t *testing.T) {
	chalk := DefaultChalk
	chalk.Feather = 0.999
	chalk.MedianSize = 1

	alpha, err := chalk.Alpha(64, newRand(7))
	require.NoError(t, err)

	// With a hard mask the interior holds the discrete levels only.
	for y := 16; y < 48; y++ {
		for x := 16; x < 48; x++ {
			v := alpha.At(x, y)
			assert.True(t, v == 0 || v == 150 || v == 255, "unexpected chalk level %v", v)
		}
	}

	filtered, err := DefaultChalk.Alpha(64, newRand(7))
	require.NoError(t, err)
	for _, v := range cornersOf(filtered) {
		assert.Equal(t, 0.0, v)
	}
}

func TestRecipe_SprayDensity(t *testing.T) {
	spray := DefaultSpray
	spray.BlurRadius = 0

	alpha, err := spray.Alpha(256, newRand(8))
	require.NoError(t, err)

	center := alpha.Mean(image.Rect(118, 118, 138, 138))
	rim := alpha.Mean(image.Rect(200, 118, 220, 138))
	assert.Greater(t, center, rim)
	for _, v := range cornersOf(alpha) {
		assert.Equal(t, 0.0, v)
	}
}

func TestRecipe_Shapes(t *testing.T) {
	star, err := DefaultStar.Alpha(256, newRand(9))
	require.NoError(t, err)
	assert.Greater(t, star.At(128, 128), 250.0)
	assert.Equal(t, 0.0, star.At(0, 0))

	neon, err := DefaultNeon.Alpha(256, newRand(9))
	require.NoError(t, err)
	assert.InDelta(t, 200, neon.At(128, 128), 1)
	assert.Less(t, neon.At(0, 0), 1.0)

	smoke, err := DefaultSmoke.Alpha(256, newRand(9))
	require.NoError(t, err)
	assert.Greater(t, smoke.Mean(image.Rect(96, 96, 160, 160)), 0.0)
	assert.Less(t, smoke.At(0, 0), 1.0)

	grass, err := DefaultGrass.Alpha(256, newRand(9))
	require.NoError(t, err)
	assert.Greater(t, grass.At(128, 128), 200.0)
	assert.Equal(t, 0.0, grass.At(0, 0))
	assert.LessOrEqual(t, grass.MaxValue(), 255.0)
}

func TestRecipe_GlitchScalesBlocks(t *testing.T) {
	for _, size := range []int{64, 256, 300} {
		alpha, err := DefaultGlitch.Alpha(size, newRand(10))
		require.NoError(t, err)
		assert.Equal(t, size, alpha.Size)
		for _, v := range cornersOf(alpha) {
			assert.Equal(t, 0.0, v)
		}
	}
}
