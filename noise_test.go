package brushgen

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestNoise_Uniform(t *testing.T) {
	noise, err := UniformNoise(64, 120, 255, newRand(1))
	require.NoError(t, err)

	for _, v := range noise.Pix {
		if v < 120 || v >= 255 {
			t.Fatalf("uniform value out of range: %v", v)
		}
	}
	assert.InDelta(t, 187.5, noise.Mean(noise.Bounds()), 3)

	_, err = UniformNoise(64, 10, 5, newRand(1))
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = UniformNoise(64, 0, 1, nil)
	assert.ErrorIs(t, err, ErrNilRand)
}

func TestNoise_Gaussian(t *testing.T) {
	noise, err := GaussianNoise(128, 180, 60, newRand(2))
	require.NoError(t, err)
	assert.InDelta(t, 180, noise.Mean(noise.Bounds()), 2)

	var variance float64
	for _, v := range noise.Pix {
		variance += (v - 180) * (v - 180)
	}
	variance /= float64(len(noise.Pix))
	assert.InDelta(t, 3600, variance, 150)

	_, err = GaussianNoise(16, 0, -1, newRand(2))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNoise_Bernoulli(t *testing.T) {
	keep, err := Bernoulli(256, 0.85, newRand(3))
	require.NoError(t, err)

	for _, v := range keep.Pix {
		if v != 0 && v != 1 {
			t.Fatalf("bernoulli value should be binary, got %v", v)
		}
	}
	assert.InDelta(t, 0.85, keep.Mean(keep.Bounds()), 0.01)

	_, err = Bernoulli(16, 1.2, newRand(3))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNoise_CategoricalRespectsWeights(t *testing.T) {
	levels := []float64{0, 150, 255}
	weights := []float64{0.6, 0.2, 0.2}

	field, err := Categorical(256, levels, weights, newRand(4))
	require.NoError(t, err)

	counts := map[float64]int{}
	for _, v := range field.Pix {
		counts[v]++
	}
	require.Len(t, counts, len(levels))

	total := float64(len(field.Pix))
	for i, level := range levels {
		assert.InDelta(t, weights[i], float64(counts[level])/total, 0.02, "level %v", level)
	}
}

func TestNoise_CategoricalSingleLevel(t *testing.T) {
	field, err := Categorical(8, []float64{42}, []float64{1}, newRand(5))
	require.NoError(t, err)
	for _, v := range field.Pix {
		assert.Equal(t, 42.0, v)
	}
}

func TestNoise_CategoricalInvalidWeights(t *testing.T) {
	testCases := []struct {
		name    string
		levels  []float64
		weights []float64
	}{
		{"empty", nil, nil},
		{"length mismatch", []float64{0, 1}, []float64{1}},
		{"negative", []float64{0, 1}, []float64{1.5, -0.5}},
		{"sum below one", []float64{0, 1}, []float64{0.5, 0.4}},
		{"sum above one", []float64{0, 1}, []float64{0.7, 0.4}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Categorical(8, tc.levels, tc.weights, newRand(6))
			assert.ErrorIs(t, err, ErrInvalidWeights)
		})
	}
}

func TestNoise_Bumps(t *testing.T) {
	opts := BumpOptions{
		Count:     20,
		MinCenter: 0.25,
		MaxCenter: 0.75,
		MinRadius: 0.125,
		MaxRadius: 0.25,
		MinLevel:  255,
		MaxLevel:  255,
		Weight:    0.3,
	}

	bumps, err := Bumps(128, opts, newRand(7))
	require.NoError(t, err)
	for _, v := range bumps.Pix {
		assert.GreaterOrEqual(t, v, 0.0)
	}
	// The bumps gather around the middle of the canvas.
	assert.Greater(t, bumps.Mean(image.Rect(32, 32, 96, 96)), 0.0)
	assert.Equal(t, 0.0, bumps.At(0, 0))

	opts.ClampLevel = 100
	opts.Falloff = Gaussian
	clamped, err := Bumps(128, opts, newRand(7))
	require.NoError(t, err)
	assert.LessOrEqual(t, clamped.MaxValue(), 100.0)

	opts.Count = 0
	empty, err := Bumps(128, opts, newRand(7))
	require.NoError(t, err)
	assert.Equal(t, 0.0, empty.MaxValue())

	opts.MinRadius = 0
	_, err = Bumps(128, opts, newRand(7))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNoise_Stripes(t *testing.T) {
	opts := StripeOptions{Step: 2, Prob: 0.8, MinLevel: 180, MaxLevel: 255}
	stripes, err := Stripes(64, opts, newRand(8))
	require.NoError(t, err)

	lit := 0
	for x := 0; x < 64; x++ {
		top := stripes.At(x, 0)
		for y := 1; y < 64; y++ {
			require.Equal(t, top, stripes.At(x, y), "column %d should be constant", x)
		}
		if x%2 == 1 {
			assert.Equal(t, 0.0, top, "column %d should be skipped", x)
			continue
		}
		if top != 0 {
			lit++
			assert.True(t, top >= 180 && top <= 255, "column level %v", top)
		}
	}
	assert.Greater(t, lit, 16)

	_, err = Stripes(64, StripeOptions{Step: 0, Prob: 0.5}, newRand(8))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNoise_Blocks(t *testing.T) {
	opts := BlockOptions{
		Count:     35,
		MinWidth:  15,
		MaxWidth:  70,
		MinHeight: 3,
		MaxHeight: 12,
		MinLevel:  150,
		MaxLevel:  255,
	}
	blocks, err := Blocks(256, opts, newRand(9))
	require.NoError(t, err)

	filled := 0
	for _, v := range blocks.Pix {
		if v != 0 {
			filled++
			if v < 150 || v > 255 {
				t.Fatalf("block level out of range: %v", v)
			}
		}
	}
	assert.Greater(t, filled, 0)

	opts.MinWidth = 100
	_, err = Blocks(256, opts, newRand(9))
	assert.ErrorIs(t, err, ErrInvalidRange)
}
