package brushgen

import (
	"fmt"
	"image"
	"math"

	"github.com/esimov/brushgen/imop"
	"github.com/esimov/brushgen/utils"
)

// Field is a square scalar field of Size×Size values stored in row-major order.
// Mask primitives produce normalized fields in the [0,1] range, while the
// brush recipes work with alpha scaled fields in the [0,255] range.
//
// A Field is treated as a value: every operation returns a new field
// and leaves the receiver untouched.
type Field struct {
	Size int
	Pix  []float64
}

// NewField returns a zero valued field of the given size.
func NewField(size int) (*Field, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return newField(size), nil
}

func newField(size int) *Field {
	return &Field{
		Size: size,
		Pix:  make([]float64, size*size),
	}
}

// At returns the field value at (x, y). Coordinates outside of the field return 0.
func (f *Field) At(x, y int) float64 {
	if x < 0 || y < 0 || x >= f.Size || y >= f.Size {
		return 0
	}
	return f.Pix[y*f.Size+x]
}

// Bounds returns the field dimension as an image.Rectangle.
func (f *Field) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Size, f.Size)
}

// Clone returns a copy of the field.
func (f *Field) Clone() *Field {
	dst := newField(f.Size)
	copy(dst.Pix, f.Pix)
	return dst
}

// Map applies fn to every value of the field.
func (f *Field) Map(fn func(v float64) float64) *Field {
	dst := newField(f.Size)
	for i, v := range f.Pix {
		dst.Pix[i] = fn(v)
	}
	return dst
}

// zip combines two fields of identical size elementwise.
// It panics if the fields differ in size.
func (f *Field) zip(g *Field, fn func(a, b float64) float64) *Field {
	if f.Size != g.Size {
		panic(fmt.Sprintf("brushgen: field size mismatch: %d != %d", f.Size, g.Size))
	}
	dst := newField(f.Size)
	for i, v := range f.Pix {
		dst.Pix[i] = fn(v, g.Pix[i])
	}
	return dst
}

// Blend combines the field (the backdrop) with g (the source) using one of
// the blend modes defined in the imop package.
func (f *Field) Blend(mode string, g *Field) (*Field, error) {
	op := imop.NewBlend()
	if err := op.Set(mode); err != nil {
		return nil, err
	}
	return f.zip(g, op.Func()), nil
}

// mustBlend is used with the blend modes known to be supported.
func (f *Field) mustBlend(mode string, g *Field) *Field {
	dst, err := f.Blend(mode, g)
	if err != nil {
		panic(err)
	}
	return dst
}

// Mul multiplies two fields elementwise.
func (f *Field) Mul(g *Field) *Field { return f.mustBlend(imop.Multiply, g) }

// Add sums two fields elementwise.
func (f *Field) Add(g *Field) *Field { return f.mustBlend(imop.Add, g) }

// Sub subtracts g from f elementwise. The result may be negative.
func (f *Field) Sub(g *Field) *Field { return f.mustBlend(imop.Subtract, g) }

// Max returns the elementwise maximum of two fields.
func (f *Field) Max(g *Field) *Field { return f.mustBlend(imop.Lighten, g) }

// Min returns the elementwise minimum of two fields.
func (f *Field) Min(g *Field) *Field { return f.mustBlend(imop.Darken, g) }

// Compose draws the normalized src field over the receiver using the
// Porter-Duff operator cop. Both fields are expected in the [0,1] range.
func (f *Field) Compose(cop string, src *Field) (*Field, error) {
	op := imop.InitOp()
	if err := op.Set(cop); err != nil {
		return nil, err
	}
	return f.zip(src, func(ab, as float64) float64 {
		return op.Alpha(as, ab)
	}), nil
}

// Scale multiplies every value of the field by k.
func (f *Field) Scale(k float64) *Field {
	return f.Map(func(v float64) float64 { return v * k })
}

// Pow raises every value of the field to the power of k.
func (f *Field) Pow(k float64) *Field {
	return f.Map(func(v float64) float64 { return math.Pow(v, k) })
}

// Clamp restricts every value of the field to the [lo, hi] interval.
func (f *Field) Clamp(lo, hi float64) *Field {
	return f.Map(func(v float64) float64 { return utils.Clamp(v, lo, hi) })
}

// Less returns a binary field holding 1 where f is strictly less than g and 0 elsewhere.
func (f *Field) Less(g *Field) *Field {
	return f.zip(g, func(a, b float64) float64 {
		if a < b {
			return 1
		}
		return 0
	})
}

// Mean returns the average value of the field inside r.
// The rectangle is clipped to the field bounds.
func (f *Field) Mean(r image.Rectangle) float64 {
	r = r.Intersect(f.Bounds())
	if r.Empty() {
		return 0
	}
	var sum float64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for _, v := range f.Pix[y*f.Size+r.Min.X : y*f.Size+r.Max.X] {
			sum += v
		}
	}
	return sum / float64(r.Dx()*r.Dy())
}

// MaxValue returns the largest value of the field.
func (f *Field) MaxValue() float64 {
	max := math.Inf(-1)
	for _, v := range f.Pix {
		max = math.Max(max, v)
	}
	return max
}

// MaxGradient returns the largest absolute difference between
// horizontally or vertically adjacent values, a measure of field sharpness.
func (f *Field) MaxGradient() float64 {
	var grad float64
	for y := 0; y < f.Size; y++ {
		for x := 0; x < f.Size; x++ {
			v := f.Pix[y*f.Size+x]
			if x+1 < f.Size {
				grad = math.Max(grad, utils.Abs(f.Pix[y*f.Size+x+1]-v))
			}
			if y+1 < f.Size {
				grad = math.Max(grad, utils.Abs(f.Pix[(y+1)*f.Size+x]-v))
			}
		}
	}
	return grad
}
