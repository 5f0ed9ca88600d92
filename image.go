package brushgen

import (
	"image"
	"image/color"
	"math"

	"github.com/esimov/brushgen/utils"
)

// quantize converts an alpha scaled value to 8 bits, clamping it to [0,255] first.
func quantize(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(utils.Clamp(v, 0, 255)))
}

// Image returns the brush stamp: an image whose color is opaque white in every
// pixel and whose alpha channel is the field, clamped to [0,255] and quantized.
func (f *Field) Image() *image.NRGBA {
	dst := image.NewNRGBA(f.Bounds())
	for i, v := range f.Pix {
		di := i * 4
		dst.Pix[di+0] = 0xff
		dst.Pix[di+1] = 0xff
		dst.Pix[di+2] = 0xff
		dst.Pix[di+3] = quantize(v)
	}
	return dst
}

// FieldFromAlpha extracts the alpha channel of a square image into an alpha scaled field.
func FieldFromAlpha(img image.Image) (*Field, error) {
	b := img.Bounds()
	if err := checkSize(b.Dx()); err != nil {
		return nil, err
	}
	if b.Dx() != b.Dy() {
		return nil, ErrInvalidSize
	}

	f := newField(b.Dx())
	for y := 0; y < f.Size; y++ {
		for x := 0; x < f.Size; x++ {
			a := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA).A
			f.Pix[y*f.Size+x] = float64(a)
		}
	}
	return f, nil
}

// gray converts the field to an 8 bit grayscale image.
func (f *Field) gray() *image.Gray {
	dst := image.NewGray(f.Bounds())
	for i, v := range f.Pix {
		dst.Pix[i] = quantize(v)
	}
	return dst
}

// fieldFromImage reads back the red channel of a filtered grayscale image
// with min-point at (0, 0).
func fieldFromImage(img image.Image) *Field {
	b := img.Bounds()
	f := newField(b.Dx())

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < f.Size; y++ {
			si := src.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < f.Size; x++ {
				f.Pix[y*f.Size+x] = float64(src.Pix[si])
				si += 4
			}
		}
	case *image.RGBA:
		for y := 0; y < f.Size; y++ {
			si := src.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < f.Size; x++ {
				f.Pix[y*f.Size+x] = float64(src.Pix[si])
				si += 4
			}
		}
	default:
		for y := 0; y < f.Size; y++ {
			for x := 0; x < f.Size; x++ {
				c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
				f.Pix[y*f.Size+x] = float64(c.Y)
			}
		}
	}
	return f
}
