package brushgen

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// The post-process filters operate on alpha scaled fields: the values are
// clamped to [0,255] and quantized to 8 bits before the filter is applied.

// Blur applies a Gaussian blur to the field. The radius is the standard
// deviation of the Gaussian kernel. A zero radius returns a copy of the field.
func (f *Field) Blur(radius float64) (*Field, error) {
	if math.IsNaN(radius) || radius < 0 {
		return nil, errors.Wrapf(ErrInvalidRange, "blur radius %v", radius)
	}
	if radius == 0 {
		return f.Clone(), nil
	}
	return fieldFromImage(imaging.Blur(f.gray(), radius)), nil
}

// Median replaces every value with the median of the size×size window around it.
// The window size must be a positive odd number.
func (f *Field) Median(size int) (*Field, error) {
	if size <= 0 || size%2 == 0 {
		return nil, errors.Wrapf(ErrInvalidRange, "median window %d", size)
	}
	if size == 1 {
		return f.Clone(), nil
	}
	return fieldFromImage(effect.Median(f.gray(), float64(size/2))), nil
}

// Rotate rotates the field counter-clockwise by angle degrees around the
// pixel (size/2, size/2), the center of the radial masks. The output keeps
// the field dimension; the areas uncovered by the rotation are transparent.
func (f *Field) Rotate(angle float64) *Field {
	// Pad even sizes to the next odd size, so the pivot is a pixel center.
	c := f.Size / 2
	side := 2*c + 1
	src := imaging.Paste(imaging.New(side, side, color.Black), f.gray(), image.Pt(0, 0))

	rotated := imaging.Rotate(src, angle, color.Black)
	b := rotated.Bounds()
	x0, y0 := (b.Dx()-1)/2-c, (b.Dy()-1)/2-c
	return fieldFromImage(imaging.Crop(rotated, image.Rect(x0, y0, x0+f.Size, y0+f.Size)))
}
