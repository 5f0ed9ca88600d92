package brushgen

import (
	"image"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/vector"
)

// kappa is the control point distance approximating a quarter circle with a cubic Bézier curve.
const kappa = 0.5522847498

// Point is a canvas coordinate.
type Point struct {
	X, Y float64
}

// ShapeType identifies the shapes the rasterizer can produce.
type ShapeType string

const (
	PolygonShape ShapeType = "polygon"
	EllipseShape ShapeType = "ellipse"
	StrokeShape  ShapeType = "stroke"
)

// rasterize fills the path traced by fn and returns its anti-aliased coverage as a field in [0,1].
func rasterize(size int, fn func(r *vector.Rasterizer)) *Field {
	r := vector.NewRasterizer(size, size)
	fn(r)

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	f := newField(size)
	for i, a := range dst.Pix {
		f.Pix[i] = float64(a) / 255
	}
	return f
}

// Polygon returns the coverage of the closed polygon defined by pts.
func Polygon(size int, pts []Point) (*Field, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if len(pts) < 3 {
		return nil, errors.Wrapf(ErrInvalidRange, "%s needs at least 3 points, got %d", PolygonShape, len(pts))
	}
	return rasterize(size, func(r *vector.Rasterizer) {
		r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, p := range pts[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
	}), nil
}

// Ellipse returns the coverage of the filled ellipse centered at c with radii rx and ry.
func Ellipse(size int, c Point, rx, ry float64) (*Field, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if !(rx > 0 && ry > 0) {
		return nil, errors.Wrapf(ErrInvalidRange, "%s radii %v, %v", EllipseShape, rx, ry)
	}

	var (
		x, y   = float32(c.X), float32(c.Y)
		ax, ay = float32(rx), float32(ry)
		kx, ky = float32(rx * kappa), float32(ry * kappa)
	)
	return rasterize(size, func(r *vector.Rasterizer) {
		r.MoveTo(x+ax, y)
		r.CubeTo(x+ax, y+ky, x+kx, y+ay, x, y+ay)
		r.CubeTo(x-kx, y+ay, x-ax, y+ky, x-ax, y)
		r.CubeTo(x-ax, y-ky, x-kx, y-ay, x, y-ay)
		r.CubeTo(x+kx, y-ay, x+ax, y-ky, x+ax, y)
		r.ClosePath()
	}), nil
}

// Stroke returns the coverage of a straight line segment of the given width.
func Stroke(size int, from, to Point, width float64) (*Field, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if !(width > 0) {
		return nil, errors.Wrapf(ErrInvalidRange, "%s width %v", StrokeShape, width)
	}

	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return newField(size), nil
	}
	// Offset perpendicular to the segment direction.
	nx, ny := -dy/length*width/2, dx/length*width/2

	return Polygon(size, []Point{
		{from.X + nx, from.Y + ny},
		{to.X + nx, to.Y + ny},
		{to.X - nx, to.Y - ny},
		{from.X - nx, from.Y - ny},
	})
}

// StarPoints returns the vertices of a star with the given number of tips,
// alternating between the outer and inner radius. The first tip points upwards.
func StarPoints(c Point, tips int, outer, inner float64) []Point {
	n := tips * 2
	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		angle := float64(i)*math.Pi/float64(tips) - math.Pi/2
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts = append(pts, Point{
			X: c.X + r*math.Cos(angle),
			Y: c.Y + r*math.Sin(angle),
		})
	}
	return pts
}
