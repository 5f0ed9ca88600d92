package brushgen

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/esimov/brushgen/utils"
)

const (
	sheetColumns = 4
	sheetPadding = 8
)

// sheetBackground is dark, since the stamps are white.
var sheetBackground = color.NRGBA{R: 0x28, G: 0x28, B: 0x28, A: 0xff}

// Sheet lays out the generated stamps on a grid of cell×cell tiles, for
// reviewing a whole run in a single image. Failed results are left out.
// It returns nil if there is nothing to lay out.
func Sheet(results []Result, cell int) *image.NRGBA {
	var stamps []*image.NRGBA
	for _, r := range results {
		if r.Err == nil && r.Image != nil {
			stamps = append(stamps, r.Image)
		}
	}
	if len(stamps) == 0 || cell <= 0 {
		return nil
	}

	cols := utils.Min(sheetColumns, len(stamps))
	rows := (len(stamps) + cols - 1) / cols
	width := cols*cell + (cols+1)*sheetPadding
	height := rows*cell + (rows+1)*sheetPadding

	dst := imaging.New(width, height, sheetBackground)
	for i, stamp := range stamps {
		tile := imaging.Fit(stamp, cell, cell, imaging.Lanczos)
		b := tile.Bounds()

		// Center the tile inside its cell.
		x := sheetPadding + (i%cols)*(cell+sheetPadding) + (cell-b.Dx())/2
		y := sheetPadding + (i/cols)*(cell+sheetPadding) + (cell-b.Dy())/2
		dst = imaging.Overlay(dst, tile, image.Pt(x, y), 1.0)
	}
	return dst
}
