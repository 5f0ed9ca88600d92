package brushgen

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/esimov/brushgen/utils"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// SheetName is the file name of the contact sheet written next to the stamps.
const SheetName = "brushes_preview.png"

// sheetCell is the tile size of the contact sheet.
const sheetCell = 160

// Supported output formats.
var validFormats = []string{"png", "bmp"}

// Ops holds the I/O options of a generation run.
type Ops struct {
	// Dst is the output directory. It is created if it does not exist.
	Dst    string
	Format string
	// Sheet also writes a contact sheet of the generated stamps.
	Sheet bool
	// Strict stops queueing brushes once one of them fails and returns its
	// error. Brushes already being generated are finished but not written.
	Strict bool
	// Out receives the status messages. Defaults to stderr.
	Out io.Writer
}

// Execute generates the brushes and writes every stamp as brush_<name>.<format>
// into the output directory. A failing brush is reported and skipped, unless
// Strict is set, in which case the first failure stops the run.
// It returns the paths of the written files.
func (g *Generator) Execute(brushes []Brush, op *Ops) ([]string, error) {
	if op.Format == "" {
		op.Format = "png"
	}
	if !utils.Contains(validFormats, op.Format) {
		return nil, errors.Errorf("%v file type not supported", op.Format)
	}
	if op.Out == nil {
		op.Out = os.Stderr
	}
	if err := os.MkdirAll(op.Dst, 0755); err != nil {
		return nil, errors.Wrapf(err, "unable to create the output directory %s", op.Dst)
	}

	spinner := utils.NewSpinner(fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ BRUSHGEN", utils.StatusMessage),
		utils.DecorateText(fmt.Sprintf("⇢ generating %d brushes...", len(brushes)), utils.DefaultMessage),
	), time.Millisecond*80)

	now := time.Now()
	spinner.Start()
	results := g.run(brushes, op.Strict)
	spinner.Stop()

	var (
		paths  []string
		failed int
	)
	for _, res := range results {
		if res.Err == nil {
			path := filepath.Join(op.Dst, res.Brush.FileName(op.Format))
			res.Err = writeImg(path, op.Format, res.Image)
			if res.Err == nil {
				paths = append(paths, path)
			}
		}
		op.printOpStatus(res)

		if res.Err != nil {
			if op.Strict {
				return paths, res.Err
			}
			failed++
		}
	}

	if op.Sheet {
		if sheet := Sheet(results, sheetCell); sheet != nil {
			path := filepath.Join(op.Dst, SheetName)
			if err := writeImg(path, "png", sheet); err != nil {
				return paths, err
			}
			paths = append(paths, path)
			fmt.Fprintf(op.Out, "The contact sheet has been saved as: %s\n",
				utils.DecorateText(path, utils.SuccessMessage),
			)
		}
	}

	fmt.Fprintf(op.Out, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	if failed > 0 {
		return paths, errors.Errorf("%d of %d brushes failed", failed, len(brushes))
	}
	return paths, nil
}

// writeImg encodes the image into a newly created file.
func writeImg(path, format string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "unable to create the destination file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			// remove the partially written file in case of an error
			os.Remove(path)
		}
	}()
	return encodeImg(f, format, img)
}

// encodeImg encodes an image to a destination of type io.Writer.
func encodeImg(w io.Writer, format string, img image.Image) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	}
	return errors.Errorf("unsupported image format: %s", format)
}

// printOpStatus displays the relevant information about the generated brush.
func (op *Ops) printOpStatus(res Result) {
	if res.Err != nil {
		log.New(op.Out, "", 0).Printf("%s %s",
			utils.DecorateText(fmt.Sprintf("Error generating the %s brush:", res.Brush.Name), utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v", res.Err), utils.DefaultMessage),
		)
		return
	}
	fmt.Fprintf(op.Out, "The brush has been saved as: %s %s\n",
		utils.DecorateText(res.Brush.FileName(op.Format), utils.SuccessMessage),
		utils.DecorateText(fmt.Sprintf("(%s)", utils.FormatTime(res.Elapsed)), utils.DefaultMessage),
	)
}
