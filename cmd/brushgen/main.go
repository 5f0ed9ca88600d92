package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/esimov/brushgen"
	"github.com/esimov/brushgen/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌┐ ┬─┐┬ ┬┌─┐┬ ┬┌─┐┌─┐┌┐┌
├┴┐├┬┘│ │└─┐├─┤│ ┬├┤ │││
└─┘┴└─└─┘└─┘┴ ┴└─┘└─┘┘└┘

Procedural brush texture generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	destination = flag.String("out", "assets", "Output directory")
	size        = flag.Int("size", 0, "Canvas size override (0 uses the default size of each brush)")
	seed        = flag.Int64("seed", 0, "Random seed (0 uses the current time)")
	brushes     = flag.String("brush", "", "Comma separated list of brushes to generate (default all)")
	format      = flag.String("format", "png", "Output format: png or bmp")
	sheet       = flag.Bool("sheet", false, "Also write a contact sheet of the generated brushes")
	list        = flag.Bool("list", false, "List the available brushes")
	strict      = flag.Bool("strict", false, "Abort on the first failing brush")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of brushes to generate concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	utils.NoColor = !term.IsTerminal(int(os.Stderr.Fd()))

	if *list {
		for _, b := range brushgen.Catalog() {
			fmt.Printf("%-12s %dx%d\n", b.Name, b.Size, b.Size)
		}
		return
	}

	if *size < 0 {
		log.Fatal(utils.DecorateText("The canvas size should be a positive number!", utils.ErrorMessage))
	}

	selected, err := brushgen.Select(*brushes)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Invalid brush selection: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	// Capture CTRL-C signal and restores back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		if !utils.NoColor {
			fmt.Fprint(os.Stderr, "\033[?25h")
		}
		os.Exit(1)
	}()

	gen := &brushgen.Generator{
		Size:    *size,
		Seed:    *seed,
		Workers: *workers,
	}
	op := &brushgen.Ops{
		Dst:    *destination,
		Format: *format,
		Sheet:  *sheet,
		Strict: *strict,
	}

	if _, err := gen.Execute(selected, op); err != nil {
		log.Fatalf(
			utils.DecorateText("\nError generating the brushes: %s", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
}
