/*
Package brushgen procedurally synthesizes the alpha stamps of a fixed catalog of
painting brushes (crayon, pencil, watercolor, oil, chalk, ink, star, smoke,
glitch, grass, neon and spray).

Every stamp is a square image with an opaque white color and an alpha channel
carrying the texture of the brush. The stamps are built from a small set of
primitives: radial feather masks, stochastic noise fields, field algebra and
post-process filters (Gaussian blur, median, rotation).

The package provides a command line interface, which writes the whole catalog
into a directory. To check the supported flags type:

	$ brushgen --help

A single brush can also be generated from code:

	package main

	import (
		"fmt"
		"math/rand"

		"github.com/esimov/brushgen"
	)

	func main() {
		ink, _ := brushgen.Lookup("ink")
		img, err := ink.Generate(256, rand.New(rand.NewSource(42)))
		if err != nil {
			fmt.Printf("Error generating the brush: %s", err.Error())
		}
		_ = img
	}
*/
package brushgen
