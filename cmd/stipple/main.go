// Command stipple converts a single image file to stippled black-and-white
// PNG without going through the HTTP service:
//
//	stipple input.jpg output.png
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/stipple-server/internal/codec"
	"github.com/ironsheep/stipple-server/internal/stipple"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: stipple <input image> <output.png>")
		fmt.Fprintln(os.Stderr, "Supported inputs: JPEG, PNG, GIF, BMP, TIFF, WebP")
		os.Exit(2)
	}
	input, output := os.Args[1], os.Args[2]

	img, err := imgio.Open(input)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", input, err)
	}

	result := stipple.Stipple(codec.FromImage(img))

	if err := imgio.Save(output, codec.ToImage(result), imgio.PNGEncoder()); err != nil {
		log.Fatalf("Failed to save %s: %v", output, err)
	}
	log.Printf("Wrote %s (%dx%d)", output, result.Width, result.Height)
}
