// Pigment - image colour palette extraction for theming
//
// Pigment samples the pixels of an image, clusters them by perceptual
// proximity, and derives the dominant, accent and contrast colours used
// to theme an interface around the image.
package main

import (
	"pigment/internal/cli"
)

func main() {
	cli.Execute()
}
