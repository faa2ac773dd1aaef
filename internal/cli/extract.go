package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pigment/internal/image"
	"pigment/internal/palette"
)

var (
	// Extract command flags
	extractFormat     string
	extractOutput     string
	extractPreview    bool
	extractResize     int
	extractIterations int
	extractIcon       bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image|url|directory>",
	Short: "Extract a colour palette from an image",
	Long: `Extract a ranked colour palette from an image.

The extract command samples every opaque pixel, clusters the samples by
perceptual proximity, and prints the resulting palette together with the
derived theming colours. Directories are scanned and a random image is
picked; URLs are fetched over HTTP(S).

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract a palette from a wallpaper
  pigment extract wallpaper.jpg

  # Emit the full result as JSON
  pigment extract --format json wallpaper.png

  # Downscale to 32x32 before extraction, like a grabbed render target
  pigment extract --resize 32 screenshot.png

  # Resolve an icon-theme name and extract from the icon bitmap
  pigment extract --icon folder-music

  # Show terminal colour swatches
  pigment extract --preview wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "", "output format (hex, rgb, json)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().BoolVar(&extractPreview, "preview", false, "show colour previews in terminal")
	extractCmd.Flags().IntVar(&extractResize, "resize", -1, "downscale longer edge to this size before extraction (0 disables)")
	extractCmd.Flags().IntVar(&extractIterations, "iterations", 0, "centroid refinement passes (default from config)")
	extractCmd.Flags().BoolVar(&extractIcon, "icon", false, "treat the argument as an icon-theme name")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	source := args[0]

	format := extractFormat
	if format == "" {
		format = cfg.Format
	}
	resize := extractResize
	if resize < 0 {
		resize = cfg.Resize
	}
	iterations := extractIterations
	if iterations <= 0 {
		iterations = cfg.Iterations
	}

	var path string
	if extractIcon {
		resolved, err := image.ResolveIcon(source)
		if err != nil {
			return err
		}
		path = resolved
		// Icons are rasterized small before extraction.
		if resize == 0 {
			resize = image.GrabSize
		}
		log.Debug("icon resolved", "name", source, "path", path)
	} else {
		if err := image.ValidateImagePath(source); err != nil {
			return fmt.Errorf("invalid image path: %w", err)
		}
		resolved, err := image.ResolveImagePath(source)
		if err != nil {
			return err
		}
		path = resolved
	}

	log.Debug("loading image", "path", path)

	loader := image.NewSmartLoader(cfg.CacheRemote)
	img, err := loader.Load(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	log.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	if resize > 0 {
		img = image.ScaleTo(img, resize)
	}

	result := palette.NewWithIterations(iterations).Extract(img)
	if result.IsEmpty() {
		log.Warn("image has no opaque pixels; palette is empty", "path", path)
	} else {
		log.Debug("extraction complete", "clusters", len(result.Entries), "dominant", result.Dominant.Hex())
	}

	output, err := formatResult(result, format, previewEnabled(extractPreview || cfg.Preview))
	if err != nil {
		return err
	}

	if extractOutput != "" {
		if err := os.WriteFile(extractOutput, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		log.Debug("palette written", "path", extractOutput)
		return nil
	}

	fmt.Print(output)
	return nil
}
