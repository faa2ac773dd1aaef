package image

import (
	"image"

	"golang.org/x/image/draw"
)

// GrabSize is the edge length render targets are rasterized at before
// extraction. Palette extraction is O(w*h*clusters) per pass, so large
// sources are reduced to a small thumbnail first.
const GrabSize = 32

// ScaleTo downscales an image so its longer edge is at most size pixels,
// preserving aspect ratio. Images already within bounds are returned
// unchanged.
func ScaleTo(img image.Image, size int) image.Image {
	if img == nil || size <= 0 {
		return img
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= size && h <= size {
		return img
	}

	if w > h {
		h = h * size / w
		w = size
	} else {
		w = w * size / h
		h = size
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
