// Package colour provides the RGB value type and the integer-range colour
// space conversions used by the palette extractor.
package colour

import (
	"fmt"
	"image/color"
	"math"
)

// RGB represents an opaque colour with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Inverted returns the channel-wise inversion of the colour.
func (rgb RGB) Inverted() RGB {
	return RGB{R: 255 - rgb.R, G: 255 - rgb.G, B: 255 - rgb.B}
}

// FromColor converts a color.Color to RGB, dropping alpha.
// The conversion goes through NRGBA so that partially transparent pixels
// keep their unpremultiplied channel values.
func FromColor(c color.Color) RGB {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: nrgba.R, G: nrgba.G, B: nrgba.B}
}

// ToColor converts an RGB value to a fully opaque color.Color.
func ToColor(rgb RGB) color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// Gray returns the integer gray luminance of the colour,
// (11*r + 16*g + 5*b) / 32, in the range 0-255.
func Gray(rgb RGB) int {
	return (11*int(rgb.R) + 16*int(rgb.G) + 5*int(rgb.B)) / 32
}

// HSL converts the colour to the HSL space using integer ranges:
// hue 0-359 (-1 when achromatic), saturation and lightness 0-255.
func (rgb RGB) HSL() (h, s, l int) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	lf := (maxVal + minVal) / 2.0
	l = int(math.Round(lf * 255.0))

	if delta == 0 {
		return -1, 0, l
	}

	var sf float64
	if lf < 0.5 {
		sf = delta / (maxVal + minVal)
	} else {
		sf = delta / (2.0 - maxVal - minVal)
	}
	s = int(math.Round(sf * 255.0))

	var hf float64
	switch maxVal {
	case r:
		hf = (g - b) / delta
		if g < b {
			hf += 6
		}
	case g:
		hf = (b-r)/delta + 2
	case b:
		hf = (r-g)/delta + 4
	}
	h = int(math.Round(hf*60.0)) % 360

	return h, s, l
}

// FromHSL builds an RGB colour from integer-range HSL components:
// hue 0-359 (-1 for achromatic), saturation and lightness 0-255.
// Out-of-range saturation and lightness are clamped.
func FromHSL(h, s, l int) RGB {
	sf := float64(clampByte(s)) / 255.0
	lf := float64(clampByte(l)) / 255.0

	if h < 0 || sf == 0 {
		v := uint8(math.Round(lf * 255.0))
		return RGB{R: v, G: v, B: v}
	}

	hf := float64(h % 360)

	var q float64
	if lf < 0.5 {
		q = lf * (1 + sf)
	} else {
		q = lf + sf - lf*sf
	}
	p := 2*lf - q

	r := hueToComponent(p, q, hf+120)
	g := hueToComponent(p, q, hf)
	b := hueToComponent(p, q, hf-120)

	return RGB{
		R: uint8(math.Round(r * 255.0)),
		G: uint8(math.Round(g * 255.0)),
		B: uint8(math.Round(b * 255.0)),
	}
}

// hueToComponent is a helper for HSL to RGB conversion.
func hueToComponent(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// HSVSaturation returns the HSV saturation in the range 0-255.
func (rgb RGB) HSVSaturation() int {
	maxVal := max3(rgb.R, rgb.G, rgb.B)
	if maxVal == 0 {
		return 0
	}
	minVal := min3(rgb.R, rgb.G, rgb.B)
	return int(math.Round(255.0 * float64(maxVal-minVal) / float64(maxVal)))
}

// HSVValue returns the HSV value (brightness) in the range 0-255.
func (rgb RGB) HSVValue() int {
	return int(max3(rgb.R, rgb.G, rgb.B))
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func max3(a, b, c uint8) uint8 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c uint8) uint8 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
