package colour

import (
	"image/color"
	"testing"
)

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255}, want: "#ff0000"},
		{name: "green", rgb: RGB{G: 255}, want: "#00ff00"},
		{name: "blue", rgb: RGB{B: 255}, want: "#0000ff"},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: "#ffffff"},
		{name: "black", rgb: RGB{}, want: "#000000"},
		{name: "grey", rgb: RGB{R: 128, G: 128, B: 128}, want: "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	rgb := RGB{R: 1, G: 22, B: 253}
	want := "rgb(1, 22, 253)"
	if got := rgb.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestInverted(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want RGB
	}{
		{name: "black", rgb: RGB{}, want: RGB{R: 255, G: 255, B: 255}},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: RGB{}},
		{name: "mixed", rgb: RGB{R: 10, G: 100, B: 200}, want: RGB{R: 245, G: 155, B: 55}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Inverted(); got != tt.want {
				t.Errorf("Inverted() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  RGB
	}{
		{
			name:  "opaque RGBA",
			color: color.RGBA{R: 255, G: 128, B: 0, A: 255},
			want:  RGB{R: 255, G: 128, B: 0},
		},
		{
			name:  "NRGBA keeps unpremultiplied channels",
			color: color.NRGBA{R: 200, G: 100, B: 50, A: 128},
			want:  RGB{R: 200, G: 100, B: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.color); got != tt.want {
				t.Errorf("FromColor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGray(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want int
	}{
		{name: "black", rgb: RGB{}, want: 0},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: 255},
		{name: "red", rgb: RGB{R: 255}, want: 87},
		{name: "green", rgb: RGB{G: 255}, want: 127},
		{name: "blue", rgb: RGB{B: 255}, want: 39},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Gray(tt.rgb); got != tt.want {
				t.Errorf("Gray() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name  string
		rgb   RGB
		wantH int
		wantS int
		wantL int
	}{
		{name: "black", rgb: RGB{}, wantH: -1, wantS: 0, wantL: 0},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, wantH: -1, wantS: 0, wantL: 255},
		{name: "mid gray", rgb: RGB{R: 128, G: 128, B: 128}, wantH: -1, wantS: 0, wantL: 128},
		{name: "red", rgb: RGB{R: 255}, wantH: 0, wantS: 255, wantL: 128},
		{name: "green", rgb: RGB{G: 255}, wantH: 120, wantS: 255, wantL: 128},
		{name: "blue", rgb: RGB{B: 255}, wantH: 240, wantS: 255, wantL: 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := tt.rgb.HSL()
			if h != tt.wantH || s != tt.wantS || l != tt.wantL {
				t.Errorf("HSL() = (%d, %d, %d), want (%d, %d, %d)", h, s, l, tt.wantH, tt.wantS, tt.wantL)
			}
		})
	}
}

func TestFromHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l int
		want    RGB
	}{
		{name: "achromatic hue", h: -1, s: 0, l: 128, want: RGB{R: 128, G: 128, B: 128}},
		{name: "zero saturation ignores hue", h: 200, s: 0, l: 64, want: RGB{R: 64, G: 64, B: 64}},
		{name: "black", h: -1, s: 0, l: 0, want: RGB{}},
		{name: "white", h: -1, s: 0, l: 255, want: RGB{R: 255, G: 255, B: 255}},
		{name: "lightness clamped above", h: -1, s: 0, l: 300, want: RGB{R: 255, G: 255, B: 255}},
		{name: "lightness clamped below", h: -1, s: 0, l: -42, want: RGB{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromHSL(tt.h, tt.s, tt.l); got != tt.want {
				t.Errorf("FromHSL(%d, %d, %d) = %+v, want %+v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestFromHSLRoundTripHue(t *testing.T) {
	// Round trips through the 8-bit integer space lose a little
	// precision; the hue must survive exactly for saturated primaries.
	tests := []RGB{
		{R: 255},
		{G: 255},
		{B: 255},
	}

	for _, rgb := range tests {
		t.Run(rgb.Hex(), func(t *testing.T) {
			h, s, l := rgb.HSL()
			got := FromHSL(h, s, l)
			gh, _, _ := got.HSL()
			if gh != h {
				t.Errorf("hue changed across round trip: %d -> %d", h, gh)
			}
		})
	}
}

func TestHSVSaturationValue(t *testing.T) {
	tests := []struct {
		name  string
		rgb   RGB
		wantS int
		wantV int
	}{
		{name: "black", rgb: RGB{}, wantS: 0, wantV: 0},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, wantS: 0, wantV: 255},
		{name: "red", rgb: RGB{R: 255}, wantS: 255, wantV: 255},
		{name: "half red", rgb: RGB{R: 128}, wantS: 255, wantV: 128},
		{name: "desaturated", rgb: RGB{R: 200, G: 100, B: 100}, wantS: 128, wantV: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.HSVSaturation(); got != tt.wantS {
				t.Errorf("HSVSaturation() = %d, want %d", got, tt.wantS)
			}
			if got := tt.rgb.HSVValue(); got != tt.wantV {
				t.Errorf("HSVValue() = %d, want %d", got, tt.wantV)
			}
		})
	}
}
