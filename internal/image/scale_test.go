package image

import (
	"image"
	"testing"
)

func TestScaleTo(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		size  int
		wantW int
		wantH int
	}{
		{name: "wide image scales by width", w: 100, h: 50, size: 32, wantW: 32, wantH: 16},
		{name: "tall image scales by height", w: 50, h: 100, size: 32, wantW: 16, wantH: 32},
		{name: "square image", w: 64, h: 64, size: 32, wantW: 32, wantH: 32},
		{name: "small image untouched", w: 16, h: 16, size: 32, wantW: 16, wantH: 16},
		{name: "exact size untouched", w: 32, h: 32, size: 32, wantW: 32, wantH: 32},
		{name: "extreme aspect ratio keeps at least one pixel", w: 1000, h: 2, size: 16, wantW: 16, wantH: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewNRGBA(image.Rect(0, 0, tt.w, tt.h))
			dst := ScaleTo(src, tt.size)
			bounds := dst.Bounds()
			if bounds.Dx() != tt.wantW || bounds.Dy() != tt.wantH {
				t.Errorf("ScaleTo() bounds = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), tt.wantW, tt.wantH)
			}
		})
	}

	t.Run("nil image", func(t *testing.T) {
		if got := ScaleTo(nil, 32); got != nil {
			t.Errorf("ScaleTo(nil) = %v, want nil", got)
		}
	})

	t.Run("non-positive size untouched", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 100, 100))
		if got := ScaleTo(src, 0); got != src {
			t.Error("ScaleTo with size 0 should return the input unchanged")
		}
	})
}
