package palette

import (
	"testing"

	"pigment/internal/colour"
)

func TestSquareDistanceWeights(t *testing.T) {
	tests := []struct {
		name string
		c1   colour.RGB
		c2   colour.RGB
		want int
	}{
		{
			name: "identical colours",
			c1:   colour.RGB{R: 10, G: 20, B: 30},
			c2:   colour.RGB{R: 10, G: 20, B: 30},
			want: 0,
		},
		{
			name: "small red difference uses weights 2,4,3",
			c1:   colour.RGB{R: 10, G: 20, B: 30},
			c2:   colour.RGB{R: 0, G: 0, B: 0},
			want: 2*10*10 + 4*20*20 + 3*30*30,
		},
		{
			name: "large positive red difference uses weights 3,4,2",
			c1:   colour.RGB{R: 200, G: 0, B: 0},
			c2:   colour.RGB{R: 0, G: 0, B: 0},
			want: 3 * 200 * 200,
		},
		{
			name: "negative red difference stays on the 2,4,3 branch",
			c1:   colour.RGB{R: 0, G: 0, B: 0},
			c2:   colour.RGB{R: 200, G: 0, B: 0},
			want: 2 * 200 * 200,
		},
		{
			name: "black to white",
			c1:   colour.RGB{R: 0, G: 0, B: 0},
			c2:   colour.RGB{R: 255, G: 255, B: 255},
			want: (2 + 4 + 3) * 255 * 255,
		},
		{
			name: "white to black",
			c1:   colour.RGB{R: 255, G: 255, B: 255},
			c2:   colour.RGB{R: 0, G: 0, B: 0},
			want: (3 + 4 + 2) * 255 * 255,
		},
		{
			name: "red difference of exactly 127 keeps 2,4,3",
			c1:   colour.RGB{R: 127, G: 0, B: 0},
			c2:   colour.RGB{R: 0, G: 0, B: 0},
			want: 2 * 127 * 127,
		},
		{
			name: "red difference of exactly 128 switches to 3,4,2",
			c1:   colour.RGB{R: 128, G: 0, B: 0},
			c2:   colour.RGB{R: 0, G: 0, B: 0},
			want: 3 * 128 * 128,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SquareDistance(tt.c1, tt.c2); got != tt.want {
				t.Errorf("SquareDistance() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSquareDistanceAsymmetry(t *testing.T) {
	// The branch is taken on the raw signed red difference, so the
	// function is not symmetric.
	c1 := colour.RGB{R: 200, G: 0, B: 0}
	c2 := colour.RGB{R: 0, G: 0, B: 0}

	forward := SquareDistance(c1, c2)
	backward := SquareDistance(c2, c1)

	if forward == backward {
		t.Errorf("expected asymmetric distances, got %d both ways", forward)
	}
	if forward != 3*200*200 {
		t.Errorf("SquareDistance(c1, c2) = %d, want %d", forward, 3*200*200)
	}
	if backward != 2*200*200 {
		t.Errorf("SquareDistance(c2, c1) = %d, want %d", backward, 2*200*200)
	}
}

func TestAssign(t *testing.T) {
	t.Run("first sample creates a cluster", func(t *testing.T) {
		clusters := assign(colour.RGB{R: 255}, nil)
		if len(clusters) != 1 {
			t.Fatalf("expected 1 cluster, got %d", len(clusters))
		}
		if clusters[0].centroid != (colour.RGB{R: 255}) {
			t.Errorf("centroid = %+v, want founding sample", clusters[0].centroid)
		}
		if len(clusters[0].members) != 1 {
			t.Errorf("members = %d, want 1", len(clusters[0].members))
		}
	})

	t.Run("nearby sample joins the first matching cluster", func(t *testing.T) {
		clusters := assign(colour.RGB{R: 255}, nil)
		clusters = assign(colour.RGB{R: 250}, clusters)
		if len(clusters) != 1 {
			t.Fatalf("expected 1 cluster, got %d", len(clusters))
		}
		if len(clusters[0].members) != 2 {
			t.Errorf("members = %d, want 2", len(clusters[0].members))
		}
	})

	t.Run("distant sample starts a new cluster", func(t *testing.T) {
		clusters := assign(colour.RGB{R: 0, G: 0, B: 0}, nil)
		clusters = assign(colour.RGB{R: 255, G: 255, B: 255}, clusters)
		if len(clusters) != 2 {
			t.Fatalf("expected 2 clusters, got %d", len(clusters))
		}
	})
}
