package palette

import (
	"image"
	"image/color"
	"sort"

	"pigment/internal/colour"
)

// DefaultIterations is the number of centroid refinement passes.
const DefaultIterations = 5

// Extractor extracts a ranked colour palette from an image.
type Extractor struct {
	iterations int
}

// New creates an Extractor with the default iteration count.
func New() *Extractor {
	return &Extractor{iterations: DefaultIterations}
}

// NewWithIterations creates an Extractor with a custom refinement iteration
// count. Values below 1 fall back to the default.
func NewWithIterations(iterations int) *Extractor {
	if iterations < 1 {
		iterations = DefaultIterations
	}
	return &Extractor{iterations: iterations}
}

// Extract computes the palette for an image. It is a pure function of the
// pixel data: the same image always yields the same Result. A nil or
// zero-width image, or one with only fully transparent pixels, yields an
// empty Result rather than an error.
func (e *Extractor) Extract(img image.Image) Result {
	var result Result

	if img == nil {
		return result
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 {
		return result
	}

	// Sampling pass. Column-major scan order (outer x, inner y) fixes
	// cluster creation order and therefore the final output.
	var samples []colour.RGB
	var clusters []cluster
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			nrgba := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if nrgba.A == 0 {
				continue
			}
			sample := colour.RGB{R: nrgba.R, G: nrgba.G, B: nrgba.B}
			samples = append(samples, sample)
			clusters = assign(sample, clusters)
		}
	}

	if len(samples) == 0 {
		return result
	}

	// Refinement: recompute each centroid as the truncated mean of its
	// members, capture the cluster ratio, collapse membership to the new
	// centroid, then reclassify every sample against the refreshed
	// centroids. New clusters may still appear here, so k is not fixed.
	//
	// The reset seeds each cluster with its own centroid, which keeps
	// every cluster non-empty across passes. The seed takes part in the
	// mean but is excluded from the ratio, so ratios stay a partition of
	// the real samples and sum to 1.
	total := float64(len(samples))
	for iteration := 0; iteration < e.iterations; iteration++ {
		for i := range clusters {
			var r, g, b int
			for _, m := range clusters[i].members {
				r += int(m.R)
				g += int(m.G)
				b += int(m.B)
			}
			n := len(clusters[i].members)
			clusters[i].centroid = colour.RGB{
				R: uint8(r / n),
				G: uint8(g / n),
				B: uint8(b / n),
			}
			clusters[i].ratio = float64(n-clusters[i].seeded) / total
			clusters[i].members = []colour.RGB{clusters[i].centroid}
			clusters[i].seeded = 1
		}

		for _, sample := range samples {
			clusters = assign(sample, clusters)
		}
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return len(clusters[i].members) > len(clusters[j].members)
	})

	clusters = mergeSimilar(clusters)

	return deriveResult(clusters)
}

// mergeSimilar compresses clusters whose centroids drifted within the
// threshold of each other. One backward sweep, smallest cluster first:
// each source is folded into the first larger cluster within range.
// A single sweep does not guarantee a global fixed point when chains of
// merges would be needed; that incompleteness is intentional and kept for
// parity with the reference behaviour.
func mergeSimilar(clusters []cluster) []cluster {
	remove := make([]bool, len(clusters))

	for i := len(clusters) - 1; i >= 0; i-- {
		for j := 0; j < i; j++ {
			if SquareDistance(clusters[i].centroid, clusters[j].centroid) >= MinimumSquareDistance {
				continue
			}

			// Blend factor is the raw ratio of ratios, not a
			// normalised weight. A zero destination ratio keeps
			// the destination centroid unchanged.
			var ratio float64
			if clusters[j].ratio > 0 {
				ratio = clusters[i].ratio / clusters[j].ratio
			}
			src := clusters[i].centroid
			dst := clusters[j].centroid
			clusters[j].centroid = colour.RGB{
				R: uint8(int(ratio*float64(src.R) + (1-ratio)*float64(dst.R))),
				G: uint8(int(ratio*float64(src.G) + (1-ratio)*float64(dst.G))),
				B: uint8(int(ratio*float64(src.B) + (1-ratio)*float64(dst.B))),
			}
			clusters[j].ratio += clusters[i].ratio
			remove[i] = true
			break
		}
	}

	merged := make([]cluster, 0, len(clusters))
	for i := range clusters {
		if !remove[i] {
			merged = append(merged, clusters[i])
		}
	}
	return merged
}

// deriveResult builds the final Result from the merged cluster list:
// ranked entries with contrast colours plus the derived accent colours.
func deriveResult(clusters []cluster) Result {
	result := Result{
		Dominant: clusters[0].centroid,
		// Seeded at the opposite extremes so the first cluster always
		// beats the seed.
		ClosestToBlack: colour.RGB{R: 255, G: 255, B: 255},
		ClosestToWhite: colour.RGB{R: 0, G: 0, B: 0},
		Entries:        make([]Entry, 0, len(clusters)),
	}

	mostSaturatedScore := 0

	for idx, cl := range clusters {
		c := cl.centroid
		contrast := contrastColor(c, clusters, result.Dominant)

		if idx == 0 {
			result.SuggestedContrast = contrast
		}

		if score := saturationScore(c); score > mostSaturatedScore {
			result.MostSaturated = c
			mostSaturatedScore = score
		}

		if colour.Gray(c) > colour.Gray(result.ClosestToWhite) {
			result.ClosestToWhite = c
		}
		if colour.Gray(c) < colour.Gray(result.ClosestToBlack) {
			result.ClosestToBlack = c
		}

		result.Entries = append(result.Entries, Entry{
			Color:    c,
			Ratio:    cl.ratio,
			Contrast: contrast,
		})
	}

	return result
}

// saturationScore favours saturated colours whose brightness sits near 158,
// penalising both washed-out and near-black candidates.
func saturationScore(c colour.RGB) int {
	return c.HSVSaturation() + (158 - abs(158-c.HSVValue()))
}

// contrastColor derives a readable colour to place over a cluster centroid.
// It starts from the channel inversion pushed away from mid-gray lightness,
// then snaps to the nearest palette colour when one is close enough, or
// pushes that nearest colour's lightness further otherwise. Small palettes
// fall back to fixed light/dark grays keyed on the dominant luminance.
func contrastColor(c colour.RGB, clusters []cluster, dominant colour.RGB) colour.RGB {
	h, s, l := c.Inverted().HSL()
	contrast := colour.FromHSL(h, s, 128+(128-l))

	tempContrast := colour.RGB{}
	minimumDistance := maxSquareDistance
	for _, other := range clusters {
		if distance := SquareDistance(contrast, other.centroid); distance < minimumDistance {
			tempContrast = other.centroid
			minimumDistance = distance
		}
	}

	switch {
	case len(clusters) < 3:
		if colour.Gray(dominant) < 120 {
			contrast = colour.RGB{R: 230, G: 230, B: 230}
		} else {
			contrast = colour.RGB{R: 20, G: 20, B: 20}
		}
	// TODO: replace the cluster-count cutoff with an entropy measure
	case float64(SquareDistance(contrast, tempContrast)) < float64(MinimumSquareDistance)*1.5:
		contrast = tempContrast
	default:
		h, s, l = tempContrast.HSL()
		if l > 128 {
			l += 20
		} else {
			l -= 20
		}
		contrast = colour.FromHSL(h, s, l)
	}

	return contrast
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
