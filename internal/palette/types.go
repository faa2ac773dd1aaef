package palette

import (
	"encoding/json"
	"fmt"

	"pigment/internal/colour"
)

// Entry is one ranked palette colour with its share of the sampled pixels
// and a contrast colour suitable for text rendered over it.
type Entry struct {
	Color    colour.RGB
	Ratio    float64
	Contrast colour.RGB
}

// Result is the immutable outcome of one extraction. A zero Result (no
// entries) means the input had no usable samples; callers must check
// IsEmpty before reading the derived colours.
type Result struct {
	Entries           []Entry
	Dominant          colour.RGB
	MostSaturated     colour.RGB
	ClosestToBlack    colour.RGB
	ClosestToWhite    colour.RGB
	SuggestedContrast colour.RGB
}

// IsEmpty reports whether the extraction produced no clusters.
func (r Result) IsEmpty() bool {
	return len(r.Entries) == 0
}

// ColorJSON represents a colour in JSON output format.
type ColorJSON struct {
	Hex string     `json:"hex"`
	RGB colour.RGB `json:"rgb"`
}

// EntryJSON represents a palette entry in JSON output format.
type EntryJSON struct {
	Color    ColorJSON `json:"color"`
	Ratio    float64   `json:"ratio"`
	Contrast ColorJSON `json:"contrastColor"`
}

// ResultJSON represents the full extraction result in JSON format.
type ResultJSON struct {
	Count             int         `json:"count"`
	Entries           []EntryJSON `json:"palette"`
	Dominant          ColorJSON   `json:"dominant"`
	MostSaturated     ColorJSON   `json:"mostSaturated"`
	ClosestToBlack    ColorJSON   `json:"closestToBlack"`
	ClosestToWhite    ColorJSON   `json:"closestToWhite"`
	SuggestedContrast ColorJSON   `json:"suggestedContrast"`
}

func colorJSON(c colour.RGB) ColorJSON {
	return ColorJSON{Hex: c.Hex(), RGB: c}
}

// ToJSON converts the result to indented JSON.
func (r Result) ToJSON() ([]byte, error) {
	entries := make([]EntryJSON, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = EntryJSON{
			Color:    colorJSON(e.Color),
			Ratio:    e.Ratio,
			Contrast: colorJSON(e.Contrast),
		}
	}

	out := ResultJSON{
		Count:             len(r.Entries),
		Entries:           entries,
		Dominant:          colorJSON(r.Dominant),
		MostSaturated:     colorJSON(r.MostSaturated),
		ClosestToBlack:    colorJSON(r.ClosestToBlack),
		ClosestToWhite:    colorJSON(r.ClosestToWhite),
		SuggestedContrast: colorJSON(r.SuggestedContrast),
	}

	return json.MarshalIndent(out, "", "  ")
}

// String returns a human-readable summary of the result.
func (r Result) String() string {
	if r.IsEmpty() {
		return "Empty palette"
	}

	out := fmt.Sprintf("Palette with %d colours (dominant %s):\n", len(r.Entries), r.Dominant.Hex())
	for i, e := range r.Entries {
		out += fmt.Sprintf("  %2d: %s  ratio=%.4f  contrast=%s\n", i+1, e.Color.Hex(), e.Ratio, e.Contrast.Hex())
	}
	return out
}
