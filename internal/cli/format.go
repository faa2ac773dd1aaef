package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"pigment/internal/colour"
	"pigment/internal/palette"
)

// swatchWidth is the width of the terminal colour preview block.
const swatchWidth = 6

// previewEnabled reports whether colour previews should actually be
// rendered: they are only useful on a terminal.
func previewEnabled(requested bool) bool {
	return requested && term.IsTerminal(int(os.Stdout.Fd()))
}

// swatch renders a coloured block for terminal previews.
func swatch(c colour.RGB) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", swatchWidth))
}

// formatResult renders an extraction result in the requested format.
func formatResult(result palette.Result, format string, preview bool) (string, error) {
	switch format {
	case "hex":
		return formatText(result, preview, func(c colour.RGB) string { return c.Hex() }), nil
	case "rgb":
		return formatText(result, preview, func(c colour.RGB) string { return c.String() }), nil
	case "json":
		jsonBytes, err := result.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}

// formatText renders the palette entries and derived colours as text,
// one entry per line, using render for the colour representation.
func formatText(result palette.Result, preview bool, render func(colour.RGB) string) string {
	if result.IsEmpty() {
		return "empty palette (no opaque pixels)\n"
	}

	var b strings.Builder
	for _, entry := range result.Entries {
		if preview {
			b.WriteString(swatch(entry.Color))
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%s  ratio=%.4f  contrast=%s\n", render(entry.Color), entry.Ratio, render(entry.Contrast))
	}

	b.WriteString("\n")
	writeDerived(&b, "dominant", result.Dominant, preview, render)
	writeDerived(&b, "most saturated", result.MostSaturated, preview, render)
	writeDerived(&b, "closest to black", result.ClosestToBlack, preview, render)
	writeDerived(&b, "closest to white", result.ClosestToWhite, preview, render)
	writeDerived(&b, "suggested contrast", result.SuggestedContrast, preview, render)

	return b.String()
}

func writeDerived(b *strings.Builder, label string, c colour.RGB, preview bool, render func(colour.RGB) string) {
	if preview {
		b.WriteString(swatch(c))
		b.WriteString("  ")
	}
	fmt.Fprintf(b, "%-19s %s\n", label+":", render(c))
}
