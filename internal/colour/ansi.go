package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 2
)

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
// Uses background colour with spaces for a solid block.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bgColour + strings.Repeat(" ", width) + ansiReset
}

// FormatColourWithPreview formats a colour with its preview and hex code.
func FormatColourWithPreview(rgb RGB, width int) string {
	return fmt.Sprintf("%s %s", ColourPreview(rgb, width), rgb.Hex())
}

// GridPreview renders the gradient as an n-column grid of swatches, one grid
// row per line. Each swatch is width characters wide.
func GridPreview(g Gradient, n, width int) string {
	if n <= 0 {
		return ""
	}

	var sb strings.Builder
	for i, c := range g {
		sb.WriteString(ColourPreview(c, width))
		if (i+1)%n == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
