// Package colour provides the colour types and helpers used to build gradients.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
)

// ErrInvalidColourFormat is returned when a colour string is not exactly six
// hexadecimal digits.
var ErrInvalidColourFormat = errors.New("invalid colour format")

// hexLen is the length of a colour code without the leading '#'.
const hexLen = 6

// RGB represents a colour with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ParseHex converts a six digit hex colour code (e.g. "ff8000") to RGB.
// The code must not carry a '#' prefix. Upper and lower case are accepted.
func ParseHex(s string) (RGB, error) {
	if len(s) != hexLen {
		return RGB{}, fmt.Errorf("%w: %q must be %d hex digits, got %d", ErrInvalidColourFormat, s, hexLen, len(s))
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidColourFormat, s)
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Hex returns the colour as six lowercase hex digits without a '#' prefix,
// the same form ParseHex accepts.
func (rgb RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// ToColor returns the colour as a fully opaque color.RGBA.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// ToRGB converts a color.Color to RGB, dropping alpha.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}
