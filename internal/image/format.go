package image

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output encoding for generated images.
type Format string

// Supported output formats.
const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatPNG, FormatBMP, FormatTIFF}
}

// String implements pflag.Value.
func (f Format) String() string {
	return string(f)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	candidate := Format(strings.ToLower(s))
	for _, known := range Formats() {
		if candidate == known {
			*f = candidate
			return nil
		}
	}
	return fmt.Errorf("unsupported format: %s (supported: png, bmp, tiff)", s)
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

// Ext returns the file extension for the format, including the leading dot.
func (f Format) Ext() string {
	if f == "" {
		return "." + string(FormatPNG)
	}
	return "." + string(f)
}

// Encode writes img to w in this format.
func (f Format) Encode(w io.Writer, img image.Image) error {
	switch f {
	case FormatPNG, "":
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported format: %s", f)
	}
}
