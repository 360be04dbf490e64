// Package image provides the canvas, rasteriser, hashing and file I/O for
// generated gradient images.
package image

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

// Load loads an image from a file path.
// Supported formats: PNG, BMP, TIFF, WebP.
func Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return img, nil
}

// HashFromFilename extracts the hash a file was named after, e.g.
// "/tmp/ff00ff00ff00ff00.png" yields the hash ff00ff00ff00ff00.
func HashFromFilename(path string) (Hash, error) {
	base := filepath.Base(path)
	return ParseHash(strings.TrimSuffix(base, filepath.Ext(base)))
}
