package image

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/jmylchreest/gradhash/internal/colour"
)

// CanvasSize is the width and height in pixels of every generated image.
const CanvasSize = 1024

// ErrGradientMismatch is returned when a gradient does not hold exactly one
// colour per grid cell.
var ErrGradientMismatch = errors.New("gradient does not match block grid")

// NewCanvas returns a CanvasSize x CanvasSize RGBA canvas, fully transparent.
func NewCanvas() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, CanvasSize, CanvasSize))
}

// Rasterise paints an n x n grid of solid blocks onto canvas, taking colours
// from g in row-major order.
//
// Blocks are canvasWidth/n pixels square. When the width is not a multiple of
// n the leftover strip along the right and bottom edges is left untouched.
func Rasterise(canvas draw.Image, g colour.Gradient, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d blocks per vector (must be > 0)", colour.ErrInvalidBlockCount, n)
	}
	if len(g) != n*n {
		return fmt.Errorf("%w: %d colours for a %dx%d grid", ErrGradientMismatch, len(g), n, n)
	}

	bounds := canvas.Bounds()
	blockSize := bounds.Dx() / n
	if blockSize == 0 {
		return fmt.Errorf("%w: %d blocks per vector exceeds canvas width %d", colour.ErrInvalidBlockCount, n, bounds.Dx())
	}

	for row := range n {
		for col := range n {
			x0 := bounds.Min.X + blockSize*col
			y0 := bounds.Min.Y + blockSize*row
			block := image.Rect(x0, y0, x0+blockSize, y0+blockSize)
			fill := image.NewUniform(g[col+row*n].ToColor())
			draw.Draw(canvas, block, fill, image.Point{}, draw.Src)
		}
	}

	return nil
}

// Render builds the gradient from start to end and paints it onto a new canvas.
// n must be between 1 and CanvasSize.
func Render(start, end colour.RGB, n int) (*image.RGBA, colour.Gradient, error) {
	if n > CanvasSize {
		return nil, nil, fmt.Errorf("%w: %d blocks per vector exceeds canvas width %d", colour.ErrInvalidBlockCount, n, CanvasSize)
	}

	g, err := colour.NewGradient(start, end, n)
	if err != nil {
		return nil, nil, err
	}

	canvas := NewCanvas()
	if err := Rasterise(canvas, g, n); err != nil {
		return nil, nil, err
	}

	return canvas, g, nil
}
