package colour

import (
	"errors"
	"fmt"
)

// ErrInvalidBlockCount is returned when the number of blocks per vector is
// not a positive integer.
var ErrInvalidBlockCount = errors.New("invalid block count")

// MaxBlocksPerVector is the largest n NewGradient accepts; n*n stays within a
// 32-bit int.
const MaxBlocksPerVector = 46340

// Gradient is the ordered list of block colours, in row-major grid order.
type Gradient []RGB

// NewGradient interpolates from start towards end over n*n steps.
//
// Slot i holds the colour at factor i/(n*n), so slot 0 is exactly start and
// the last slot stops one step short of end. Note that end itself is never
// stored: a 2x2 black to white gradient ends at 191, not 255.
func NewGradient(start, end RGB, n int) (Gradient, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d blocks per vector (must be > 0)", ErrInvalidBlockCount, n)
	}
	if n > MaxBlocksPerVector {
		return nil, fmt.Errorf("%w: %d blocks per vector (must be <= %d)", ErrInvalidBlockCount, n, MaxBlocksPerVector)
	}

	total := n * n
	gradient := make(Gradient, total)
	for step := range gradient {
		gradient[step] = RGB{
			R: Lerp(start.R, end.R, step, total),
			G: Lerp(start.G, end.G, step, total),
			B: Lerp(start.B, end.B, step, total),
		}
	}

	return gradient, nil
}

// Lerp returns the channel value step/total of the way from a to b.
// The result is truncated toward zero. total must be positive.
func Lerp(a, b uint8, step, total int) uint8 {
	factor := float64(step) / float64(total)
	return uint8(float64(a) + float64(int(b)-int(a))*factor)
}

// Len returns the number of blocks in the gradient.
func (g Gradient) Len() int {
	return len(g)
}

// Hex returns the gradient colours as hex codes.
func (g Gradient) Hex() []string {
	hexColours := make([]string, len(g))
	for i, c := range g {
		hexColours[i] = c.Hex()
	}
	return hexColours
}
