package image

import (
	"fmt"
	"image"
	"math/bits"
	"strconv"

	"github.com/corona10/goimagehash"
)

// hashLen is the number of hex digits in a rendered Hash.
const hashLen = 16

// Hash is a 64-bit average hash of an image.
type Hash uint64

// AverageHash computes the average hash of img: the image is reduced to 8x8
// grayscale and each bit records whether a pixel is above the mean.
func AverageHash(img image.Image) (Hash, error) {
	h, err := goimagehash.AverageHash(img)
	if err != nil {
		return 0, fmt.Errorf("failed to compute average hash: %w", err)
	}
	return Hash(h.GetHash()), nil
}

// ParseHash parses the 16 hex digit form produced by Hash.String.
func ParseHash(s string) (Hash, error) {
	if len(s) != hashLen {
		return 0, fmt.Errorf("invalid hash %q: must be %d hex digits", s, hashLen)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hash %q: %w", s, err)
	}
	return Hash(v), nil
}

// String returns the hash as 16 lowercase hex digits.
func (h Hash) String() string {
	return fmt.Sprintf("%016x", uint64(h))
}

// Distance returns the number of differing bits between two hashes.
func (h Hash) Distance(other Hash) int {
	return bits.OnesCount64(uint64(h ^ other))
}
