package colour

import "math/rand/v2"

// RandomRGB returns a colour with each channel drawn uniformly from [0, 255].
func RandomRGB(r *rand.Rand) RGB {
	return RGB{
		R: uint8(r.IntN(256)),
		G: uint8(r.IntN(256)),
		B: uint8(r.IntN(256)),
	}
}
