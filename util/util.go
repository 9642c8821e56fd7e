package util

import (
	"math/rand"

	"github.com/fogleman/ease"
)

// RandomiseSaturation picks a value uniformly in [min, max).
func RandomiseSaturation(min float64, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// GenerateLut builds a symmetric gain table that eases up to its centre
// and back down.
func GenerateLut(length int) []float64 {
	if length <= 0 {
		return nil
	}
	half := length / 2
	lut := make([]float64, length)
	if half == 0 {
		lut[0] = 1
		return lut
	}
	increment := 1.0 / float64(half)
	for i, j := 0, length-1; i < half; i, j = i+1, j-1 {
		value := ease.InOutQuad(float64(i+1) * increment)
		lut[i] = value
		lut[j] = value
	}
	if length%2 == 1 {
		lut[half] = 1
	}
	return lut
}
