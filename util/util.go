// Package util holds small helpers shared by animations and the host.
package util

import (
	"math/rand"

	"github.com/fogleman/ease"
)

// RandomRange returns a uniformly random value in [min, max).
func RandomRange(rng *rand.Rand, min float64, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// GenerateLut builds a gain table that eases from 0 up to 1 over its first
// half and back down over its second half.
func GenerateLut(length int) []float64 {
	if length < 2 {
		return make([]float64, length)
	}
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	return lut
}
