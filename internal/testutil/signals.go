package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates uniform noise in [-amplitude, amplitude) with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicComplexNoise generates complex noise whose real and imaginary
// parts are uniform in [-amplitude, amplitude).
func DeterministicComplexNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}

// Sample evaluates f at every point of x.
func Sample(x []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = f(v)
	}
	return out
}

// Gaussian returns exp(-x²/(2σ²)).
func Gaussian(x, sigma float64) float64 {
	return math.Exp(-x * x / (2 * sigma * sigma))
}

// NormalDensity3D returns the normalized isotropic 3-D Gaussian density
// exp(-r²/(2σ²))/(2πσ²)^{3/2}.
func NormalDensity3D(r, sigma float64) float64 {
	return Gaussian(r, sigma) / math.Pow(2*math.Pi*sigma*sigma, 1.5)
}
