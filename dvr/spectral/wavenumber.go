package spectral

import "math"

// Wavenumbers returns the angular wavenumbers 2π·m/(n·spacing) in FFT order
// (0, 1, ..., ceil(n/2)-1, -floor(n/2), ..., -1) for a grid of n points.
// For even n the Nyquist entry is negative, matching numpy's fftfreq.
func Wavenumbers(n int, spacing float64) []float64 {
	if n <= 0 {
		return nil
	}

	k := make([]float64, n)
	dk := 2 * math.Pi / (float64(n) * spacing)
	half := (n + 1) / 2
	for m := range n {
		j := m
		if m >= half {
			j = m - n
		}
		k[m] = dk * float64(j)
	}
	return k
}

// SineWavenumbers returns k_m = π(m+1)/length, m = 0..n-1: the wavenumbers
// of the DST-II basis on n half-sample points covering [0, length].
func SineWavenumbers(n int, length float64) []float64 {
	if n <= 0 {
		return nil
	}

	k := make([]float64, n)
	for m := range k {
		k[m] = math.Pi * float64(m+1) / length
	}
	return k
}
