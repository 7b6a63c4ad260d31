package convolve

import (
	"math"

	"github.com/cwbudde/algo-dvr/dvr/core"
)

// Kernel is the 3-D Fourier transform K̃(k) of a radial convolution kernel,
// evaluated at the wavenumbers k (all >= 0) and written into dst.
type Kernel func(dst, k []float64)

// TruncatedKernel writes (1 - cos kD)/k², the transform of 1/(4πr)
// truncated at r = D, into dst. The k = 0 entry is exactly D²/2.
func TruncatedKernel(dst, k []float64, d float64) {
	num := make([]float64, len(k))
	den := make([]float64, len(k))
	for i, v := range k {
		num[i] = 1 - math.Cos(v*d)
		den[i] = v * v
	}
	core.SafeDivide(dst, num, den, func(int) float64 { return d * d / 2 })
}

// Coulomb returns the truncated Coulomb kernel 4π(1 - cos kD)/k² whose
// convolution with a density gives its electrostatic potential inside a
// sphere of diameter D.
func Coulomb(d float64) Kernel {
	return func(dst, k []float64) {
		TruncatedKernel(dst, k, d)
		for i := range dst {
			dst[i] *= 4 * math.Pi
		}
	}
}

// Gaussian returns the transform exp(-k²σ²/2) of a normalized Gaussian of
// width σ.
func Gaussian(sigma float64) Kernel {
	return func(dst, k []float64) {
		for i, v := range k {
			dst[i] = math.Exp(-v * v * sigma * sigma / 2)
		}
	}
}

// Lorentzian returns the smoothing kernel 1/(1 + k²/k0²)², normalized so
// that K̃(0) = 1.
func Lorentzian(k0 float64) Kernel {
	return func(dst, k []float64) {
		for i, v := range k {
			q := 1 + v*v/(k0*k0)
			dst[i] = 1 / (q * q)
		}
	}
}

// Product multiplies kernels, e.g. a Coulomb kernel with form factors.
func Product(kernels ...Kernel) Kernel {
	return func(dst, k []float64) {
		for i := range dst {
			dst[i] = 1
		}
		tmp := make([]float64, len(dst))
		for _, kern := range kernels {
			if kern == nil {
				continue
			}
			kern(tmp, k)
			for i := range dst {
				dst[i] *= tmp[i]
			}
		}
	}
}
