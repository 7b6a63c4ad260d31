package spectral

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-dvr/dvr/core"
)

// FFT is a complex-to-complex discrete Fourier transform of fixed length.
//
// Forward computes F[m] = Σ_j f[j] exp(-2πi jm/N). Inverse computes
// f[j] = (1/N) Σ_m F[m] exp(+2πi jm/N).
type FFT struct {
	n int

	// Exactly one of plan and mixed is set.
	plan  *algofft.Plan[complex128]
	mixed *fourier.CmplxFFT

	scratch []complex128
}

// Power-of-two lengths from minPlanLen up use the algo-fft kernels; shorter
// and mixed-radix lengths go through gonum.
const minPlanLen = 8

// NewFFT creates a transform of length n.
func NewFFT(n int) (*FFT, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	f := &FFT{n: n}

	if n >= minPlanLen && core.IsPowerOf2(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("spectral: failed to create FFT plan: %w", err)
		}
		f.plan = plan
		return f, nil
	}

	f.mixed = fourier.NewCmplxFFT(n)
	f.scratch = make([]complex128, n)
	return f, nil
}

// Len returns the transform length.
func (f *FFT) Len() int {
	return f.n
}

// Forward writes the unnormalized forward transform of src into dst.
// dst and src may be the same slice.
func (f *FFT) Forward(dst, src []complex128) error {
	if err := checkBuffers(f.n, len(dst), len(src)); err != nil {
		return err
	}

	if f.plan != nil {
		if err := f.plan.Forward(dst, src); err != nil {
			return fmt.Errorf("spectral: forward FFT failed: %w", err)
		}
		return nil
	}

	copy(f.scratch, src)
	f.mixed.Coefficients(dst, f.scratch)
	return nil
}

// Inverse writes the normalized inverse transform of src into dst, so that
// Inverse(Forward(f)) reproduces f. dst and src may be the same slice.
func (f *FFT) Inverse(dst, src []complex128) error {
	if err := checkBuffers(f.n, len(dst), len(src)); err != nil {
		return err
	}

	if f.plan != nil {
		if err := f.plan.Inverse(dst, src); err != nil {
			return fmt.Errorf("spectral: inverse FFT failed: %w", err)
		}
		return nil
	}

	copy(f.scratch, src)
	f.mixed.Sequence(dst, f.scratch)

	scale := complex(1/float64(f.n), 0)
	for i := range dst {
		dst[i] *= scale
	}
	return nil
}
