package kinetic

import (
	"github.com/cwbudde/algo-dvr/dvr/core"
	"github.com/cwbudde/algo-dvr/dvr/spectral"
)

// toeplitz applies y_m = Σ_j g(m-j) x_j, m, j < n, by embedding the matrix
// in a circulant of power-of-two size >= 2n-1.
type toeplitz struct {
	n    int
	fft  *spectral.FFT
	kern []complex128
	work []complex128
}

func newToeplitz(n int, g func(d int) float64) (*toeplitz, error) {
	size := core.NextPowerOf2(2*n - 1)
	fft, err := spectral.NewFFT(size)
	if err != nil {
		return nil, err
	}

	col := make([]complex128, size)
	for d := -(n - 1); d < n; d++ {
		col[(d+size)%size] = complex(g(d), 0)
	}
	if err := fft.Forward(col, col); err != nil {
		return nil, err
	}

	return &toeplitz{
		n:    n,
		fft:  fft,
		kern: col,
		work: make([]complex128, size),
	}, nil
}

// apply writes the product into dst. If reversed, x_j is read as
// src[n-1-j], which turns the Toeplitz product into a Hankel one.
func (t *toeplitz) apply(dst, src []complex128, reversed bool) error {
	core.ZeroComplex(t.work)
	if reversed {
		for j := range t.n {
			t.work[j] = src[t.n-1-j]
		}
	} else {
		copy(t.work, src[:t.n])
	}

	if err := t.fft.Forward(t.work, t.work); err != nil {
		return err
	}
	for i, s := range t.kern {
		t.work[i] *= s
	}
	if err := t.fft.Inverse(t.work, t.work); err != nil {
		return err
	}
	copy(dst, t.work[:t.n])
	return nil
}
