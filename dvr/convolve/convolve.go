package convolve

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dvr/dvr/basis"
	"github.com/cwbudde/algo-dvr/dvr/core"
	"github.com/cwbudde/algo-dvr/dvr/spectral"
)

// ErrGeometry is returned for bases other than spherical.
var ErrGeometry = errors.New("convolve: spherical basis required")

// Convolver performs padded radial convolutions on one spherical basis. It
// owns scratch buffers and is not safe for concurrent use.
type Convolver struct {
	b *basis.Basis
	n int

	dst *spectral.DST
	r   []float64 // padded radii (j+½)a, j < 2N
	k   []float64 // padded wavenumbers π(m+1)/(2R), m < 2N

	work   []float64
	kernel []float64
}

// New plans a convolver for the spherical basis b.
func New(b *basis.Basis) (*Convolver, error) {
	if b.Geometry() != basis.GeometrySpherical {
		return nil, fmt.Errorf("%w: got %s", ErrGeometry, b.Geometry())
	}
	n := b.Len()
	m := 2 * n
	dst, err := spectral.NewDST(m)
	if err != nil {
		return nil, err
	}

	a := b.Spacing()
	r := make([]float64, m)
	for j := range r {
		r[j] = (float64(j) + 0.5) * a
	}
	return &Convolver{
		b:      b,
		n:      n,
		dst:    dst,
		r:      r,
		k:      spectral.SineWavenumbers(m, 2*b.Length()),
		work:   make([]float64, m),
		kernel: make([]float64, m),
	}, nil
}

// Basis returns the basis of the convolver.
func (c *Convolver) Basis() *basis.Basis { return c.b }

// PaddedRadii returns a copy of the 2N radii of the padded grid.
func (c *Convolver) PaddedRadii() []float64 {
	out := make([]float64, len(c.r))
	copy(out, c.r)
	return out
}

// Wavenumbers returns a copy of the 2N wavenumbers of the padded grid.
func (c *Convolver) Wavenumbers() []float64 {
	out := make([]float64, len(c.k))
	copy(out, c.k)
	return out
}

// Convolve returns (K * n)(r_j) on the N radii of the basis.
func (c *Convolver) Convolve(n []float64, kernel Kernel) ([]float64, error) {
	full, err := c.ConvolvePadded(n, kernel)
	if err != nil {
		return nil, err
	}
	return full[:c.n:c.n], nil
}

// ConvolvePadded returns the convolution on all 2N padded radii. Unlike the
// truncated result of Convolve, it carries the whole convolved mass.
func (c *Convolver) ConvolvePadded(n []float64, kernel Kernel) ([]float64, error) {
	if err := c.b.CheckLen(len(n)); err != nil {
		return nil, err
	}
	if kernel == nil {
		return nil, fmt.Errorf("convolve: nil kernel")
	}

	core.Zero(c.work)
	copy(c.work, n)
	vecmath.MulBlockInPlace(c.work, c.r)
	if err := c.dst.Forward(c.work, c.work); err != nil {
		return nil, err
	}

	kernel(c.kernel, c.k)
	vecmath.MulBlockInPlace(c.work, c.kernel)
	if err := c.dst.Inverse(c.work, c.work); err != nil {
		return nil, err
	}

	// r = (j+½)a never vanishes, so the radius divide needs no fill.
	out := make([]float64, len(c.work))
	scale := c.dst.Scale()
	for j, r := range c.r {
		out[j] = c.work[j] / (scale * r)
	}
	return out, nil
}

// Coulomb returns the potential V(r) = ∫ n(r')/|r-r'| d³r' of the density,
// using the Coulomb kernel truncated at D = 2R and multiplied by the
// optional form factors.
func (c *Convolver) Coulomb(n []float64, formFactors ...Kernel) ([]float64, error) {
	kernels := append([]Kernel{Coulomb(2 * c.b.Length())}, formFactors...)
	return c.Convolve(n, Product(kernels...))
}
