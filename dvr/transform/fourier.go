package transform

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dvr/dvr/basis"
	"github.com/cwbudde/algo-dvr/dvr/spectral"
)

// SphericalFourier returns the 3-D Fourier transform of a radial density,
//
//	ñ(k) = (4π/k) ∫_0^R r n(r) sin(kr) dr,
//
// at the wavenumbers k_m = π(m+1)/R of the spherical grid, evaluated with the
// midpoint rule as a type II sine transform. The wavenumbers are returned
// alongside.
func SphericalFourier(b *basis.Basis, n []float64) (k, nk []float64, err error) {
	t, err := newSphericalTransform(b)
	if err != nil {
		return nil, nil, err
	}
	if err := b.CheckLen(len(n)); err != nil {
		return nil, nil, err
	}

	nk = make([]float64, len(n))
	vecmath.MulBlock(nk, n, t.r)
	if err := t.dst.Forward(nk, nk); err != nil {
		return nil, nil, err
	}
	for m, km := range t.k {
		nk[m] *= 2 * math.Pi * b.Spacing() / km
	}
	return t.k, nk, nil
}

// InverseSphericalFourier inverts SphericalFourier exactly on the grid.
func InverseSphericalFourier(b *basis.Basis, nk []float64) ([]float64, error) {
	t, err := newSphericalTransform(b)
	if err != nil {
		return nil, err
	}
	if err := b.CheckLen(len(nk)); err != nil {
		return nil, err
	}

	n := make([]float64, len(nk))
	for m, km := range t.k {
		n[m] = nk[m] * km / (2 * math.Pi * b.Spacing())
	}
	if err := t.dst.Inverse(n, n); err != nil {
		return nil, err
	}
	scale := t.dst.Scale()
	for j, r := range t.r {
		n[j] /= scale * r
	}
	return n, nil
}

type sphericalTransform struct {
	dst *spectral.DST
	r   []float64
	k   []float64
}

func newSphericalTransform(b *basis.Basis) (*sphericalTransform, error) {
	if b.Geometry() != basis.GeometrySpherical {
		return nil, fmt.Errorf("%w: spherical Fourier transform of %s basis", ErrGeometry, b.Geometry())
	}
	dst, err := spectral.NewDST(b.Len())
	if err != nil {
		return nil, err
	}
	return &sphericalTransform{
		dst: dst,
		r:   b.Abscissas(),
		k:   spectral.SineWavenumbers(b.Len(), b.Length()),
	}, nil
}
