package convolve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dvr/dvr/basis"
	"github.com/cwbudde/algo-dvr/internal/testutil"
)

func gaussianDensity(t *testing.T, n int, radius float64) (*Convolver, []float64) {
	t.Helper()
	b, err := basis.New(basis.GeometrySpherical, n, radius)
	require.NoError(t, err)
	c, err := New(b)
	require.NoError(t, err)
	rho := testutil.Sample(b.Abscissas(), func(r float64) float64 { return testutil.NormalDensity3D(r, 1) })
	return c, rho
}

// volume returns Σ 4π r² a n over the given radii.
func volume(r, n []float64, a float64) float64 {
	sum := 0.0
	for i := range n {
		sum += 4 * math.Pi * r[i] * r[i] * a * n[i]
	}
	return sum
}

func TestTruncatedKernel(t *testing.T) {
	const d = 3.0
	k := []float64{0, 0.25, 1, 4}
	got := make([]float64, len(k))
	TruncatedKernel(got, k, d)

	assert.Equal(t, d*d/2, got[0])
	for i := 1; i < len(k); i++ {
		assert.InDelta(t, (1-math.Cos(k[i]*d))/(k[i]*k[i]), got[i], 1e-15)
	}
}

func TestConvolutionPreservesNorm(t *testing.T) {
	c, rho := gaussianDensity(t, 32, 5)
	b := c.Basis()
	a := b.Spacing()
	in := volume(b.Abscissas(), rho, a)

	padded, err := c.ConvolvePadded(rho, Lorentzian(10))
	require.NoError(t, err)
	require.Len(t, padded, 64)
	assert.InDelta(t, in, volume(c.PaddedRadii(), padded, a), 1e-8)

	// At R = 5 the grid misses 1.5e-5 of the Gaussian and the kernel
	// spreads another 1.3e-5 past R, so the truncated result is compared
	// with the input sum rather than with 1.
	trunc, err := c.Convolve(rho, Lorentzian(10))
	require.NoError(t, err)
	require.Len(t, trunc, 32)
	assert.InDelta(t, 1, in, 2e-5)
	assert.InDelta(t, in, volume(b.Abscissas(), trunc, a), 2e-5)

	// With R = 6 both losses are below 1e-6.
	c6, rho6 := gaussianDensity(t, 32, 6)
	b6 := c6.Basis()
	trunc6, err := c6.Convolve(rho6, Lorentzian(10))
	require.NoError(t, err)
	assert.InDelta(t, 1, volume(b6.Abscissas(), trunc6, b6.Spacing()), 1e-6)
}

func TestCoulombPotentialOfGaussian(t *testing.T) {
	c, rho := gaussianDensity(t, 32, 5)
	v, err := c.Coulomb(rho)
	require.NoError(t, err)
	for i, r := range c.Basis().Abscissas() {
		assert.InDelta(t, math.Erf(r/math.Sqrt2)/r, v[i], 1e-5, "r=%v", r)
	}

	// A Gaussian form factor of width s widens the charge to √(1+s²).
	const s = 0.5
	w := math.Sqrt(1 + s*s)
	v, err = c.Coulomb(rho, Gaussian(s))
	require.NoError(t, err)
	for i, r := range c.Basis().Abscissas() {
		assert.InDelta(t, math.Erf(r/(math.Sqrt2*w))/r, v[i], 1e-5, "r=%v", r)
	}
}

func TestNarrowKernelIsIdentity(t *testing.T) {
	c, rho := gaussianDensity(t, 32, 5)
	got, err := c.Convolve(rho, Gaussian(0.05))
	require.NoError(t, err)

	peak := rho[0]
	for i := range got {
		assert.InDelta(t, rho[i], got[i], 1e-2*peak)
	}
}

func TestProduct(t *testing.T) {
	k := []float64{0, 1, 2}
	got := make([]float64, 3)
	Product(Gaussian(1), nil, Lorentzian(2))(got, k)
	for i, v := range k {
		q := 1 + v*v/4
		assert.InDelta(t, math.Exp(-v*v/2)/(q*q), got[i], 1e-15)
	}
}

func TestConvolveErrors(t *testing.T) {
	p, err := basis.New(basis.GeometryPeriodic, 8, 2)
	require.NoError(t, err)
	_, err = New(p)
	require.ErrorIs(t, err, ErrGeometry)

	c, rho := gaussianDensity(t, 8, 3)
	_, err = c.Convolve(rho[:7], Gaussian(1))
	require.ErrorIs(t, err, basis.ErrDimensionMismatch)
	_, err = c.Convolve(rho, nil)
	require.Error(t, err)
}
