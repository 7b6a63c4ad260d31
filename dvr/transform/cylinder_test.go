package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dvr/dvr/basis"
)

func gaussian2(r0 float64) func(x, r float64) float64 {
	return func(x, r float64) float64 {
		return math.Exp(-(x*x + r*r) / (r0 * r0))
	}
}

func TestCylinderAbelScenario(t *testing.T) {
	const r0 = 1.2
	c, err := NewCylinderGrid(64, 32, 25, 5)
	require.NoError(t, err)
	n := c.Sample(gaussian2(r0))

	x := c.Axial().Abscissas()
	for _, y := range []float64{0, 0.6, 1.3, 2.4} {
		n2d, err := c.Abel(n, y)
		require.NoError(t, err)
		require.Len(t, n2d, 64)

		worst := 0.0
		for i, xi := range x {
			want := math.Sqrt(math.Pi) * r0 * math.Exp(-(xi*xi+y*y)/(r0*r0))
			worst = math.Max(worst, math.Abs(n2d[i]-want)/want)
		}
		assert.Less(t, worst, 0.02, "y=%v", y)
	}

	_, err = c.Abel(n, 5.5)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestCylinderAbelMatchesSingleRow(t *testing.T) {
	c, err := NewCylinderGrid(8, 12, 6, 3)
	require.NoError(t, err)
	n := c.Sample(func(x, r float64) float64 { return (1 + 0.1*x) * math.Exp(-r*r) })

	all, err := c.Abel(n, 0.7, WithSamples(40))
	require.NoError(t, err)
	_, nr := c.Shape()
	for i := range all {
		one, err := Abel(c.Radial(), n[i*nr:(i+1)*nr], 0.7, WithSamples(40))
		require.NoError(t, err)
		assert.InDelta(t, one, all[i], 1e-13)
	}
}

func TestCylinderIntegrals(t *testing.T) {
	const r0 = 1.2
	c, err := NewCylinderGrid(64, 32, 25, 5)
	require.NoError(t, err)
	n := c.Sample(gaussian2(r0))

	n1d, err := c.LineOfSight(n)
	require.NoError(t, err)
	for i, x := range c.Axial().Abscissas() {
		want := math.Pi * r0 * r0 * math.Exp(-x*x/(r0*r0))
		assert.InDelta(t, want, n1d[i], 1e-6*math.Pi*r0*r0)
	}

	total, err := c.Integrate(n)
	require.NoError(t, err)
	assert.InEpsilon(t, math.Pow(math.Pi, 1.5)*r0*r0*r0, total, 1e-6)

	_, err = c.Integrate(n[1:])
	require.ErrorIs(t, err, basis.ErrDimensionMismatch)
}

func TestCylinderLaplacian(t *testing.T) {
	c, err := NewCylinderGrid(48, 32, 20, 8)
	require.NoError(t, err)
	psi := c.Sample(func(x, r float64) float64 { return math.Exp(-(x*x + r*r) / 2) })
	want := c.Sample(func(x, r float64) float64 { return (x*x + r*r - 3) * math.Exp(-(x*x+r*r)/2) })

	got := make([]float64, len(psi))
	require.NoError(t, c.Laplacian(got, psi))
	for i := range got {
		assert.InDelta(t, want[i], got[i], 1e-8)
	}
}

func TestNewCylinderRejectsGeometry(t *testing.T) {
	x, err := basis.New(basis.GeometryPeriodic, 8, 4)
	require.NoError(t, err)
	r3, err := basis.New(basis.GeometryCylindrical, 8, 4, basis.WithDimension(3))
	require.NoError(t, err)

	_, err = NewCylinder(x, r3)
	require.ErrorIs(t, err, ErrGeometry)
	_, err = NewCylinder(r3, x)
	require.ErrorIs(t, err, ErrGeometry)
}
