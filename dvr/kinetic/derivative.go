package kinetic

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-dvr/dvr/basis"
	"github.com/cwbudde/algo-dvr/dvr/core"
)

// DerivativeMatrix returns D with (D u)_m = u'(x_m) for u in the span of the
// basis, i.e. D_mn = √λ_n F_n'(x_m). It acts on samples, is built on first
// use and must not be modified.
func (op *Operator) DerivativeMatrix() *mat.Dense {
	if op.deriv != nil {
		return op.deriv
	}

	d := mat.NewDense(op.n, op.n, nil)
	switch op.b.Geometry() {
	case basis.GeometryPeriodic:
		a := op.b.Spacing()
		for m := range op.n {
			for n := range op.n {
				d.Set(m, n, core.SincKernelDerivative(float64(m-n), op.period)/a)
			}
		}
	case basis.GeometrySpherical:
		a := op.b.Spacing()
		for m := range op.n {
			for n := range op.n {
				v := core.SincKernelDerivative(float64(m-n), op.period) -
					core.SincKernelDerivative(float64(m+n+1), op.period)
				d.Set(m, n, v/a)
			}
		}
	default:
		op.besselDerivative(d)
	}
	op.deriv = d
	return d
}

// besselDerivative fills D_mn = √λ_n F_n'(r_m) with
//
//	F_n'(r_m) = C_n k √z_m J'(z_m)/(z_m² - z_n²)   (m ≠ n)
//	F_n'(r_n) = -C_n k √z_n J'(z_n)/(4 z_n²)
//
// and C_n = sign(J'(z_n)) √(2k) z_n.
func (op *Operator) besselDerivative(d *mat.Dense) {
	k := op.b.Cutoff()
	slopes := op.b.ZeroSlopes()
	for n := range op.n {
		zn := op.zeros[n]
		c := math.Sqrt(2*k) * zn * k * op.sqrtW[n]
		if slopes[n] < 0 {
			c = -c
		}
		for m := range op.n {
			zm := op.zeros[m]
			if m == n {
				d.Set(m, n, -c*math.Sqrt(zn)*slopes[n]/(4*zn*zn))
				continue
			}
			d.Set(m, n, c*math.Sqrt(zm)*slopes[m]/(zm*zm-zn*zn))
		}
	}
}

// Derivative writes u'(x_m) into dst for the samples u(x_n) in src. For
// radial bases u = r^p ψ is the function the basis represents.
func (op *Operator) Derivative(dst, src []float64) error {
	if err := op.checkReal(dst, src); err != nil {
		return err
	}
	var y mat.VecDense
	y.MulVec(op.DerivativeMatrix(), mat.NewVecDense(op.n, append([]float64(nil), src...)))
	for i := range dst {
		dst[i] = y.AtVec(i)
	}
	return nil
}
