package kinetic

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-dvr/dvr/basis"
	"github.com/cwbudde/algo-dvr/dvr/core"
	"github.com/cwbudde/algo-dvr/dvr/spectral"
)

// ErrNotConverged is returned when the symmetric eigensolver fails.
var ErrNotConverged = errors.New("kinetic: eigen decomposition did not converge")

// applyMode selects the implicit matrix-vector product.
type applyMode int

const (
	applyFourier   applyMode = iota // periodic, periodic boundary
	applyToeplitz                   // periodic, open boundary
	applySine                       // spherical, periodic boundary
	applyReflected                  // spherical, open boundary
	applyBessel                     // cylindrical
)

// Operator is the kinetic energy operator of one basis.
type Operator struct {
	b     *basis.Basis
	n     int
	mode  applyMode
	scale float64 // 1/a² for sinc bases, k² for Bessel bases

	sqrtW    []float64
	invSqrtW []float64
	zeros    []float64
	nu       float64
	period   int

	fft   *spectral.FFT
	k2    []float64
	dst   *spectral.DST
	toep  *toeplitz
	hank  *toeplitz
	dense *mat.SymDense
	deriv *mat.Dense
	eig   *eigen

	cbuf []complex128
	hbuf []complex128
	rbuf []float64
	ibuf []float64
	coef []float64
	out  []float64
	lap  []float64
	rpow []float64
}

// New derives the kinetic operator of b and plans its implicit product.
func New(b *basis.Basis) (*Operator, error) {
	n := b.Len()
	op := &Operator{
		b:        b,
		n:        n,
		sqrtW:    b.SqrtWeights(),
		invSqrtW: make([]float64, n),
		zeros:    b.Zeros(),
		nu:       b.Order(),
		period:   b.Period(),
		cbuf:     make([]complex128, n),
		rbuf:     make([]float64, n),
		ibuf:     make([]float64, n),
		coef:     make([]float64, n),
		out:      make([]float64, n),
	}
	for i, s := range op.sqrtW {
		op.invSqrtW[i] = 1 / s
	}

	var err error
	switch b.Geometry() {
	case basis.GeometryPeriodic:
		a := b.Spacing()
		op.scale = 1 / (a * a)
		if b.Boundary() == basis.BoundaryPeriodic {
			op.mode = applyFourier
			op.k2 = spectral.Wavenumbers(n, a)
			vecmath.MulBlockInPlace(op.k2, op.k2)
			op.fft, err = spectral.NewFFT(n)
		} else {
			op.mode = applyToeplitz
			op.toep, err = newToeplitz(n, func(d int) float64 { return op.scale * openSinc(abs(d)) })
		}
	case basis.GeometrySpherical:
		a := b.Spacing()
		op.scale = 1 / (a * a)
		if b.Boundary() == basis.BoundaryPeriodic {
			op.mode = applySine
			op.k2 = spectral.SineWavenumbers(n, b.Length())
			vecmath.MulBlockInPlace(op.k2, op.k2)
			op.dst, err = spectral.NewDST(n)
		} else {
			op.mode = applyReflected
			op.toep, err = newToeplitz(n, func(d int) float64 { return op.scale * openSinc(abs(d)) })
			if err == nil {
				// H_mj = t(m+j+1) becomes Toeplitz in m-j' with j' = n-1-j.
				op.hank, err = newToeplitz(n, func(d int) float64 { return op.scale * openSinc(d+n) })
			}
			op.hbuf = core.EnsureLenComplex(op.hbuf, n)
		}
	case basis.GeometryCylindrical:
		k := b.Cutoff()
		op.scale = k * k
		op.mode = applyBessel
	default:
		return nil, fmt.Errorf("%w: %s", basis.ErrUnsupportedGeometry, b.Geometry())
	}
	if err != nil {
		return nil, fmt.Errorf("kinetic: planning transform: %w", err)
	}
	return op, nil
}

func abs(d int) int {
	if d < 0 {
		return -d
	}
	return d
}

// Basis returns the basis of the operator.
func (op *Operator) Basis() *basis.Basis { return op.b }

// Len returns the matrix dimension N.
func (op *Operator) Len() int { return op.n }

// Element returns T_mn in coefficient space.
func (op *Operator) Element(m, n int) float64 {
	switch op.b.Geometry() {
	case basis.GeometryPeriodic:
		return op.scale * sincElement(m-n, op.period)
	case basis.GeometrySpherical:
		return op.scale * (sincElement(m-n, op.period) - sincElement(m+n+1, op.period))
	default:
		return op.scale * besselElement(m, n, op.zeros[m], op.zeros[n], op.nu)
	}
}

// Dense returns the N×N matrix T_mn. It is built on first use and cached;
// callers must not modify it.
func (op *Operator) Dense() *mat.SymDense {
	if op.dense != nil {
		return op.dense
	}
	t := mat.NewSymDense(op.n, nil)
	for m := range op.n {
		for n := m; n < op.n; n++ {
			t.SetSym(m, n, op.Element(m, n))
		}
	}
	op.dense = t
	return t
}

// Apply writes the samples of T u into dst, given the samples of u in src.
// dst and src may be the same slice.
func (op *Operator) Apply(dst, src []float64) error {
	if err := op.checkReal(dst, src); err != nil {
		return err
	}

	if op.mode == applySine {
		return op.applySine(dst, src)
	}
	if op.mode == applyBessel {
		op.applyBessel(dst, src)
		return nil
	}

	core.ToComplex(op.cbuf, src)
	if err := op.applyComplex(op.cbuf, op.cbuf); err != nil {
		return err
	}
	for i, v := range op.cbuf {
		dst[i] = real(v)
	}
	return nil
}

// ApplyComplex is Apply for complex samples.
func (op *Operator) ApplyComplex(dst, src []complex128) error {
	if err := op.b.CheckLen(len(src)); err != nil {
		return err
	}
	if err := op.b.CheckLen(len(dst)); err != nil {
		return err
	}

	switch op.mode {
	case applySine, applyBessel:
		for i, v := range src {
			op.rbuf[i] = real(v)
			op.ibuf[i] = imag(v)
		}
		if err := op.Apply(op.rbuf, op.rbuf); err != nil {
			return err
		}
		if err := op.Apply(op.ibuf, op.ibuf); err != nil {
			return err
		}
		for i := range dst {
			dst[i] = complex(op.rbuf[i], op.ibuf[i])
		}
		return nil
	default:
		return op.applyComplex(dst, src)
	}
}

// ApplyState replaces the samples of s by those of T s.
func (op *Operator) ApplyState(s *basis.State) error {
	if s.Basis() != op.b {
		return fmt.Errorf("%w: state belongs to a different basis", basis.ErrDimensionMismatch)
	}
	return op.ApplyComplex(s.Values(), s.Values())
}

// ApplyDense is Apply through the dense matrix, O(N²).
func (op *Operator) ApplyDense(dst, src []float64) error {
	if err := op.checkReal(dst, src); err != nil {
		return err
	}
	c := make([]float64, op.n)
	vecmath.MulBlock(c, src, op.sqrtW)

	var y mat.VecDense
	y.MulVec(op.Dense(), mat.NewVecDense(op.n, c))
	for i := range dst {
		dst[i] = y.AtVec(i)
	}
	vecmath.MulBlockInPlace(dst, op.invSqrtW)
	return nil
}

// Laplacian writes ∇²ψ into dst for the samples ψ(x_n) in psi. For radial
// bases this is the Laplacian of the partial wave, -r^-p T (r^p ψ),
// centrifugal term included.
func (op *Operator) Laplacian(dst, psi []float64) error {
	if err := op.checkReal(dst, psi); err != nil {
		return err
	}
	p := op.b.RadialPower()
	if p == 0 {
		if err := op.Apply(dst, psi); err != nil {
			return err
		}
		vecmath.ScaleBlock(dst, dst, -1)
		return nil
	}

	if op.rpow == nil {
		op.rpow = op.b.Abscissas()
		for i, x := range op.rpow {
			op.rpow[i] = math.Pow(x, p)
		}
	}
	rp := op.rpow
	op.lap = core.EnsureLen(op.lap, op.n)
	u := op.lap
	vecmath.MulBlock(u, psi, rp)
	if err := op.Apply(u, u); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = -u[i] / rp[i]
	}
	return nil
}

func (op *Operator) checkReal(dst, src []float64) error {
	if err := op.b.CheckLen(len(src)); err != nil {
		return err
	}
	return op.b.CheckLen(len(dst))
}

func (op *Operator) applyComplex(dst, src []complex128) error {
	switch op.mode {
	case applyFourier:
		if err := op.fft.Forward(dst, src); err != nil {
			return err
		}
		for i, k2 := range op.k2 {
			dst[i] *= complex(k2, 0)
		}
		return op.fft.Inverse(dst, dst)
	case applyToeplitz:
		return op.toep.apply(dst, src, false)
	case applyReflected:
		h := op.hbuf
		if err := op.hank.apply(h, src, true); err != nil {
			return err
		}
		if err := op.toep.apply(dst, src, false); err != nil {
			return err
		}
		for i := range dst {
			dst[i] -= h[i]
		}
		return nil
	default:
		return fmt.Errorf("kinetic: no complex product for mode %d", op.mode)
	}
}

// applySine is T = DST3(k² DST2(u))/(2N).
func (op *Operator) applySine(dst, src []float64) error {
	if err := op.dst.Forward(dst, src); err != nil {
		return err
	}
	vecmath.MulBlockInPlace(dst, op.k2)
	if err := op.dst.Inverse(dst, dst); err != nil {
		return err
	}
	vecmath.ScaleBlock(dst, dst, 1/op.dst.Scale())
	return nil
}

// applyBessel evaluates Σ_n T_mn √λ_n u_n / √λ_m without storing T.
func (op *Operator) applyBessel(dst, src []float64) {
	c, out := op.coef, op.out
	vecmath.MulBlock(c, src, op.sqrtW)

	for m := range op.n {
		zm := op.zeros[m]
		sum := 0.0
		for n, cn := range c {
			sum += besselElement(m, n, zm, op.zeros[n], op.nu) * cn
		}
		out[m] = op.scale * sum * op.invSqrtW[m]
	}
	copy(dst, out)
}
