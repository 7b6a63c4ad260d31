package core

import (
	"math"
	"testing"
)

func TestDirichletCardinal(t *testing.T) {
	for _, m := range []int{1, 2, 5, 8, 33, 64} {
		for j := -2 * m; j <= 2*m; j++ {
			got := Dirichlet(float64(j), m)
			want := 0.0
			if j%m == 0 {
				want = 1
			}
			if math.Abs(got-want) > 1e-13 {
				t.Fatalf("m=%d: D(%d) = %v, want %v", m, j, got, want)
			}
		}
	}
}

func TestDirichletPeriodic(t *testing.T) {
	for _, m := range []int{6, 7} {
		for _, x := range []float64{0.3, -1.7, 2.45} {
			a := Dirichlet(x, m)
			b := Dirichlet(x+float64(m), m)
			if math.Abs(a-b) > 1e-13 {
				t.Fatalf("m=%d: D(%v)=%v, D(%v+m)=%v", m, x, a, x, b)
			}
		}
	}
}

func TestDirichletApproachesSinc(t *testing.T) {
	const m = 4096
	for _, x := range []float64{0.25, 1.5, -3.3} {
		got := Dirichlet(x, m)
		want := Sinc(math.Pi * x)
		if math.Abs(got-want) > 1e-5 {
			t.Fatalf("D(%v) = %v, sinc = %v", x, got, want)
		}
	}
}

func TestDirichletDerivativeMatchesDifference(t *testing.T) {
	const h = 1e-6
	for _, m := range []int{5, 6, 7, 8, 64} {
		for _, x := range []float64{0.004, 0.2, 0.3, 1.7, -2.4} {
			got := DirichletDerivative(x, m)
			want := (Dirichlet(x+h, m) - Dirichlet(x-h, m)) / (2 * h)
			if math.Abs(got-want) > 1e-8 {
				t.Fatalf("m=%d x=%v: D' = %v, difference = %v", m, x, got, want)
			}
		}
	}
}

func TestSincKernelOpen(t *testing.T) {
	if got := SincKernel(0, 0); got != 1 {
		t.Fatalf("S(0) = %v", got)
	}
	if got := SincKernel(3, 0); math.Abs(got) > 1e-15 {
		t.Fatalf("S(3) = %v", got)
	}
	if got, want := SincKernelDerivative(0.5, 0), -4/math.Pi; math.Abs(got-want) > 1e-12 {
		t.Fatalf("S'(0.5) = %v, want %v", got, want)
	}
}
