package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(1e8, 1e8+1e-5, 1e-12) {
		t.Fatal("expected relative comparison for large values")
	}
}

func TestSafeDivide(t *testing.T) {
	const d = 3.0

	k := []float64{0, 0.5, 1, 2}
	num := make([]float64, len(k))
	den := make([]float64, len(k))
	for i, v := range k {
		num[i] = 1 - math.Cos(v*d)
		den[i] = v * v
	}

	got := make([]float64, len(k))
	SafeDivide(got, num, den, func(int) float64 { return d * d / 2 })

	if got[0] != d*d/2 {
		t.Fatalf("got[0] = %v, want %v", got[0], d*d/2)
	}
	for i := 1; i < len(k); i++ {
		want := num[i] / den[i]
		if got[i] != want {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestSafeDivideInPlace(t *testing.T) {
	num := []float64{2, 0, 6}
	den := []float64{1, 0, 3}
	SafeDivide(num, num, den, func(i int) float64 { return float64(10 + i) })

	want := []float64{2, 11, 2}
	for i := range want {
		if num[i] != want[i] {
			t.Fatalf("num[%d] = %v, want %v", i, num[i], want[i])
		}
	}
}

func TestSafeDividePanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	SafeDivide(make([]float64, 2), make([]float64, 3), make([]float64, 2), nil)
}

func TestSinc(t *testing.T) {
	if Sinc(0) != 1 {
		t.Fatalf("Sinc(0) = %v, want 1", Sinc(0))
	}
	for n := 1; n < 6; n++ {
		if v := Sinc(float64(n) * math.Pi); math.Abs(v) > 1e-15 {
			t.Fatalf("Sinc(%dπ) = %v, want 0", n, v)
		}
	}
}

func TestSincDerivative(t *testing.T) {
	const h = 1e-6
	for _, z := range []float64{-3.1, -0.7, 1e-5, 0.3, 2.2, 9.4} {
		numeric := (Sinc(z+h) - Sinc(z-h)) / (2 * h)
		if got := SincDerivative(z); math.Abs(got-numeric) > 1e-8 {
			t.Fatalf("SincDerivative(%v) = %v, numeric %v", z, got, numeric)
		}
	}
	if SincDerivative(0) != 0 {
		t.Fatal("SincDerivative(0) must be 0")
	}
}

func TestPowerOf2(t *testing.T) {
	tests := []struct {
		n    int
		pow  bool
		next int
	}{
		{n: 0, pow: false, next: 1},
		{n: 1, pow: true, next: 1},
		{n: 3, pow: false, next: 4},
		{n: 64, pow: true, next: 64},
		{n: 65, pow: false, next: 128},
	}

	for _, tt := range tests {
		if got := IsPowerOf2(tt.n); got != tt.pow {
			t.Errorf("IsPowerOf2(%d) = %v, want %v", tt.n, got, tt.pow)
		}
		if got := NextPowerOf2(tt.n); got != tt.next {
			t.Errorf("NextPowerOf2(%d) = %d, want %d", tt.n, got, tt.next)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(0) != 1 || Sign(3) != -1 || Sign(-2) != 1 || Sign(-1) != -1 {
		t.Fatal("unexpected Sign values")
	}
}
