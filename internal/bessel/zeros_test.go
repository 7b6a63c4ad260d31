package bessel

import (
	"errors"
	"math"
	"testing"
)

func TestZerosKnownValues(t *testing.T) {
	tests := []struct {
		nu   float64
		want []float64
	}{
		{nu: 0, want: []float64{2.404825557695773, 5.520078110286311, 8.653727912911013}},
		{nu: 1, want: []float64{3.831705970207512, 7.015586669815619, 10.17346813506272}},
		{nu: 2, want: []float64{5.135622301840683, 8.417244140399855}},
		{nu: 0.5, want: []float64{math.Pi, 2 * math.Pi, 3 * math.Pi}},
		{nu: -0.5, want: []float64{math.Pi / 2, 3 * math.Pi / 2, 5 * math.Pi / 2}},
		{nu: 1.5, want: []float64{4.493409457909064, 7.725251836937707}},
	}

	for _, tt := range tests {
		got, err := Zeros(tt.nu, len(tt.want))
		if err != nil {
			t.Fatalf("Zeros(%v): %v", tt.nu, err)
		}
		for i := range tt.want {
			if math.Abs(got[i]-tt.want[i]) > 1e-13*tt.want[i] {
				t.Errorf("Zeros(%v)[%d] = %.16g, want %.16g", tt.nu, i, got[i], tt.want[i])
			}
		}
	}
}

func TestZerosAreRootsAndIncreasing(t *testing.T) {
	for _, nu := range []float64{0, 1, 3, 0.5, 2.5} {
		z, err := Zeros(nu, 120)
		if err != nil {
			t.Fatalf("Zeros(%v, 120): %v", nu, err)
		}
		if len(z) != 120 {
			t.Fatalf("len = %d, want 120", len(z))
		}
		for i, v := range z {
			if i > 0 && v <= z[i-1] {
				t.Fatalf("nu=%v: zeros not increasing at %d", nu, i)
			}
			if f := J(nu, v); math.Abs(f) > 1e-14 {
				t.Fatalf("nu=%v: J(z_%d) = %v", nu, i, f)
			}
		}
		// McMahon: spacing tends to π.
		if gap := z[119] - z[118]; math.Abs(gap-math.Pi) > 1e-3 {
			t.Fatalf("nu=%v: asymptotic spacing %v", nu, gap)
		}
	}
}

func TestZerosErrors(t *testing.T) {
	if _, err := Zeros(0.25, 3); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
	if _, err := Zeros(0, -1); err == nil {
		t.Fatal("expected error for negative count")
	}
	z, err := Zeros(0, 0)
	if err != nil || len(z) != 0 {
		t.Fatalf("Zeros(0, 0) = %v, %v", z, err)
	}
}
