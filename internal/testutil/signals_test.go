package testutil

import (
	"math"
	"testing"
)

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestDeterministicComplexNoise(t *testing.T) {
	a := DeterministicComplexNoise(5, 2.0, 32)
	b := DeterministicComplexNoise(5, 2.0, 32)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("complex noise not deterministic at index %d", i)
		}
		if math.Abs(real(a[i])) > 2 || math.Abs(imag(a[i])) > 2 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestSample(t *testing.T) {
	got := Sample([]float64{0, 1, 2}, func(x float64) float64 { return x * x })
	want := []float64{0, 1, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGaussian(t *testing.T) {
	if Gaussian(0, 1.3) != 1 {
		t.Fatal("Gaussian(0) must be 1")
	}
	if v := Gaussian(1, 1); math.Abs(v-math.Exp(-0.5)) > 1e-15 {
		t.Fatalf("Gaussian(1, 1) = %v", v)
	}
	if v := NormalDensity3D(0, 1); math.Abs(v-math.Pow(2*math.Pi, -1.5)) > 1e-15 {
		t.Fatalf("NormalDensity3D(0, 1) = %v", v)
	}
}
