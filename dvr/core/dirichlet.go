package core

import "math"

// wrapPeriod maps t into [-m/2, m/2).
func wrapPeriod(t float64, m int) float64 {
	p := float64(m)
	return t - p*math.Floor(t/p+0.5)
}

// Dirichlet returns the periodic sinc (Dirichlet) kernel of period m in grid
// units,
//
//	D_m(t) = sin(πt) / (m tan(πt/m))   (m even)
//	D_m(t) = sin(πt) / (m sin(πt/m))   (m odd)
//
// which is the band-limited interpolant of a unit sample at the integer
// t ≡ 0 (mod m). D_m(t) = 1 at multiples of m and 0 at the other integers.
func Dirichlet(t float64, m int) float64 {
	t = wrapPeriod(t, m)
	if t == 0 {
		return 1
	}
	pt := math.Pi * t
	u := pt / float64(m)
	if m%2 == 0 {
		return math.Sin(pt) / (float64(m) * math.Tan(u))
	}
	return math.Sin(pt) / (float64(m) * math.Sin(u))
}

// DirichletDerivative returns dD_m/dt. Close to the kernel peak the closed
// form cancels, so the equivalent cosine sum is differentiated instead.
func DirichletDerivative(t float64, m int) float64 {
	t = wrapPeriod(t, m)
	if t == 0 {
		return 0
	}

	mf := float64(m)
	pt := math.Pi * t
	if math.Abs(t) < 0.25 {
		sum := 0.0
		for j := 1; j <= (m-1)/2; j++ {
			w := 2 * math.Pi * float64(j) / mf
			sum += 2 * w * math.Sin(w*t)
		}
		if m%2 == 0 {
			sum += math.Pi * math.Sin(pt)
		}
		return -sum / mf
	}

	u := pt / mf
	if m%2 == 0 {
		tu := math.Tan(u)
		return (math.Pi*math.Cos(pt)*tu - math.Sin(pt)*(math.Pi/mf)*(1+tu*tu)) / (mf * tu * tu)
	}
	su := math.Sin(u)
	return (math.Pi*math.Cos(pt)*su - math.Sin(pt)*(math.Pi/mf)*math.Cos(u)) / (mf * su * su)
}

// SincKernel returns the cardinal function of a unit-spaced grid: the open
// sinc(πt) when period <= 0, or the Dirichlet kernel of that period.
func SincKernel(t float64, period int) float64 {
	if period <= 0 {
		return Sinc(math.Pi * t)
	}
	return Dirichlet(t, period)
}

// SincKernelDerivative returns d/dt of SincKernel.
func SincKernelDerivative(t float64, period int) float64 {
	if period <= 0 {
		return math.Pi * SincDerivative(math.Pi*t)
	}
	return DirichletDerivative(t, period)
}
