package kinetic

import (
	"math"

	"github.com/cwbudde/algo-dvr/dvr/core"
)

// openSinc is the sinc kinetic element in units of 1/a²: π²/3 on the
// diagonal and 2(-1)^d/d² off it.
func openSinc(d int) float64 {
	if d == 0 {
		return math.Pi * math.Pi / 3
	}
	df := float64(d)
	return 2 * core.Sign(d) / (df * df)
}

// periodicSinc is the image sum of openSinc for a period of m grid points.
func periodicSinc(d, m int) float64 {
	d %= m
	mf := float64(m)
	if d == 0 {
		if m%2 == 0 {
			return math.Pi * math.Pi / 3 * (1 + 2/(mf*mf))
		}
		return math.Pi * math.Pi / 3 * (1 - 1/(mf*mf))
	}
	s := math.Sin(math.Pi * float64(d) / mf)
	v := 2 * core.Sign(d) * math.Pi * math.Pi / (mf * mf * s * s)
	if m%2 == 1 {
		v *= math.Cos(math.Pi * float64(d) / mf)
	}
	return v
}

// sincElement dispatches on the period (0 = open line).
func sincElement(d, period int) float64 {
	if d < 0 {
		d = -d
	}
	if period <= 0 {
		return openSinc(d)
	}
	return periodicSinc(d, period)
}

// besselElement is T_mn/k² for the Bessel basis of order ν at zeros zm, zn.
func besselElement(m, n int, zm, zn, nu float64) float64 {
	if m == n {
		return (1 + 2*(nu*nu-1)/(zn*zn)) / 3
	}
	d := zm*zm - zn*zn
	return core.Sign(m-n) * 8 * zm * zn / (d * d)
}
