// Package basis constructs Discrete Variable Representation (DVR) bases.
//
// A DVR basis is a set of band-limited functions F_n, each localised on one
// abscissa x_n so that F_n(x_m) = δ_mn/√λ_n. The weights λ_n turn sums over
// the abscissas into quadratures that are exact for products of basis
// functions, and the coefficients of a function ψ are simply √λ_n ψ(x_n).
//
// Three geometries are supported:
//
//   - [GeometryPeriodic]: sinc functions on an equally spaced grid
//     x_n = x_0 + n·a with a = π/k_max and λ_n = a.
//   - [GeometryCylindrical]: Bessel functions of order ν = l + d/2 - 1 with
//     abscissas at the zeros of J_ν, r_n = z_n/k, and λ_n = 2/(k z_n J_ν'(z_n)²).
//     The basis represents the radial function u(r) = r^{(d-1)/2} ψ(r).
//   - [GeometrySpherical]: the odd restriction of the sinc basis on
//     r_n = (n+½)a, representing u(r) = r ψ(r) for s-waves in three
//     dimensions.
//
// Sinc-type bases come in two flavours selected by [Boundary]. The default
// open (infinite line) sinc functions are orthonormal, so the quadrature is
// exact for products of basis functions. Their periodic image sums make the
// kinetic operator exact for the plane waves of the periodic box and
// consistent with the FFT/DST transforms, but for an even period they are
// cardinal only: see [Basis.Orthonormal].
//
// A [Basis] is built once by [New] (or [FromConfig]) and is immutable
// afterwards; [Basis.With] rebuilds with modified options. Bases are safe
// for concurrent use.
//
// # Usage
//
//	b, err := basis.New(basis.GeometryCylindrical, 32, 5.0,
//		basis.WithAngularMomentum(0), basis.WithDimension(2))
//	r := b.Abscissas()
//	w := b.Weights()
//	f, err := b.Eval(3, 0.77) // F_3(0.77)
package basis
