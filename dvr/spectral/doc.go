// Package spectral provides the forward/inverse transform pairs used by the
// DVR engine.
//
// Two pairs are offered, each with a fixed normalization convention:
//
//   - [FFT]: complex-to-complex discrete Fourier transform.
//     Forward is unnormalized, Inverse carries the 1/N factor, so
//     Inverse(Forward(f)) == f up to round-off.
//
//   - [DST]: real discrete sine transform, type II forward and type III
//     inverse, both unnormalized:
//
//     F[k] = 2 Σ_n f[n] sin(π(k+1)(2n+1)/(2N))
//     f[n] = (-1)^n F[N-1] + 2 Σ_{k<N-1} F[k] sin(π(2n+1)(k+1)/(2N))
//
//     so Inverse(Forward(f)) == 2N·f. Callers divide by [DST.Scale].
//
// Power-of-two lengths are planned with algo-fft; other lengths fall back
// to gonum's mixed-radix complex FFT. The DST pair is computed exactly
// (not approximately) through a complex FFT of length 4N.
//
// # Usage
//
//	f, err := spectral.NewFFT(64)
//	err = f.Forward(coeffs, samples)
//	err = f.Inverse(samples, coeffs)
//
//	s, err := spectral.NewDST(32)
//	err = s.Forward(sine, u)
//	err = s.Inverse(u, sine) // u is now scaled by s.Scale()
//
// Plans own scratch buffers and are not safe for concurrent use.
package spectral
