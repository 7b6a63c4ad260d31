// Package kinetic builds the kinetic energy operator T = -d²/dr² (plus the
// centrifugal term of the radial bases) in a DVR basis, and first-derivative
// operators.
//
// Matrix elements are defined in coefficient space, T_mn = <F_m|T|F_n>, and
// the dense matrix is exactly symmetric. Operators act on sampled values
// u(x_n) through the √λ scaling u → √λ·u → T → /√λ, so that Apply of a
// sampled function returns samples of -∂²u.
//
// Apply never forms the dense matrix: periodic bases use the FFT (the
// circulant T is diagonal in Fourier space), open sinc bases a Toeplitz
// embedding, spherical bases the DST or a Toeplitz-minus-Hankel product,
// and Bessel bases evaluate the closed-form elements on the fly.
//
// Operators and propagators own scratch buffers and are not safe for
// concurrent use. Bases are.
package kinetic
