// Package convolve computes 3-D convolutions of radial densities on the
// spherical DVR grid, V = K * n, such as the Hartree potential of a charge
// density.
//
// The density is zero padded to twice the radius before the sine transform,
// so that periodic images of the spectral method do not overlap the
// physical domain, and long-range kernels are truncated at D = 2R, where
// their Fourier transform is finite at k = 0.
package convolve
