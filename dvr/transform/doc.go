// Package transform maps between sampled functions on a DVR basis and the
// quantities derived from them: off-grid values, quadratures, line-of-sight
// projections, the Abel transform and the 3-D radial Fourier transform.
//
// Samples are always values of the physical function ψ(x_n) (or a density
// n(r_n)), not of the radial function u = r^p ψ the basis represents
// internally.
package transform
