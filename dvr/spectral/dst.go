package spectral

// DST is a real discrete sine transform pair of fixed length N: type II
// forward and type III inverse. Both directions are unnormalized and
// Inverse(Forward(f)) == Scale()·f.
//
// The transforms are evaluated exactly through an odd, half-sample embedding
// of the data into a complex sequence of length 4N.
type DST struct {
	n    int
	fft  *FFT
	work []complex128
}

// NewDST creates a sine transform pair of length n.
func NewDST(n int) (*DST, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	fft, err := NewFFT(4 * n)
	if err != nil {
		return nil, err
	}

	return &DST{
		n:    n,
		fft:  fft,
		work: make([]complex128, 4*n),
	}, nil
}

// Len returns the transform length.
func (s *DST) Len() int {
	return s.n
}

// Scale returns the round-trip factor 2N of the unnormalized pair.
func (s *DST) Scale() float64 {
	return 2 * float64(s.n)
}

// Forward computes the type II transform
//
//	dst[k] = 2 Σ_n src[n] sin(π(k+1)(2n+1)/(2N)).
//
// dst and src may be the same slice.
func (s *DST) Forward(dst, src []float64) error {
	if err := checkBuffers(s.n, len(dst), len(src)); err != nil {
		return err
	}

	n := s.n
	m := 4 * n
	for i := range s.work {
		s.work[i] = 0
	}
	for j, v := range src {
		s.work[2*j+1] = complex(v, 0)
		s.work[m-2*j-1] = complex(-v, 0)
	}

	if err := s.fft.Forward(s.work, s.work); err != nil {
		return err
	}

	// The embedding makes work[k] = -2i Σ src[n] sin(π k(2n+1)/(2N)).
	for k := range dst {
		dst[k] = -imag(s.work[k+1])
	}
	return nil
}

// Inverse computes the type III transform
//
//	dst[n] = (-1)^n src[N-1] + 2 Σ_{k<N-1} src[k] sin(π(2n+1)(k+1)/(2N)).
//
// dst and src may be the same slice.
func (s *DST) Inverse(dst, src []float64) error {
	if err := checkBuffers(s.n, len(dst), len(src)); err != nil {
		return err
	}

	n := s.n
	m := 4 * n
	for i := range s.work {
		s.work[i] = 0
	}
	for k, v := range src {
		w := 2 * v
		if k == n-1 {
			w = v
		}
		s.work[k+1] = complex(w, 0)
		s.work[m-k-1] = complex(-w, 0)
	}

	if err := s.fft.Forward(s.work, s.work); err != nil {
		return err
	}

	for j := range dst {
		dst[j] = -imag(s.work[2*j+1]) / 2
	}
	return nil
}
