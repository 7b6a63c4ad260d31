package core

// EnsureLen returns buf resliced to length n when its capacity allows and a
// fresh slice otherwise. Reused values are not cleared.
func EnsureLen(buf []float64, n int) []float64 {
	return ensureLen(buf, n)
}

// EnsureLenComplex is EnsureLen for complex scratch.
func EnsureLenComplex(buf []complex128, n int) []complex128 {
	return ensureLen(buf, n)
}

func ensureLen[T float64 | complex128](buf []T, n int) []T {
	switch {
	case n <= 0:
		return buf[:0]
	case cap(buf) < n:
		return make([]T, n)
	default:
		return buf[:n]
	}
}

// Zero clears buf.
func Zero(buf []float64) { clear(buf) }

// ZeroComplex clears buf.
func ZeroComplex(buf []complex128) { clear(buf) }

// ToComplex copies the real values of src into dst with zero imaginary part.
// It copies min(len(dst), len(src)) values and returns that count.
func ToComplex(dst []complex128, src []float64) int {
	n := min(len(dst), len(src))
	for i, v := range src[:n] {
		dst[i] = complex(v, 0)
	}
	return n
}
