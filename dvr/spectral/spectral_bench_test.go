package spectral

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-dvr/internal/testutil"
)

func BenchmarkFFTRoundTrip(b *testing.B) {
	for _, n := range []int{64, 96, 1024} {
		f, err := NewFFT(n)
		if err != nil {
			b.Fatal(err)
		}
		buf := testutil.DeterministicComplexNoise(1, 1, n)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = f.Forward(buf, buf)
				_ = f.Inverse(buf, buf)
			}
		})
	}
}

func BenchmarkDSTRoundTrip(b *testing.B) {
	for _, n := range []int{32, 128, 512} {
		s, err := NewDST(n)
		if err != nil {
			b.Fatal(err)
		}
		buf := testutil.DeterministicNoise(1, 1, n)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = s.Forward(buf, buf)
				_ = s.Inverse(buf, buf)
			}
		})
	}
}
