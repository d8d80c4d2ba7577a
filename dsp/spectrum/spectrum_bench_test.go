package spectrum

import (
	"testing"

	"github.com/cwbudde/algo-spectrogram/internal/testutil"
)

func BenchmarkPowerSpectrum320(b *testing.B) {
	for _, backend := range []Backend{BackendGonum, BackendReference} {
		b.Run(backend.String(), func(b *testing.B) {
			e, err := NewEngine(320, WithBackend(backend))
			if err != nil {
				b.Fatal(err)
			}
			frame := testutil.DeterministicSine(1000, 16000, 1, 320)
			power := make([]float64, e.Bins())

			b.ReportAllocs()
			b.ResetTimer()
			for range b.N {
				_ = e.PowerSpectrum(power, frame)
			}
		})
	}
}
