package window

import "testing"

func BenchmarkTableApply320(b *testing.B) {
	w, err := New(TypeShiftedHann, 320)
	if err != nil {
		b.Fatal(err)
	}
	frame := make([]float64, 320)
	for i := range frame {
		frame[i] = 1
	}

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		_ = w.Apply(frame)
	}
}
