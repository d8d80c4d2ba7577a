package frequency_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectrogram/stats/frequency"
)

func ExampleCalculate() {
	power := []float64{0, 1, 4, 1, 0}
	d := frequency.Calculate(power, 200)

	fmt.Printf("peak=%d centroid=%.0f Hz\n", d.PeakBand, d.Centroid)
	// Output: peak=2 centroid=500 Hz
}
