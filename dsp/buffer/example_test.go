package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectrogram/dsp/buffer"
)

func ExamplePool() {
	p := buffer.NewPool()

	b := p.Get(4)
	copy(b.Samples(), []float64{1, 2, 3, 4})
	fmt.Println(b.Samples(), p.Outstanding())

	p.Put(b)
	fmt.Println(p.Outstanding())

	// Output:
	// [1 2 3 4] 1
	// 0
}
