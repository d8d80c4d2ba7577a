package spectrogram

import (
	"fmt"

	"github.com/cwbudde/algo-spectrogram/dsp/buffer"
)

// Matrix is a row-major frames x bands spectrogram held in one contiguous
// buffer. Rows are views into that buffer and are only valid until Release.
type Matrix struct {
	rows, cols int
	data       []float64
	buf        *buffer.Buffer
	pool       *buffer.Pool
	released   bool
}

// newMatrix allocates a standalone zeroed matrix. Release on it only drops
// the storage.
func newMatrix(rows, cols int) *Matrix {
	rows, cols = max(rows, 0), max(cols, 0)
	buf := buffer.New(rows * cols)
	return &Matrix{rows: rows, cols: cols, data: buf.Samples(), buf: buf}
}

func newPooledMatrix(pool *buffer.Pool, rows, cols int) *Matrix {
	buf := pool.Get(rows * cols)
	return &Matrix{rows: rows, cols: cols, data: buf.Samples(), buf: buf, pool: pool}
}

// Rows returns the number of frames.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of pooled bands per frame.
func (m *Matrix) Cols() int { return m.cols }

// Len returns Rows()*Cols().
func (m *Matrix) Len() int { return m.rows * m.cols }

// Released reports whether Release has been called.
func (m *Matrix) Released() bool { return m.released }

func (m *Matrix) index(r, c int) int {
	if m.released {
		panic(ErrReleased)
	}
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("spectrogram: index [%d,%d] out of range [%d,%d]", r, c, m.rows, m.cols))
	}
	return r*m.cols + c
}

// At returns the value at row r, column c.
func (m *Matrix) At(r, c int) float64 {
	return m.data[m.index(r, c)]
}

// Set stores v at row r, column c.
func (m *Matrix) Set(r, c int, v float64) {
	m.data[m.index(r, c)] = v
}

// Row returns row r as a view of exactly Cols() values. Appending to it
// never spills into the next row.
func (m *Matrix) Row(r int) []float64 {
	if m.released {
		panic(ErrReleased)
	}
	if r < 0 || r >= m.rows {
		panic(fmt.Sprintf("spectrogram: row %d out of range [0,%d)", r, m.rows))
	}
	start := r * m.cols
	end := start + m.cols
	return m.data[start:end:end]
}

// ArgMaxRow returns the column of the largest value in row r.
func (m *Matrix) ArgMaxRow(r int) int {
	row := m.Row(r)
	best := 0
	for c, v := range row {
		if v > row[best] {
			best = c
		}
	}
	return best
}

// Flatten returns a row-major copy of the matrix.
func (m *Matrix) Flatten() ([]float64, error) {
	if m.released {
		return nil, ErrReleased
	}
	return append([]float64(nil), m.data...), nil
}

// CopyToFloat32 writes the matrix rows-outer, columns-inner into dst, the
// layout expected by an NHWC [1][frames][bands][1] model input, and returns
// the number of values written.
func (m *Matrix) CopyToFloat32(dst []float32) (int, error) {
	if m.released {
		return 0, ErrReleased
	}
	if len(dst) < len(m.data) {
		return 0, fmt.Errorf("spectrogram: destination holds %d values, need %d", len(dst), len(m.data))
	}
	for i, v := range m.data {
		dst[i] = float32(v)
	}
	return len(m.data), nil
}

// Release hands the storage back to the extractor. Calling it again is a
// no-op; any other use after Release panics or returns ErrReleased.
func (m *Matrix) Release() {
	if m == nil || m.released {
		return
	}
	m.released = true
	m.data = nil
	if m.pool != nil {
		m.pool.Put(m.buf)
	}
	m.buf = nil
}
