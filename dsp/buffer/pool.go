package buffer

import (
	"sync"
	"sync/atomic"
)

// Pool provides sync.Pool-based Buffer reuse. It is safe for concurrent use.
type Pool struct {
	pool        sync.Pool
	outstanding atomic.Int64
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed Buffer with the requested length. Callers must return
// it via Put when done.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	b.Zero()
	p.outstanding.Add(1)
	return b
}

// Put returns a Buffer to the pool for reuse. The caller must not use the
// buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.outstanding.Add(-1)
	p.pool.Put(b)
}

// Outstanding returns the number of buffers obtained with Get and not yet
// returned with Put.
func (p *Pool) Outstanding() int {
	return int(p.outstanding.Load())
}
