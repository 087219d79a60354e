// Package bufpool provides pooled, growable byte buffers used by the
// encoder's bit writer to avoid repeated allocation across codec
// invocations. The decoder allocates its output directly and does not use
// a pool.
//
// Adapted from the corpus's internal/pool/byte_buffer_pool.go: the same
// ByteBuffer shape (a growable slice with Reset/Len/Cap), repurposed here
// to hold encoded pixel bytes instead of metric blob bytes, with a single
// size tier sized from image dimensions (spec.md §5) rather than mebo's
// multiple blob/blob-set tiers.
package bufpool

import "sync"

// DefaultSize is used when no capacity hint is available.
const DefaultSize = 4096

// ByteBuffer is a growable byte slice suitable for sync.Pool reuse.
type ByteBuffer struct {
	B []byte
}

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes currently held.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the buffer's current capacity.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Pool is a sync.Pool of ByteBuffer values sized around a default
// capacity hint.
type Pool struct {
	sp sync.Pool
}

// NewPool returns a Pool whose buffers are initially allocated with
// defaultSize bytes of capacity.
func NewPool(defaultSize int) *Pool {
	if defaultSize <= 0 {
		defaultSize = DefaultSize
	}

	return &Pool{
		sp: sync.Pool{
			New: func() any {
				return &ByteBuffer{B: make([]byte, 0, defaultSize)}
			},
		},
	}
}

// Get returns a reset ByteBuffer from the pool, growing it to at least
// capacityHint bytes of capacity if it is currently smaller.
func (p *Pool) Get(capacityHint int) *ByteBuffer {
	bb, _ := p.sp.Get().(*ByteBuffer)
	bb.Reset()
	if cap(bb.B) < capacityHint {
		bb.B = make([]byte, 0, capacityHint)
	}

	return bb
}

// Put returns bb to the pool for reuse.
func (p *Pool) Put(bb *ByteBuffer) {
	p.sp.Put(bb)
}

// Default is the package-level pool used when callers don't supply their
// own via codec.WithBufferPool.
var Default = NewPool(DefaultSize)
