// Package bitstream implements BOI's bit-packed writer and reader
// (spec.md §4.2): appending variable-width, prefix-coded blocks with
// sub-byte alignment, and reading them back.
//
// The accumulate-then-flush technique mirrors
// internal/encoding/numeric_gorilla.go's writeBits/flushBits in the
// teacher corpus: pack the block's bits into a register left-aligned to
// the current tail offset, render it big-endian, and keep only the bytes
// the push actually consumed.
package bitstream

import (
	"encoding/binary"

	"github.com/nkashyap/boi/block"
	"github.com/nkashyap/boi/internal/bufpool"
)

// maxPushBits is the largest bit_count a single Push call may carry,
// matching spec.md §4.2's "bit_count <= 56 must hold to avoid overflow".
const maxPushBits = 56

// Writer accumulates prefix-coded blocks into a pooled byte buffer with
// sub-byte alignment between pushes.
type Writer struct {
	bb  *bufpool.ByteBuffer
	off int // number of used bits in the tail byte, in [0, 8)
}

// NewWriter returns a Writer backed by a buffer drawn from pool, pre-sized
// to capacityHint bytes (spec.md §5: the encoder typically sizes this to
// width*height as an over-estimate that avoids reallocation).
func NewWriter(pool *bufpool.Pool, capacityHint int) *Writer {
	if pool == nil {
		pool = bufpool.Default
	}

	return &Writer{bb: pool.Get(capacityHint)}
}

// Push appends b.BitCount bits of b.Value, MSB first, to the stream. If
// the current tail byte is partially filled, the leading bits of b are
// OR'd into it; the remainder becomes new bytes.
func (w *Writer) Push(b block.Block) {
	if b.BitCount == 0 {
		return
	}
	if b.BitCount > maxPushBits {
		panic("bitstream: block exceeds maximum pushable width")
	}

	total := w.off + b.BitCount
	acc := b.Value << uint(64-total)

	var window [8]byte
	binary.BigEndian.PutUint64(window[:], acc)

	nBytes := (total + 7) / 8
	if w.off > 0 && w.bb.Len() > 0 {
		w.bb.B[len(w.bb.B)-1] |= window[0]
		w.bb.B = append(w.bb.B, window[1:nBytes]...)
	} else {
		w.bb.B = append(w.bb.B, window[:nBytes]...)
	}

	w.off = total % 8
}

// Bytes returns the accumulated byte vector, including any partially
// filled tail byte (its unused low bits are zero padding per spec.md §6).
// The returned slice aliases the Writer's pooled backing array and is
// only valid until Release is called.
func (w *Writer) Bytes() []byte {
	return w.bb.B
}

// Len returns the number of bytes written so far, counting a partial tail
// byte as one byte.
func (w *Writer) Len() int {
	return w.bb.Len()
}

// Release returns the Writer's backing buffer to its pool. Callers must
// have already copied out anything they need from Bytes() before calling
// Release.
func (w *Writer) Release(pool *bufpool.Pool) {
	if pool == nil {
		pool = bufpool.Default
	}
	pool.Put(w.bb)
	w.bb = nil
}
