package keyer

import "errors"

// ErrCapacity indicates the storage capacity is not usable for the
// ring buffer.
var ErrCapacity = errors.New("buffer capacity must be a power of two")

// RingBuffer is a fixed-capacity FIFO over a Store. It tracks
// independent write and read cursors wrapping mod capacity and keeps
// no fill count: non-empty means the cursors differ. The producer
// never observes fullness — a writer outrunning the reader silently
// overwrites unread data. That is accepted design behavior, only
// counted for observability.
type RingBuffer struct {
	store Store
	mask  int

	writeCursor int
	readCursor  int

	// presented is the address on the store's read port; latched is
	// the address its output register corresponds to. Both -1 until
	// the first tick. The double-buffered pair models the one-tick
	// read latency so Peek never returns stale or skipped data.
	presented int
	latched   int

	// fill shadows the occupancy purely for the overwrite counter;
	// it never gates Push or Pop.
	fill int
}

// NewRingBuffer creates a RingBuffer over store. The store capacity
// must be a power of two.
func NewRingBuffer(store Store) (*RingBuffer, error) {
	c := store.Capacity()
	if c <= 0 || c&(c-1) != 0 {
		return nil, ErrCapacity
	}
	return &RingBuffer{store: store, mask: c - 1, presented: -1, latched: -1}, nil
}

// Capacity returns the fixed capacity.
func (b *RingBuffer) Capacity() int {
	return b.mask + 1
}

// Empty reports whether no unread byte is buffered.
func (b *RingBuffer) Empty() bool {
	return b.readCursor == b.writeCursor
}

// Push stores v at the write cursor and advances it. Push always
// succeeds; it may overwrite an unread slot.
func (b *RingBuffer) Push(v byte) {
	b.store.Write(b.writeCursor, v)
	b.writeCursor = (b.writeCursor + 1) & b.mask
	bytesBuffered.Inc()
	if b.fill <= b.mask {
		b.fill++
	} else {
		bufferOverwrites.Inc()
	}
}

// Peek returns the byte at the read cursor once the read latency has
// elapsed, or false while the buffer is empty or the read register
// has not caught up with the cursor yet.
func (b *RingBuffer) Peek() (byte, bool) {
	if b.Empty() || b.latched != b.readCursor {
		return 0, false
	}
	return b.store.Data(), true
}

// Pop advances the read cursor. Only valid when non-empty.
func (b *RingBuffer) Pop() {
	b.readCursor = (b.readCursor + 1) & b.mask
	if b.fill > 0 {
		b.fill--
	}
}

// Tick advances the read path one step: the store latches the cell at
// the previously presented address, then the current read cursor is
// presented for the next tick.
func (b *RingBuffer) Tick() {
	b.store.Tick()
	b.latched = b.presented
	b.store.Present(b.readCursor)
	b.presented = b.readCursor
}

// Reset clears both cursors and the read path.
func (b *RingBuffer) Reset() {
	b.writeCursor = 0
	b.readCursor = 0
	b.presented = -1
	b.latched = -1
	b.fill = 0
	b.store.Reset()
}
