package keyer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBuffer(t *testing.T, capacity int) *RingBuffer {
	buf, err := NewRingBuffer(NewRAM(capacity))
	require.NoError(t, err)
	return buf
}

func TestRingBufferCapacity(t *testing.T) {
	for _, capacity := range []int{0, 3, 100, 2047} {
		_, err := NewRingBuffer(NewRAM(capacity))
		require.Equalf(t, ErrCapacity, err, "capacity %d", capacity)
	}
	buf := newTestBuffer(t, 2048)
	require.Equal(t, 2048, buf.Capacity())
}

func TestRingBufferReadLatency(t *testing.T) {
	buf := newTestBuffer(t, 8)

	_, ok := buf.Peek()
	require.False(t, ok, "empty buffer must not deliver")

	buf.Push('a')
	_, ok = buf.Peek()
	require.False(t, ok, "data must not be visible before the read path ticks")

	// First tick presents the read address, second latches the cell.
	buf.Tick()
	_, ok = buf.Peek()
	require.False(t, ok)
	buf.Tick()
	v, ok := buf.Peek()
	require.True(t, ok)
	require.Equal(t, byte('a'), v)

	// The latched value holds across further ticks until Pop.
	buf.Tick()
	v, ok = buf.Peek()
	require.True(t, ok)
	require.Equal(t, byte('a'), v)

	buf.Pop()
	require.True(t, buf.Empty())
	_, ok = buf.Peek()
	require.False(t, ok)
}

func TestRingBufferFIFOOrder(t *testing.T) {
	buf := newTestBuffer(t, 16)
	in := []byte("morse code 101")
	for _, v := range in {
		buf.Push(v)
	}

	var out []byte
	for !buf.Empty() {
		v, ok := buf.Peek()
		if !ok {
			buf.Tick()
			continue
		}
		out = append(out, v)
		buf.Pop()
	}
	require.Equal(t, in, out)
}

func TestRingBufferOverflowWrap(t *testing.T) {
	// Documented behavior, not a bug: pushing capacity+1 bytes with
	// no pop wraps the write cursor and overwrites the oldest unread
	// byte; the newer value is the one subsequently replayed.
	buf := newTestBuffer(t, 8)
	for i := 0; i <= 8; i++ {
		buf.Push(byte('0' + i))
	}
	buf.Tick()
	buf.Tick()
	v, ok := buf.Peek()
	require.True(t, ok)
	require.Equal(t, byte('8'), v)
	buf.Pop()
	require.True(t, buf.Empty(), "cursors meet again after draining the single surviving slot")
}

func TestRingBufferReset(t *testing.T) {
	buf := newTestBuffer(t, 8)
	buf.Push('x')
	buf.Push('y')
	buf.Tick()
	buf.Tick()
	buf.Reset()
	require.True(t, buf.Empty())
	_, ok := buf.Peek()
	require.False(t, ok)

	// The buffer is fully usable after reset.
	buf.Push('z')
	buf.Tick()
	buf.Tick()
	v, ok := buf.Peek()
	require.True(t, ok)
	require.Equal(t, byte('z'), v)
}
