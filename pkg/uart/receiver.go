package uart

import (
	"context"
	"io"
)

// DefaultPending is the default receive queue depth between the pump
// goroutine and the tick loop.
const DefaultPending = 256

// Receiver pumps bytes from a serial stream into a queue the tick
// loop samples one byte per tick, which models the receive strobe:
// asserted for one tick per delivered byte.
type Receiver struct {
	Reader io.Reader

	ch chan byte
}

// NewReceiver creates a Receiver over r.
func NewReceiver(r io.Reader) *Receiver {
	return &Receiver{Reader: r, ch: make(chan byte, DefaultPending)}
}

// Poll implements keyer.ByteSource: it delivers at most one pending
// byte without blocking.
func (r *Receiver) Poll() (byte, bool) {
	select {
	case v := <-r.ch:
		return v, true
	default:
		return 0, false
	}
}

// Inject queues bytes as if they were received on the link. Used by
// remote transports and tests.
func (r *Receiver) Inject(p []byte) {
	for _, v := range p {
		r.ch <- v
	}
}

// Run implements framework.Runnable: it reads the stream byte by byte
// until the stream fails or the context is canceled.
func (r *Receiver) Run(ctx context.Context) error {
	buf := make([]byte, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			n, err := r.Reader.Read(buf)
			if err != nil {
				return err
			}
			if n > 0 {
				r.ch <- buf[0]
			}
		}
	}
}

// Name implements framework.Named.
func (r *Receiver) Name() string {
	return "uart-rx"
}
