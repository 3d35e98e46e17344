package uart

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/golang/glog"
)

// Transmitter accepts echo bytes from the keyer and writes them to a
// serial stream in the background. Echo transmission is best effort:
// the keyer does not wait for the transmitter, and a byte arriving
// while the outbound queue is full is dropped and counted rather
// than stalling the tick loop.
type Transmitter struct {
	Writer io.Writer

	ch    chan byte
	drops uint64
}

// NewTransmitter creates a Transmitter over w.
func NewTransmitter(w io.Writer) *Transmitter {
	return &Transmitter{Writer: w, ch: make(chan byte, 64)}
}

// EchoByte implements keyer.EchoSink without blocking.
func (t *Transmitter) EchoByte(v byte) {
	select {
	case t.ch <- v:
		echoBytes.Inc()
	default:
		atomic.AddUint64(&t.drops, 1)
		echoDrops.Inc()
		glog.V(2).Infof("echo dropped: %#x", v)
	}
}

// Drops returns the number of echo bytes dropped so far.
func (t *Transmitter) Drops() uint64 {
	return atomic.LoadUint64(&t.drops)
}

// Run implements framework.Runnable.
func (t *Transmitter) Run(ctx context.Context) error {
	buf := make([]byte, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case v := <-t.ch:
			buf[0] = v
			if _, err := t.Writer.Write(buf); err != nil {
				return err
			}
		}
	}
}

// Name implements framework.Named.
func (t *Transmitter) Name() string {
	return "uart-tx"
}
