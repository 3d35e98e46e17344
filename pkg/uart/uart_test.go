package uart

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type blockingStream struct {
	byteCh chan byte
}

func newBlockingStream() *blockingStream {
	return &blockingStream{byteCh: make(chan byte)}
}

func (s *blockingStream) Read(p []byte) (int, error) {
	v, ok := <-s.byteCh
	if !ok {
		return 0, io.EOF
	}
	p[0] = v
	return 1, nil
}

func TestReceiverPollStrobe(t *testing.T) {
	s := newBlockingStream()
	r := NewReceiver(s)
	errCh := make(chan error, 1)
	go func() {
		errCh <- r.Run(context.Background())
	}()

	_, ok := r.Poll()
	require.False(t, ok, "nothing received yet")

	go func() {
		for _, v := range []byte("sos") {
			s.byteCh <- v
		}
		close(s.byteCh)
	}()

	var got []byte
	deadline := time.After(time.Second)
	for len(got) < 3 {
		if v, ok := r.Poll(); ok {
			got = append(got, v)
			continue
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for bytes")
		default:
		}
	}
	require.Equal(t, []byte("sos"), got)

	require.Equal(t, io.EOF, <-errCh, "pump stops when the stream ends")
}

func TestReceiverInject(t *testing.T) {
	r := NewReceiver(nil)
	r.Inject([]byte("cq"))
	v, ok := r.Poll()
	require.True(t, ok)
	require.Equal(t, byte('c'), v)
	v, ok = r.Poll()
	require.True(t, ok)
	require.Equal(t, byte('q'), v)
	_, ok = r.Poll()
	require.False(t, ok)
}

type syncWriter struct {
	lock sync.Mutex
	buf  bytes.Buffer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.buf.Write(p)
}

func (w *syncWriter) String() string {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.buf.String()
}

func TestTransmitterEcho(t *testing.T) {
	w := &syncWriter{}
	tx := NewTransmitter(w)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() {
		errCh <- tx.Run(ctx)
	}()

	for _, v := range []byte("sos") {
		tx.EchoByte(v)
	}
	require.Eventually(t, func() bool {
		return w.String() == "sos"
	}, time.Second, time.Millisecond)
	require.Zero(t, tx.Drops())

	cancel()
	require.Equal(t, context.Canceled, <-errCh)
}

func TestTransmitterBestEffortDrop(t *testing.T) {
	// No Run pump: the queue fills up and further echoes are dropped
	// instead of blocking the caller.
	tx := NewTransmitter(io.Discard)
	for i := 0; i < 100; i++ {
		tx.EchoByte('e')
	}
	require.Equal(t, uint64(100-cap(tx.ch)), tx.Drops())
}
