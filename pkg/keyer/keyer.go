// Package keyer implements the timing-driven Morse encode-and-replay
// engine: a fixed-capacity ring buffer over addressable storage, the
// per-symbol timing state machine, and the tone modulator gating the
// audible carrier.
//
// Everything advances in one synchronous domain. Each system tick the
// keyer samples the receive strobe, steps the ring buffer's read
// path, steps the encoder (which divides the tick down to the Morse
// unit rate), and steps the tone modulator — in that fixed order.
// There is one producer and one consumer for every piece of shared
// state, so no locking is involved.
package keyer

import (
	"github.com/golang/glog"

	"github.com/scsole/nano-morse-encoder/pkg/framework"
)

// ByteSource is the byte receive collaborator. Poll samples the
// strobe: it returns the pending byte at most once, without blocking.
type ByteSource interface {
	Poll() (byte, bool)
}

// KeyListener is notified when the key signal changes level.
type KeyListener interface {
	KeyChanged(bool)
}

// KeyFunc is the func form of KeyListener.
type KeyFunc func(bool)

// KeyChanged implements KeyListener.
func (f KeyFunc) KeyChanged(on bool) {
	f(on)
}

// Keyer ties the ring buffer, encoder, and tone modulator into one
// component ticking at system rate.
type Keyer struct {
	// Source delivers received bytes; nil means input is injected
	// directly via Push.
	Source ByteSource
	// OnKey, when set, observes key transitions.
	OnKey KeyListener

	indicatorActiveLow bool

	buf     *RingBuffer
	enc     *Encoder
	tone    *Tone
	lastKey bool
}

// Push stores one received byte. It is the strobe-tick write path and
// always succeeds.
func (k *Keyer) Push(v byte) {
	k.buf.Push(v)
}

// Key reports whether the carrier is keyed.
func (k *Keyer) Key() bool {
	return k.enc.Key()
}

// Indicator returns the indicator output level, honouring the
// configured polarity.
func (k *Keyer) Indicator() bool {
	if k.indicatorActiveLow {
		return !k.enc.Key()
	}
	return k.enc.Key()
}

// ToneLevel returns the audible carrier output level.
func (k *Keyer) ToneLevel() bool {
	return k.tone.Level()
}

// Tick implements framework.Ticker.
func (k *Keyer) Tick(framework.TickContext) error {
	if k.Source != nil {
		if v, ok := k.Source.Poll(); ok {
			k.buf.Push(v)
		}
	}
	k.buf.Tick()
	k.enc.Tick()
	k.tone.Tick(k.enc.Key())

	if key := k.enc.Key(); key != k.lastKey {
		k.lastKey = key
		if key {
			keyState.Set(1)
		} else {
			keyState.Set(0)
		}
		glog.V(4).Infof("key %v", key)
		if k.OnKey != nil {
			k.OnKey.KeyChanged(key)
		}
	}
	return nil
}

// Reset implements framework.Resettable: every counter and state flag
// returns to its initial value.
func (k *Keyer) Reset() {
	k.buf.Reset()
	k.enc.Reset()
	k.tone.Reset()
	if k.lastKey {
		k.lastKey = false
		keyState.Set(0)
		if k.OnKey != nil {
			k.OnKey.KeyChanged(false)
		}
	}
	glog.V(2).Info("keyer reset")
}

// AddToLoop implements framework.LoopAdder.
func (k *Keyer) AddToLoop(l *framework.Loop) {
	l.AddTicker(k)
}
