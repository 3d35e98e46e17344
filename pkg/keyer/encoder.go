package keyer

import (
	"github.com/scsole/nano-morse-encoder/pkg/morse"
)

// State identifies the encoder FSM state.
type State int

// Encoder states.
const (
	// StateIdle waits for the unit delay to elapse or for input.
	StateIdle State = iota
	// StateSignal replays one symbol with the key asserted (or
	// suppressed for silent entries).
	StateSignal
	// StateGap is the one-unit pause between symbols of a character.
	StateGap
	// StateLetterGap is the three-unit pause after a character.
	StateLetterGap
)

// EchoSink receives transmit-echo requests: one per character,
// carrying the original input byte, at the moment its replay begins.
type EchoSink interface {
	EchoByte(byte)
}

// EchoFunc is the func form of EchoSink.
type EchoFunc func(byte)

// EchoByte implements EchoSink.
func (f EchoFunc) EchoByte(b byte) {
	f(b)
}

// Encoder is the central state machine. On each unit tick it consumes
// bytes from the ring buffer, looks up their Morse pattern, and keys
// the carrier for the correct duration of each dot, dash, and gap.
// A divider derives the unit tick from the system tick.
type Encoder struct {
	// Echo, when set, receives the transmit-echo byte stream.
	Echo EchoSink

	buf     *RingBuffer
	divisor int
	divCnt  int

	state State
	idx   uint8 // index of the next symbol within the current pattern
	delay int   // unit ticks left before the next transition
	key   bool  // carrier currently keyed on
}

// NewEncoder creates an Encoder over buf advancing one Morse unit
// every unitDivisor system ticks.
func NewEncoder(buf *RingBuffer, unitDivisor int) *Encoder {
	if unitDivisor < 1 {
		unitDivisor = 1
	}
	return &Encoder{buf: buf, divisor: unitDivisor}
}

// Key reports whether the carrier is currently keyed.
func (e *Encoder) Key() bool {
	return e.key
}

// State returns the current FSM state.
func (e *Encoder) State() State {
	return e.state
}

// Tick advances the encoder one system tick.
func (e *Encoder) Tick() {
	if e.divisor > 1 {
		e.divCnt++
		if e.divCnt < e.divisor {
			return
		}
		e.divCnt = 0
	}
	e.unitTick()
}

// unitTick advances the encoder one Morse unit. Every transition is
// total over its inputs; nothing here can fail.
func (e *Encoder) unitTick() {
	if e.delay > 0 {
		e.delay--
		if e.delay > 0 {
			return
		}
	}

	v, ok := e.buf.Peek()
	if !ok {
		// Empty buffer is the normal idle condition.
		e.state = StateIdle
		e.key = false
		return
	}
	ent := morse.Lookup(v)
	if ent.Len == 0 {
		// Unrecognized byte: zero signal time, consumed without
		// stalling.
		e.buf.Pop()
		e.idx = 0
		unmappedBytes.Inc()
		return
	}

	switch {
	case e.idx >= ent.Len:
		// All symbols replayed: the character is fully consumed.
		e.key = false
		e.delay = morse.LetterGapUnits
		e.idx = 0
		e.buf.Pop()
		e.state = StateLetterGap
	case e.key:
		// The carrier was on: insert the intra-character gap.
		e.key = false
		e.delay = morse.SymbolGapUnits
		e.state = StateGap
	default:
		if e.idx == 0 {
			charactersKeyed.Inc()
			if e.Echo != nil {
				e.Echo.EchoByte(v)
			}
		}
		if ent.Pattern>>uint(e.idx)&1 == 1 {
			e.delay = morse.DashUnits
		} else {
			e.delay = morse.DotUnits
		}
		e.key = !ent.Silent
		e.idx++
		e.state = StateSignal
	}
}

// Reset forces the encoder back to its initial state: idle, counters
// zero, key deasserted.
func (e *Encoder) Reset() {
	e.divCnt = 0
	e.state = StateIdle
	e.idx = 0
	e.delay = 0
	e.key = false
}
