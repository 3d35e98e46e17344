package keyer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func toneTrace(t *Tone, key bool, ticks int) []bool {
	trace := make([]bool, 0, ticks)
	for i := 0; i < ticks; i++ {
		t.Tick(key)
		trace = append(trace, t.Level())
	}
	return trace
}

func TestToneSquareWave(t *testing.T) {
	// 1 kHz tick rate, 250 Hz tone: half period is two ticks.
	tone := NewTone(1000, 250)
	require.Equal(t,
		[]bool{false, true, true, false, false, true, true, false},
		toneTrace(tone, true, 8))
}

func TestToneUnkeyedStaysLow(t *testing.T) {
	tone := NewTone(1000, 250)
	for _, level := range toneTrace(tone, false, 16) {
		require.False(t, level)
	}
}

func TestToneTrailingHalfPeriod(t *testing.T) {
	tone := NewTone(1000, 250)
	toneTrace(tone, true, 2)
	require.True(t, tone.Level())

	// After key release the output holds until the next threshold
	// event, then is forced low: up to one half period of trailing
	// carrier.
	tone.Tick(false)
	require.True(t, tone.Level())
	tone.Tick(false)
	require.False(t, tone.Level())
}

func TestToneThresholdClamp(t *testing.T) {
	// A tone faster than the tick rate can express degrades to
	// toggling every tick rather than dividing by zero ticks.
	tone := NewTone(1000, 100000)
	require.Equal(t, []bool{true, false, true, false}, toneTrace(tone, true, 4))
}

func TestToneReset(t *testing.T) {
	tone := NewTone(1000, 250)
	toneTrace(tone, true, 3)
	tone.Reset()
	require.False(t, tone.Level())
	// Phase restarts from zero.
	require.Equal(t, []bool{false, true}, toneTrace(tone, true, 2))
}
