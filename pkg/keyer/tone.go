package keyer

// Tone is a free-running square-wave generator gated by the key
// signal. The phase counter runs at system-tick rate; every time it
// reaches the half-period threshold the output toggles while keyed,
// or is forced to the inactive level otherwise. The carrier may keep
// sounding for up to one half-period after key release; that is an
// accepted characteristic of the gating, not something to correct.
type Tone struct {
	threshold int
	phase     int
	level     bool
}

// NewTone creates a Tone for the given system tick rate and tone
// frequency, both in Hz.
func NewTone(tickRate, freq int) *Tone {
	threshold := tickRate / (2 * freq)
	if threshold < 1 {
		threshold = 1
	}
	return &Tone{threshold: threshold}
}

// Level returns the current carrier output level. The output is
// stepped: it holds the last computed level between threshold events.
func (t *Tone) Level() bool {
	return t.level
}

// Tick advances the phase counter one system tick.
func (t *Tone) Tick(key bool) {
	t.phase++
	if t.phase < t.threshold {
		return
	}
	t.phase = 0
	if key {
		t.level = !t.level
	} else {
		t.level = false
	}
}

// Reset clears the phase counter and forces the output inactive.
func (t *Tone) Reset() {
	t.phase = 0
	t.level = false
}
