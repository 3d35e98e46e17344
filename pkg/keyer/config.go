package keyer

import (
	"flag"
	"fmt"
	"time"
)

// Config defines the configuration for the keyer. These values are
// fixed at construction, matching the compile-time constants of the
// hardware this models.
type Config struct {
	// UnitPeriod is the duration of one Morse time unit.
	UnitPeriod time.Duration
	// TickPeriod is the system tick period the unit divider and the
	// tone phase counter are derived from.
	TickPeriod time.Duration
	// ToneFreq is the audible carrier frequency in Hz.
	ToneFreq int
	// Capacity is the buffer capacity in bytes; must be a power of
	// two.
	Capacity int
	// IndicatorActiveLow inverts the indicator output.
	IndicatorActiveLow bool
}

// Defaults
const (
	DefaultUnitPeriod = 50 * time.Millisecond
	DefaultTickPeriod = time.Millisecond
	DefaultToneFreq   = 440
	DefaultCapacity   = 2048
)

var defaultConfig = Config{
	UnitPeriod: DefaultUnitPeriod,
	TickPeriod: DefaultTickPeriod,
	ToneFreq:   DefaultToneFreq,
	Capacity:   DefaultCapacity,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.DurationVar(&defaultConfig.UnitPeriod, "unit-period", defaultConfig.UnitPeriod, "Duration of one Morse unit.")
	flag.DurationVar(&defaultConfig.TickPeriod, "tick-period", defaultConfig.TickPeriod, "System tick period.")
	flag.IntVar(&defaultConfig.ToneFreq, "tone-freq", defaultConfig.ToneFreq, "Tone frequency (Hz).")
	flag.IntVar(&defaultConfig.Capacity, "buffer-capacity", defaultConfig.Capacity, "Buffer capacity in bytes, a power of two.")
	flag.BoolVar(&defaultConfig.IndicatorActiveLow, "indicator-active-low", defaultConfig.IndicatorActiveLow, "Drive the indicator active-low.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// UnitDivisor returns the number of system ticks per Morse unit.
func (c *Config) UnitDivisor() (int, error) {
	if c.TickPeriod <= 0 {
		return 0, fmt.Errorf("invalid tick period %v", c.TickPeriod)
	}
	d := int(c.UnitPeriod / c.TickPeriod)
	if d < 1 {
		return 0, fmt.Errorf("unit period %v shorter than tick period %v", c.UnitPeriod, c.TickPeriod)
	}
	return d, nil
}

// NewKeyer creates the Keyer using the config.
func (c *Config) NewKeyer(src ByteSource, echo EchoSink) (*Keyer, error) {
	divisor, err := c.UnitDivisor()
	if err != nil {
		return nil, err
	}
	if c.ToneFreq <= 0 {
		return nil, fmt.Errorf("invalid tone frequency %d", c.ToneFreq)
	}
	buf, err := NewRingBuffer(NewRAM(c.Capacity))
	if err != nil {
		return nil, err
	}
	enc := NewEncoder(buf, divisor)
	enc.Echo = echo
	tickRate := int(time.Second / c.TickPeriod)
	k := &Keyer{
		Source:             src,
		indicatorActiveLow: c.IndicatorActiveLow,
		buf:                buf,
		enc:                enc,
		tone:               NewTone(tickRate, c.ToneFreq),
	}
	return k, nil
}
