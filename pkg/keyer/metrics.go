package keyer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for observability only; none of them changes buffering or
// consumption semantics.
var (
	bytesBuffered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "morse_bytes_buffered_total",
		Help: "Bytes accepted into the replay buffer.",
	})
	bufferOverwrites = promauto.NewCounter(prometheus.CounterOpts{
		Name: "morse_buffer_overwrites_total",
		Help: "Unread bytes silently overwritten by the producer.",
	})
	charactersKeyed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "morse_characters_keyed_total",
		Help: "Characters whose replay started.",
	})
	unmappedBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "morse_unmapped_bytes_total",
		Help: "Bytes consumed without signal because no pattern maps them.",
	})
	keyState = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "morse_key_state",
		Help: "Carrier key state (1 while keyed).",
	})
)
