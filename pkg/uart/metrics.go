package uart

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	echoBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "morse_echo_bytes_total",
		Help: "Echo bytes queued for transmission.",
	})
	echoDrops = promauto.NewCounter(prometheus.CounterOpts{
		Name: "morse_echo_drops_total",
		Help: "Echo bytes dropped because the transmitter was busy.",
	})
)
