package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"io"
	"net/http"
	"os"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tarm/serial"

	fx "github.com/scsole/nano-morse-encoder/pkg/framework"
	"github.com/scsole/nano-morse-encoder/pkg/keyer"
	"github.com/scsole/nano-morse-encoder/pkg/remote/mqtt"
	"github.com/scsole/nano-morse-encoder/pkg/uart"
)

var (
	device      = flag.String("device", "", "Serial device, e.g. /dev/ttyUSB0; empty runs on stdin/stdout.")
	baud        = flag.Int("baud", 115200, "Serial baud rate.")
	brokerURL   = flag.String("mqtt-broker", "", "MQTT broker URL; empty disables the bridge.")
	bridgeID    = flag.String("mqtt-id", "", "Bridge identity, defaults to the machine id.")
	metricsAddr = flag.String("metrics-listen", "", "Address to serve /metrics on; empty disables.")
)

func init() {
	keyer.SetupFlags()
}

// stdio is the bench fallback when no serial device is configured.
type stdio struct{}

func (stdio) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdio) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func openPort() (io.ReadWriter, error) {
	if *device == "" {
		return stdio{}, nil
	}
	return serial.OpenPort(&serial.Config{Name: *device, Baud: *baud})
}

type echoFanout []keyer.EchoSink

func (f echoFanout) EchoByte(v byte) {
	for _, s := range f {
		s.EchoByte(v)
	}
}

func main() {
	flag.Parse()

	port, err := openPort()
	if err != nil {
		glog.Exitf("open %s: %v", *device, err)
	}
	rx := uart.NewReceiver(port)
	tx := uart.NewTransmitter(port)

	conf := keyer.NewConfig()
	loop := fx.NewLoop()
	loop.Interval = conf.TickPeriod

	echo := echoFanout{tx}
	var onKey keyer.KeyListener
	if *brokerURL != "" {
		queue, err := mqtt.NewQueueFromURL(*brokerURL)
		if err != nil {
			glog.Exitf("invalid broker URL: %v", err)
		}
		if err := queue.Connect(); err != nil {
			glog.Exitf("mqtt connect: %v", err)
		}
		defer queue.Close()
		bridge := mqtt.NewBridge(queue, *bridgeID)
		bridge.Start(rx, loop)
		echo = append(echo, bridge)
		onKey = bridge
	}

	k, err := conf.NewKeyer(rx, echo)
	if err != nil {
		glog.Exitf("keyer config: %v", err)
	}
	k.OnKey = onKey
	loop.Add(k)

	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			glog.Error(http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	runner := fx.NewRunner().HandleSignals()
	runner.Go(fx.NamedRun("loop", loop), rx, tx)
	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}
