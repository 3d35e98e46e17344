package mqtt

import (
	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"

	"github.com/scsole/nano-morse-encoder/pkg/framework"
)

// PubSub is the transport surface the bridge needs from a Queue.
type PubSub interface {
	Pub(topic string, payload []byte)
	Sub(topic string, handler Handler)
}

// Injector feeds received bytes into the keyer input, as if they
// arrived on the serial link.
type Injector interface {
	Inject([]byte)
}

// DeviceID returns the identity used in bridge topics.
func DeviceID() string {
	id, err := machineid.ID()
	if err != nil {
		glog.Warningf("machine id unavailable: %v", err)
		return "unknown"
	}
	return id
}

// Bridge connects a keyer to a broker:
//
//	morse/<id>/send   (sub)  payload bytes are queued for replay
//	morse/<id>/reset  (sub)  any payload forces a synchronous reset
//	morse/<id>/echo   (pub)  one message per echoed byte
//	morse/<id>/key    (pub)  "1"/"0" on key transitions
type Bridge struct {
	ID string

	queue PubSub
}

// NewBridge creates a Bridge over a transport.
func NewBridge(queue PubSub, id string) *Bridge {
	if id == "" {
		id = DeviceID()
	}
	return &Bridge{ID: id, queue: queue}
}

// Start subscribes the inbound topics.
func (b *Bridge) Start(input Injector, ctl framework.LoopControl) {
	b.queue.Sub(b.topic("send"), func(topic string, payload []byte) {
		input.Inject(payload)
	})
	b.queue.Sub(b.topic("reset"), func(topic string, payload []byte) {
		glog.Info("reset requested over mqtt")
		ctl.RequestReset()
	})
}

// EchoByte implements keyer.EchoSink.
func (b *Bridge) EchoByte(v byte) {
	b.queue.Pub(b.topic("echo"), []byte{v})
}

// KeyChanged implements keyer.KeyListener.
func (b *Bridge) KeyChanged(on bool) {
	payload := []byte("0")
	if on {
		payload = []byte("1")
	}
	b.queue.Pub(b.topic("key"), payload)
}

func (b *Bridge) topic(leaf string) string {
	return "morse/" + b.ID + "/" + leaf
}
