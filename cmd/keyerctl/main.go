package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"fmt"
	"strings"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/scsole/nano-morse-encoder/pkg/remote/mqtt"
)

var (
	brokerURL = flag.String("broker", "mqtt://127.0.0.1:1883", "MQTT broker URL.")
	keyerID   = flag.String("id", "", "Keyer identity, defaults to the machine id.")
)

func main() {
	flag.Parse()

	queue, err := mqtt.NewQueueFromURL(*brokerURL)
	if err != nil {
		glog.Exitf("invalid broker URL: %v", err)
	}
	if err := queue.Connect(); err != nil {
		glog.Exitf("mqtt connect: %v", err)
	}
	defer queue.Close()

	id := *keyerID
	if id == "" {
		id = mqtt.DeviceID()
	}
	topic := func(leaf string) string { return "morse/" + id + "/" + leaf }

	shell := ishell.New()
	shell.SetPrompt(id + " > ")
	shell.Println("connected to", *brokerURL)

	var watchEcho, watchKey bool
	queue.Sub(topic("echo"), func(_ string, payload []byte) {
		if watchEcho {
			fmt.Printf("%s", payload)
		}
	})
	queue.Sub(topic("key"), func(_ string, payload []byte) {
		if watchKey {
			fmt.Printf("[key %s]", payload)
		}
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "send",
		Help: "queue text for Morse replay",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(fmt.Errorf("nothing to send"))
				return
			}
			queue.Pub(topic("send"), []byte(strings.Join(c.Args, " ")))
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "watch",
		Help: "print echoed characters as they replay",
		Func: func(c *ishell.Context) {
			watchEcho = !watchEcho
			c.Println("echo watch:", watchEcho)
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "key",
		Help: "print key up/down transitions",
		Func: func(c *ishell.Context) {
			watchKey = !watchKey
			c.Println("key watch:", watchKey)
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "reset",
		Help: "force a synchronous keyer reset",
		Func: func(c *ishell.Context) {
			queue.Pub(topic("reset"), []byte("1"))
		},
	})

	shell.Run()
}
