package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/loralink.go/pkg/bridge"
	"github.com/robotalks/loralink.go/pkg/display"
	"github.com/robotalks/loralink.go/pkg/emitter"
	"github.com/robotalks/loralink.go/pkg/frame"
	"github.com/robotalks/loralink.go/pkg/rtos"
	"github.com/robotalks/loralink.go/pkg/serial"
	"github.com/robotalks/loralink.go/pkg/telemetry"
	"github.com/robotalks/loralink.go/pkg/telemetry/mqtt"
	wsfeed "github.com/robotalks/loralink.go/pkg/telemetry/websocket"
)

var (
	portName   = "/dev/ttyUSB0"
	baud       = serial.DefaultBaud
	capacity   = frame.DefaultCapacity
	pollPeriod = rtos.DefaultTickPeriod
	pollCmd    = "AT+ADDRESS?"
	mqttURL    = ""
	wsAddr     = ""
	deviceID   = ""
)

func init() {
	if val := os.Getenv("LORA_PORT"); val != "" {
		portName = val
	}
	if val := os.Getenv("LORA_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&portName, "port", portName, "Serial device path or tcp:host:port.")
	flag.IntVar(&baud, "baud", baud, "Baud rate of the serial link.")
	flag.IntVar(&capacity, "rx-buffer", capacity, "Receive frame buffer capacity in bytes.")
	flag.DurationVar(&pollPeriod, "poll-period", pollPeriod, "Radio poll period.")
	flag.StringVar(&pollCmd, "poll-cmd", pollCmd, "Radio poll command, CRLF appended.")
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL for line telemetry, empty disables.")
	flag.StringVar(&wsAddr, "listen-ws", wsAddr, "Listen address for the websocket line feed, empty disables.")
	flag.StringVar(&deviceID, "device-id", deviceID, "Device ID for telemetry topics, defaults to the machine ID.")
}

func main() {
	flag.Parse()

	port, err := serial.Open(&serial.Config{Name: portName, Baud: baud})
	if err != nil {
		glog.Exitf("open %s: %v", portName, err)
	}

	b, err := bridge.New(port, display.NewConsole(os.Stdout), &emitter.LogIndicator{}, bridge.Config{
		BufferCapacity: capacity,
		PollPeriod:     pollPeriod,
		PollCommand:    []byte(pollCmd + "\r\n"),
	})
	if err != nil {
		glog.Exit(err)
	}

	runner := rtos.NewRunner().HandleSignals()
	runner.Go(b.Runnables()...)

	if mqttURL != "" || wsAddr != "" {
		fan := telemetry.NewFanout(b.Lines())
		if mqttURL != "" {
			q, err := mqtt.NewQueueFromURL(mqttURL)
			if err != nil {
				glog.Exit(err)
			}
			if token := q.Connect(); token.Wait() && token.Error() != nil {
				glog.Exit(token.Error())
			}
			id := deviceID
			if id == "" {
				id = telemetry.DeviceID()
			}
			pub := &telemetry.Publisher{Queue: q, DeviceID: id, Lines: fan.NewTap(16)}
			pub.Announce("loralink poll=" + pollCmd)
			runner.Go(pub)
		}
		if wsAddr != "" {
			feed := wsfeed.NewFeed(fan.NewTap(16))
			http.Handle("/lines", feed.Handler())
			go func() {
				glog.Error(http.ListenAndServe(wsAddr, nil))
			}()
			runner.Go(feed)
		}
		runner.Go(fan)
	}

	glog.Infof("bridging %s at %d baud, polling %q every %v", portName, baud, pollCmd, pollPeriod)
	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}
