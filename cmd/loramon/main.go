package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/robotalks/loralink.go/pkg/telemetry/mqtt"
)

var (
	mqttURL = "mqtt://localhost:1883/lora/"
)

func init() {
	if val := os.Getenv("LORA_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}

	q.Sub("#", mqtt.Handler(func(topic string, payload []byte) {
		if strings.HasSuffix(topic, "/meta") {
			log.Printf("%s: [meta] %s", topic, string(payload))
			return
		}
		log.Printf("%s: %s", topic, string(payload))
	}))
	select {}
}
