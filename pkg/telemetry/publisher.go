package telemetry

import (
	"context"

	"github.com/golang/glog"

	"github.com/robotalks/loralink.go/pkg/frame"
	"github.com/robotalks/loralink.go/pkg/telemetry/mqtt"
)

// Publisher publishes completed lines over MQTT under
// <prefix><device>/lines and announces the device under
// <prefix><device>/meta (retained).
type Publisher struct {
	Queue    *mqtt.Queue
	DeviceID string
	Lines    <-chan *frame.Message
}

// Name implements rtos.Named.
func (p *Publisher) Name() string {
	return "mqtt-publisher"
}

// Announce publishes the retained device meta record.
func (p *Publisher) Announce(meta string) {
	p.Queue.PubWith(p.DeviceID+"/meta", []byte(meta), 0, true)
}

// Run implements rtos.Runnable.  Lines that are not valid text are
// not published, mirroring the display policy.
func (p *Publisher) Run(ctx context.Context) error {
	topic := p.DeviceID + "/lines"
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-p.Lines:
			text, err := msg.Text()
			if err != nil {
				glog.V(2).Infof("telemetry: dropped undecodable %d-byte line", msg.Len())
				continue
			}
			if token := p.Queue.Pub(topic, []byte(text)); token.Wait() && token.Error() != nil {
				glog.Warningf("publish failed: %v", token.Error())
			}
		}
	}
}
