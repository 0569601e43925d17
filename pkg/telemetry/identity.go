// Package telemetry distributes completed lines to observers off the
// device: MQTT for fleet monitoring, websocket for live views.  The
// taps never block the concurrency core; a lagging observer loses
// lines, the display does not.
package telemetry

import (
	"github.com/denisbrodbeck/machineid"
)

// DeviceID retrieves the unique ID identifying the device host.
func DeviceID() string {
	id, err := machineid.ID()
	if err != nil {
		panic(err)
	}
	return id
}
