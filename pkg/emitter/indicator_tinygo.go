//go:build tinygo

package emitter

import "machine"

// PinIndicator toggles a GPIO pin, typically the board LED.
type PinIndicator struct {
	Pin   machine.Pin
	state bool
}

// NewPinIndicator configures the pin for output.
func NewPinIndicator(pin machine.Pin) *PinIndicator {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &PinIndicator{Pin: pin}
}

// Toggle implements Indicator.
func (p *PinIndicator) Toggle() {
	p.state = !p.state
	p.Pin.Set(p.state)
}
