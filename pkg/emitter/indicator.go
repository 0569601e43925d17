package emitter

import "github.com/golang/glog"

// Indicator is a binary liveness signal, toggled once per timer
// period.  Purely observational: no contract beyond toggling at a
// fixed rate while the dispatcher is alive.
type Indicator interface {
	Toggle()
}

// LogIndicator is the host analog of a heartbeat LED.  It is owned
// exclusively by the emitter task and needs no locking.
type LogIndicator struct {
	state bool
}

// Toggle implements Indicator.
func (l *LogIndicator) Toggle() {
	l.state = !l.state
	glog.V(1).Infof("liveness %v", l.state)
}

// State reports the current indicator state.
func (l *LogIndicator) State() bool {
	return l.state
}
