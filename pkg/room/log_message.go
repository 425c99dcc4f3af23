package room

import (
	"holdem-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages records room events, such as players joining, and sends them to every client
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages ...*playable.LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
	d.broadcast(keyLog, messages)
}
