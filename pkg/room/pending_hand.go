package room

import (
	"time"

	"github.com/coder/quartz"
)

// pendingHand is a hand that will be dealt once the delay passes
type pendingHand struct {
	Start time.Time `json:"start"`
	timer *quartz.Timer
}

func newPendingHand(clock quartz.Clock, delay time.Duration, start func()) *pendingHand {
	return &pendingHand{
		Start: clock.Now().Add(delay),
		timer: clock.AfterFunc(delay, start, "nextHand"),
	}
}

func (p *pendingHand) cancel() {
	p.timer.Stop()
}
