package room

import (
	"time"

	"github.com/coder/quartz"
)

// turnTimer folds the player on the clock when they take too long
// Every timer is tagged with the turn generation it was armed for, an expired timer whose
// generation no longer matches the game is ignored.
type turnTimer struct {
	clock   quartz.Clock
	timeout time.Duration

	timer      *quartz.Timer
	generation int64
	playerID   int64
	expires    time.Time
}

func newTurnTimer(clock quartz.Clock, timeout time.Duration) *turnTimer {
	return &turnTimer{
		clock:   clock,
		timeout: timeout,
	}
}

// arm cancels any running timer and starts a new one for the turn
func (t *turnTimer) arm(generation, playerID int64, onExpire func(generation int64)) {
	t.stop()

	t.generation = generation
	t.playerID = playerID
	t.expires = t.clock.Now().Add(t.timeout)
	t.timer = t.clock.AfterFunc(t.timeout, func() {
		onExpire(generation)
	}, "turnTimer")
}

func (t *turnTimer) stop() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// deadline returns when the current turn expires
func (t *turnTimer) deadline() (time.Time, bool) {
	if t.timer == nil {
		return time.Time{}, false
	}

	return t.expires, true
}
