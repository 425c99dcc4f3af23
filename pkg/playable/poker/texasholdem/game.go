package texasholdem

import (
	"errors"

	"github.com/sirupsen/logrus"
	"holdem-server/internal/rng"
	"holdem-server/pkg/playable"
)

// logSize is the number of log messages kept for the hand log
const logSize = 25

// Game is a table of No-Limit Texas Hold'em
// A Game is not safe for concurrent use, the room run loop is expected to serialize access.
type Game struct {
	logger logrus.FieldLogger
	rng    rng.Generator
	state  *State
	log    []*playable.LogMessage
}

// NewGame returns a new table of Texas Hold'em
func NewGame(logger logrus.FieldLogger, opts Options, r rng.Generator) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if r == nil {
		return nil, errors.New("a random number generator is required")
	}

	return &Game{
		logger: logger,
		rng:    r,
		state:  NewState(opts),
		log:    make([]*playable.LogMessage, 0, logSize),
	}, nil
}

// AddPlayer seats a player with the starting chips
// Players can only be seated between hands, they take the next open seat.
func (g *Game) AddPlayer(id int64, name string) (*Player, error) {
	if g.state.InProgress {
		return nil, reject(ReasonHandInProgress, "players cannot be seated during a hand")
	}

	if _, ok := g.state.Player(id); ok {
		return nil, reject(ReasonAlreadySeated, "you are already seated")
	}

	if len(g.state.Players) >= g.state.Options.MaxPlayers {
		return nil, reject(ReasonTableFull, "the table is full")
	}

	p := &Player{
		ID:       id,
		Name:     name,
		Seat:     g.openSeat(),
		Bankroll: g.state.Options.StartingChips,
	}

	ns := g.state.clone()
	ns.insertPlayer(p)
	g.state = ns

	g.logger.WithFields(logrus.Fields{
		"playerID": id,
		"seat":     p.Seat,
	}).Info("player seated")
	g.appendLog(playable.SimpleLogMessage(id, "{} sat down with ${%d}", p.Bankroll))

	return p, nil
}

func (g *Game) openSeat() int {
	taken := make(map[int]bool, len(g.state.Players))
	for _, p := range g.state.Players {
		taken[p.Seat] = true
	}

	seat := 0
	for taken[seat] {
		seat++
	}

	return seat
}

// RemovePlayer removes a player from the table between hands
func (g *Game) RemovePlayer(id int64) error {
	if g.state.InProgress {
		return reject(ReasonHandInProgress, "players cannot leave during a hand")
	}

	idx := g.state.indexOf(id)
	if idx < 0 {
		return reject(ReasonUnknownPlayer, "player is not seated at this table")
	}

	ns := g.state.clone()
	ns.removePlayerAt(idx)
	g.state = ns

	g.logger.WithField("playerID", id).Info("player removed")
	return nil
}

// StartHand starts the next hand
func (g *Game) StartHand() (*Effect, error) {
	ns, effect, err := StartHand(g.state, g.rng)
	if err != nil {
		return nil, err
	}

	g.state = ns
	g.logger.WithFields(logrus.Fields{
		"handNumber": ns.HandNumber,
		"players":    len(ns.Players),
	}).Info("hand started")
	g.appendLog(effect.LogMessages...)

	return effect, nil
}

// CancelHand ends the hand in progress and returns every bet
func (g *Game) CancelHand() (*Effect, error) {
	ns, effect, err := CancelHand(g.state)
	if err != nil {
		return nil, err
	}

	g.state = ns
	g.logger.WithField("handNumber", ns.HandNumber).Warn("hand cancelled")
	g.appendLog(effect.LogMessages...)

	return effect, nil
}

// ApplyAction applies a player's action
// The returned error is a *Rejection if the action was not allowed.
func (g *Game) ApplyAction(a Action) (*Effect, error) {
	ns, effect, err := Apply(g.state, a)
	if err != nil {
		g.logger.WithFields(logrus.Fields{
			"playerID": a.PlayerID,
			"action":   string(a.Action),
			"amount":   a.Amount,
		}).WithError(err).Debug("action rejected")
		return nil, err
	}

	g.state = ns
	g.appendLog(effect.LogMessages...)

	if effect.HandResolved() {
		g.logger.WithFields(logrus.Fields{
			"handNumber": effect.Result.HandNumber,
			"winners":    effect.Result.Winners,
			"carry":      effect.Result.Carry,
		}).Info("hand resolved")
	}

	return effect, nil
}

func (g *Game) appendLog(msgs ...*playable.LogMessage) {
	g.log = append(g.log, msgs...)
	if over := len(g.log) - logSize; over > 0 {
		g.log = append(g.log[:0:0], g.log[over:]...)
	}
}

// LogMessages returns the most recent log messages
func (g *Game) LogMessages() []*playable.LogMessage {
	msgs := make([]*playable.LogMessage, len(g.log))
	copy(msgs, g.log)
	return msgs
}

// PublicState returns the table as seen by the viewer
func (g *Game) PublicState(viewerID int64) *PublicState {
	ps := g.state.PublicState(viewerID)
	ps.Log = g.LogMessages()
	return ps
}

// State returns the current state
// The state must not be modified.
func (g *Game) State() *State {
	return g.state
}

// CurrentActor returns the ID of the player on the clock
func (g *Game) CurrentActor() (int64, bool) {
	if p, ok := g.state.CurrentActor(); ok {
		return p.ID, true
	}

	return 0, false
}

// TurnGeneration returns a value that changes every time the player on the clock changes
func (g *Game) TurnGeneration() int64 {
	return g.state.TurnGeneration
}

// InProgress returns true if a hand is being played
func (g *Game) InProgress() bool {
	return g.state.InProgress
}

// Options returns the table options
func (g *Game) Options() Options {
	return g.state.Options
}

// CanStartHand returns true if enough players have chips to play a hand
func (g *Game) CanStartHand() bool {
	return !g.state.InProgress && g.state.fundedPlayers() >= 2
}
