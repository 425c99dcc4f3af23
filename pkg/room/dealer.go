package room

import (
	"context"
	"sync"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/texasholdem"
)

// Dealer runs a single room
// Every change to the game happens on the dealer's run loop.
type Dealer struct {
	code     string
	pitBoss  *PitBoss
	logger   logrus.FieldLogger
	clock    quartz.Clock
	settings Settings
	game     *texasholdem.Game
	clients  map[*Client]bool
	lock     sync.RWMutex

	nextPlayerID int64
	queued       []*queuedPlayer
	leaving      map[int64]bool
	started      bool
	turnTimer    *turnTimer
	pendingHand  *pendingHand
	logMessages  []*playable.LogMessage

	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
}

// queuedPlayer joined during a hand and will be seated once it ends
type queuedPlayer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(pitBoss *PitBoss, code string, settings Settings) (*Dealer, error) {
	logger := pitBoss.logger.WithField("code", code)

	game, err := texasholdem.NewGame(logger, settings.Options, pitBoss.rng)
	if err != nil {
		return nil, err
	}

	return &Dealer{
		code:          code,
		pitBoss:       pitBoss,
		logger:        logger,
		clock:         pitBoss.clock,
		settings:      settings,
		game:          game,
		clients:       make(map[*Client]bool),
		leaving:       make(map[int64]bool),
		turnTimer:     newTurnTimer(pitBoss.clock, settings.ActionTimeout),
		logMessages:   make([]*playable.LogMessage, 0, logMessageLimit),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}, nil
}

// Code returns the room code
func (d *Dealer) Code() string {
	return d.code
}

// Settings returns the room settings
func (d *Dealer) Settings() Settings {
	return d.settings
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			d.safely(fn)
		case <-d.close:
			d.turnTimer.stop()
			d.cancelNextHand()
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// safely runs fn and keeps the run loop alive if it panics
// A panic cancels the hand in progress, every bet is returned.
func (d *Dealer) safely(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.WithField("type", "exception").WithField("panic", r).Error("recovered from panic in dealer run loop")
			d.cancelHand()
		}
	}()

	fn()
}

func (d *Dealer) cancelHand() {
	defer func() {
		if r := recover(); r != nil {
			d.logger.WithField("type", "exception").WithField("panic", r).Error("could not cancel the hand")
		}
	}()

	if !d.game.InProgress() {
		return
	}

	effect, err := d.game.CancelHand()
	if err != nil {
		d.logger.WithError(err).WithField("type", "exception").Error("could not cancel the hand")
		return
	}

	d.broadcast(keyLog, effect.LogMessages)
	d.finishHand(&texasholdem.HandResult{HandNumber: d.game.State().HandNumber})
	d.broadcastState()
}

// exec queues fn on the run loop
// Returns false if the dealer has ended its shift
func (d *Dealer) exec(fn func()) bool {
	select {
	case <-d.close:
		return false
	default:
	}

	select {
	case d.execInRunLoop <- fn:
		return true
	case <-d.close:
		return false
	}
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.exec(func() {
		client.Send(&playable.Response{
			Key: keyConnected,
			Data: connectedData{
				ClientID: client.ID,
				Code:     d.code,
			},
		})

		client.Send(d.gameStateResponse(client, ""))
	})
}

// RemoveClient removes a client, a seated player leaves the table
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	d.exec(func() {
		if client.playerID == 0 {
			return
		}

		if err := d.leave(client, "disconnected"); err != nil {
			d.logger.WithError(err).WithField("client", client.String()).Error("could not remove player")
		}
	})

	return nClients == 0
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	d.exec(func() {
		d.handleMessage(c, msg)
	})
}

// Summary returns an overview of the room
func (d *Dealer) Summary(ctx context.Context) (*Summary, error) {
	ch := make(chan *Summary, 1)
	if !d.exec(func() { ch <- d.summary() }) {
		return nil, ErrRoomNotFound
	}

	select {
	case s := <-ch:
		return s, nil
	case <-d.close:
		return nil, ErrRoomNotFound
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcast(key string, data interface{}) {
	for _, client := range d.Clients() {
		client.Send(&playable.Response{
			Key:  key,
			Data: data,
		})
	}
}

// broadcastEach sends every client its own view
// NOTE: must only be called from the run loop
func (d *Dealer) broadcastEach(key string, data func(c *Client) interface{}) {
	for _, client := range d.Clients() {
		client.Send(&playable.Response{
			Key:  key,
			Data: data(client),
		})
	}
}

func (d *Dealer) broadcastState() {
	d.broadcastEach(keyGameState, func(c *Client) interface{} {
		return d.gameState(c)
	})
}

func (d *Dealer) gameStateResponse(c *Client, ctx string) *playable.Response {
	return &playable.Response{
		Key:     keyGameState,
		Data:    d.gameState(c),
		Context: ctx,
	}
}

func (d *Dealer) gameState(c *Client) *gameStateData {
	log := make([]*playable.LogMessage, len(d.logMessages))
	copy(log, d.logMessages)

	gs := &gameStateData{
		Code:     d.code,
		Settings: d.settings,
		PlayerID: c.playerID,
		Queued:   append([]*queuedPlayer{}, d.queued...),
		State:    d.game.PublicState(c.playerID),
		NextHand: d.pendingHand,
		Log:      log,
	}

	if deadline, ok := d.turnTimer.deadline(); ok {
		gs.TurnDeadline = &deadline
	}

	return gs
}

// clientForPlayer returns the client the player joined with
func (d *Dealer) clientForPlayer(playerID int64) *Client {
	for _, client := range d.Clients() {
		if client.playerID == playerID {
			return client
		}
	}

	return nil
}
