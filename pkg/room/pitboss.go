package room

import (
	"errors"
	"sync"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"holdem-server/internal/rng"
	"holdem-server/internal/util"
)

// ErrRoomNotFound is returned when no room exists for a code
var ErrRoomNotFound = errors.New("room not found")

const roomCodeLength = 6

// PitBoss is responsible for dispatching clients to rooms
type PitBoss struct {
	logger  logrus.FieldLogger
	clock   quartz.Clock
	rng     rng.Generator
	dealers map[string]*Dealer
	lock    sync.RWMutex
}

// NewPitBoss returns a new dispatch object
// The generator is shared by every room and must be safe for concurrent use.
func NewPitBoss(logger logrus.FieldLogger, clock quartz.Clock, r rng.Generator) *PitBoss {
	return &PitBoss{
		logger:  logger,
		clock:   clock,
		rng:     r,
		dealers: make(map[string]*Dealer),
	}
}

// CreateRoom creates a room and starts its dealer
func (p *PitBoss) CreateRoom(settings Settings) (*Dealer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	code := util.RoomCode(p.rng, roomCodeLength)
	for p.dealers[code] != nil {
		code = util.RoomCode(p.rng, roomCodeLength)
	}

	dealer, err := NewDealer(p, code, settings)
	if err != nil {
		return nil, err
	}

	dealer.StartShift()
	p.dealers[code] = dealer

	p.logger.WithFields(logrus.Fields{
		"code":    code,
		"options": settings.Options,
	}).Info("room created")

	return dealer, nil
}

// Room returns the room with the given code
func (p *PitBoss) Room(code string) (*Dealer, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	dealer, ok := p.dealers[code]
	if !ok {
		return nil, ErrRoomNotFound
	}

	return dealer, nil
}

// Rooms returns the number of open rooms
func (p *PitBoss) Rooms() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return len(p.dealers)
}

// ClientConnected is called when a client connects to a room
func (p *PitBoss) ClientConnected(dealer *Dealer, client *Client) {
	p.logger.WithField("client", client.ID).WithField("code", dealer.code).Debug("client connected")
	dealer.AddClient(client)
}

// ClientDisconnected is called when a client disconnects from the server
// The room is closed once the last client leaves
func (p *PitBoss) ClientDisconnected(client *Client) {
	dealer := client.dealer
	if dealer == nil {
		return
	}

	p.logger.WithField("client", client.String()).Debug("client disconnected")

	p.lock.Lock()
	defer p.lock.Unlock()

	if dealer.RemoveClient(client) {
		dealer.EndShift()
		delete(p.dealers, dealer.code)
		p.logger.WithField("code", dealer.code).Info("room closed")
	}
}

// Close ends the shift of every dealer
func (p *PitBoss) Close() {
	p.lock.Lock()
	defer p.lock.Unlock()

	for code, dealer := range p.dealers {
		dealer.EndShift()
		delete(p.dealers, code)
	}
}
