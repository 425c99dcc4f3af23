package room

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"holdem-server/internal/rng"
)

func TestPitBoss_CreateRoom(t *testing.T) {
	a := assert.New(t)

	pitBoss := NewPitBoss(discardLogger(), quartz.NewMock(t), rng.NewSeeded(1))
	defer pitBoss.Close()

	settings := DefaultSettings()
	settings.ActionTimeout = 0
	_, err := pitBoss.CreateRoom(settings)
	a.EqualError(err, "action timeout must be greater than zero")

	dealer, err := pitBoss.CreateRoom(DefaultSettings())
	if !a.NoError(err) {
		return
	}

	a.Len(dealer.Code(), roomCodeLength)
	a.Equal(1, pitBoss.Rooms())

	found, err := pitBoss.Room(dealer.Code())
	a.NoError(err)
	a.Same(dealer, found)

	_, err = pitBoss.Room("NOPE")
	a.Equal(ErrRoomNotFound, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	summary, err := dealer.Summary(ctx)
	if a.NoError(err) {
		a.Equal(dealer.Code(), summary.Code)
		a.Empty(summary.Players)
		a.False(summary.InProgress)
		a.Equal(DefaultSettings(), summary.Settings)
	}
}

func TestPitBoss_ClientDisconnected(t *testing.T) {
	a := assert.New(t)

	pitBoss := NewPitBoss(discardLogger(), quartz.NewMock(t), rng.NewSeeded(1))
	defer pitBoss.Close()

	dealer, err := pitBoss.CreateRoom(DefaultSettings())
	if !a.NoError(err) {
		return
	}

	c1 := NewClient(nil)
	c2 := NewClient(nil)
	pitBoss.ClientConnected(dealer, c1)
	pitBoss.ClientConnected(dealer, c2)

	select {
	case msg := <-c1.SendChan():
		a.NotNil(msg)
	case <-time.After(time.Second):
		a.Fail("timed out waiting for the connected message")
	}

	pitBoss.ClientDisconnected(c1)
	a.Equal(1, pitBoss.Rooms())

	pitBoss.ClientDisconnected(c2)
	a.Equal(0, pitBoss.Rooms())

	_, err = pitBoss.Room(dealer.Code())
	a.Equal(ErrRoomNotFound, err)

	_, err = dealer.Summary(context.Background())
	a.Equal(ErrRoomNotFound, err)
}
