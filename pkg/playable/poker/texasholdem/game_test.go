package texasholdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-server/internal/rng"
	"holdem-server/pkg/playable/poker/action"
)

func TestNewGame(t *testing.T) {
	a := assert.New(t)

	opts := DefaultOptions()
	opts.BigBlind = opts.SmallBlind
	g, err := NewGame(discardLogger(), opts, rng.Crypto{})
	a.Nil(g)
	a.EqualError(err, "big blind must be greater than the small blind")

	g, err = NewGame(discardLogger(), DefaultOptions(), nil)
	a.Nil(g)
	a.Error(err)

	g, err = NewGame(discardLogger(), DefaultOptions(), rng.Crypto{})
	a.NoError(err)
	a.False(g.InProgress())
	a.False(g.CanStartHand())
	a.Equal(DefaultOptions(), g.Options())
}

func TestGame_AddPlayer(t *testing.T) {
	a := assert.New(t)

	opts := testOptions(5, 10)
	opts.MaxPlayers = 3
	g := setupGame(t, opts, 500, 500)

	p, err := g.AddPlayer(3, "Carol")
	a.NoError(err)
	a.Equal(2, p.Seat)
	a.Equal(500, p.Bankroll)

	_, err = g.AddPlayer(3, "Carol")
	a.Equal(ReasonAlreadySeated, err.(*Rejection).Reason)

	_, err = g.AddPlayer(4, "Dave")
	a.Equal(ReasonTableFull, err.(*Rejection).Reason)

	// seats are reused
	a.NoError(g.RemovePlayer(2))
	p, err = g.AddPlayer(4, "Dave")
	a.NoError(err)
	a.Equal(1, p.Seat)
	a.Equal([]int64{1, 4, 3}, []int64{g.State().Players[0].ID, g.State().Players[1].ID, g.State().Players[2].ID})

	startHand(t, g)
	_, err = g.AddPlayer(5, "Erin")
	a.Equal(ReasonHandInProgress, err.(*Rejection).Reason)
	a.Equal(ReasonHandInProgress, g.RemovePlayer(1).(*Rejection).Reason)
}

func TestGame_RemovePlayer(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, testOptions(5, 10), 500, 500, 500)
	a.Equal(ReasonUnknownPlayer, g.RemovePlayer(99).(*Rejection).Reason)

	startHand(t, g)
	assertAction(t, g, 1, action.Fold)
	assertAction(t, g, 2, action.Fold)

	// the button stays with the next player when the button leaves
	a.NoError(g.RemovePlayer(1))
	startHand(t, g)
	p, _ := g.State().Player(2)
	a.Equal(p, g.State().Players[g.State().Button])
}

func TestGame_LogMessages(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, testOptions(5, 10), 500, 500)
	for i := 0; i < 10; i++ {
		startHand(t, g)
		actor, _ := g.CurrentActor()
		assertAction(t, g, actor, action.Fold)
	}

	msgs := g.LogMessages()
	a.Len(msgs, logSize)
	a.Contains(msgs[len(msgs)-1].Message, "won $")
}

func TestGame_ApplyAction_unknownAction(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, testOptions(5, 10), 500, 500)
	startHand(t, g)
	actor, _ := g.CurrentActor()

	before := g.State()
	effect, err := g.ApplyAction(Action{PlayerID: actor, Action: action.Action("bet")})
	a.Nil(effect)
	a.EqualError(err, "unknown action: bet")
	if rejection, ok := err.(*Rejection); a.True(ok) {
		a.Equal(ReasonUnknownAction, rejection.Reason)
	}

	a.Same(before, g.State())
	assertAction(t, g, actor, action.Call)
}
