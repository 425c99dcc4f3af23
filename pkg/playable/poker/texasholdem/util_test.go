package texasholdem

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable/poker/action"
)

// unshuffled leaves the deck in order
type unshuffled struct{}

func (unshuffled) Intn(n int) int {
	return n - 1
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testOptions(smallBlind, bigBlind int) Options {
	opts := DefaultOptions()
	opts.SmallBlind = smallBlind
	opts.BigBlind = bigBlind
	return opts
}

// setupGame seats one player per bankroll, player IDs start at 1
func setupGame(t *testing.T, opts Options, bankrolls ...int) *Game {
	t.Helper()

	g, err := NewGame(discardLogger(), opts, unshuffled{})
	if err != nil {
		t.Fatal(err)
	}

	for i, bankroll := range bankrolls {
		p, err := g.AddPlayer(int64(i+1), "")
		if err != nil {
			t.Fatal(err)
		}

		p.Bankroll = bankroll
	}

	return g
}

// stackDeck replaces the hole cards of every player and the cards left in the deck
// holes are in seat order, board is the five community cards
func stackDeck(g *Game, holes []string, board string) {
	for i, p := range g.state.Players {
		p.HoleCards = deck.CardsFromString(holes[i])
	}

	c := deck.CardsFromString(board)
	g.state.deck = &deck.Deck{Cards: []*deck.Card{nil, c[0], c[1], c[2], nil, c[3], nil, c[4]}}
}

func startHand(t *testing.T, g *Game) *Effect {
	t.Helper()

	effect, err := g.StartHand()
	if err != nil {
		t.Fatal(err)
	}

	return effect
}

func assertActor(t *testing.T, g *Game, playerID int64, msgAndArgs ...interface{}) {
	t.Helper()

	actor, ok := g.CurrentActor()
	assert.True(t, ok, msgAndArgs...)
	assert.Equal(t, playerID, actor, msgAndArgs...)
}

func assertAction(t *testing.T, g *Game, playerID int64, a action.Action, msgAndArgs ...interface{}) *Effect {
	t.Helper()
	return assertActionAndAmount(t, g, playerID, a, 0, msgAndArgs...)
}

func assertActionAndAmount(t *testing.T, g *Game, playerID int64, a action.Action, amount int, msgAndArgs ...interface{}) *Effect {
	t.Helper()

	total := g.State().TotalChips()
	effect, err := g.ApplyAction(Action{PlayerID: playerID, Action: a, Amount: amount})
	if !assert.NoError(t, err, msgAndArgs...) {
		t.FailNow()
	}

	assert.Equal(t, total, g.State().TotalChips(), "chips are conserved")
	return effect
}

func assertRejected(t *testing.T, g *Game, playerID int64, a action.Action, amount int, reason Reason, msgAndArgs ...interface{}) {
	t.Helper()

	before := g.State()
	effect, err := g.ApplyAction(Action{PlayerID: playerID, Action: a, Amount: amount})
	assert.Nil(t, effect, msgAndArgs...)

	rejection, ok := err.(*Rejection)
	if assert.True(t, ok, "expected a rejection, got %v", err) {
		assert.Equal(t, reason, rejection.Reason, msgAndArgs...)
	}

	assert.Same(t, before, g.State(), "state is untouched")
}

func bankrolls(g *Game) []int {
	b := make([]int, len(g.state.Players))
	for i, p := range g.state.Players {
		b[i] = p.Bankroll
	}

	return b
}
