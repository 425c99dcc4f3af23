package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-server/internal/rng"
)

func TestNew(t *testing.T) {
	a := assert.New(t)
	d := New()

	a.Equal(52, d.CardsLeft())
	a.Equal(Card{Rank: 2, Suit: Clubs}, *d.Cards[0])
	a.Equal(Card{Rank: 14, Suit: Spades}, *d.Cards[51])
}

func TestNewShuffled(t *testing.T) {
	a := assert.New(t)

	d := NewShuffled(rng.NewSeeded(1))
	a.Equal(52, d.CardsLeft())

	seen := make(map[string]bool)
	for _, c := range d.Cards {
		seen[CardToString(c)] = true
	}
	a.Len(seen, 52, "every card is unique")

	a.NotEqual(New().Cards, d.Cards)

	same := NewShuffled(rng.NewSeeded(1))
	a.Equal(CardsToString(d.Cards), CardsToString(same.Cards))

	other := NewShuffled(rng.NewSeeded(2))
	a.NotEqual(CardsToString(d.Cards), CardsToString(other.Cards))
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)
	d := New()

	a.True(d.CanDraw(52))
	a.False(d.CanDraw(53))

	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		a.NoError(err)
		a.NotNil(card)
	}

	card, err := d.Draw()
	a.Nil(card)
	a.Equal(ErrEndOfDeck, err)
	a.Equal(ErrEndOfDeck, d.Burn())
}

func TestDeck_Burn(t *testing.T) {
	a := assert.New(t)
	d := New()
	a.NoError(d.Burn())
	a.Equal(51, d.CardsLeft())

	card, _ := d.Draw()
	a.Equal("3c", CardToString(card))
}

func TestDeck_Clone(t *testing.T) {
	a := assert.New(t)
	d := New()
	d2 := d.Clone()
	_, _ = d2.Draw()

	a.Equal(52, d.CardsLeft())
	a.Equal(51, d2.CardsLeft())
}
