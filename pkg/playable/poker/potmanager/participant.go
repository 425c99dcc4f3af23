package potmanager

import "holdem-server/pkg/deck"

// Participant is a player whose chips are in the pot
type Participant interface {
	ID() int64

	// Contribution is the total amount put into the pot over the entire hand
	Contribution() int

	// ShowdownCards returns the hole and community cards the participant plays with
	// nil is returned if the participant cannot win the pot (i.e., they folded)
	ShowdownCards() []*deck.Card
}

type participantInPot struct {
	Participant
	remaining int
	cards     []*deck.Card
}

func (p *participantInPot) take(limit int) int {
	amount := p.remaining
	if amount > limit {
		amount = limit
	}

	p.remaining -= amount
	return amount
}
