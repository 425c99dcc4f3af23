package texasholdem

import (
	"encoding/json"

	"holdem-server/pkg/deck"
)

// Status is the status of a player within a hand
type Status int

// constants for Status
const (
	StatusActive Status = iota
	StatusFolded
	StatusAllIn
	StatusBusted
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFolded:
		return "folded"
	case StatusAllIn:
		return "all-in"
	case StatusBusted:
		return "busted"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Player is a player seated at the table
type Player struct {
	ID   int64
	Name string
	Seat int

	Bankroll  int
	HoleCards deck.Hand

	// SubtotalBet is what the player put in during the current round
	SubtotalBet int
	// TotalBet is what the player put in during completed rounds of this hand
	TotalBet int

	Status Status

	// acted is true if the player has acted since the last full raise
	acted bool
}

// InHand returns true if the player can still win the pot
func (p *Player) InHand() bool {
	return p.Status != StatusFolded && p.Status != StatusBusted
}

// CanAct returns true if the player can still make decisions this hand
func (p *Player) CanAct() bool {
	return p.Status == StatusActive
}

// Chips returns every chip the player has at the table, including chips in the pot
func (p *Player) Chips() int {
	return p.Bankroll + p.SubtotalBet + p.TotalBet
}

// bet moves chips from the bankroll into the current round
func (p *Player) bet(amount int) {
	if amount > p.Bankroll {
		panic("bet exceeds bankroll")
	}

	p.Bankroll -= amount
	p.SubtotalBet += amount
	if p.Bankroll == 0 {
		p.Status = StatusAllIn
	}
}

func (p *Player) resetForHand() {
	p.HoleCards = nil
	p.SubtotalBet = 0
	p.TotalBet = 0
	p.Status = StatusActive
	p.acted = false
}

func (p *Player) clone() *Player {
	cp := *p
	cp.HoleCards = p.HoleCards.Clone()
	return &cp
}

// showdownEntry adapts a player for the pot manager
type showdownEntry struct {
	*Player
	community deck.Hand
}

func (s showdownEntry) ID() int64 {
	return s.Player.ID
}

func (s showdownEntry) Contribution() int {
	return s.TotalBet
}

func (s showdownEntry) ShowdownCards() []*deck.Card {
	if !s.InHand() {
		return nil
	}

	cards := make([]*deck.Card, 0, len(s.HoleCards)+len(s.community))
	cards = append(cards, s.HoleCards...)
	return append(cards, s.community...)
}
