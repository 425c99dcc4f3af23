package texasholdem

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable/poker/handanalyzer"
	"holdem-server/pkg/playable/poker/potmanager"
)

// ShowdownHand is a hand that was revealed at showdown
type ShowdownHand struct {
	Cards       deck.Hand         `json:"cards"`
	Hand        handanalyzer.Hand `json:"hand"`
	Description string            `json:"description"`
}

// HandResult is the outcome of a hand
type HandResult struct {
	HandNumber int `json:"handNumber"`
	// Uncontested is true if everybody but the winner folded
	Uncontested bool                   `json:"uncontested"`
	Winners     []int64                `json:"winners"`
	Pots        potmanager.Pots        `json:"pots"`
	Payouts     map[int64]int          `json:"payouts"`
	Hands       map[int64]ShowdownHand `json:"hands,omitempty"`
	// Busted are the players that ran out of chips
	Busted []int64 `json:"busted"`
	// Carry are chips that will be added to the next pot
	Carry int `json:"carry"`
}
