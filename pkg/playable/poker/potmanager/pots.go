package potmanager

import (
	"encoding/json"

	"holdem-server/pkg/playable/poker/handanalyzer"
)

// Pot is a main or side pot that has been awarded
type Pot struct {
	Amount int
	// Hand is the category that won the pot
	Hand handanalyzer.Hand
	// Contenders are the participants that were eligible to win the pot
	Contenders []Participant
	Winners    []Participant
	// Share is the amount every winner receives before odd chips are handed out
	Share int
}

type potJSON struct {
	Amount     int               `json:"amount"`
	Hand       handanalyzer.Hand `json:"hand"`
	Contenders []int64           `json:"contenders"`
	Winners    []int64           `json:"winners"`
	Share      int               `json:"share"`
}

func participantIDs(participants []Participant) []int64 {
	ids := make([]int64, len(participants))
	for i, p := range participants {
		ids[i] = p.ID()
	}

	return ids
}

// MarshalJSON provides custom marshalling
func (p Pot) MarshalJSON() ([]byte, error) {
	return json.Marshal(potJSON{
		Amount:     p.Amount,
		Hand:       p.Hand,
		Contenders: participantIDs(p.Contenders),
		Winners:    participantIDs(p.Winners),
		Share:      p.Share,
	})
}

// Pots is a collection of pots
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}
