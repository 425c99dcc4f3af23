package texasholdem

import "encoding/json"

// Round is a betting round within a hand
type Round int

// constants for Round
const (
	RoundPreFlop Round = iota
	RoundFlop
	RoundTurn
	RoundRiver
	RoundShowdown
)

func (r Round) String() string {
	switch r {
	case RoundPreFlop:
		return "pre-flop"
	case RoundFlop:
		return "flop"
	case RoundTurn:
		return "turn"
	case RoundRiver:
		return "river"
	case RoundShowdown:
		return "showdown"
	}

	return ""
}

// MarshalJSON encodes JSON
func (r Round) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(r),
		Name: r.String(),
	})
}

// cardsToDeal is the number of community cards dealt when the round begins
func (r Round) cardsToDeal() int {
	switch r {
	case RoundFlop:
		return 3
	case RoundTurn, RoundRiver:
		return 1
	}

	return 0
}
