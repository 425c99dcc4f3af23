package texasholdem

import (
	"errors"
	"fmt"
)

// Stakes is a stake level a room can be created with
type Stakes struct {
	Name          string `json:"name" yaml:"name"`
	StartingChips int    `json:"startingChips" yaml:"startingChips"`
	// MinCall is the big blind
	MinCall int `json:"minCall" yaml:"minCall"`
	// MaxCall is the largest single raise, see Options.MaxBet
	MaxCall int `json:"maxCall" yaml:"maxCall"`
}

// DefaultStakes returns the stake levels offered when creating a room
func DefaultStakes() []Stakes {
	return []Stakes{
		{Name: "$1K/$5K", StartingChips: 500000, MinCall: 1000, MaxCall: 5000},
		{Name: "$5K/$25K", StartingChips: 1000000, MinCall: 5000, MaxCall: 25000},
		{Name: "$10K/$50K", StartingChips: 2000000, MinCall: 10000, MaxCall: 50000},
		{Name: "$25K/$75K", StartingChips: 2000000, MinCall: 25000, MaxCall: 75000},
		{Name: "$50K/$100K", StartingChips: 2000000, MinCall: 50000, MaxCall: 100000},
		{Name: "$100K/$200K", StartingChips: 5000000, MinCall: 100000, MaxCall: 200000},
	}
}

// Validate returns an error if the stakes are unplayable
func (s Stakes) Validate() error {
	if s.StartingChips <= 0 {
		return errors.New("starting chips must be greater than zero")
	}

	if s.MinCall < 2 {
		return errors.New("min call must be at least 2")
	}

	if s.MaxCall <= s.MinCall {
		return fmt.Errorf("max call must be greater than the min call of %d", s.MinCall)
	}

	return nil
}

// Options returns table options for the stakes
// The small blind is half of the big blind.
func (s Stakes) Options(maxPlayers int) Options {
	return Options{
		StartingChips: s.StartingChips,
		SmallBlind:    s.MinCall / 2,
		BigBlind:      s.MinCall,
		MaxBet:        s.MaxCall,
		MaxPlayers:    maxPlayers,
	}
}

// FindStakes returns the stakes with the given name
func FindStakes(stakes []Stakes, name string) (Stakes, bool) {
	for _, s := range stakes {
		if s.Name == name {
			return s, true
		}
	}

	return Stakes{}, false
}
