package texasholdem

import "errors"

// MaxPlayers is the most players a single table can seat
// Worst case deck usage is 2*10 hole cards + 5 community + 3 burns = 28
const MaxPlayers = 10

// Options configures how Texas Hold'em is played
type Options struct {
	StartingChips int `json:"startingChips"`
	SmallBlind    int `json:"smallBlind"`
	BigBlind      int `json:"bigBlind"`
	// MaxBet is the largest amount a single raise may add to the current bet
	// Zero means there is no limit.
	MaxBet     int `json:"maxBet"`
	MaxPlayers int `json:"maxPlayers"`
}

// DefaultOptions returns the default options for Texas Hold'em
func DefaultOptions() Options {
	return Options{
		StartingChips: 500,
		SmallBlind:    5,
		BigBlind:      10,
		MaxBet:        0,
		MaxPlayers:    MaxPlayers,
	}
}

// Validate returns an error if the options are unplayable
func (o Options) Validate() error {
	if o.StartingChips <= 0 {
		return errors.New("starting chips must be greater than zero")
	}

	if o.SmallBlind <= 0 {
		return errors.New("small blind must be greater than zero")
	}

	if o.BigBlind <= o.SmallBlind {
		return errors.New("big blind must be greater than the small blind")
	}

	if o.MaxBet != 0 && o.MaxBet < o.BigBlind {
		return errors.New("max bet cannot be less than the big blind")
	}

	if o.MaxPlayers < 2 || o.MaxPlayers > MaxPlayers {
		return errors.New("max players must be between 2 and 10")
	}

	return nil
}
