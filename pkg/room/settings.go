package room

import (
	"encoding/json"
	"errors"
	"time"

	"holdem-server/pkg/playable/poker/texasholdem"
)

// Settings configures a room
type Settings struct {
	// Stakes is the name of the stake level, empty for custom settings
	Stakes  string
	Options texasholdem.Options
	// ActionTimeout is how long a player has to act before they are folded
	ActionTimeout time.Duration
	// NextHandDelay is how long the results of a hand are shown before the next hand starts
	NextHandDelay time.Duration
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		Options:       texasholdem.DefaultOptions(),
		ActionTimeout: 10 * time.Second,
		NextHandDelay: 3 * time.Second,
	}
}

// Validate returns an error if the room cannot be created with the settings
func (s Settings) Validate() error {
	if err := s.Options.Validate(); err != nil {
		return err
	}

	if s.ActionTimeout <= 0 {
		return errors.New("action timeout must be greater than zero")
	}

	if s.NextHandDelay < 0 {
		return errors.New("next hand delay cannot be negative")
	}

	return nil
}

// MarshalJSON encodes JSON
func (s Settings) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Stakes        string              `json:"stakes,omitempty"`
		Options       texasholdem.Options `json:"options"`
		ActionTimeout float64             `json:"actionTimeout"`
		NextHandDelay float64             `json:"nextHandDelay"`
	}{
		Stakes:        s.Stakes,
		Options:       s.Options,
		ActionTimeout: s.ActionTimeout.Seconds(),
		NextHandDelay: s.NextHandDelay.Seconds(),
	})
}
