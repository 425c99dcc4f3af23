package config

import (
	"errors"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"holdem-server/internal/util"
	"holdem-server/pkg/playable/poker/texasholdem"
	"holdem-server/pkg/room"
)

// Config provides configuration for the Hold'em server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level string `yaml:"level" envconfig:"level"`
		// Format is either "text" or "json"
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Table          Table                `yaml:"table"`
	Stakes         []texasholdem.Stakes `yaml:"stakes" ignored:"true"`
	AllowedOrigins []string             `yaml:"allowedOrigins" envconfig:"allowed_origins"`
}

// Table holds the defaults for rooms created without stakes
type Table struct {
	StartingChips int           `yaml:"startingChips" envconfig:"starting_chips"`
	SmallBlind    int           `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind      int           `yaml:"bigBlind" envconfig:"big_blind"`
	MaxBet        int           `yaml:"maxBet" envconfig:"max_bet"`
	MaxPlayers    int           `yaml:"maxPlayers" envconfig:"max_players"`
	ActionTimeout time.Duration `yaml:"actionTimeout" envconfig:"action_timeout"`
	NextHandDelay time.Duration `yaml:"nextHandDelay" envconfig:"next_hand_delay"`
}

// Options returns the table options
func (t Table) Options() texasholdem.Options {
	return texasholdem.Options{
		StartingChips: t.StartingChips,
		SmallBlind:    t.SmallBlind,
		BigBlind:      t.BigBlind,
		MaxBet:        t.MaxBet,
		MaxPlayers:    t.MaxPlayers,
	}
}

// Settings returns the room settings for the table
func (t Table) Settings() room.Settings {
	return room.Settings{
		Options:       t.Options(),
		ActionTimeout: t.ActionTimeout,
		NextHandDelay: t.NextHandDelay,
	}
}

var config Config

// DefaultConfig returns the configuration used when nothing is configured
func DefaultConfig() Config {
	settings := room.DefaultSettings()
	opts := settings.Options

	cfg := Config{
		Addr: ":5000",
		Table: Table{
			StartingChips: opts.StartingChips,
			SmallBlind:    opts.SmallBlind,
			BigBlind:      opts.BigBlind,
			MaxBet:        opts.MaxBet,
			MaxPlayers:    opts.MaxPlayers,
			ActionTimeout: settings.ActionTimeout,
			NextHandDelay: settings.NextHandDelay,
		},
		Stakes:         texasholdem.DefaultStakes(),
		AllowedOrigins: []string{"*"},
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The YAML file is optional, values from the environment take precedence
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate returns an error if the configuration cannot be used
func (c Config) Validate() error {
	if err := c.Table.Settings().Validate(); err != nil {
		return err
	}

	for _, s := range c.Stakes {
		if err := s.Validate(); err != nil {
			return errors.New(s.Name + ": " + err.Error())
		}
	}

	return nil
}
