package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"fourcardpoker/internal/util"
	"fourcardpoker/pkg/holdem"
)

// Config provides configuration for a table of 2+4 hold'em
type Config struct {
	loaded   bool
	LogLevel string `yaml:"logLevel" envconfig:"log_level"`
	Seed     int64  `yaml:"seed"`
	Player   string `yaml:"player"`
	Game     struct {
		StartingStack int `yaml:"startingStack" envconfig:"starting_stack"`
		SmallBlind    int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind      int `yaml:"bigBlind" envconfig:"big_blind"`
		AISeats       int `yaml:"aiSeats" envconfig:"ai_seats"`
	}
}

var config Config

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

// Load will load the configuration. A missing config file is not an error;
// the defaults apply and the environment can still override them.
func Load() error {
	config = defaults()

	configFile := util.Getenv("FOURCARD_CONFIG_FILE", "fourcard.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("fourcard", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

func defaults() Config {
	var c Config
	c.LogLevel = "info"
	c.Player = "You"
	c.Game.StartingStack = 1000
	c.Game.SmallBlind = 10
	c.Game.BigBlind = 20
	c.Game.AISeats = 3

	return c
}

// Options maps the game section onto engine options
func (c Config) Options() holdem.Options {
	return holdem.Options{
		StartingStack: c.Game.StartingStack,
		SmallBlind:    c.Game.SmallBlind,
		BigBlind:      c.Game.BigBlind,
	}
}
