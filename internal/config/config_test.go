package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := setEnv("FOURCARD_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := setEnv("FOURCARD_GAME_BIG_BLIND", "50")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()

	a.Equal("debug", cfg.LogLevel)
	a.Equal(int64(12345), cfg.Seed)
	a.Equal("Hero", cfg.Player)
	a.Equal(500, cfg.Game.StartingStack)
	a.Equal(5, cfg.Game.SmallBlind)
	// environment wins over the file
	a.Equal(50, cfg.Game.BigBlind)
	a.Equal(2, cfg.Game.AISeats)

	// ensure that it's only loaded once
	_ = os.Setenv("FOURCARD_GAME_BIG_BLIND", "75")
	// ensure we aren't using a pointer
	cfg.Game.BigBlind = 0
	cfg = Instance()
	a.Equal(50, cfg.Game.BigBlind)
}

func TestDefaults(t *testing.T) {
	clear := setEnv("FOURCARD_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()

	a.Equal("info", cfg.LogLevel)
	a.Equal("You", cfg.Player)
	a.Equal(1000, cfg.Game.StartingStack)

	opts := cfg.Options()
	a.Equal(1000, opts.StartingStack)
	a.Equal(10, opts.SmallBlind)
	a.Equal(20, opts.BigBlind)
}

func setEnv(key, val string) func() {
	orig := os.Getenv(key)
	_ = os.Setenv(key, val)
	return func() {
		if orig == "" {
			_ = os.Unsetenv(key)
		} else {
			_ = os.Setenv(key, orig)
		}
	}
}
