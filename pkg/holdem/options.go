package holdem

import "errors"

// player count limits
const (
	MinPlayers = 2
	MaxPlayers = 8
)

// card counts for the 2+4 variant
const (
	holeCardCount      = 2
	communityCardCount = 4
)

// Options configures how a game is played
type Options struct {
	StartingStack int
	SmallBlind    int
	BigBlind      int
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		StartingStack: 1000,
		SmallBlind:    10,
		BigBlind:      20,
	}
}

func validateOptions(opts Options) error {
	if opts.StartingStack <= 0 {
		return errors.New("starting stack must be greater than zero")
	}

	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be greater than zero")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind must be at least the small blind")
	}

	if opts.StartingStack < opts.BigBlind {
		return errors.New("starting stack must cover the big blind")
	}

	return nil
}
