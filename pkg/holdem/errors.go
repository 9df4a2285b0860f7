package holdem

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is an error when a game is constructed with a bad player count or options
var ErrInvalidConfiguration = errors.New("player count must be between 2 and 8")

// ErrNoBettingRound is an error when an action arrives outside a betting round
var ErrNoBettingRound = IllegalActionError("no betting round in progress")

// ErrRoundOver is an error when an action arrives after the betting round completed
var ErrRoundOver = IllegalActionError("the betting round is already over")

// ErrCannotAct is an error when the seat on the clock has no legal actions
var ErrCannotAct = IllegalActionError("player cannot act")

// ErrRoundNotOver is an error when a phase advance is attempted mid-round
var ErrRoundNotOver = errors.New("the betting round is not over")

// IllegalActionError is a rejection of a player action. The game state is
// unchanged and the caller is expected to re-prompt.
type IllegalActionError string

func (e IllegalActionError) Error() string {
	return string(e)
}

func newIllegalActionError(format string, a ...interface{}) IllegalActionError {
	return IllegalActionError(fmt.Sprintf(format, a...))
}
