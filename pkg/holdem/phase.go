package holdem

import (
	"encoding/json"
	"fmt"
)

// Phase represents the state of a hand. Phases only ever move forward.
type Phase int

// constants for Phase. The community cards arrive in 2-then-1-then-1 reveals
// for a cumulative four shared cards.
const (
	PhaseWaiting Phase = iota
	PhasePreFlop
	PhaseFlopReveal
	PhaseTurnReveal
	PhaseRiverReveal
	PhaseShowdown
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhasePreFlop:
		return "pre-flop"
	case PhaseFlopReveal:
		return "flop"
	case PhaseTurnReveal:
		return "turn"
	case PhaseRiverReveal:
		return "river"
	case PhaseShowdown:
		return "showdown"
	case PhaseEnded:
		return "ended"
	}

	panic(fmt.Sprintf("unknown phase: %d", int(p)))
}

// IsBettingRound returns true if the phase has a betting round attached
func (p Phase) IsBettingRound() bool {
	switch p {
	case PhasePreFlop, PhaseFlopReveal, PhaseTurnReveal, PhaseRiverReveal:
		return true
	}

	return false
}

// MarshalJSON encodes JSON
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(p),
		Name: p.String(),
	})
}
