package ai

import (
	"fourcardpoker/internal/rng"
	"fourcardpoker/pkg/holdem"
	"fourcardpoker/pkg/holdem/action"
)

// Policy chooses actions for computer-controlled seats. It is a loose
// strategy keyed on the cost of continuing: cheap calls are usually made and
// occasionally turned into small raises, expensive calls are usually folded.
type Policy struct {
	rand rng.Generator
}

// New returns a Policy drawing its randomness from the given generator
func New(r rng.Generator) *Policy {
	return &Policy{rand: r}
}

// Decide picks an action for the given seat. The returned amount is only
// meaningful for a raise.
func (p *Policy) Decide(g *holdem.Game, seat int) (action.Action, int) {
	actions := g.LegalActionsFor(seat)
	if len(actions) == 0 {
		return action.Fold, 0
	}

	player := g.Players()[seat]
	callAmount := g.CurrentBet() - player.RoundBet()
	factor := p.rand.Intn(100)

	if contains(actions, action.Check) && factor < 30 {
		return action.Check, 0
	}

	if contains(actions, action.Call) {
		chips := player.Chips()

		switch {
		case callAmount*5 <= chips:
			if factor < 70 {
				return action.Call, 0
			}

			if contains(actions, action.Raise) && factor < 85 {
				target := g.CurrentBet() + g.MinRaise() + p.rand.Intn(g.MinRaise()+1)
				if max := chips + player.RoundBet(); target > max {
					target = max
				}

				return action.Raise, target
			}
		case callAmount*2 <= chips:
			if factor < 50 {
				return action.Call, 0
			}
		}
	}

	for _, fallback := range []action.Action{action.Fold, action.Check, action.Call} {
		if contains(actions, fallback) {
			return fallback, 0
		}
	}

	return actions[0], 0
}

func contains(actions []action.Action, act action.Action) bool {
	for _, a := range actions {
		if a == act {
			return true
		}
	}

	return false
}
