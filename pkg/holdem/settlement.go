package holdem

import (
	"github.com/sirupsen/logrus"

	"fourcardpoker/pkg/poker"
)

// HandResult records one contender's showdown outcome
type HandResult struct {
	Player     *Player           `json:"player"`
	Evaluation *poker.Evaluation `json:"evaluation,omitempty"`
	Winnings   int               `json:"winnings"`
}

// settle finalizes the hand. If only one live player remains they take the
// pot without a showdown; otherwise every remaining hand is evaluated and
// the top scores split the pot, remainder paid one chip at a time in seating
// order. Side pots for unequal all-ins are intentionally not implemented;
// all-in players compete for the undivided pot.
func (g *Game) settle() {
	contenders := g.playersInHand()

	if len(contenders) <= 1 {
		if len(contenders) == 1 {
			winner := contenders[0]
			winner.chips += g.pot
			g.results = []*HandResult{{Player: winner, Winnings: g.pot}}

			g.logger.WithFields(logrus.Fields{
				"hand":     g.handNumber,
				"player":   winner.Name,
				"winnings": g.pot,
			}).Info("hand won uncontested")
		}

		g.pot = 0
		g.phase = PhaseEnded
		return
	}

	results := make([]*HandResult, len(contenders))
	bestScore := -1
	for i, p := range contenders {
		ev := poker.Evaluate(p.cards, g.community)
		results[i] = &HandResult{Player: p, Evaluation: ev}

		if score := ev.Score(); score > bestScore {
			bestScore = score
		}
	}

	winners := make([]*HandResult, 0, len(results))
	for _, r := range results {
		if r.Evaluation.Score() == bestScore {
			winners = append(winners, r)
		}
	}

	// the split is deterministic: seating order decides who receives the
	// indivisible remainder, one chip each
	share := g.pot / len(winners)
	remainder := g.pot % len(winners)

	for i, r := range winners {
		winnings := share
		if i < remainder {
			winnings++
		}

		r.Winnings = winnings
		r.Player.chips += winnings

		g.logger.WithFields(logrus.Fields{
			"hand":     g.handNumber,
			"player":   r.Player.Name,
			"winnings": winnings,
			"category": r.Evaluation.Category.String(),
		}).Info("hand won")
	}

	g.results = results
	g.pot = 0
	g.phase = PhaseEnded
}
