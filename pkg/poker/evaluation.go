package poker

import (
	"fmt"

	"fourcardpoker/pkg/deck"
)

// scoring weights. The category band dominates the intra-category value,
// which dominates the kicker contribution.
const (
	categoryWeight = 1_000_000
	valueWeight    = 1_000

	// maxKickerScore keeps kickers from overflowing into the value band
	maxKickerScore = 99_999
)

// Evaluation is the strength of the best five-card hand
type Evaluation struct {
	Category Category  `json:"category"`
	Cards    deck.Hand `json:"cards"`
	Value    int       `json:"value"`
	Kickers  []int     `json:"kickers"`
}

// Score returns a single comparable number for the evaluation.
// A hand of a higher category always outscores any hand of a lower category.
func (e *Evaluation) Score() int {
	kickers := 0
	for i, k := range e.Kickers {
		kickers += k << (4 * (len(e.Kickers) - i - 1))
	}

	if kickers > maxKickerScore {
		kickers = maxKickerScore
	}

	return int(e.Category)*categoryWeight + e.Value*valueWeight + kickers
}

func (e *Evaluation) String() string {
	return fmt.Sprintf("%s (%s)", e.Category, e.Cards.Display())
}
