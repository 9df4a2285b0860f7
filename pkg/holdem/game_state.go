package holdem

import (
	"fourcardpoker/pkg/deck"
	"fourcardpoker/pkg/holdem/action"
)

// PlayerState is the JSON representation of one seat
type PlayerState struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Chips      int            `json:"chips"`
	Cards      deck.Hand      `json:"cards,omitempty"`
	RoundBet   int            `json:"roundBet"`
	HandBet    int            `json:"handBet"`
	Status     Status         `json:"status"`
	Position   Position       `json:"position,omitempty"`
	LastAction *action.Action `json:"lastAction,omitempty"`
}

// GameState is the JSON representation of the table
type GameState struct {
	ID            string         `json:"id"`
	HandNumber    int            `json:"handNumber"`
	Phase         Phase          `json:"phase"`
	Community     deck.Hand      `json:"community"`
	Pot           int            `json:"pot"`
	CurrentBet    int            `json:"currentBet"`
	MinRaise      int            `json:"minRaise"`
	DealerIndex   int            `json:"dealerIndex"`
	TurnIndex     int            `json:"turnIndex"`
	RoundComplete bool           `json:"roundComplete"`
	Players       []*PlayerState `json:"players"`
}

func (p *Player) state(reveal bool) *PlayerState {
	var cards deck.Hand
	if reveal && p.status != StatusFolded {
		cards = p.Cards()
	}

	return &PlayerState{
		ID:         p.ID,
		Name:       p.Name,
		Chips:      p.chips,
		Cards:      cards,
		RoundBet:   p.roundBet,
		HandBet:    p.handBet,
		Status:     p.status,
		Position:   p.position,
		LastAction: p.lastAction,
	}
}

// State returns a snapshot of the table for presentation. Hole cards are
// only included once the hand reaches showdown.
func (g *Game) State() *GameState {
	reveal := g.phase == PhaseShowdown || g.phase == PhaseEnded

	players := make([]*PlayerState, len(g.players))
	for i, p := range g.players {
		players[i] = p.state(reveal)
	}

	return &GameState{
		ID:            g.id.String(),
		HandNumber:    g.handNumber,
		Phase:         g.phase,
		Community:     g.Community(),
		Pot:           g.pot,
		CurrentBet:    g.currentBet,
		MinRaise:      g.minRaise,
		DealerIndex:   g.dealerIndex,
		TurnIndex:     g.turnIndex,
		RoundComplete: g.roundComplete,
		Players:       players,
	}
}
