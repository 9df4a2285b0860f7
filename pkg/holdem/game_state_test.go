package holdem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"fourcardpoker/pkg/holdem/action"
)

func TestGame_State(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, "alice", "bob")
	g.StartNewHand()

	state := g.State()
	a.Equal(1, state.HandNumber)
	a.Equal(PhasePreFlop, state.Phase)
	a.Equal(30, state.Pot)
	a.Equal(20, state.CurrentBet)
	a.Equal(2, len(state.Players))

	// hole cards stay hidden until showdown
	for _, p := range state.Players {
		a.Nil(p.Cards)
	}

	a.NoError(g.ProcessAction(action.Fold, 0))
	a.Equal(PhaseEnded, g.Phase())

	state = g.State()
	a.Nil(state.Players[0].Cards) // folded
	a.Equal(2, len(state.Players[1].Cards))

	_, err := json.Marshal(state)
	a.NoError(err)
}
