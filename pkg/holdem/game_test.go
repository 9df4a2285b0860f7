package holdem

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"fourcardpoker/pkg/holdem/action"
)

func newTestGame(t *testing.T, names ...string) *Game {
	t.Helper()

	g, err := NewGame(logrus.StandardLogger(), names, DefaultOptions())
	assert.NoError(t, err)
	assert.NotNil(t, g)

	return g
}

// totalChips is the chip-conservation invariant: stacks plus pot must always
// equal playerCount x startingStack
func totalChips(g *Game) int {
	total := g.pot
	for _, p := range g.players {
		total += p.chips
	}

	return total
}

func assertConserved(t *testing.T, g *Game, expected int) {
	t.Helper()
	assert.Equal(t, expected, totalChips(g), "chip conservation")
}

func TestNewGame(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, "alice", "bob", "carol")
	a.Equal(PhaseWaiting, g.Phase())
	a.Equal(3, len(g.Players()))
	a.Equal(1000, g.Players()[0].Chips())

	_, err := NewGame(logrus.StandardLogger(), []string{"alone"}, DefaultOptions())
	a.Equal(ErrInvalidConfiguration, err)

	nine := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
	_, err = NewGame(logrus.StandardLogger(), nine, DefaultOptions())
	a.Equal(ErrInvalidConfiguration, err)

	_, err = NewGame(logrus.StandardLogger(), []string{"a", "b"}, Options{StartingStack: 100, SmallBlind: 20, BigBlind: 10})
	a.EqualError(err, "big blind must be at least the small blind")
}

func TestGame_StartNewHand(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, "alice", "bob", "carol")
	g.StartNewHand()

	a.Equal(PhasePreFlop, g.Phase())
	a.Equal(1, g.HandNumber())

	// button, small blind, big blind in seating order from the dealer
	a.Equal(PositionButton, g.Players()[0].Position())
	a.Equal(PositionSmallBlind, g.Players()[1].Position())
	a.Equal(PositionBigBlind, g.Players()[2].Position())

	a.Equal(10, g.Players()[1].RoundBet())
	a.Equal(20, g.Players()[2].RoundBet())
	a.Equal(30, g.Pot())
	a.Equal(20, g.CurrentBet())

	// everyone has two hole cards, no community cards yet
	for _, p := range g.Players() {
		a.Equal(2, len(p.Cards()))
	}
	a.Equal(0, len(g.Community()))

	// first to act is left of the big blind
	a.Equal(g.Players()[0], g.CurrentPlayer())

	assertConserved(t, g, 3000)
}

func TestGame_StartNewHand_headsUp(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, "alice", "bob")
	g.StartNewHand()

	// heads-up: the button posts the small blind
	a.Equal(PositionSmallBlind, g.Players()[0].Position())
	a.Equal(PositionBigBlind, g.Players()[1].Position())

	// small blind acts first pre-flop
	a.Equal(g.Players()[0], g.CurrentPlayer())
}

func TestGame_checkRound(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, "a", "b", "c", "d")
	g.StartNewHand()

	// pre-flop: everyone calls around to the big blind, who checks
	a.NoError(g.ProcessAction(action.Call, 0))  // seat 3
	a.NoError(g.ProcessAction(action.Call, 0))  // seat 0 (button)
	a.NoError(g.ProcessAction(action.Call, 0))  // seat 1 (small blind)
	a.NoError(g.ProcessAction(action.Check, 0)) // seat 2 (big blind)

	a.True(g.IsRoundComplete())
	a.Equal(80, g.Pot())
	assertConserved(t, g, 4000)

	a.NoError(g.AdvancePhase())
	a.Equal(PhaseFlopReveal, g.Phase())
	a.Equal(2, len(g.Community()))
	a.Equal(0, g.CurrentBet())

	// post-flop the small blind opens; four checks in turn complete the
	// round with the table bet still zero
	for i := 0; i < 4; i++ {
		a.False(g.IsRoundComplete())
		a.NoError(g.ProcessAction(action.Check, 0))
	}

	a.True(g.IsRoundComplete())
	a.Equal(0, g.CurrentBet())
	a.Equal(80, g.Pot())

	a.NoError(g.AdvancePhase())
	a.Equal(PhaseTurnReveal, g.Phase())
	a.Equal(3, len(g.Community()))

	for i := 0; i < 4; i++ {
		a.NoError(g.ProcessAction(action.Check, 0))
	}

	a.NoError(g.AdvancePhase())
	a.Equal(PhaseRiverReveal, g.Phase())
	a.Equal(4, len(g.Community()))

	for i := 0; i < 4; i++ {
		a.NoError(g.ProcessAction(action.Check, 0))
	}

	a.True(g.IsHandOver())
	a.NoError(g.AdvancePhase())
	a.Equal(PhaseEnded, g.Phase())
	a.Equal(0, g.Pot())
	a.NotEmpty(g.Results())
	assertConserved(t, g, 4000)
}

func TestGame_ProcessAction_rejections(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, "alice", "bob")
	g.StartNewHand()

	// small blind faces a bet and cannot check
	before := g.State()
	a.EqualError(g.ProcessAction(action.Check, 0), "Check is not a legal action right now")
	a.Equal(before.Pot, g.Pot())
	a.Equal(before.CurrentBet, g.CurrentBet())
	a.Equal(before.TurnIndex, g.turnIndex)

	// raise below the minimum is rejected without state change
	a.EqualError(g.ProcessAction(action.Raise, 30), "raise must be to at least 40")
	a.Equal(10, g.Players()[0].RoundBet())

	// raise above the stack is rejected
	a.EqualError(g.ProcessAction(action.Raise, 2000), "raise to 2000 exceeds your total of 1000")

	// finish the round, then further actions are rejected
	a.NoError(g.ProcessAction(action.Call, 0))
	a.NoError(g.ProcessAction(action.Check, 0))
	a.True(g.IsRoundComplete())
	a.Equal(ErrRoundOver, g.ProcessAction(action.Check, 0))

	// the phase cannot advance twice without a completed round
	a.NoError(g.AdvancePhase())
	a.Equal(ErrRoundNotOver, g.AdvancePhase())

	assertConserved(t, g, 2000)
}

func TestGame_ProcessAction_requiresBettingRound(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, "alice", "bob")

	// no hand has been dealt yet
	a.Equal(ErrNoBettingRound, g.ProcessAction(action.Check, 0))
	a.Equal(ErrNoBettingRound, g.ProcessAction(action.Fold, 0))
	a.Equal(PhaseWaiting, g.Phase())
	a.Equal(0, g.Pot())
	a.Equal(0, g.HandNumber())
	a.Nil(g.Results())
	a.Equal(StatusActive, g.Players()[0].Status())

	// a settled hand is just as closed to actions
	g.StartNewHand()
	a.NoError(g.ProcessAction(action.Fold, 0))
	a.Equal(PhaseEnded, g.Phase())
	a.Equal(ErrNoBettingRound, g.ProcessAction(action.Check, 0))

	// a roster too small to deal ends the game without a betting round
	g.players[1].chips = 0
	g.Eliminate()
	g.StartNewHand()
	a.Equal(PhaseEnded, g.Phase())
	a.Equal(ErrNoBettingRound, g.ProcessAction(action.Fold, 0))
	a.Equal(PhaseEnded, g.Phase())
}

func TestGame_minRaiseUsesLastIncrement(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, "alice", "bob")
	g.StartNewHand()

	// opening raise must be at least big blind + min raise
	a.Equal(20, g.MinRaise())
	a.NoError(g.ProcessAction(action.Raise, 60))
	a.Equal(60, g.CurrentBet())

	// min raise is now the increment just made (60 - 20 = 40)
	a.Equal(40, g.MinRaise())
	a.EqualError(g.ProcessAction(action.Raise, 99), "raise must be to at least 100")

	a.NoError(g.ProcessAction(action.Raise, 160))
	a.Equal(100, g.MinRaise())
	a.Equal(160, g.CurrentBet())

	assertConserved(t, g, 2000)
}

func TestGame_foldEndsHandImmediately(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, "alice", "bob")
	g.StartNewHand()

	a.NoError(g.ProcessAction(action.Fold, 0))

	// bob wins the blinds uncontested with no evaluation
	a.Equal(PhaseEnded, g.Phase())
	a.Equal(0, g.Pot())
	a.Equal(990, g.Players()[0].Chips())
	a.Equal(1010, g.Players()[1].Chips())

	results := g.Results()
	a.Equal(1, len(results))
	a.Equal(g.Players()[1], results[0].Player)
	a.Equal(30, results[0].Winnings)
	a.Nil(results[0].Evaluation)

	a.True(g.IsHandOver())
	assertConserved(t, g, 2000)
}

func TestGame_allInShortCall(t *testing.T) {
	a := assert.New(t)

	opts := DefaultOptions()
	g, err := NewGame(logrus.StandardLogger(), []string{"alice", "bob"}, opts)
	a.NoError(err)

	// bob is short-stacked
	g.players[1].chips = 300
	expected := 1000 + 300

	g.StartNewHand()
	assertConserved(t, g, expected)

	// alice shoves; bob's call is clamped to his stack
	a.NoError(g.ProcessAction(action.AllIn, 0))
	a.Equal(1000, g.CurrentBet())
	a.NoError(g.ProcessAction(action.Call, 0))

	a.Equal(StatusAllIn, g.players[0].Status())
	a.Equal(StatusAllIn, g.players[1].Status())
	a.Equal(1300, g.Pot())
	a.True(g.IsRoundComplete())
	assertConserved(t, g, expected)

	// no one can act, so the remaining streets complete instantly
	a.NoError(g.AdvancePhase())
	a.True(g.IsRoundComplete())
	a.NoError(g.AdvancePhase())
	a.True(g.IsRoundComplete())
	a.NoError(g.AdvancePhase())
	a.True(g.IsRoundComplete())
	a.NoError(g.AdvancePhase())

	a.Equal(PhaseEnded, g.Phase())
	a.Equal(0, g.Pot())
	a.Equal(4, len(g.Community()))
	assertConserved(t, g, expected)
}

func TestGame_chipConservationAcrossHands(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, "a", "b", "c")
	const expected = 3000

	for hand := 0; hand < 20 && !g.IsGameOver(); hand++ {
		g.StartNewHand()
		if g.Phase() == PhaseEnded {
			break
		}

		assertConserved(t, g, expected)

		for g.Phase() != PhaseEnded {
			for !g.IsRoundComplete() {
				player := g.CurrentPlayer()
				if player == nil {
					break
				}

				// deterministic mix of actions keyed off the state
				actions := g.LegalActionsFor(g.turnIndex)
				var act action.Action
				amount := 0

				switch (g.HandNumber() + player.RoundBet() + g.Pot()) % 4 {
				case 0:
					act = action.Fold
				case 1:
					if containsAction(actions, action.Check) {
						act = action.Check
					} else if containsAction(actions, action.Call) {
						act = action.Call
					} else {
						act = action.AllIn
					}
				case 2:
					if containsAction(actions, action.Raise) {
						act = action.Raise
						amount = g.CurrentBet() + g.MinRaise()
					} else {
						act = action.Fold
					}
				default:
					if containsAction(actions, action.Call) {
						act = action.Call
					} else if containsAction(actions, action.Check) {
						act = action.Check
					} else {
						act = action.Fold
					}
				}

				a.NoError(g.ProcessAction(act, amount))
				assertConserved(t, g, expected)
			}

			if g.Phase() != PhaseEnded {
				a.NoError(g.AdvancePhase())
				assertConserved(t, g, expected)
			}
		}

		g.Eliminate()
		g.AdvanceDealer()
		assertConserved(t, g, expected)
	}
}

func TestGame_Eliminate(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, "alice", "bob", "carol")
	g.players[2].chips = 0

	eliminated := g.Eliminate()
	a.Equal(1, len(eliminated))
	a.Equal("carol", eliminated[0].Name)
	a.Equal(StatusOut, g.players[2].Status())

	// already-out players are not eliminated twice
	a.Empty(g.Eliminate())

	// the next hand excludes carol from the roster, positions, and dealing
	g.StartNewHand()
	a.Equal(2, len(g.Players()))
	for _, p := range g.Players() {
		a.NotEqual("carol", p.Name)
		a.Equal(2, len(p.Cards()))
	}

	a.False(g.IsGameOver())
	g.players[1].chips = 0
	a.True(g.IsGameOver())
}

func TestGame_endsWhenRosterTooSmall(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, "alice", "bob")
	g.players[1].chips = 0
	g.Eliminate()

	g.StartNewHand()
	a.Equal(PhaseEnded, g.Phase())
	a.Equal(1, len(g.Players()))
}

func TestGame_LegalActionsFor(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, "alice", "bob")

	// no betting round yet
	a.Nil(g.LegalActionsFor(0))

	g.StartNewHand()
	a.Equal([]action.Action{action.Fold, action.Call, action.Raise, action.AllIn},
		g.LegalActionsFor(0))
	a.Equal([]action.Action{action.Fold, action.Check, action.Raise, action.AllIn},
		g.LegalActionsFor(1))

	a.Nil(g.LegalActionsFor(-1))
	a.Nil(g.LegalActionsFor(2))
}
