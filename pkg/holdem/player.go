package holdem

import (
	"fmt"

	"fourcardpoker/pkg/deck"
	"fourcardpoker/pkg/holdem/action"
)

// Player represents a single seat at the table. All mutation happens through
// the Game's action processing; other packages only read.
type Player struct {
	ID   int64
	Name string

	chips      int
	cards      deck.Hand
	roundBet   int
	handBet    int
	status     Status
	position   Position
	lastAction *action.Action
}

func newPlayer(id int64, name string, chips int) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		chips:  chips,
		cards:  make(deck.Hand, 0, holeCardCount),
		status: StatusActive,
	}
}

// Chips returns the player's current stack
func (p *Player) Chips() int {
	return p.chips
}

// Cards returns a copy of the player's hole cards
func (p *Player) Cards() deck.Hand {
	return p.cards.Clone()
}

// RoundBet returns the chips wagered in the current betting round
func (p *Player) RoundBet() int {
	return p.roundBet
}

// HandBet returns the chips wagered across the entire hand
func (p *Player) HandBet() int {
	return p.handBet
}

// Status returns the player's standing in the current hand
func (p *Player) Status() Status {
	return p.status
}

// Position returns the player's table position for the current hand
func (p *Player) Position() Position {
	return p.position
}

// LastAction returns the last action the player took this round, or nil
func (p *Player) LastAction() *action.Action {
	return p.lastAction
}

// CanAct returns true if the player may still make a decision this round
func (p *Player) CanAct() bool {
	return p.status == StatusActive && p.chips > 0
}

// InHand returns true if the player has not folded and is not out
func (p *Player) InHand() bool {
	return p.status != StatusFolded && p.status != StatusOut
}

// PlaceBet moves amount from the stack into the round and hand bets.
// A bet of the entire stack flips the player to all-in.
func (p *Player) PlaceBet(amount int) error {
	if amount > p.chips {
		return newIllegalActionError("bet of %d exceeds stack of %d", amount, p.chips)
	}

	p.chips -= amount
	p.roundBet += amount
	p.handBet += amount

	if p.chips == 0 {
		p.status = StatusAllIn
	}

	return nil
}

// Call wagers up to delta, clamping to the stack. A short call becomes an
// all-in. Returns the number of chips actually moved.
func (p *Player) Call(delta int) int {
	amount := delta
	if amount > p.chips {
		amount = p.chips
	}

	if err := p.PlaceBet(amount); err != nil {
		panic(fmt.Sprintf("clamped call failed: %v", err))
	}

	act := action.Call
	if amount < delta {
		act = action.AllIn
	}
	p.lastAction = &act

	return amount
}

// RaiseTo raises the player's round bet to target. The target must move chips.
func (p *Player) RaiseTo(target int) error {
	delta := target - p.roundBet
	if delta <= 0 {
		return newIllegalActionError("raise to %d would not increase the bet of %d", target, p.roundBet)
	}

	if err := p.PlaceBet(delta); err != nil {
		return err
	}

	act := action.Raise
	if p.chips == 0 {
		act = action.AllIn
	}
	p.lastAction = &act

	return nil
}

// Check records a check
func (p *Player) Check() {
	act := action.Check
	p.lastAction = &act
}

// Fold removes the player from the hand
func (p *Player) Fold() {
	p.status = StatusFolded
	act := action.Fold
	p.lastAction = &act
}

// AllIn wagers the entire remaining stack and returns the amount wagered
func (p *Player) AllIn() int {
	amount := p.chips
	if amount > 0 {
		if err := p.PlaceBet(amount); err != nil {
			panic(fmt.Sprintf("all in failed: %v", err))
		}
	}

	act := action.AllIn
	p.lastAction = &act

	return amount
}

// LegalActions is a pure query for the actions consistent with the player's
// status, stack, and the table's current bet and minimum raise
func (p *Player) LegalActions(tableBet, minRaise int) []action.Action {
	if !p.CanAct() {
		return nil
	}

	actions := make([]action.Action, 0, 5)
	actions = append(actions, action.Fold)

	callAmount := tableBet - p.roundBet
	if callAmount == 0 {
		actions = append(actions, action.Check)
	} else if callAmount <= p.chips {
		actions = append(actions, action.Call)
	}

	if p.chips+p.roundBet >= tableBet+minRaise {
		actions = append(actions, action.Raise)
	}

	return append(actions, action.AllIn)
}

// resetForNewHand prepares the player for the next hand. A player with an
// empty stack is out and must be removed from the roster before dealing.
func (p *Player) resetForNewHand() {
	p.cards = make(deck.Hand, 0, holeCardCount)
	p.roundBet = 0
	p.handBet = 0
	p.lastAction = nil
	p.position = PositionNone

	if p.chips > 0 {
		p.status = StatusActive
	} else {
		p.status = StatusOut
	}
}

// resetForNewRound clears the per-round bet and last action
func (p *Player) resetForNewRound() {
	p.roundBet = 0
	p.lastAction = nil
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%d)", p.Name, p.chips)
}
